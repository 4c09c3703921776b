package models

import "gorm.io/datatypes"

// CourseActivity — вложенная запись активности по курсу за день.
// Хранится внутри DailyLog как JSON, отдельной таблицы нет.
type CourseActivity struct {
	CourseID      string `json:"course_id" validate:"required"`
	CourseTitle   string `json:"course_title"`
	TimeSpent     int    `json:"time_spent" validate:"min=0"` // минуты
	ProgressNotes string `json:"progress_notes"`
}

// DailyLog — дневник за календарный день. Date уникальна: повторная отправка
// за ту же дату замещает существующий дневник.
type DailyLog struct {
	ID             string                              `json:"id" gorm:"primaryKey"`
	Date           string                              `json:"date" gorm:"uniqueIndex"` // YYYY-MM-DD
	Courses        datatypes.JSONSlice[CourseActivity] `json:"courses"`
	TotalTimeSpent int                                 `json:"total_time_spent"` // минуты, сумма по Courses
	Notes          string                              `json:"notes"`
	Mood           *int                                `json:"mood"` // 1-5
	CreatedAt      string                              `json:"created_at"`
}

type DailyLogCreate struct {
	Date    string           `json:"date" validate:"required,datetime=2006-01-02"`
	Courses []CourseActivity `json:"courses" validate:"dive"`
	Notes   string           `json:"notes"`
	Mood    *int             `json:"mood" validate:"omitempty,min=1,max=5"`
}
