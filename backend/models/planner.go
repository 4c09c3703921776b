package models

// PlannedSession — запланированная учебная сессия. CourseTitle — снимок названия
// курса на момент создания, при переименовании курса не обновляется.
type PlannedSession struct {
	ID            string `json:"id" gorm:"primaryKey"`
	CourseID      string `json:"course_id"`
	CourseTitle   string `json:"course_title"`
	PlannedDate   string `json:"planned_date"`   // YYYY-MM-DD
	EstimatedTime int    `json:"estimated_time"` // минуты
	Notes         string `json:"notes"`
	IsCompleted   bool   `json:"is_completed"`
	CreatedAt     string `json:"created_at"`
}

type PlannedSessionCreate struct {
	CourseID      string `json:"course_id" validate:"required"`
	PlannedDate   string `json:"planned_date" validate:"required,datetime=2006-01-02"`
	EstimatedTime int    `json:"estimated_time" validate:"omitempty,gt=0"`
	Notes         string `json:"notes"`
}

type PlannedSessionUpdate struct {
	EstimatedTime *int    `json:"estimated_time" validate:"omitempty,gt=0"`
	Notes         *string `json:"notes"`
	IsCompleted   *bool   `json:"is_completed"`
}
