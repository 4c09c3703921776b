package models

// Summary — сводка для дашборда, каждый раз пересчитывается с нуля
type Summary struct {
	TotalCourses        int      `json:"total_courses"`
	CompletedCourses    int      `json:"completed_courses"`
	InProgressCourses   int      `json:"in_progress_courses"`
	NotStartedCourses   int      `json:"not_started_courses"`
	TotalPlannedHours   float64  `json:"total_planned_hours"`
	TotalCompletedHours float64  `json:"total_completed_hours"`
	CurrentStreak       int      `json:"current_streak"`
	RecentCourses       []Course `json:"recent_courses"`
}

// DailyProgressPoint — точка временного ряда по дневникам
type DailyProgressPoint struct {
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	CoursesCount int     `json:"courses_count"`
}

// HeatmapCell — ячейка календарной тепловой карты
type HeatmapCell struct {
	Hours   float64 `json:"hours"`
	Courses int     `json:"courses"`
}
