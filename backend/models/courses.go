package models

// Статусы курса
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Приоритеты курса
const (
	PriorityMust     = "MUST"
	PriorityOptional = "Optional"
)

type Course struct {
	ID             string  `json:"id" gorm:"primaryKey"`
	Title          string  `json:"title"`
	Phase          int     `json:"phase"`
	PhaseTitle     string  `json:"phase_title"`
	DurationHours  float64 `json:"duration_hours"`
	Priority       string  `json:"priority"` // MUST, Optional
	YoutubeURL     string  `json:"youtube_url"`
	Thumbnail      string  `json:"thumbnail"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`   // Not Started, In Progress, Completed
	Progress       int     `json:"progress"` // 0-100
	StartDate      *string `json:"start_date"`
	CompletionDate *string `json:"completion_date"`
	TotalTimeSpent int     `json:"total_time_spent"` // минуты
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type CourseCreate struct {
	Title         string  `json:"title" validate:"required"`
	Phase         int     `json:"phase" validate:"required,gt=0"`
	PhaseTitle    string  `json:"phase_title" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
	Priority      string  `json:"priority" validate:"required,oneof=MUST Optional"`
	YoutubeURL    string  `json:"youtube_url" validate:"required"`
	Description   string  `json:"description"`
}

// CourseUpdate — частичное обновление: применяются только непустые (non-nil) поля
type CourseUpdate struct {
	Title          *string  `json:"title"`
	Phase          *int     `json:"phase" validate:"omitempty,gt=0"`
	PhaseTitle     *string  `json:"phase_title"`
	DurationHours  *float64 `json:"duration_hours" validate:"omitempty,gt=0"`
	Priority       *string  `json:"priority" validate:"omitempty,oneof=MUST Optional"`
	YoutubeURL     *string  `json:"youtube_url"`
	Description    *string  `json:"description"`
	Status         *string  `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	Progress       *int     `json:"progress" validate:"omitempty,min=0,max=100"`
	StartDate      *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate *string  `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}
