package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tracker/backend/models"
)

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil, nil, streakToday)

	assert.Equal(t, 0, s.TotalCourses)
	assert.Equal(t, 0, s.CompletedCourses)
	assert.Equal(t, 0, s.InProgressCourses)
	assert.Equal(t, 0, s.NotStartedCourses)
	assert.Equal(t, 0.0, s.TotalPlannedHours)
	assert.Equal(t, 0.0, s.TotalCompletedHours)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Empty(t, s.RecentCourses)
}

func TestBuildSummaryPartition(t *testing.T) {
	courses := []models.Course{
		{ID: "a", Status: models.StatusCompleted, DurationHours: 2, TotalTimeSpent: 120},
		{ID: "b", Status: models.StatusInProgress, DurationHours: 4, TotalTimeSpent: 90},
		{ID: "c", Status: models.StatusInProgress, DurationHours: 1.5, TotalTimeSpent: 30},
		{ID: "d", Status: models.StatusNotStarted, DurationHours: 10},
	}

	s := BuildSummary(courses, nil, streakToday)

	assert.Equal(t, 4, s.TotalCourses)
	assert.Equal(t, 1, s.CompletedCourses)
	assert.Equal(t, 2, s.InProgressCourses)
	assert.Equal(t, 1, s.NotStartedCourses)
	// разбиение по статусам всегда сходится с общим числом курсов
	assert.Equal(t, s.TotalCourses, s.CompletedCourses+s.InProgressCourses+s.NotStartedCourses)

	assert.Equal(t, 17.5, s.TotalPlannedHours)
	assert.Equal(t, 4.0, s.TotalCompletedHours) // 240 минут
}

func TestBuildSummaryStreakFromLogs(t *testing.T) {
	logs := []models.DailyLog{
		{Date: day(0)},
		{Date: day(-1)},
		{Date: day(-3)},
	}

	s := BuildSummary(nil, logs, streakToday)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestBuildSummaryRecentCourses(t *testing.T) {
	var courses []models.Course
	for i := 0; i < 7; i++ {
		courses = append(courses, models.Course{
			ID:        fmt.Sprintf("course-%d", i),
			Status:    models.StatusNotStarted,
			UpdatedAt: time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}

	s := BuildSummary(courses, nil, streakToday)

	assert.Len(t, s.RecentCourses, 5)
	// свежайший по updated_at первым
	assert.Equal(t, "course-6", s.RecentCourses[0].ID)
	assert.Equal(t, "course-2", s.RecentCourses[4].ID)
}

func TestDailyProgressAndHeatmap(t *testing.T) {
	logs := []models.DailyLog{
		{Date: "2026-08-29", TotalTimeSpent: 90, Courses: []models.CourseActivity{{CourseID: "a", TimeSpent: 60}, {CourseID: "b", TimeSpent: 30}}},
		{Date: "2026-08-30", TotalTimeSpent: 45, Courses: []models.CourseActivity{{CourseID: "a", TimeSpent: 45}}},
	}

	points := DailyProgress(logs)
	assert.Len(t, points, 2)
	assert.Equal(t, "2026-08-29", points[0].Date)
	assert.Equal(t, 1.5, points[0].Hours)
	assert.Equal(t, 2, points[0].CoursesCount)
	assert.Equal(t, 0.75, points[1].Hours)

	cells := Heatmap(logs)
	assert.Len(t, cells, 2)
	assert.Equal(t, 1.5, cells["2026-08-29"].Hours)
	assert.Equal(t, 1, cells["2026-08-30"].Courses)
}
