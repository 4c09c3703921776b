package progress

import (
	"math"
	"sort"
	"time"

	"tracker/backend/models"
)

const recentCoursesLimit = 5

// BuildSummary собирает сводку дашборда по полному набору курсов и дневников.
// Всё пересчитывается с нуля при каждом вызове — инкрементальных агрегатов и
// кэшей нет, их устаревание было бы ошибкой корректности.
func BuildSummary(courses []models.Course, logs []models.DailyLog, today time.Time) models.Summary {
	s := models.Summary{
		TotalCourses:  len(courses),
		RecentCourses: []models.Course{},
	}

	totalMinutes := 0
	for _, c := range courses {
		switch c.Status {
		case models.StatusCompleted:
			s.CompletedCourses++
		case models.StatusInProgress:
			s.InProgressCourses++
		}
		s.TotalPlannedHours += c.DurationHours
		totalMinutes += c.TotalTimeSpent
	}
	s.NotStartedCourses = s.TotalCourses - s.CompletedCourses - s.InProgressCourses
	s.TotalPlannedHours = round2(s.TotalPlannedHours)
	s.TotalCompletedHours = round2(float64(totalMinutes) / 60)

	dates := make([]string, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, l.Date)
	}
	s.CurrentStreak = CurrentStreak(dates, today)

	recent := make([]models.Course, len(courses))
	copy(recent, courses)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].UpdatedAt > recent[j].UpdatedAt
	})
	if len(recent) > recentCoursesLimit {
		recent = recent[:recentCoursesLimit]
	}
	s.RecentCourses = recent

	return s
}

// DailyProgress строит временной ряд по дневникам; порядок входа сохраняется
func DailyProgress(logs []models.DailyLog) []models.DailyProgressPoint {
	points := make([]models.DailyProgressPoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, models.DailyProgressPoint{
			Date:         l.Date,
			Hours:        round2(float64(l.TotalTimeSpent) / 60),
			CoursesCount: len(l.Courses),
		})
	}
	return points
}

// Heatmap строит данные календарной тепловой карты: дата -> часы и число курсов
func Heatmap(logs []models.DailyLog) map[string]models.HeatmapCell {
	cells := make(map[string]models.HeatmapCell, len(logs))
	for _, l := range logs {
		cells[l.Date] = models.HeatmapCell{
			Hours:   round2(float64(l.TotalTimeSpent) / 60),
			Courses: len(l.Courses),
		}
	}
	return cells
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
