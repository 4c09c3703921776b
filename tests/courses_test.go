package tests

import (
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"tracker/backend/models"
)

func createCourse(t *testing.T, overrides map[string]interface{}) models.Course {
	t.Helper()

	payload := map[string]interface{}{
		"title":          "Test Course",
		"phase":          1,
		"phase_title":    "Frontend Foundations",
		"duration_hours": 1.0,
		"priority":       "MUST",
		"youtube_url":    "https://youtu.be/dQw4w9WgXcQ",
		"description":    "A course",
	}
	for k, v := range overrides {
		payload[k] = v
	}

	resp := doRequest(t, "POST", "/api/courses", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var course models.Course
	decodeBody(t, resp, &course)
	return course
}

func TestCreateCourse(t *testing.T) {
	resetTables(t)

	course := createCourse(t, nil)

	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "Test Course", course.Title)
	assert.Equal(t, models.StatusNotStarted, course.Status)
	assert.Equal(t, 0, course.Progress)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", course.Thumbnail)
	assert.Nil(t, course.StartDate)
	assert.NotEmpty(t, course.CreatedAt)
}

func TestCreateCourseUnknownURL(t *testing.T) {
	resetTables(t)

	course := createCourse(t, map[string]interface{}{"youtube_url": "https://example.com/video"})
	assert.Equal(t, "", course.Thumbnail)
}

func TestCreateCourseValidation(t *testing.T) {
	resetTables(t)

	// нулевая длительность — запись отклоняется
	resp := doRequest(t, "POST", "/api/courses", map[string]interface{}{
		"title":          "Broken",
		"phase":          1,
		"phase_title":    "x",
		"duration_hours": 0,
		"priority":       "MUST",
		"youtube_url":    "https://youtu.be/abc",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/courses", map[string]interface{}{
		"title":          "Broken",
		"phase":          1,
		"phase_title":    "x",
		"duration_hours": 1.0,
		"priority":       "Sometimes",
		"youtube_url":    "https://youtu.be/abc",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetCourse(t *testing.T) {
	resetTables(t)

	created := createCourse(t, nil)

	resp := doRequest(t, "GET", "/api/courses/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var course models.Course
	decodeBody(t, resp, &course)
	assert.Equal(t, created.ID, course.ID)

	resp = doRequest(t, "GET", "/api/courses/missing-id", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCoursesFilters(t *testing.T) {
	resetTables(t)

	createCourse(t, map[string]interface{}{"title": "A", "phase": 1, "priority": "MUST"})
	createCourse(t, map[string]interface{}{"title": "B", "phase": 2, "priority": "Optional"})

	resp := doRequest(t, "GET", "/api/courses/?phase=2", nil)
	var courses []models.Course
	decodeBody(t, resp, &courses)
	assert.Len(t, courses, 1)
	assert.Equal(t, "B", courses[0].Title)

	resp = doRequest(t, "GET", "/api/courses/?priority=MUST", nil)
	decodeBody(t, resp, &courses)
	assert.Len(t, courses, 1)
	assert.Equal(t, "A", courses[0].Title)

	resp = doRequest(t, "GET", "/api/courses/?status="+url.QueryEscape(models.StatusNotStarted), nil)
	decodeBody(t, resp, &courses)
	assert.Len(t, courses, 2)
}

func TestUpdateCoursePartial(t *testing.T) {
	resetTables(t)

	created := createCourse(t, nil)

	// патч только названия: остальные поля не трогаются
	resp := doRequest(t, "PUT", "/api/courses/"+created.ID, map[string]interface{}{
		"title": "Renamed",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var course models.Course
	decodeBody(t, resp, &course)
	assert.Equal(t, "Renamed", course.Title)
	assert.Equal(t, created.DurationHours, course.DurationHours)
	assert.Equal(t, created.Thumbnail, course.Thumbnail)

	// смена youtube_url пересчитывает превью
	resp = doRequest(t, "PUT", "/api/courses/"+created.ID, map[string]interface{}{
		"youtube_url": "https://youtube.com/watch?v=ABC123&t=5",
	})
	decodeBody(t, resp, &course)
	assert.Equal(t, "https://img.youtube.com/vi/ABC123/maxresdefault.jpg", course.Thumbnail)

	// нулевую длительность патчем протащить нельзя
	resp = doRequest(t, "PUT", "/api/courses/"+created.ID, map[string]interface{}{
		"duration_hours": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCourseProgressPatch(t *testing.T) {
	resetTables(t)

	created := createCourse(t, map[string]interface{}{"duration_hours": 2.0})
	today := time.Now().UTC().Format("2006-01-02")

	resp := doRequest(t, "PATCH", "/api/courses/"+created.ID+"/progress?progress=40&status="+url.QueryEscape(models.StatusInProgress), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var course models.Course
	decodeBody(t, doRequest(t, "GET", "/api/courses/"+created.ID, nil), &course)
	assert.Equal(t, 40, course.Progress)
	assert.Equal(t, models.StatusInProgress, course.Status)
	if assert.NotNil(t, course.StartDate) {
		assert.Equal(t, today, *course.StartDate)
	}

	// прогресс 100 форсирует завершение
	resp = doRequest(t, "PATCH", "/api/courses/"+created.ID+"/progress?progress=100&status="+url.QueryEscape(models.StatusInProgress), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, doRequest(t, "GET", "/api/courses/"+created.ID, nil), &course)
	assert.Equal(t, models.StatusCompleted, course.Status)
	assert.Equal(t, 100, course.Progress)
	if assert.NotNil(t, course.CompletionDate) {
		assert.Equal(t, today, *course.CompletionDate)
	}

	// повторное завершение — дата переставляется заново и остаётся непустой
	resp = doRequest(t, "PATCH", "/api/courses/"+created.ID+"/progress?progress=100&status=Completed", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, doRequest(t, "GET", "/api/courses/"+created.ID, nil), &course)
	assert.NotNil(t, course.CompletionDate)
	assert.Equal(t, models.StatusCompleted, course.Status)
}

func TestUpdateCourseProgressValidation(t *testing.T) {
	resetTables(t)

	created := createCourse(t, nil)

	resp := doRequest(t, "PATCH", "/api/courses/"+created.ID+"/progress?progress=150&status=Completed", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "PATCH", "/api/courses/"+created.ID+"/progress?progress=50&status=Paused", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "PATCH", "/api/courses/missing-id/progress?progress=50&status=Completed", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteCourse(t *testing.T) {
	resetTables(t)

	created := createCourse(t, nil)

	resp := doRequest(t, "DELETE", "/api/courses/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// повторное удаление отличимо от no-op
	resp = doRequest(t, "DELETE", "/api/courses/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
