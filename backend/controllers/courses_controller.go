package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/progress"
	"tracker/backend/utils"
)

// Жесткий потолок выборки, пагинации нет
const listLimit = 1000

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// GetCourses godoc
// @Summary List courses
// @Description Returns all courses with optional status/phase/priority filters
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Course{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if phase := c.QueryInt("phase"); phase > 0 {
		query = query.Where("phase = ?", phase)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	courses := []models.Course{}
	if err := query.Limit(listLimit).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}

	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input models.CourseCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	now := utils.NowISO()
	course := models.Course{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Phase:         input.Phase,
		PhaseTitle:    input.PhaseTitle,
		DurationHours: input.DurationHours,
		Priority:      input.Priority,
		YoutubeURL:    input.YoutubeURL,
		Thumbnail:     progress.ThumbnailURL(input.YoutubeURL),
		Description:   input.Description,
		Status:        models.StatusNotStarted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse применяет частичный патч: затрагиваются только поля,
// присутствующие в запросе. Смена youtube_url пересчитывает превью.
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.CourseUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}
	// omitempty пропускает явный ноль в указателе, ловим руками
	if input.DurationHours != nil && *input.DurationHours <= 0 {
		return utils.BadRequest(c, "duration_hours must be positive")
	}

	updates := map[string]interface{}{
		"updated_at": utils.NowISO(),
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Phase != nil {
		updates["phase"] = *input.Phase
	}
	if input.PhaseTitle != nil {
		updates["phase_title"] = *input.PhaseTitle
	}
	if input.DurationHours != nil {
		updates["duration_hours"] = *input.DurationHours
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.YoutubeURL != nil {
		updates["youtube_url"] = *input.YoutubeURL
		updates["thumbnail"] = progress.ThumbnailURL(*input.YoutubeURL)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Progress != nil {
		updates["progress"] = *input.Progress
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.CompletionDate != nil {
		updates["completion_date"] = *input.CompletionDate
	}

	if err := cc.DB.Model(&course).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	var updated models.Course
	if err := cc.DB.Where("id = ?", course.ID).First(&updated).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(updated)
}

// UpdateCourseProgress godoc
// @Summary Patch course progress
// @Description Applies an explicit progress/status patch through the state machine
// @Tags courses
// @Produce json
// @Param progress query int true "Progress 0-100"
// @Param status query string true "Course status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/progress [patch]
func (cc *CoursesController) UpdateCourseProgress(c *fiber.Ctx) error {
	prog := c.QueryInt("progress", -1)
	status := c.Query("status")
	if prog < 0 || prog > 100 {
		return utils.BadRequest(c, "progress must be between 0 and 100")
	}
	if status != models.StatusNotStarted && status != models.StatusInProgress && status != models.StatusCompleted {
		return utils.BadRequest(c, "unknown status: "+status)
	}

	var course models.Course
	if err := cc.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	progress.ApplyPatch(&course, prog, status, utils.TodayISO(), utils.NowISO())

	updates := map[string]interface{}{
		"progress":        course.Progress,
		"status":          course.Status,
		"start_date":      course.StartDate,
		"completion_date": course.CompletionDate,
		"updated_at":      course.UpdatedAt,
	}
	if err := cc.DB.Model(&course).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(fiber.Map{"message": "Progress updated successfully"})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	result := cc.DB.Where("id = ?", c.Params("id")).Delete(&models.Course{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Course not found")
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
