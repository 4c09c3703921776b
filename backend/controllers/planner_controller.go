package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/utils"
)

const defaultEstimatedTime = 60 // минуты

type PlannerController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPlannerController(db *gorm.DB, cfg *config.Config) *PlannerController {
	return &PlannerController{DB: db, Cfg: cfg}
}

func (pc *PlannerController) GetPlannedSessions(c *fiber.Ctx) error {
	query := pc.DB.Model(&models.PlannedSession{})

	if start := c.Query("start_date"); start != "" {
		query = query.Where("planned_date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("planned_date <= ?", end)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	sessions := []models.PlannedSession{}
	if err := query.Order("planned_date asc").Limit(listLimit).Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query planned sessions")
	}

	return c.JSON(sessions)
}

// CreatePlannedSession требует существующий курс: без курса записи не будет.
// Название курса снимается один раз и при переименовании не обновляется.
func (pc *PlannerController) CreatePlannedSession(c *fiber.Ctx) error {
	var input models.PlannedSessionCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	var course models.Course
	if err := pc.DB.Where("id = ?", input.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	estimated := input.EstimatedTime
	if estimated == 0 {
		estimated = defaultEstimatedTime
	}

	session := models.PlannedSession{
		ID:            uuid.NewString(),
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		PlannedDate:   input.PlannedDate,
		EstimatedTime: estimated,
		Notes:         input.Notes,
		CreatedAt:     utils.NowISO(),
	}

	if err := pc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not create planned session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (pc *PlannerController) UpdatePlannedSession(c *fiber.Ctx) error {
	var session models.PlannedSession
	if err := pc.DB.Where("id = ?", c.Params("id")).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Planned session not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.PlannedSessionUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	updates := map[string]interface{}{}
	if input.EstimatedTime != nil {
		updates["estimated_time"] = *input.EstimatedTime
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.IsCompleted != nil {
		updates["is_completed"] = *input.IsCompleted
	}

	if len(updates) > 0 {
		if err := pc.DB.Model(&session).Updates(updates).Error; err != nil {
			return utils.InternalServerError(c, "Could not update planned session")
		}
	}

	var updated models.PlannedSession
	if err := pc.DB.Where("id = ?", session.ID).First(&updated).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(updated)
}

func (pc *PlannerController) DeletePlannedSession(c *fiber.Ctx) error {
	result := pc.DB.Where("id = ?", c.Params("id")).Delete(&models.PlannedSession{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete planned session")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Planned session not found")
	}

	return c.JSON(fiber.Map{"message": "Planned session deleted successfully"})
}
