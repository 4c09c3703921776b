package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/progress"
	"tracker/backend/utils"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Returns status counts, hour totals, current streak and recent courses
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Summary
// @Router /analytics/summary [get]
func (ac *AnalyticsController) GetSummary(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ac.DB.Limit(listLimit).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}

	var logs []models.DailyLog
	if err := ac.DB.Limit(listLimit).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query logs")
	}

	return c.JSON(progress.BuildSummary(courses, logs, time.Now().UTC()))
}

// GetProgressAnalytics возвращает временной ряд: часы и число курсов по дням
func (ac *AnalyticsController) GetProgressAnalytics(c *fiber.Ctx) error {
	var logs []models.DailyLog
	if err := ac.DB.Order("date asc").Limit(listLimit).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query logs")
	}

	return c.JSON(fiber.Map{"daily_progress": progress.DailyProgress(logs)})
}

// GetHeatmap возвращает данные календарной тепловой карты
func (ac *AnalyticsController) GetHeatmap(c *fiber.Ctx) error {
	var logs []models.DailyLog
	if err := ac.DB.Limit(listLimit).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query logs")
	}

	return c.JSON(fiber.Map{"heatmap": progress.Heatmap(logs)})
}
