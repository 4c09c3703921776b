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

type LogsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLogsController(db *gorm.DB, cfg *config.Config) *LogsController {
	return &LogsController{DB: db, Cfg: cfg}
}

func (lc *LogsController) GetLogs(c *fiber.Ctx) error {
	query := lc.DB.Model(&models.DailyLog{})

	if start := c.Query("start_date"); start != "" {
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("date <= ?", end)
	}

	logs := []models.DailyLog{}
	if err := query.Order("date desc").Limit(listLimit).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query logs")
	}

	return c.JSON(logs)
}

// GetLogByDate возвращает дневник за дату; за дату без дневника отдаёт null,
// а не 404 — фронту так проще различать "пусто" и "ошибка"
func (lc *LogsController) GetLogByDate(c *fiber.Ctx) error {
	var log models.DailyLog
	err := lc.DB.Where("date = ?", c.Params("date")).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(log)
}

// CreateLog создает дневник за дату либо замещает существующий.
// Всё выполняется в одной транзакции: сначала откатываются вклады замещаемого
// дневника, затем через машину состояний применяются новые — повторная
// отправка за день корректирует накопленное время курсов, а не раздувает его.
// Ссылка на удалённый курс внутри активности не валит запрос целиком.
func (lc *LogsController) CreateLog(c *fiber.Ctx) error {
	var input models.DailyLogCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}
	// omitempty пропускает явный ноль в указателе, ловим руками
	if input.Mood != nil && (*input.Mood < 1 || *input.Mood > 5) {
		return utils.BadRequest(c, "mood must be between 1 and 5")
	}

	now := utils.NowISO()

	total := 0
	activities := make([]models.CourseActivity, len(input.Courses))
	copy(activities, input.Courses)
	for _, a := range activities {
		total += a.TimeSpent
	}

	log := models.DailyLog{
		ID:             uuid.NewString(),
		Date:           input.Date,
		TotalTimeSpent: total,
		Notes:          input.Notes,
		Mood:           input.Mood,
		CreatedAt:      now,
	}

	err := lc.DB.Transaction(func(tx *gorm.DB) error {
		var old models.DailyLog
		findErr := tx.Where("date = ?", input.Date).First(&old).Error
		switch {
		case findErr == nil:
			for _, a := range old.Courses {
				if err := lc.reverseActivity(tx, a, now); err != nil {
					return err
				}
			}
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// первая запись за эту дату
		default:
			return findErr
		}

		for i := range activities {
			if err := lc.applyActivity(tx, &activities[i], input.Date, now); err != nil {
				return err
			}
		}

		log.Courses = activities
		return tx.Create(&log).Error
	})
	if err != nil {
		if errors.Is(err, progress.ErrZeroDuration) {
			return utils.BadRequest(c, "course has non-positive duration")
		}
		return utils.InternalServerError(c, "Could not save log")
	}

	return c.Status(fiber.StatusCreated).JSON(log)
}

// applyActivity учитывает вклад времени активности в курс и снимает актуальное
// название курса в запись активности
func (lc *LogsController) applyActivity(tx *gorm.DB, a *models.CourseActivity, date, now string) error {
	var course models.Course
	if err := tx.Where("id = ?", a.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	a.CourseTitle = course.Title

	if err := progress.ApplyTime(&course, a.TimeSpent, date, now); err != nil {
		return err
	}

	return tx.Model(&course).Updates(map[string]interface{}{
		"total_time_spent": course.TotalTimeSpent,
		"progress":         course.Progress,
		"status":           course.Status,
		"start_date":       course.StartDate,
		"completion_date":  course.CompletionDate,
		"updated_at":       course.UpdatedAt,
	}).Error
}

// reverseActivity откатывает вклад активности замещаемого дневника
func (lc *LogsController) reverseActivity(tx *gorm.DB, a models.CourseActivity, now string) error {
	var course models.Course
	if err := tx.Where("id = ?", a.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := progress.ReverseTime(&course, a.TimeSpent, now); err != nil {
		return err
	}

	return tx.Model(&course).Updates(map[string]interface{}{
		"total_time_spent": course.TotalTimeSpent,
		"progress":         course.Progress,
		"updated_at":       course.UpdatedAt,
	}).Error
}

func (lc *LogsController) DeleteLog(c *fiber.Ctx) error {
	result := lc.DB.Where("id = ?", c.Params("id")).Delete(&models.DailyLog{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete log")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Log not found")
	}

	return c.JSON(fiber.Map{"message": "Log deleted successfully"})
}
