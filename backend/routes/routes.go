package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tracker/backend/config"
	"tracker/backend/controllers"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Full-Stack Development Tracker API"})
	})

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := api.Group("/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/", coursesController.CreateCourse)
	courses.Put("/:id", coursesController.UpdateCourse)
	courses.Patch("/:id/progress", coursesController.UpdateCourseProgress)
	courses.Delete("/:id", coursesController.DeleteCourse)

	// Daily log routes
	logsController := controllers.NewLogsController(db, cfg)
	logs := api.Group("/logs")
	logs.Get("/", logsController.GetLogs)
	logs.Get("/:date", logsController.GetLogByDate)
	logs.Post("/", logsController.CreateLog)
	logs.Delete("/:id", logsController.DeleteLog)

	// Planner routes
	plannerController := controllers.NewPlannerController(db, cfg)
	planned := api.Group("/planned")
	planned.Get("/", plannerController.GetPlannedSessions)
	planned.Post("/", plannerController.CreatePlannedSession)
	planned.Put("/:id", plannerController.UpdatePlannedSession)
	planned.Delete("/:id", plannerController.DeletePlannedSession)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	analytics := api.Group("/analytics")
	analytics.Get("/summary", analyticsController.GetSummary)
	analytics.Get("/progress", analyticsController.GetProgressAnalytics)
	analytics.Get("/heatmap", analyticsController.GetHeatmap)

	// Seed route
	seedController := controllers.NewSeedController(db, cfg)
	api.Post("/init-database", seedController.InitDatabase)
}
