package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/progress"
	"tracker/backend/utils"
)

type SeedController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSeedController(db *gorm.DB, cfg *config.Config) *SeedController {
	return &SeedController{DB: db, Cfg: cfg}
}

// Учебный план full-stack трека, фазы 1-8
var curriculum = []models.CourseCreate{
	{Title: "Mastering HTML & CSS", Phase: 1, PhaseTitle: "Frontend Foundations", DurationHours: 15.0, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/bWACo_pvKxg?si=GnEbpuzMxXTPH04P", Description: "Build 15 Professional Projects in 15 Hours 2023. Welcome to the ultimate HTML and CSS course that empowers you to become a proficient web developer!"},
	{Title: "Tailwind CSS", Phase: 1, PhaseTitle: "Frontend Foundations", DurationHours: 3.78, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/WvBnTJK7Khk?si=Ihf_tQv3L-d-pv_7", Description: "Build 3 Projects. Welcome To The Tailwind CSS Masterclass."},
	{Title: "From Zero to Full Stack: JavaScript", Phase: 2, PhaseTitle: "Core JavaScript + TypeScript", DurationHours: 15.0, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/H3XIJYEPdus?si=dG_tPuxgnebtParH", Description: "Master JavaScript and Create Dynamic Web Apps."},
	{Title: "TypeScript Pro", Phase: 2, PhaseTitle: "Core JavaScript + TypeScript", DurationHours: 4.0, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/zeCDuo74uzA?si=EvXCH10PwWAGpSvH", Description: "A 4-Hour Deep Dive from Basics to Expert Level."},
	{Title: "50+ Hours React Monster", Phase: 3, PhaseTitle: "React (The Beast Stage)", DurationHours: 50.0, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/M9O5AjEFzKw?si=npWlr4Xjh3FP8S5u", Description: "This is your main frontend mastery. Includes projects, hooks, TS with React, UI libraries, state management, testing."},
	{Title: "Node.js Bootcamp", Phase: 4, PhaseTitle: "Backend Basics", DurationHours: 2.93, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/EsUL2bfKKLc?si=53OHd-ZdiqdCmiax", Description: "Intro to servers."},
	{Title: "Express.js", Phase: 4, PhaseTitle: "Backend Basics", DurationHours: 2.47, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/EsUL2bfKKLc?si=53OHd-ZdiqdCmiax", Description: "Framework for Node APIs."},
	{Title: "MongoDB & Mongoose", Phase: 4, PhaseTitle: "Backend Basics", DurationHours: 1.72, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/xdbm7n9dWHM?si=cgqSmyNa1NDIZX-c", Description: "NoSQL DB skills. Welcome to MongoDB and Mongoose Mastery!"},
	{Title: "MySQL", Phase: 4, PhaseTitle: "Backend Basics", DurationHours: 3.0, Priority: models.PriorityOptional, YoutubeURL: "https://youtu.be/h4R-nJbM_ac?si=ckOJTmEC822a6qff", Description: "Only if you want SQL exposure. Good for DevOps later, but not urgent."},
	{Title: "MERN Movies App", Phase: 5, PhaseTitle: "Connecting the Dots", DurationHours: 7.17, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/Bd1EBSCu2os?si=mKLHZs-nwQHxxcT9", Description: "This ties React + Node + Express + Mongo together. MERN Mastery: Building a Scalable Movies App."},
	{Title: "Socket.IO", Phase: 5, PhaseTitle: "Connecting the Dots", DurationHours: 1.0, Priority: models.PriorityOptional, YoutubeURL: "https://youtu.be/EtG0tv2a9Uw?si=Wpv4i-WWScRTyyWE", Description: "Real-time features like chat or live dashboards."},
	{Title: "Next.js Part 1", Phase: 6, PhaseTitle: "Next.js & Advanced Full-Stack", DurationHours: 5.43, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/QIDkK0FbXDc?si=Pm1QhuCBZHEQDIJq", Description: "Core Next.js."},
	{Title: "Next.js Part 2", Phase: 6, PhaseTitle: "Next.js & Advanced Full-Stack", DurationHours: 5.25, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/kiPrrtcIZOA?si=N_YLdNZhluvYc6TE", Description: "More advanced."},
	{Title: "Next.js Animations", Phase: 6, PhaseTitle: "Next.js & Advanced Full-Stack", DurationHours: 5.77, Priority: models.PriorityOptional, YoutubeURL: "https://youtu.be/OkWWAgLSGkc?si=nDnKl0qfSLeiZvLq", Description: "Good if you care about polished UI."},
	{Title: "GraphQL", Phase: 7, PhaseTitle: "Beyond REST", DurationHours: 0.5, Priority: models.PriorityMust, YoutubeURL: "https://youtu.be/6qL9KbTXtns?si=hQcZ0G1dk_sJk4GA", Description: "Short, but gives you exposure to GraphQL queries."},
	{Title: "React Native", Phase: 8, PhaseTitle: "Mobile + Tools", DurationHours: 5.12, Priority: models.PriorityOptional, YoutubeURL: "https://youtu.be/a_SthPXtV6c?si=iQYuFgd6Wz0aZ7aa", Description: "Nice-to-have, but focus on web first."},
	{Title: "VS Code Course", Phase: 8, PhaseTitle: "Mobile + Tools", DurationHours: 2.55, Priority: models.PriorityOptional, YoutubeURL: "https://youtu.be/Xwuhoh1UEuk?si=XPWXltuhNSOQ9nZE", Description: "Editor mastery speeds you up."},
}

// InitDatabase одноразово наполняет базу учебным планом.
// Если курсы уже есть — ничего не делает.
func (sc *SeedController) InitDatabase(c *fiber.Ctx) error {
	var count int64
	if err := sc.DB.Model(&models.Course{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	if count > 0 {
		return c.JSON(fiber.Map{"message": "Database already initialized"})
	}

	now := utils.NowISO()
	courses := make([]models.Course, 0, len(curriculum))
	for _, data := range curriculum {
		courses = append(courses, models.Course{
			ID:            uuid.NewString(),
			Title:         data.Title,
			Phase:         data.Phase,
			PhaseTitle:    data.PhaseTitle,
			DurationHours: data.DurationHours,
			Priority:      data.Priority,
			YoutubeURL:    data.YoutubeURL,
			Thumbnail:     progress.ThumbnailURL(data.YoutubeURL),
			Description:   data.Description,
			Status:        models.StatusNotStarted,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if err := sc.DB.Create(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not seed courses")
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Database initialized with %d courses", len(courses))})
}
