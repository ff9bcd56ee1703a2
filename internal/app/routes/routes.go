package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/controllers"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/middleware"
)

// SetupRouter configures all application routes. Paths mirror the surface
// the deployed frontends call, including the /frontend-* aliases; everything
// except /me is public.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	mentorController *controllers.MentorController,
	jobController *controllers.JobController,
	codingQuestionController *controllers.CodingQuestionController,
	announcementController *controllers.AnnouncementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Mentors
	router.GET("/mentors-details", mentorController.GetAllMentors)
	router.POST("/add-mentor", mentorController.CreateMentor)
	router.DELETE("/delete-mentor/:id", mentorController.DeleteMentor)

	// Jobs
	router.GET("/jobs", jobController.GetAllJobs)
	router.GET("/frontend-jobs", jobController.GetAllJobs)
	router.POST("/add-jobs", jobController.CreateJob)
	router.DELETE("/delete-jobs/:id", jobController.DeleteJob)

	// Coding questions
	router.GET("/coding-questions", codingQuestionController.GetAllCodingQuestions)
	router.GET("/frontend-coding-questions", codingQuestionController.GetAllCodingQuestions)
	router.POST("/add-coding-question", codingQuestionController.CreateCodingQuestion)

	// Announcements
	router.GET("/announcements", announcementController.GetAllAnnouncements)
	router.GET("/frontend-announcements", announcementController.GetAllAnnouncements)
	router.POST("/add-announcements", announcementController.CreateAnnouncement)
	router.DELETE("/delete-announcements/:id", announcementController.DeleteAnnouncement)

	// Accounts
	router.GET("/users", authController.GetAllUsers)
	router.POST("/add-users", authController.Register)
	router.POST("/login", authController.Login)

	// Profiles and mentor resolution
	router.GET("/user-details", profileController.GetAllUserDetails)
	router.POST("/frontend-user-details", profileController.GetUserDetails)
	router.POST("/frontend-mentor-details", profileController.GetMentorForUser)
	router.POST("/update-user-details", profileController.UpdateUserDetails)
	router.POST("/frontend-update-user-details", profileController.UpdateUserDetails)

	// Token-protected routes
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", profileController.Me)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "ok"})
	})
}
