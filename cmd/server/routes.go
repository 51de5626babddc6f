package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"synnovator.backend/internal/interfaces/http/handlers"
	"synnovator.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	hackathonHandler    *handlers.HackathonHandler
	teamHandler         *handlers.TeamHandler
	registrationHandler *handlers.RegistrationHandler
	submissionHandler   *handlers.SubmissionHandler
	scoringHandler      *handlers.ScoringHandler
	complianceHandler   *handlers.ComplianceHandler
	questHandler        *handlers.QuestHandler
	notificationHandler *handlers.NotificationHandler
	advancementHandler  *handlers.AdvancementHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.GET("/metrics", middleware.MetricsHandler())

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.PUT("/me/skills", d.authMiddleware, d.authHandler.UpdateSkills)
		}

		// Hackathon routes (public read, organizer write)
		hackathons := v1.Group("/hackathons")
		{
			hackathons.GET("", d.hackathonHandler.List)
			hackathons.GET("/:id", d.hackathonHandler.Get)
			hackathons.GET("/:id/phases", d.hackathonHandler.ListPhases)
			hackathons.GET("/:id/prizes", d.hackathonHandler.ListPrizes)
			hackathons.GET("/:id/rules", d.complianceHandler.ListRules)
			hackathons.GET("/:id/leaderboard", d.scoringHandler.Leaderboard)

			hackathons.POST("", d.authMiddleware, middleware.RequireOrganizer(), d.hackathonHandler.Create)
			hackathons.PUT("/:id", d.authMiddleware, middleware.RequireOrganizer(), d.hackathonHandler.Update)
			hackathons.DELETE("/:id", d.authMiddleware, middleware.RequireAdmin(), d.hackathonHandler.Delete)
			hackathons.POST("/:id/transition", d.authMiddleware, middleware.RequireOrganizer(), d.hackathonHandler.Transition)
			hackathons.POST("/:id/phases", d.authMiddleware, middleware.RequireOrganizer(), d.hackathonHandler.AddPhase)
			hackathons.POST("/:id/prizes", d.authMiddleware, middleware.RequireOrganizer(), d.hackathonHandler.AddPrize)

			hackathons.GET("/:id/eligibility", d.authMiddleware, d.submissionHandler.CheckEligibility)
			hackathons.POST("/:id/registrations", d.authMiddleware, d.registrationHandler.Register)
			hackathons.GET("/:id/registrations", d.authMiddleware, middleware.RequireOrganizer(), d.registrationHandler.List)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(d.authMiddleware)
		{
			teams.POST("", d.teamHandler.Create)
			teams.GET("", d.teamHandler.List)
			teams.GET("/:id", d.teamHandler.Get)
			teams.POST("/:id/join", d.teamHandler.Join)
			teams.DELETE("/:id/members/:memberId", d.teamHandler.RemoveMember)
			teams.POST("/:id/ready", d.teamHandler.MarkReady)
			teams.GET("/:id/advancements", d.advancementHandler.History)

			teams.POST("/:id/advance", middleware.RequireJudge(), d.advancementHandler.Advance)
			teams.POST("/:id/eliminate", middleware.RequireJudge(), d.advancementHandler.Eliminate)
			teams.POST("/:id/compliance-check", middleware.RequireOrganizer(), d.complianceHandler.CheckTeam)
		}

		// Registration review routes (organizer)
		registrations := v1.Group("/registrations")
		registrations.Use(d.authMiddleware)
		{
			registrations.POST("/:id/review", middleware.RequireOrganizer(), d.registrationHandler.Review)
			registrations.DELETE("/:id", d.registrationHandler.Withdraw)
		}

		// Submission routes (protected)
		submissions := v1.Group("/submissions")
		submissions.Use(d.authMiddleware)
		{
			submissions.POST("", d.submissionHandler.Create)
			submissions.GET("", d.submissionHandler.List)
			submissions.GET("/:id", d.submissionHandler.Get)
			submissions.POST("/:id/submit", d.submissionHandler.Submit)
			submissions.GET("/:id/scores", d.scoringHandler.ListScores)

			submissions.POST("/:id/review", middleware.RequireJudge(), d.submissionHandler.Review)
		}

		// Judge scoring (judge only)
		v1.PUT("/scores", d.authMiddleware, middleware.RequireJudge(), d.scoringHandler.UpsertScore)

		// Quest routes (public read, organizer write)
		quests := v1.Group("/quests")
		{
			quests.GET("", d.questHandler.List)
			quests.GET("/:id", d.questHandler.Get)
			quests.POST("", d.authMiddleware, middleware.RequireOrganizer(), d.questHandler.Create)
		}

		// Violation routes (organizer)
		violations := v1.Group("/violations")
		violations.Use(d.authMiddleware, middleware.RequireOrganizer())
		{
			violations.GET("", d.complianceHandler.ListViolations)
			violations.POST("/:id/review", d.complianceHandler.ReviewViolation)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.POST("/:id/read", d.notificationHandler.MarkRead)
		}
	}
}

// applyCORSMiddleware reflects the request origin; credentials flow across
// the frontend dev hosts.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "synnovator-backend",
			"version": "0.1.0",
		})
	})
}
