package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"verifyme.backend/internal/interfaces/http/handlers"
)

const version = "1.0.0"

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	channelHandler *handlers.ChannelHandler
	verifyHandler  *handlers.VerifyHandler
	csvHandler     *handlers.CSVHandler
	reportHandler  *handlers.ReportHandler
	authMiddleware gin.HandlerFunc
	verifyLimiter  gin.HandlerFunc
	botDetection   gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Public verification endpoint, behind bot detection and its
		// own stricter rate bucket
		api.POST("/verify", d.botDetection, d.verifyLimiter, d.verifyHandler.Verify)
		api.GET("/analytics", d.verifyHandler.Analytics)
		api.POST("/reports", d.reportHandler.Create)

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Channel registry (protected)
		channels := api.Group("/channels")
		channels.Use(d.authMiddleware)
		{
			channels.POST("", d.channelHandler.Create)
			channels.GET("", d.channelHandler.List)
			channels.DELETE("/:id", d.channelHandler.Delete)
		}

		// Bulk pipeline (protected)
		csv := api.Group("/csv")
		csv.Use(d.authMiddleware)
		{
			csv.POST("/upload", d.csvHandler.Upload)
			csv.POST("/verify", d.csvHandler.Verify)
		}
	}
}
