package api

import (
	"hosteldesk/internal/config"
	"hosteldesk/internal/middleware"
	"hosteldesk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, accountService service.AccountService, recordService service.RecordService, adminService service.AdminService, activityService service.ActivityService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", cfg.TokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	accountHandler := NewAccountHandler(accountService, activityService)
	recordHandler := NewRecordHandler(recordService, activityService)
	adminHandler := NewAdminHandler(adminService, activityService)

	r.GET("/", Home)
	r.POST("/register", accountHandler.Register)
	r.POST("/login", accountHandler.Login)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := r.Group("/").Use(middleware.TokenAuthMiddleware(cfg))
	{
		protected.GET("/myprofile", accountHandler.MyProfile)
		protected.POST("/dashboard/complaints", recordHandler.SubmitComplaint)
		protected.GET("/dashboard/complaints/recent", recordHandler.RecentComplaints)
		protected.POST("/dashboard/suggestions", recordHandler.SubmitSuggestion)
		protected.GET("/dashboard/suggestions/recent", recordHandler.RecentSuggestions)

		protected.GET("/allprofiles", adminHandler.ListAllProfiles)
		protected.GET("/admindashboard/complaints", adminHandler.ListAllComplaints)
		protected.GET("/admindashboard/suggestions", adminHandler.ListAllSuggestions)
		protected.GET("/admindashboard/logs", adminHandler.ListActivity)
		protected.DELETE("/removeprofile/:id", adminHandler.RemoveProfile)
		protected.PUT("/editprofile/:id", adminHandler.EditProfile)
	}
}
