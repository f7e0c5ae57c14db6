package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fixmyrp-backend/controllers"
	db "fixmyrp-backend/database"
	"fixmyrp-backend/repository"
	"fixmyrp-backend/routes"
	"fixmyrp-backend/services"
	"fixmyrp-backend/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Warn("Error loading .env file: ", err)
	}

	utils.InitJWT()
	db.InitDB()
	defer db.DisconnectDB()

	users := repository.NewMongoUserRepository(db.UserCollection)
	admins := repository.NewMongoAdminRepository(db.AdminCollection)
	reports := repository.NewMongoReportRepository(db.ReportCollection)
	notifications := repository.NewMongoNotificationRepository(db.NotificationCollection)
	feedback := repository.NewMongoFeedbackRepository(db.FeedbackCollection)

	notifier := services.NewNotifier(notifications)

	r := gin.Default()
	routes.SetupRoutes(r, &routes.Controllers{
		Auth:          controllers.NewAuthController(users, admins),
		Reports:       controllers.NewReportController(reports, notifications, notifier),
		Notifications: controllers.NewNotificationController(notifications),
		Accounts:      controllers.NewAccountController(users, admins, reports),
		Feedback:      controllers.NewFeedbackController(feedback),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	utils.InfoLogger.Info("Starting server on :", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal("Failed to start server: ", err)
	}
}
