package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fixmyrp-backend/controllers"
	middlewares "fixmyrp-backend/middleware"
)

// maxBodyBytes mirrors the source system's 10mb JSON body limit.
const maxBodyBytes = 10 << 20

type Controllers struct {
	Auth          *controllers.AuthController
	Reports       *controllers.ReportController
	Notifications *controllers.NotificationController
	Accounts      *controllers.AccountController
	Feedback      *controllers.FeedbackController
}

func SetupRoutes(r *gin.Engine, ctrl *Controllers) {
	r.Use(cors.Default())
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	// health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is working")
	})

	SetupAuthRoutes(r, ctrl)
	SetupReportRoutes(r, ctrl)
	SetupNotificationRoutes(r, ctrl)
	SetupAccountRoutes(r, ctrl)
	SetupFeedbackRoutes(r, ctrl)
}

func SetupAuthRoutes(r *gin.Engine, ctrl *Controllers) {
	limited := middlewares.AuthRateLimit(10)
	r.POST("/api/auth/register", limited, ctrl.Auth.Register)
	r.POST("/api/auth/login", limited, ctrl.Auth.Login)
	r.POST("/api/admin/login", limited, ctrl.Auth.AdminLogin)
}

func SetupReportRoutes(r *gin.Engine, ctrl *Controllers) {
	admin := middlewares.AdminRequired()

	r.POST("/api/report", ctrl.Reports.Submit)
	r.PUT("/api/report/:id/edit", ctrl.Reports.Edit)
	r.DELETE("/api/report/:id", admin, ctrl.Reports.Delete)

	r.GET("/api/reports", ctrl.Reports.List)
	r.GET("/api/reports/all", ctrl.Reports.List)
	r.GET("/api/reports/:id", ctrl.Reports.Get)
	r.PUT("/api/reports/:id", admin, ctrl.Reports.UpdateStatus)
	r.PATCH("/api/reports/:id/message", admin, ctrl.Reports.Message)
}

func SetupNotificationRoutes(r *gin.Engine, ctrl *Controllers) {
	r.GET("/api/notifications", ctrl.Notifications.List)
	r.POST("/api/notifications", ctrl.Notifications.Create)
	r.DELETE("/api/notifications", middlewares.AdminRequired(), ctrl.Notifications.Clear)
}

func SetupAccountRoutes(r *gin.Engine, ctrl *Controllers) {
	r.PUT("/api/user/:email/name", ctrl.Accounts.UpdateUserName)
	r.PUT("/api/user/:email/contact", ctrl.Accounts.UpdateUserContact)
	r.PUT("/api/user/:email/email", ctrl.Accounts.UpdateUserEmail)
	r.PUT("/api/user/:email/password", ctrl.Accounts.UpdateUserPassword)

	admin := middlewares.AdminRequired()
	r.PUT("/api/admin/:email/name", admin, ctrl.Accounts.UpdateAdminName)
	r.PUT("/api/admin/:email/contact", admin, ctrl.Accounts.UpdateAdminContact)
	r.PUT("/api/admin/:email/email", admin, ctrl.Accounts.UpdateAdminEmail)
	r.PUT("/api/admin/:email/password", admin, ctrl.Accounts.UpdateAdminPassword)
}

func SetupFeedbackRoutes(r *gin.Engine, ctrl *Controllers) {
	r.POST("/api/feedback/submit", ctrl.Feedback.Submit)
	r.GET("/api/feedback", ctrl.Feedback.List)
}
