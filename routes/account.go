package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/account"
	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
)

// SetupAccountRoutes registers registration, login, confirmation and session
// teardown endpoints.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/login", accountControllers.ShowLogin())
	r.POST("/login", accountControllers.Login(db))
	r.GET("/register", accountControllers.ShowRegister())
	r.POST("/register", accountControllers.Register(db))
	r.GET("/confirm/:token", accountControllers.Confirm(db))

	authed := r.Group("/")
	authed.Use(middleware.RequireLogin)
	{
		authed.GET("/logout", accountControllers.Logout())
		authed.GET("/resend", accountControllers.ResendConfirmation(db))
	}
}
