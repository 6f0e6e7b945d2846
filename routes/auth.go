package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	a := r.Group("/auth")
	{
		a.POST("/register", auth.Register(db))
		a.POST("/login", auth.Login(db))
	}
}
