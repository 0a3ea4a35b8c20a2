package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appconfig "skilllink/config"
)

func About(app appconfig.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       app.Title,
			"version":     app.Version,
			"description": "Manage freelancer projects, proposals, contracts and payments.",
		})
	}
}
