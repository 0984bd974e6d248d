package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName is reported by /api/info.
const ServiceName = "restaurant-backend"

// Info handles GET /api/info.
func Info(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    ServiceName,
			"version": version,
		})
	}
}

// Contact holds the restaurant's public contact details.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ContactInfo handles GET /api/contact.
func ContactInfo(contact Contact) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contact)
	}
}
