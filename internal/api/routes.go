package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, h *Handler) {
	users := router.Group("/users")
	{
		users.POST("", h.Register)
		users.POST("/login", h.Login)
		users.POST("/logout", h.Logout)
		users.GET("/me", h.RequireSession(), h.Me)
	}

	api := router.Group("/api")
	{
		api.GET("/properties", h.SearchProperties)
		api.POST("/properties", h.RequireSession(), h.AddProperty)
		api.GET("/reservations", h.RequireSession(), h.GetReservations)
	}
}
