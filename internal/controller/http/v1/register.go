package httpv1

import (
	"github.com/altiguard/altiguard/internal/service"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(handler *echo.Echo, services *service.Services) {
	v1 := handler.Group("/api/v1")
	v1.POST("/log", NewLogController(services.Log).Ingest)
}
