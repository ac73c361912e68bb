package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petemporio/internal/middleware"
	"petemporio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/dashboard")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/summary", h.Summary)
		admin.GET("/activity", h.RecentActivity)
	}
}

func (h *Handler) Summary(c *gin.Context) {
	out, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) RecentActivity(c *gin.Context) {
	out, err := h.service.RecentActivity(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, out)
}
