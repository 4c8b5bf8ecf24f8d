package handler

import (
	"net/http"

	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	svc       service.HistoryService
	recSvc    service.RecommendService
	jwtSecret string
}

func NewHistoryHandler(svc service.HistoryService, recSvc service.RecommendService, jwtSecret string) *HistoryHandler {
	return &HistoryHandler{svc: svc, recSvc: recSvc, jwtSecret: jwtSecret}
}

func (h *HistoryHandler) RegisterRoutes(r *gin.Engine) {
	auth := middleware.AuthMiddleware(h.jwtSecret)
	api := r.Group("/api", auth)

	api.POST("/history/:songId", h.RecordPlay)
	api.GET("/history", h.GetRecentPlays)
	api.GET("/recommendations", h.GetRecommendations)
}

func (h *HistoryHandler) RecordPlay(c *gin.Context) {
	entry, err := h.svc.RecordPlay(c.Request.Context(), c.GetString("user_id"), c.Param("songId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *HistoryHandler) GetRecentPlays(c *gin.Context) {
	songs, err := h.svc.GetRecentPlays(c.Request.Context(), c.GetString("user_id"), intQuery(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *HistoryHandler) GetRecommendations(c *gin.Context) {
	songs, err := h.recSvc.GetRecommendations(c.Request.Context(), c.GetString("user_id"), intQuery(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}
