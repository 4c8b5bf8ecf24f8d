package handler

import (
	"net/http"
	"strconv"

	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/logger"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	svc       service.SongService
	jwtSecret string
}

func NewSongHandler(svc service.SongService, jwtSecret string) *SongHandler {
	return &SongHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *SongHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/songs", h.ListSongs)
	api.GET("/songs/:id", h.GetSong)
	api.GET("/random", h.GetRandomSongs)
	api.GET("/region", h.GetSongsByRegion)
	api.GET("/genres/:genre/songs", h.GetSongsByGenre)

	admin := api.Group("/admin/songs", middleware.AuthMiddleware(h.jwtSecret), middleware.AdminOnly())
	admin.POST("", h.CreateSong)
	admin.PUT("/:id", h.UpdateSong)
	admin.DELETE("/:id", h.DeleteSong)
}

func (h *SongHandler) ListSongs(c *gin.Context) {
	var q dto.ListSongsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	songs, err := h.svc.GetAllSongs(c.Request.Context(), repository.ListOptions{
		Sort:  q.Sort,
		Limit: q.Limit,
		Skip:  q.Skip,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *SongHandler) GetSong(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "song id is required"})
		return
	}

	song, err := h.svc.GetSongByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if song == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}
	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) GetRandomSongs(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	region := c.Query("region")

	songs, err := h.svc.GetRandomSongs(c.Request.Context(), limit, region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *SongHandler) GetSongsByRegion(c *gin.Context) {
	limit := intQuery(c, "limit", 12)
	region := c.Query("region")

	songs, err := h.svc.GetSongsByRegion(c.Request.Context(), region, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *SongHandler) GetSongsByGenre(c *gin.Context) {
	genre := c.Param("genre")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 50)

	songs, err := h.svc.GetSongsByGenre(c.Request.Context(), genre, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *SongHandler) CreateSong(c *gin.Context) {
	var req dto.CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.CreateSong(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(logger.EventAdminActivity, "Song created", logger.Fields(
		"song_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SongHandler) UpdateSong(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.UpdateSong(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}

	logger.Info(logger.EventAdminActivity, "Song updated", logger.Fields(
		"song_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *SongHandler) DeleteSong(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.svc.DeleteSong(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}

	logger.Info(logger.EventAdminActivity, "Song deleted", logger.Fields(
		"song_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
