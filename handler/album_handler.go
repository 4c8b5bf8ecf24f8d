package handler

import (
	"net/http"

	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/logger"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type AlbumHandler struct {
	svc       service.AlbumService
	jwtSecret string
}

func NewAlbumHandler(svc service.AlbumService, jwtSecret string) *AlbumHandler {
	return &AlbumHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *AlbumHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/albums", h.ListAlbums)
	api.GET("/albums/:id", h.GetAlbum)
	api.GET("/albums/:id/songs", h.GetAlbumSongs)

	admin := api.Group("/admin/albums", middleware.AuthMiddleware(h.jwtSecret), middleware.AdminOnly())
	admin.POST("", h.CreateAlbum)
	admin.PUT("/:id", h.UpdateAlbum)
	admin.DELETE("/:id", h.DeleteAlbum)
}

func (h *AlbumHandler) ListAlbums(c *gin.Context) {
	albums, err := h.svc.ListAlbums(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	album, err := h.svc.GetAlbumByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if album == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, album)
}

func (h *AlbumHandler) GetAlbumSongs(c *gin.Context) {
	songs, err := h.svc.GetAlbumSongs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if songs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *AlbumHandler) CreateAlbum(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.CreateAlbum(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(logger.EventAdminActivity, "Album created", logger.Fields(
		"album_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *AlbumHandler) UpdateAlbum(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.UpdateAlbum(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.svc.DeleteAlbum(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	logger.Info(logger.EventAdminActivity, "Album deleted", logger.Fields(
		"album_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
