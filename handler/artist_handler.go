package handler

import (
	"net/http"

	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/logger"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	svc       service.ArtistService
	songSvc   service.SongService
	jwtSecret string
}

func NewArtistHandler(svc service.ArtistService, songSvc service.SongService, jwtSecret string) *ArtistHandler {
	return &ArtistHandler{svc: svc, songSvc: songSvc, jwtSecret: jwtSecret}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/artists", h.ListArtists)
	api.GET("/artists/:id", h.GetArtist)
	api.GET("/artists/:id/songs", h.GetArtistSongs)

	admin := api.Group("/admin/artists", middleware.AuthMiddleware(h.jwtSecret), middleware.AdminOnly())
	admin.POST("", h.CreateArtist)
	admin.PUT("/:id", h.UpdateArtist)
	admin.DELETE("/:id", h.DeleteArtist)
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.svc.ListArtists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	artist, err := h.svc.GetArtistByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) GetArtistSongs(c *gin.Context) {
	songs, err := h.songSvc.GetSongsByArtistID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.CreateArtist(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(logger.EventAdminActivity, "Artist created", logger.Fields(
		"artist_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.UpdateArtist(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.svc.DeleteArtist(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	logger.Info(logger.EventAdminActivity, "Artist deleted", logger.Fields(
		"artist_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
