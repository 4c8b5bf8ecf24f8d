package handler

import (
	"net/http"

	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	svc       service.PlaylistService
	jwtSecret string
}

func NewPlaylistHandler(svc service.PlaylistService, jwtSecret string) *PlaylistHandler {
	return &PlaylistHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *PlaylistHandler) RegisterRoutes(r *gin.Engine) {
	auth := middleware.AuthMiddleware(h.jwtSecret)
	api := r.Group("/api")

	api.POST("/playlists", auth, h.CreatePlaylist)
	api.GET("/playlists", auth, h.ListPlaylists)
	api.GET("/playlists/:id", h.GetPlaylist)
	api.GET("/playlists/:id/songs", h.GetPlaylistSongs)
	api.POST("/playlists/:id/songs", auth, h.AddSong)
	api.DELETE("/playlists/:id/songs/:songId", auth, h.RemoveSong)
	api.DELETE("/playlists/:id", auth, h.DeletePlaylist)
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Creator == "" {
		req.Creator = c.GetString("user_id")
	}

	playlist, err := h.svc.CreatePlaylist(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.svc.ListPlaylists(c.Request.Context(), c.Query("creator"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.svc.GetPlaylistByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if playlist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}
	c.JSON(http.StatusOK, playlist)
}

func (h *PlaylistHandler) GetPlaylistSongs(c *gin.Context) {
	songs, err := h.svc.GetPlaylistSongs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if songs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (h *PlaylistHandler) AddSong(c *gin.Context) {
	var req dto.PlaylistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.svc.AddSong(c.Request.Context(), c.Param("id"), req.SongID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": true})
}

func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	ok, err := h.svc.RemoveSong(c.Request.Context(), c.Param("id"), c.Param("songId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	ok, err := h.svc.DeletePlaylist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
