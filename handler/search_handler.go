package handler

import (
	"net/http"

	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/search", h.Search)
}

func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), c.Query("q"), intQuery(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
