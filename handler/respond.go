package handler

import (
	"errors"
	"net/http"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto HTTP statuses: validation failures
// are the client's fault, everything else is a server fault.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
