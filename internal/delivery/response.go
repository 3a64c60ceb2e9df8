package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

func mapErrorToStatus(err error) int {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "does not belong to") || strings.Contains(errMsg, "not linked to") {
		// Ownership/membership mismatches are client errors, not lookup misses.
		return http.StatusBadRequest
	}
	if strings.Contains(errMsg, "already exists") || strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
