package handlers

import (
	"strconv"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type Problem = models.Problem
type Task = models.Task

func parseInt64Param(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
