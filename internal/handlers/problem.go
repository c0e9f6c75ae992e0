package handlers

import (
	"net/http"

	"github.com/ArtemTurin1/miniapp/internal/services"

	"github.com/gin-gonic/gin"
)

type ProblemHandler struct {
	problemService *services.ProblemService
}

func NewProblemHandler(problemService *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

// ListProblems godoc
// @Summary      List practice problems
// @Description  Unknown subject/difficulty values are ignored rather than rejected
// @Tags         problems
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        subject query string false "math or informatics"
// @Param        difficulty query string false "easy, medium or hard"
// @Success      200 {array} Problem
// @Router       /api/problems [get]
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	problems, err := h.problemService.List(c.Query("subject"), c.Query("difficulty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problems)
}
