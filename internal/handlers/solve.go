package handlers

import (
	"errors"
	"net/http"

	"github.com/ArtemTurin1/miniapp/internal/services"

	"github.com/gin-gonic/gin"
)

type SolveHandler struct {
	solutionService *services.SolutionService
	userService     *services.UserService
	statsService    *services.StatsService
}

func NewSolveHandler(solutionService *services.SolutionService, userService *services.UserService, statsService *services.StatsService) *SolveHandler {
	return &SolveHandler{solutionService: solutionService, userService: userService, statsService: statsService}
}

type SolveRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	ProblemID  uint   `json:"problem_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// Solve godoc
// @Summary      Submit an answer to a problem
// @Description  The user is created on first contact. The stored answer is returned only for wrong submissions.
// @Tags         solve
// @Accept       json
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        request body SolveRequest true "Submission"
// @Success      200 {object} services.SolveResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/solve [post]
func (h *SolveHandler) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.GetOrCreateByTelegramID(req.TelegramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.solutionService.Check(user.ID, req.ProblemID, req.Answer)
	if errors.Is(err, services.ErrProblemNotFound) || errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats godoc
// @Summary      Aggregate quiz stats for a telegram user
// @Tags         stats
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        telegram_id path int true "Telegram ID"
// @Success      200 {object} services.UserStats
// @Failure      404 {object} ErrorResponse
// @Router       /api/stats/{telegram_id} [get]
func (h *SolveHandler) GetStats(c *gin.Context) {
	tgID, err := parseInt64Param(c, "telegram_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid telegram_id"})
		return
	}

	user, err := h.userService.GetByTelegramID(tgID)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.statsService.GetStats(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
