package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ArtemTurin1/miniapp/internal/middleware"
	"github.com/ArtemTurin1/miniapp/internal/models"
	"github.com/ArtemTurin1/miniapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testBotKey = "test-bot-key"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Solution{},
		&models.Task{},
	))

	answerService := services.NewAnswerService()
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, "test-secret")
	solutionService := services.NewSolutionService(db, answerService)
	statsService := services.NewStatsService(db)
	problemService := services.NewProblemService(db)
	taskService := services.NewTaskService(db, userService)

	authHandler := NewAuthHandler(authService, userService, statsService)
	problemHandler := NewProblemHandler(problemService)
	solveHandler := NewSolveHandler(solutionService, userService, statsService)
	taskHandler := NewTaskHandler(taskService)

	r := gin.New()
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/me", middleware.JWTAuth(authService), authHandler.Me)

		bot := api.Group("")
		bot.Use(middleware.BotAuth(testBotKey))
		{
			bot.GET("/problems", problemHandler.ListProblems)
			bot.POST("/solve", solveHandler.Solve)
			bot.GET("/stats/:telegram_id", solveHandler.GetStats)

			bot.GET("/tasks/:id", taskHandler.ListTasks)
			bot.POST("/tasks/:id", taskHandler.CreateTask)
			bot.POST("/tasks/:id/complete", taskHandler.CompleteTask)
		}
	}

	return &testEnv{router: r, db: db}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) botRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	return e.request(t, method, path, body, map[string]string{"X-Bot-API-Key": testBotKey})
}

func (e *testEnv) seedProblem(t *testing.T, subject, answer string, points int) *models.Problem {
	t.Helper()
	problem := models.Problem{
		Title:         "test problem",
		Description:   "test description",
		Subject:       subject,
		Difficulty:    models.DifficultyEasy,
		CorrectAnswer: answer,
		Points:        points,
	}
	require.NoError(t, e.db.Create(&problem).Error)
	return &problem
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestBotEndpointsRequireAPIKey(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodGet, "/api/problems", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/problems", nil, map[string]string{"X-Bot-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListProblemsFilters(t *testing.T) {
	env := setupEnv(t)
	env.seedProblem(t, models.SubjectMath, "30", 10)
	env.seedProblem(t, models.SubjectInformatics, "O(log n)", 10)

	w := env.botRequest(t, http.MethodGet, "/api/problems?subject=math", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var problems []models.Problem
	decode(t, w, &problems)
	require.Len(t, problems, 1)
	assert.Equal(t, models.SubjectMath, problems[0].Subject)

	// The stored answer must never appear in the listing payload.
	assert.NotContains(t, w.Body.String(), "correct_answer")

	w = env.botRequest(t, http.MethodGet, "/api/problems?subject=chemistry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &problems)
	assert.Len(t, problems, 2)
}

func TestSolveFlow(t *testing.T) {
	env := setupEnv(t)
	problem := env.seedProblem(t, models.SubjectMath, "2;3", 10)

	w := env.botRequest(t, http.MethodPost, "/api/solve", gin.H{
		"telegram_id": 42, "problem_id": problem.ID, "answer": "3;2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.SolveResult
	decode(t, w, &result)
	assert.True(t, result.Correct)
	assert.Nil(t, result.CorrectAnswer)
	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, 10, result.NewScore)

	// A wrong submission reveals the stored answer verbatim.
	w = env.botRequest(t, http.MethodPost, "/api/solve", gin.H{
		"telegram_id": 42, "problem_id": problem.ID, "answer": "5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	assert.False(t, result.Correct)
	require.NotNil(t, result.CorrectAnswer)
	assert.Equal(t, "2;3", *result.CorrectAnswer)
	assert.Equal(t, 10, result.NewScore)
}

func TestSolveUnknownProblem(t *testing.T) {
	env := setupEnv(t)

	w := env.botRequest(t, http.MethodPost, "/api/solve", gin.H{
		"telegram_id": 42, "problem_id": 9999, "answer": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	env := setupEnv(t)
	problem := env.seedProblem(t, models.SubjectMath, "30", 10)

	w := env.botRequest(t, http.MethodPost, "/api/solve", gin.H{
		"telegram_id": 42, "problem_id": problem.ID, "answer": "30",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.botRequest(t, http.MethodGet, "/api/stats/42", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats services.UserStats
	decode(t, w, &stats)
	assert.Equal(t, 10, stats.Score)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, int64(1), stats.SolvedCount)
	assert.Equal(t, int64(1), stats.MathSolved)
	assert.Equal(t, int64(0), stats.InformaticsSolved)

	w = env.botRequest(t, http.MethodGet, "/api/stats/777", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskEndpoints(t *testing.T) {
	env := setupEnv(t)

	// Unknown user lists as empty, not as an error.
	w := env.botRequest(t, http.MethodGet, "/api/tasks/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = env.botRequest(t, http.MethodPost, "/api/tasks/42", gin.H{"title": "buy milk"})
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	decode(t, w, &task)
	assert.Equal(t, "buy milk", task.Title)
	assert.False(t, task.Completed)

	w = env.botRequest(t, http.MethodGet, "/api/tasks/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	decode(t, w, &tasks)
	require.Len(t, tasks, 1)

	w = env.botRequest(t, http.MethodPost, "/api/tasks/"+itoa(task.ID)+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &task)
	assert.True(t, task.Completed)

	// Idempotent.
	w = env.botRequest(t, http.MethodPost, "/api/tasks/"+itoa(task.ID)+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &task)
	assert.True(t, task.Completed)

	w = env.botRequest(t, http.MethodPost, "/api/tasks/9999/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"email": "user@example.com", "password": "secret123", "name": "Artem",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var auth AuthResponse
	decode(t, w, &auth)
	assert.NotEmpty(t, auth.Token)

	// Second registration with the same email conflicts.
	w = env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"email": "user@example.com", "password": "other456",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "user@example.com", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &auth)

	w = env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "user@example.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/me", nil, map[string]string{
		"Authorization": "Bearer " + auth.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var profile services.Profile
	decode(t, w, &profile)
	require.NotNil(t, profile.User)
	require.NotNil(t, profile.User.Email)
	assert.Equal(t, "user@example.com", *profile.User.Email)
	require.NotNil(t, profile.Stats)
	assert.Equal(t, int64(0), profile.Stats.SolvedCount)

	w = env.request(t, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
