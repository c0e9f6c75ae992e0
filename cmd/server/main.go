package main

import (
	"log"

	"github.com/ArtemTurin1/miniapp/internal/config"
	"github.com/ArtemTurin1/miniapp/internal/database"
	"github.com/ArtemTurin1/miniapp/internal/handlers"
	"github.com/ArtemTurin1/miniapp/internal/middleware"
	"github.com/ArtemTurin1/miniapp/internal/services"

	_ "github.com/ArtemTurin1/miniapp/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Mini App API
// @version         1.0
// @description     Practice problems, scoring and to-do tasks for a Telegram mini app
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	answerService := services.NewAnswerService()
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, cfg.JWTSecret)
	solutionService := services.NewSolutionService(db, answerService)
	statsService := services.NewStatsService(db)
	problemService := services.NewProblemService(db)
	taskService := services.NewTaskService(db, userService)

	authHandler := handlers.NewAuthHandler(authService, userService, statsService)
	problemHandler := handlers.NewProblemHandler(problemService)
	solveHandler := handlers.NewSolveHandler(solutionService, userService, statsService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Bot-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/me", middleware.JWTAuth(authService), authHandler.Me)

		bot := api.Group("")
		bot.Use(middleware.BotAuth(cfg.BotAPIKey))
		{
			bot.GET("/problems", problemHandler.ListProblems)
			bot.POST("/solve", solveHandler.Solve)
			bot.GET("/stats/:telegram_id", solveHandler.GetStats)

			bot.GET("/tasks/:id", taskHandler.ListTasks)
			bot.POST("/tasks/:id", taskHandler.CreateTask)
			bot.POST("/tasks/:id/complete", taskHandler.CompleteTask)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
