package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"vlearn-backend/configs"
	"vlearn-backend/internal/db"
	"vlearn-backend/internal/event"
	"vlearn-backend/internal/handlers"
	"vlearn-backend/internal/llm"
	"vlearn-backend/internal/realtime"
	"vlearn-backend/internal/repository"
	"vlearn-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(configs.AppConfig.GinMode)

	// Initialize infrastructure
	db.InitMongo(configs.AppConfig.MongoURI)
	db.InitRedis(configs.AppConfig.RedisAddr, configs.AppConfig.RedisPassword, configs.AppConfig.RedisDB)
	publisher := initPublisher()
	defer publisher.Close()

	// Setup routes
	r := setupRoutes(publisher)

	// Start server
	log.Printf("Starting %s on port %s", configs.AppConfig.ServiceName, configs.AppConfig.Port)
	if err := r.Run(":" + configs.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initPublisher() *event.EventPublisher {
	if configs.AppConfig.RabbitMQURI == "" {
		log.Println("RabbitMQ disabled in configuration")
		return nil
	}

	publisher, err := event.NewEventPublisher(configs.AppConfig.RabbitMQURI, configs.AppConfig.RabbitExchange)
	if err != nil {
		log.Printf("Warning: Failed to connect to RabbitMQ: %v", err)
		return nil
	}
	log.Println("RabbitMQ connected successfully")
	return publisher
}

func setupRoutes(publisher *event.EventPublisher) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add logging middleware
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))

	// Recovery middleware
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   configs.AppConfig.ServiceName,
			"version":   configs.AppConfig.ServiceVersion,
			"timestamp": time.Now(),
		})
	})

	// Repositories
	mongoDB := db.Client.Database(configs.AppConfig.MongoDatabase)
	userRepo := repository.NewUserRepository(mongoDB)
	courseRepo := repository.NewCourseRepository(mongoDB)
	progressRepo := repository.NewProgressRepository(mongoDB)
	activityRepo := repository.NewActivityRepository(mongoDB)
	resultRepo := repository.NewQuizResultRepository(mongoDB)
	noteRepo := repository.NewNoteRepository(mongoDB)
	certRepo := repository.NewCertificateRepository(mongoDB)
	messageRepo := repository.NewMessageRepository(mongoDB)
	invitationRepo := repository.NewInvitationRepository(mongoDB)
	groupRepo := repository.NewGroupChatRepository(mongoDB)
	studyGroupRepo := repository.NewStudyGroupRepository(mongoDB)
	sessionRepo := repository.NewSessionRepository(db.Redis)
	cacheRepo := repository.NewCacheRepository(db.Redis)

	// Services
	llmClient := llm.NewClient(configs.AppConfig.LLMBaseURL, configs.AppConfig.LLMAPIKey, configs.AppConfig.LLMModel)
	streams := realtime.NewManager()

	authService := service.NewAuthService(userRepo, sessionRepo)
	courseService := service.NewCourseService(courseRepo, progressRepo, activityRepo, resultRepo, certRepo, userRepo, publisher)
	analyticsService := service.NewAnalyticsService(courseRepo, progressRepo, activityRepo, resultRepo, certRepo)
	noteService := service.NewNoteService(noteRepo)
	generator := service.NewGenerator(llmClient, cacheRepo)
	messengerService := service.NewMessengerService(messageRepo, invitationRepo, groupRepo, studyGroupRepo, courseRepo, userRepo, streams, publisher)
	settingsService := service.NewSettingsService(cacheRepo, progressRepo, activityRepo, resultRepo, certRepo, publisher)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	learningHandler := handlers.NewLearningHandler(courseService, generator)
	assistantHandler := handlers.NewAssistantHandler(courseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	noteHandler := handlers.NewNoteHandler(noteService)
	messengerHandler := handlers.NewMessengerHandler(messengerService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Public routes group
	public := r.Group("/public")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
		}
	}

	// Protected routes group (requires JWT token with a live session)
	protected := r.Group("/protected")
	protected.Use(handlers.RequireAuth(authService))
	{
		protected.POST("/auth/signout", authHandler.SignOut)
		protected.GET("/auth/me", authHandler.Me)

		courses := protected.Group("/courses")
		{
			courses.POST("", courseHandler.Create)
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.Get)
			courses.DELETE("/:id", courseHandler.Delete)
			courses.POST("/:id/topics/complete", courseHandler.CompleteTopic)
			courses.POST("/:id/complete", courseHandler.CompleteCourse)
			courses.POST("/:id/quiz-result", courseHandler.SubmitQuiz)
			courses.GET("/:id/lesson/:topicIndex", learningHandler.Lesson)
			courses.GET("/:id/quiz", learningHandler.Quiz)
		}

		protected.POST("/generate-course", learningHandler.GenerateCourse)
		protected.POST("/assistant", assistantHandler.Message)
		protected.GET("/analytics", analyticsHandler.Summary)
		protected.GET("/certificates", courseHandler.Certificates)

		notes := protected.Group("/notes")
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.List)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}

		messenger := protected.Group("/messenger")
		{
			messenger.GET("/contacts", messengerHandler.Contacts)
			messenger.POST("/messages", messengerHandler.Send)
			messenger.GET("/conversations/:peerId", messengerHandler.Conversation)
			messenger.GET("/conversations/:peerId/stream", messengerHandler.StreamConversation)
			messenger.POST("/groups", messengerHandler.CreateGroup)
			messenger.GET("/groups", messengerHandler.ListGroups)
			messenger.GET("/groups/:groupId/messages", messengerHandler.GroupMessages)
			messenger.GET("/groups/:groupId/stream", messengerHandler.StreamGroup)
			messenger.POST("/study-groups", messengerHandler.CreateStudyGroup)
			messenger.GET("/study-groups", messengerHandler.ListStudyGroups)
			messenger.POST("/invitations", messengerHandler.SendInvitation)
			messenger.GET("/invitations", messengerHandler.ListInvitations)
			messenger.POST("/invitations/:id/respond", messengerHandler.RespondInvitation)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", settingsHandler.Get)
			settings.PUT("", settingsHandler.Put)
			settings.POST("/clear-data", settingsHandler.WipeData)
		}
	}

	return r
}
