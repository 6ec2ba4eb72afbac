package server

import (
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/ai"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/handlers"
	httpHandler "github.com/MUTHUKUMARAN-K-01/FinanceTracker/handlers/http"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/services"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/usecases"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app     *gin.Engine
	store   repositories.Storage
	advisor ai.Advisor
	addr    string
}

// NewServer wires the application around an injected storage handle; the
// backend was chosen once at startup and is never swapped at runtime.
func NewServer(store repositories.Storage, advisor ai.Advisor, port string) *Server {
	return &Server{
		app:     gin.Default(),
		store:   store,
		advisor: advisor,
		addr:    ":" + port,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Initialize use cases over the shared storage handle
	authUseCase := usecases.NewAuthUseCase(s.store)
	financeUseCase := usecases.NewFinanceUseCase(s.store)
	chatUseCase := usecases.NewChatUseCase(s.store, s.advisor)
	insightsService := services.NewInsightsService(s.store)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	profileHandler := httpHandler.NewProfileHandler(financeUseCase)
	chatHandler := httpHandler.NewChatHandler(chatUseCase)
	goalHandler := httpHandler.NewGoalHandler(financeUseCase)
	insightsHandler := httpHandler.NewInsightsHandler(insightsService)

	// WebSocket manager and handler
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, chatUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", authHandler.GetUser)
			users.GET("/:id/profile", profileHandler.GetProfile)
			users.POST("/:id/profile", profileHandler.CreateProfile)
			users.PUT("/:id/profile", profileHandler.UpdateProfile)
			users.GET("/:id/messages", chatHandler.GetMessages)
			users.GET("/:id/goals", goalHandler.GetGoals)
			users.POST("/:id/goals", goalHandler.CreateGoal)
			users.GET("/:id/insights", insightsHandler.GetInsights)
		}

		goals := api.Group("/goals")
		{
			goals.GET("/:id", goalHandler.GetGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		chat := api.Group("/chat")
		{
			chat.POST("", chatHandler.SendMessage)
			chat.GET("/connected", wsHandler.GetConnectedUsers)
		}
	}

	// WebSocket endpoint for live chat
	s.app.GET("/ws/chat", wsHandler.HandleChatWS)

	return s.app.Run(s.addr)
}
