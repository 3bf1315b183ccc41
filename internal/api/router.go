package api

import (
	"net/http"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/handler"
	customMiddleware "github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/middleware"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/config"
	mongorepo "github.com/GeorgePerakathu/To-Do-Reminder-App/internal/repository/mongo"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/repository/redis"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil,
// in which case no rate limiting is applied.
func NewRouter(cfg *config.Config, db *mongorepo.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS is wide open; the browser frontend is served from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	if redisClient != nil {
		rateLimiter := redis.NewRateLimiter(
			redisClient,
			cfg.Redis.RequestsPerMinute,
			cfg.Redis.Burst,
		)
		r.Use(customMiddleware.NewRateLimitMiddleware(rateLimiter).Limit)
	}

	// Initialize repositories
	workspaceRepo := mongorepo.NewWorkspaceRepository(db)
	todoRepo := mongorepo.NewTodoRepository(db)

	// Initialize services
	workspaceService := service.NewWorkspaceService(workspaceRepo)
	todoService := service.NewTodoService(todoRepo, workspaceRepo)

	// Initialize handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	todoHandler := handler.NewTodoHandler(todoService)

	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(db))

	r.Route("/workspaces", func(r chi.Router) {
		r.Post("/", workspaceHandler.Create)
		r.Post("/login", workspaceHandler.Login)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", todoHandler.Create)
		r.Delete("/", todoHandler.DeleteAll)
		r.Get("/{workspace}", todoHandler.List)
		r.Put("/{id}", todoHandler.Update)
		r.Delete("/{id}", todoHandler.Delete)
	})

	return r
}
