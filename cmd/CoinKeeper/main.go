package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/coinkeeper/CoinKeeper/internal/auth"
	"github.com/coinkeeper/CoinKeeper/internal/finance/application"
	"github.com/coinkeeper/CoinKeeper/internal/finance/infrastructure"
	"github.com/coinkeeper/CoinKeeper/internal/finance/interfaces"
	"github.com/coinkeeper/CoinKeeper/internal/storage"
	"github.com/coinkeeper/CoinKeeper/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router           *http.ServeMux
	authHandler      *auth.Handler
	authService      auth.Service
	categoryHandler  *interfaces.CategoryHandler
	operationHandler *interfaces.OperationHandler
	balanceHandler   *interfaces.BalanceHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	categoryHandler *interfaces.CategoryHandler,
	operationHandler *interfaces.OperationHandler,
	balanceHandler *interfaces.BalanceHandler,
) *Server {
	return &Server{
		authHandler:      authHandler,
		authService:      authService,
		categoryHandler:  categoryHandler,
		operationHandler: operationHandler,
		balanceHandler:   balanceHandler,
		router:           http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	authMiddleware := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/categories",
		authMiddleware(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/categories",
		authMiddleware(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/categories/{id}",
		authMiddleware(http.HandlerFunc(s.categoryHandler.GetCategory)))
	protectedRoutes.Handle("PUT /api/categories/{id}",
		authMiddleware(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/categories/{id}",
		authMiddleware(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// OPERATIONS API
	protectedRoutes.Handle("GET /api/operations",
		authMiddleware(http.HandlerFunc(s.operationHandler.GetOperations)))
	protectedRoutes.Handle("POST /api/operations",
		authMiddleware(http.HandlerFunc(s.operationHandler.CreateOperation)))
	protectedRoutes.Handle("GET /api/operations/{id}",
		authMiddleware(http.HandlerFunc(s.operationHandler.GetOperation)))
	protectedRoutes.Handle("PUT /api/operations/{id}",
		authMiddleware(http.HandlerFunc(s.operationHandler.UpdateOperation)))
	protectedRoutes.Handle("DELETE /api/operations/{id}",
		authMiddleware(http.HandlerFunc(s.operationHandler.DeleteOperation)))

	// BALANCE API
	protectedRoutes.Handle("GET /api/balance",
		authMiddleware(http.HandlerFunc(s.balanceHandler.GetBalance)))
	protectedRoutes.Handle("PUT /api/balance",
		authMiddleware(http.HandlerFunc(s.balanceHandler.SetBalance)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/auth/", publicRoutes)
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	mainRouter.Handle("/api/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := storage.NewStore(dataDir)
	if err != nil {
		log.Fatalf("Could not initialize storage: %v", err)
	}

	jwtManager := auth.NewJWTManager()

	userRepo := user.NewUserRepository(store)
	userService := user.NewUserService(userRepo)
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(store)
	operationRepo := infrastructure.NewOperationRepository(store)
	balanceRepo := infrastructure.NewBalanceRepository(store)

	categoryService := application.NewCategoryService(categoryRepo, operationRepo)
	operationService := application.NewOperationService(operationRepo, categoryService)
	balanceService := application.NewBalanceService(balanceRepo, operationRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	operationHandler := interfaces.NewOperationHandler(operationService, respondJSON, respondError)
	balanceHandler := interfaces.NewBalanceHandler(balanceService, respondJSON, respondError)

	server := NewServer(authHandler, authService, categoryHandler, operationHandler, balanceHandler)
	server.RegisterRoutes()

	if schedule := os.Getenv("BALANCE_RECONCILE_SCHEDULE"); schedule != "" {
		if err := StartScheduler(balanceService, schedule); err != nil {
			log.Fatalf("Scheduler didn't start, stoping the app ...")
		}
	}

	handler := loggingMiddleware(http.HandlerFunc(server.router.ServeHTTP))
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func StartScheduler(balanceService *application.BalanceService, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		err := balanceService.ReconcileAll()
		if err != nil {
			log.Printf("Error reconciling balances: %v", err)
		} else {
			log.Println("Balances reconciled successfully.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
