package router

import (
	"time"

	"cantina/internal/config"
	"cantina/internal/handler"
	"cantina/internal/infra"
	"cantina/internal/middleware"
	"cantina/internal/model"
	"cantina/internal/repository"
	"cantina/internal/service"
	"cantina/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, st store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(st)
	sectorRepo := repository.NewSectorRepository(st)
	taskRepo := repository.NewTaskRepository(st)
	checklistRepo := repository.NewChecklistRepository(st)
	sessionRepo := repository.NewSessionRepository(st)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, sessionRepo, cfg)
	sectorSvc := service.NewSectorService(sectorRepo)
	taskSvc := service.NewTaskService(taskRepo)
	userSvc := service.NewUserService(userRepo)
	checklistSvc := service.NewChecklistService(sectorRepo, taskRepo, checklistRepo)

	narrator := infra.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	reportSvc := service.NewReportService(sectorRepo, checklistRepo, narrator)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	sectorsH := handler.NewSectorsHandler(sectorSvc)
	tasksH := handler.NewTasksHandler(taskSvc)
	usersH := handler.NewUsersHandler(userSvc)
	checklistH := handler.NewChecklistHandler(checklistSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(st))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	sessionMW := middleware.SessionAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", sessionMW)
	{
		v1.GET("/auth/session", authH.Session)
		v1.POST("/auth/logout", authH.Logout)

		// Reads — any authenticated role
		anyRole := middleware.RequireRole(model.RoleManager, model.RoleOperator)
		v1.GET("/sectors", anyRole, sectorsH.Listar)
		v1.GET("/sectors/:id", anyRole, sectorsH.Obter)
		v1.GET("/tasks", anyRole, tasksH.Listar)
		v1.GET("/checklist", anyRole, checklistH.Listar)

		// Daily checklist — any authenticated role
		v1.POST("/sectors/:id/checklist", anyRole, checklistH.GenerateDaily)
		v1.PATCH("/checklist/:id/toggle", anyRole, checklistH.Toggle)

		// Administration — manager only
		managerOnly := middleware.RequireRole(model.RoleManager)

		sectors := v1.Group("/sectors", managerOnly)
		{
			sectors.POST("", sectorsH.Criar)
			sectors.PUT("/:id", sectorsH.Atualizar)
			sectors.DELETE("/:id", sectorsH.Excluir)
		}

		tasks := v1.Group("/tasks", managerOnly)
		{
			tasks.POST("", tasksH.Criar)
			tasks.PUT("/:id", tasksH.Atualizar)
			tasks.DELETE("/:id", tasksH.Excluir)
		}

		users := v1.Group("/users", managerOnly)
		{
			users.GET("", usersH.Listar)
			users.POST("", usersH.Criar)
			users.PUT("/:id", usersH.Atualizar)
			users.DELETE("/:id", usersH.Excluir)
		}

		reports := v1.Group("/reports", managerOnly)
		{
			reports.GET("/stats", reportsH.Stats)
			reports.GET("/insights", reportsH.Insights)
		}
	}

	return r
}
