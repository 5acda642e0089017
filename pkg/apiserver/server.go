package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/apiserver/handlers"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/apiserver/middleware"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/auth"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/config"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/filestore"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(st store.Stores, files *filestore.Store, cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}
	s.setupRouter(st, files)
	return s
}

func (s *Server) setupRouter(st store.Stores, files *filestore.Store) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tokens := auth.NewTokenManager([]byte(s.cfg.Auth.JWTSecret), s.cfg.Auth.TokenTTL)

	userService := service.NewUserService(st.Users, s.logger)
	planService := service.NewPlanService(st.Plans, st.Users, s.logger)
	reportService := service.NewReportService(st.Reports, st.Plans, st.Users, s.logger)
	documentService := service.NewDocumentService(st.Documents, st.Reports, st.Users, s.logger)
	commentService := service.NewCommentService(st.Comments, st.Reports, st.Users, s.logger)

	api := r.Group("/api")
	{
		userHandler := handlers.NewUserHandler(userService, tokens, s.logger)
		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/me", middleware.Auth(tokens), userHandler.Me)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.PATCH("/:id", userHandler.PartialUpdate)
			users.DELETE("/:id", userHandler.Delete)
			users.POST("/auth", userHandler.Authenticate)
		}

		planHandler := handlers.NewPlanHandler(planService, s.logger)
		plans := api.Group("/plans")
		{
			plans.POST("", planHandler.Create)
			plans.GET("", planHandler.List)
			plans.GET("/:id", planHandler.Get)
			plans.PUT("/:id", planHandler.Update)
			plans.DELETE("/:id", planHandler.Delete)
		}

		reportHandler := handlers.NewReportHandler(reportService, s.logger)
		reports := api.Group("/reports")
		{
			reports.POST("", reportHandler.Create)
			reports.GET("", reportHandler.List)
			reports.GET("/:id", reportHandler.Get)
			reports.PUT("/:id", reportHandler.Update)
			reports.DELETE("/:id", reportHandler.Delete)
		}

		documentHandler := handlers.NewDocumentHandler(documentService, files, s.logger)
		documents := api.Group("/documents")
		{
			documents.POST("", documentHandler.Create)
			documents.GET("", documentHandler.List)
			documents.GET("/:id", documentHandler.Get)
			documents.GET("/:id/download", documentHandler.Download)
			documents.PUT("/:id", documentHandler.Update)
			documents.DELETE("/:id", documentHandler.Delete)
		}

		commentHandler := handlers.NewCommentHandler(commentService, s.logger)
		comments := api.Group("/comments")
		{
			comments.POST("", commentHandler.Create)
			comments.GET("", commentHandler.List)
			comments.GET("/:id", commentHandler.Get)
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		fileHandler := handlers.NewFileHandler(files, s.logger)
		fileGroup := api.Group("/files")
		{
			fileGroup.POST("/upload", fileHandler.Upload)
			fileGroup.GET("/download/:filename", fileHandler.Download)
		}
	}

	s.router = r
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
