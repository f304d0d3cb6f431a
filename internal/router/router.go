package router

import (
	"time"

	"github.com/Elfoider/pulilavado-app/internal/config"
	"github.com/Elfoider/pulilavado-app/internal/handler"
	"github.com/Elfoider/pulilavado-app/internal/middleware"
	"github.com/Elfoider/pulilavado-app/internal/repository"
	"github.com/Elfoider/pulilavado-app/internal/service"
	"github.com/Elfoider/pulilavado-app/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	lavadorRepo := repository.NewLavadorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	servicioSvc := service.NewServicioService(servicioRepo, lavadorRepo, clienteRepo, configRepo)
	lavadorSvc := service.NewLavadorService(lavadorRepo, servicioRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	configSvc := service.NewConfiguracionService(configRepo)
	reporteSvc := service.NewReporteService(servicioRepo, lavadorRepo)

	// Worker dispatcher — injected into handlers that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	lavadoresH := handler.NewLavadoresHandler(lavadorSvc, reporteSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	configH := handler.NewConfiguracionHandler(configSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, dispatcher)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: operador, administrador — declared per-endpoint
		operadores := middleware.RequireRole("operador", "administrador")
		admin := middleware.RequireRole("administrador")

		v1.POST("/servicios", operadores, serviciosH.Registrar)
		v1.GET("/servicios", operadores, serviciosH.Listar)
		v1.GET("/servicios/:id", operadores, serviciosH.Obtener)
		v1.PUT("/servicios/:id", operadores, serviciosH.Actualizar)
		v1.POST("/servicios/:id/cancelar", operadores, serviciosH.Cancelar)
		v1.DELETE("/servicios/:id", admin, serviciosH.Eliminar)

		v1.GET("/lavadores", operadores, lavadoresH.Listar)
		v1.GET("/lavadores/:id", operadores, lavadoresH.Obtener)
		v1.GET("/lavadores/:id/nomina", operadores, lavadoresH.Nomina)
		lavadores := v1.Group("/lavadores", admin)
		{
			lavadores.POST("", lavadoresH.Crear)
			lavadores.PUT("/:id", lavadoresH.Actualizar)
			lavadores.POST("/:id/desactivar", lavadoresH.Desactivar)
			lavadores.POST("/:id/reactivar", lavadoresH.Reactivar)
			lavadores.DELETE("/:id", lavadoresH.Eliminar)
		}

		clientes := v1.Group("/clientes", operadores)
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		v1.GET("/configuracion", operadores, configH.Obtener)
		v1.PUT("/configuracion", admin, configH.Actualizar)
		v1.GET("/configuracion/historial", admin, configH.Historial)

		reportes := v1.Group("/reportes", operadores)
		{
			reportes.GET("/diario", reportesH.Diario)
			reportes.GET("/rango", reportesH.Rango)
			reportes.POST("/exportar", reportesH.Exportar)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
