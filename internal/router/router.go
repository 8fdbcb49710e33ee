package router

import (
	"time"

	"minipigs/internal/config"
	"minipigs/internal/handler"
	"minipigs/internal/infra"
	"minipigs/internal/middleware"
	"minipigs/internal/repository"
	"minipigs/internal/service"
	"minipigs/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) *gin.Engine {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	imageStore := infra.NewImageStore(cfg.StoragePath, cfg.PublicBaseURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	cerditoRepo := repository.NewCerditoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	testimonioRepo := repository.NewTestimonioRepository(db)
	configuracionRepo := repository.NewConfiguracionRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	cerditoSvc := service.NewCerditoService(cerditoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	diarioSvc := service.NewDiarioService(cerditoRepo)
	testimonioSvc := service.NewTestimonioService(testimonioRepo)
	configuracionSvc := service.NewConfiguracionService(configuracionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	cerditosH := handler.NewCerditosHandler(cerditoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	testimoniosH := handler.NewTestimoniosHandler(testimonioSvc)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	diarioH := handler.NewDiarioHandler(diarioSvc)
	imagenesH := handler.NewImagenesHandler(imageStore)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mailer))

	// Imágenes subidas, servidas estáticamente
	r.Static("/uploads", imageStore.Dir())

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Sitio público — catálogo, tienda, testimonios, configuración
	r.GET("/v1/cerditos", cerditosH.ListCatalogo)
	r.GET("/v1/cerditos/del-mes", cerditosH.CerditoDelMes)
	r.GET("/v1/cerditos/:id", cerditosH.ObtenerPublico)
	r.GET("/v1/productos", productosH.ListarTienda)
	r.GET("/v1/productos/:id", productosH.ObtenerPorID)
	r.GET("/v1/testimonios", testimoniosH.ListPublicos)
	r.POST("/v1/testimonios", testimoniosH.Crear)
	r.GET("/v1/configuracion", configuracionH.Obtener)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	// Área de cliente — diario de vida de los cerditos adoptados
	mi := r.Group("/v1/mi", jwtMW, middleware.RequireRole(service.RolCliente, service.RolAdministrador))
	{
		mi.GET("/perfil", authH.Perfil)
		mi.GET("/cerditos", diarioH.MisCerditos)
		mi.GET("/cerditos/:id/diario", diarioH.ObtenerDiario)
		mi.PUT("/cerditos/:id/checklist", diarioH.ActualizarChecklist)
		mi.POST("/cerditos/:id/hitos", diarioH.CrearHito)
	}

	// Back-office — administrador only
	admin := r.Group("/v1/admin", jwtMW, middleware.RequireRole(service.RolAdministrador))
	{
		admin.GET("/cerditos", cerditosH.ListAdmin)
		admin.POST("/cerditos", cerditosH.Crear)
		admin.GET("/cerditos/:id", cerditosH.ObtenerAdmin)
		admin.PUT("/cerditos/:id", cerditosH.Actualizar)
		admin.DELETE("/cerditos/:id", cerditosH.Eliminar)
		admin.POST("/cerditos/:id/del-mes", cerditosH.MarcarDelMes)
		admin.POST("/cerditos/:id/hitos", cerditosH.CrearHito)
		admin.DELETE("/cerditos/:id/hitos/:hito_id", cerditosH.EliminarHito)

		admin.POST("/ventas", ventasH.RegistrarVenta)
		admin.GET("/ventas", ventasH.ListarVentas)
		admin.GET("/ventas/:id", ventasH.ObtenerPorID)
		admin.PUT("/ventas/:id", ventasH.ActualizarVenta)
		admin.DELETE("/ventas/:id", ventasH.EliminarVenta)

		admin.GET("/productos", productosH.ListarAdmin)
		admin.POST("/productos", productosH.Crear)
		admin.PUT("/productos/:id", productosH.Actualizar)
		admin.PATCH("/productos/:id/stock", productosH.AjustarStock)
		admin.DELETE("/productos/:id", productosH.Desactivar)

		admin.GET("/testimonios", testimoniosH.ListTodos)
		admin.PATCH("/testimonios/:id/aprobar", testimoniosH.Aprobar)
		admin.DELETE("/testimonios/:id", testimoniosH.Eliminar)

		admin.PUT("/configuracion", configuracionH.Actualizar)

		admin.POST("/imagenes", imagenesH.Subir)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
