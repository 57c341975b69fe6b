package router

import (
	"database/sql"
	"time"

	"github.com/SyaefulAxl/meliyah-backend/internal/config"
	"github.com/SyaefulAxl/meliyah-backend/internal/handler"
	"github.com/SyaefulAxl/meliyah-backend/internal/middleware"
	"github.com/SyaefulAxl/meliyah-backend/internal/repository"
	"github.com/SyaefulAxl/meliyah-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *sql.DB) *gin.Engine {
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
	categoryRepo := repository.NewCategoryRepository(db)
	typeRepo := repository.NewTypeRepository(db)
	groupRepo := repository.NewProductGroupRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, groupRepo)
	catalogSvc := service.NewCatalogService(categoryRepo, typeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		api.GET("/products", productsH.List)
		api.GET("/products/:id", productsH.Get)
		api.POST("/products", productsH.Create)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)

		api.GET("/categories", catalogH.Categories)
		api.GET("/types", catalogH.Types)
	}

	return r
}
