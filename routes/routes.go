package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abelaguiar/api-hydro-time/config"
	"github.com/abelaguiar/api-hydro-time/controllers"
	"github.com/abelaguiar/api-hydro-time/middlewares"
	"github.com/abelaguiar/api-hydro-time/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	settingsCtl := controllers.NewSettingsController(services.NewSettingsService(db))
	intakeCtl := controllers.NewIntakeController(services.NewIntakeService(db))
	statsCtl := controllers.NewStatsController(services.NewStatsService(db))
	exportCtl := controllers.NewExportController(services.NewExportService(db))

	authRequired := middlewares.AuthMiddleware(cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", authRequired, authCtl.Me)
	}

	user := r.Group("/user", authRequired)
	{
		user.GET("/settings", settingsCtl.Get)
		user.PUT("/settings", settingsCtl.Update)
		user.PATCH("/settings", settingsCtl.Update)
		user.GET("/export", exportCtl.JSON)
		user.GET("/export/csv", exportCtl.CSV)
	}

	intake := r.Group("/intake", authRequired)
	{
		intake.POST("", intakeCtl.Create)
		intake.GET("", intakeCtl.List)
		intake.DELETE("/:id", intakeCtl.Delete)
	}

	stats := r.Group("/stats", authRequired)
	{
		stats.GET("/overview", statsCtl.Overview)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
