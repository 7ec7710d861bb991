package router

import (
	"fintrack/internal/analytics"
	"fintrack/internal/config"
	"fintrack/internal/handler"
	"fintrack/internal/middleware"
	"fintrack/internal/suggest"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// uploaded profile images
	r.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, cfg)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/get-user", handler.GetUser(db))

	txHandler := handler.NewTransactionHandler(db)
	protected.GET("/incomes", txHandler.List(analytics.KindIncome))
	protected.POST("/add-income", txHandler.Add(analytics.KindIncome))
	protected.PUT("/edit-income/:id", txHandler.Edit(analytics.KindIncome))
	protected.DELETE("/del-income/:id", txHandler.Delete(analytics.KindIncome))

	protected.GET("/expenses", txHandler.List(analytics.KindExpense))
	protected.POST("/add-expense", txHandler.Add(analytics.KindExpense))
	protected.PUT("/edit-expense/:id", txHandler.Edit(analytics.KindExpense))
	protected.DELETE("/del-expense/:id", txHandler.Delete(analytics.KindExpense))

	protected.GET("/stats/dashboard", handler.Dashboard(db, cfg.App.RecentLimit))

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/income.xlsx", exportHandler.XLSX(analytics.KindIncome))
	protected.GET("/export/expense.xlsx", exportHandler.XLSX(analytics.KindExpense))
	protected.GET("/export/income.csv", exportHandler.CSV(analytics.KindIncome))
	protected.GET("/export/expense.csv", exportHandler.CSV(analytics.KindExpense))

	suggestionHandler := handler.NewSuggestionHandler(db, suggest.New(cfg.AI), cfg.App.RecentLimit)
	protected.POST("/suggestions", suggestionHandler.Suggestions)

	protected.PUT("/edit-profile", handler.EditProfile(db, cfg.Upload))
	protected.POST("/profile/password", handler.ChangePassword(db, cfg.Security.BcryptCost))

	return r
}
