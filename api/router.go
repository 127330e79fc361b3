package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Swamy718/Expense-Tracker-backend/docs"
	"github.com/Swamy718/Expense-Tracker-backend/logging"
)

type RouterConfig struct {
	AllowOrigins []string
	Logger       *slog.Logger
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger), cors.New(corsConfig(cfg.AllowOrigins)))

	r.POST("/register", h.Register)
	r.POST("/token", h.Token)
	r.GET("/healthz", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := r.Group("/", h.AuthMiddleware())
	protected.GET("/verify-token", h.VerifyToken)
	protected.GET("/profile", h.Profile)
	protected.GET("/info", h.Info)
	protected.GET("/recent-trans", h.RecentTransactions)

	protected.POST("/expense", h.AddExpense)
	protected.DELETE("/expense", h.DeleteExpense)
	protected.GET("/expense", h.GetExpenses)
	protected.GET("/expensebymonth", h.ExpensesByMonth)
	protected.GET("/expense/last10days", h.DailyExpenses(10))
	protected.GET("/expense/subcategory", h.ExpensesBySubcategory)
	protected.GET("/recent-expenses", h.RecentExpenses)

	protected.POST("/income", h.AddIncome)
	protected.DELETE("/income", h.DeleteIncome)
	protected.GET("/income", h.GetIncomes)
	protected.GET("/incomebymonth", h.IncomesByMonth)
	protected.GET("/income/last10days", h.DailyIncomes(10))
	protected.GET("/income/last5days", h.DailyIncomes(5))
	protected.GET("/recent-incomes", h.RecentIncomes)

	return r
}

// corsConfig allows any origin without credentials when origins contains
// "*", otherwise only the listed origins with credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", logging.RequestIDHeader},
		ExposeHeaders: []string{logging.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
