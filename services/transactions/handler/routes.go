package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/services/transactions/handler/http"
)

// Handler coordinates the protocol handlers of the transactions service
type Handler struct {
	transactionHandler *http.TransactionHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(transactionHandler *http.TransactionHandler) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/initialize-database", h.transactionHandler.InitializeDatabase)
	e.GET("/transactions", h.transactionHandler.ListTransactions)

	api := e.Group("/api")
	api.GET("/stats", h.transactionHandler.GetStats)
	api.GET("/bar-chart", h.transactionHandler.GetBarChart)
	api.GET("/pie-chart", h.transactionHandler.GetPieChart)
	api.GET("/combined-data", h.transactionHandler.GetCombinedData)
}
