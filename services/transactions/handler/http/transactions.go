package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/middleware"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/internal/utils"
	"github.com/piresc/salesboard/services/transactions"
)

const (
	defaultPage    = 1
	defaultPerPage = 10

	seededMessage = "Database initialized successfully"
)

// TransactionHandler handles HTTP requests for the transactions dashboard
type TransactionHandler struct {
	txUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transactions handler
func NewTransactionHandler(txUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		txUC: txUC,
	}
}

// internalError logs err and answers with the generic 500 body
func (h *TransactionHandler) internalError(c echo.Context, endpoint string, err error, fields ...logger.Field) error {
	fields = append(fields,
		logger.String("endpoint", endpoint),
		logger.Err(err),
	)
	logger.ErrorCtx(c.Request().Context(), "Request failed", fields...)
	middleware.NoticeError(c, err)

	return utils.InternalServerErrorResponse(c)
}

// InitializeDatabase reseeds the record store from the seed source
func (h *TransactionHandler) InitializeDatabase(c echo.Context) error {
	count, err := h.txUC.InitializeDatabase(c.Request().Context())
	if err != nil {
		return h.internalError(c, "InitializeDatabase", err)
	}

	middleware.AddAttribute(c, "seed.records", count)
	return utils.MessageSuccessResponse(c, seededMessage)
}

// ListTransactions handles paginated listing with optional search
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	params := models.ListParams{
		Search:  c.QueryParam("search"),
		Page:    utils.QueryParamInt(c, "page", defaultPage),
		PerPage: utils.QueryParamInt(c, "perPage", defaultPerPage),
	}

	page, err := h.txUC.ListTransactions(c.Request().Context(), params)
	if err != nil {
		return h.internalError(c, "ListTransactions", err,
			logger.String("search", params.Search),
			logger.Int("page", params.Page),
			logger.Int("per_page", params.PerPage))
	}

	return utils.SuccessResponse(c, page)
}

// GetStats handles the monthly sale statistics request
func (h *TransactionHandler) GetStats(c echo.Context) error {
	month := c.QueryParam("selectedMonth")

	stats, err := h.txUC.MonthlyStats(c.Request().Context(), month)
	if err != nil {
		return h.internalError(c, "GetStats", err, logger.String("selected_month", month))
	}

	return utils.SuccessResponse(c, stats)
}

// GetBarChart handles the price range histogram request
func (h *TransactionHandler) GetBarChart(c echo.Context) error {
	month := c.QueryParam("selectedMonth")

	buckets, err := h.txUC.PriceHistogram(c.Request().Context(), month)
	if err != nil {
		return h.internalError(c, "GetBarChart", err, logger.String("selected_month", month))
	}

	return utils.SuccessResponse(c, buckets)
}

// GetPieChart handles the category breakdown request
func (h *TransactionHandler) GetPieChart(c echo.Context) error {
	month := c.QueryParam("selectedMonth")

	buckets, err := h.txUC.CategoryHistogram(c.Request().Context(), month)
	if err != nil {
		return h.internalError(c, "GetPieChart", err, logger.String("selected_month", month))
	}

	return utils.SuccessResponse(c, buckets)
}

// GetCombinedData returns stats, bar chart and pie chart in one response
func (h *TransactionHandler) GetCombinedData(c echo.Context) error {
	month := c.QueryParam("selectedMonth")

	data, err := h.txUC.CombinedData(c.Request().Context(), month)
	if err != nil {
		return h.internalError(c, "GetCombinedData", err, logger.String("selected_month", month))
	}

	return utils.SuccessResponse(c, data)
}
