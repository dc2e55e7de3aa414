package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/middleware"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the stock data endpoints.
//
// Responsibilities:
//   - Validate path parameters and request bodies
//   - Delegate to the stock service with the request context
//   - Map absent data to 404 and canceled requests to 504
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): Service used to fetch and extract stock data.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetStockData godoc
// @Summary      Get stock data
// @Description  Returns the valuation, operating performance and trailing returns reports merged into one document
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "Performance ID" example(0P000000GY)
// @Success      200  {object}  models.StockData
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      504  {object}  dto.ErrorResponse  "Timeout"
// @Router       /api/v1/stocks/{id} [get]
func (h *Handler) GetStockData(c *gin.Context) {
	id, ok := performanceID(c)
	if !ok {
		return
	}
	data, err := h.svc.GetStockData(c.Request.Context(), id)
	respond(c, data, data == nil, err, "stock data not found")
}

// GetValuation godoc
// @Summary      Get valuation report
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "Performance ID" example(0P000000GY)
// @Success      200  {object}  models.ValuationData
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{id}/valuation [get]
func (h *Handler) GetValuation(c *gin.Context) {
	id, ok := performanceID(c)
	if !ok {
		return
	}
	data, err := h.svc.GetValuationData(c.Request.Context(), id)
	respond(c, data, data == nil, err, "valuation data not found")
}

// GetOperatingPerformance godoc
// @Summary      Get operating performance report
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "Performance ID" example(0P000000GY)
// @Success      200  {object}  models.OperatingPerformanceData
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{id}/operating-performance [get]
func (h *Handler) GetOperatingPerformance(c *gin.Context) {
	id, ok := performanceID(c)
	if !ok {
		return
	}
	data, err := h.svc.GetOperatingPerformanceData(c.Request.Context(), id)
	respond(c, data, data == nil, err, "operating performance data not found")
}

// GetTrailingReturns godoc
// @Summary      Get trailing total returns
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "Performance ID" example(0P000000GY)
// @Success      200  {object}  models.TrailingTotalReturnsListData
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{id}/trailing-returns [get]
func (h *Handler) GetTrailingReturns(c *gin.Context) {
	id, ok := performanceID(c)
	if !ok {
		return
	}
	data, err := h.svc.GetTrailingTotalReturnsData(c.Request.Context(), id)
	respond(c, data, data == nil, err, "trailing returns data not found")
}

// ExtractStockData godoc
// @Summary      Extract fields from stock data
// @Description  Resolves each dotted path (e.g. valuationData.Collapsed.rows[0].label) against the merged stock data. Unresolved paths map to null.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        id      path      string    true  "Performance ID" example(0P000000GY)
// @Param        fields  body      []string  true  "Dotted field paths"
// @Success      200     {object}  dto.ExtractResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{id}/extract [post]
func (h *Handler) ExtractStockData(c *gin.Context) {
	id, ok := performanceID(c)
	if !ok {
		return
	}

	var fields []string
	if err := c.ShouldBindJSON(&fields); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "request body must be a JSON array of field paths", err)
		return
	}
	if len(fields) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "at least one field is required", nil)
		return
	}

	out, err := h.svc.ExtractStockData(c.Request.Context(), id, fields)
	respond(c, dto.ExtractResponse(out), out == nil, err, "stock data not found")
}

// GetStockPerformanceID godoc
// @Summary      Look up a performance ID
// @Description  Maps EXCHANGE:TICKER to the provider performance ID. Disabled unless FEATURE_GET_STOCK_PERFORMANCE_ID is set.
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "Listing as EXCHANGE:TICKER" example(XNAS:AAPL)
// @Success      200  {object}  dto.PerformanceIDResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{id}/performance-id [get]
func (h *Handler) GetStockPerformanceID(c *gin.Context) {
	exchange, ticker, found := strings.Cut(c.Param("id"), ":")
	exchange = strings.ToUpper(strings.TrimSpace(exchange))
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if !found || exchange == "" || ticker == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol must be EXCHANGE:TICKER", nil)
		return
	}

	id, err := h.svc.GetStockPerformanceID(c.Request.Context(), exchange, ticker)
	resp := dto.PerformanceIDResponse{Exchange: exchange, Ticker: ticker, PerformanceID: id}
	respond(c, resp, id == "", err, "performance id not found")
}

// ListStocks godoc
// @Summary      List known stocks
// @Description  Returns the stock directory, optionally filtered by a comma separated list of exchanges
// @Tags         stocks
// @Produce      json
// @Param        exchange  query     string  false  "Exchanges" example(XNAS,XNYS)
// @Success      200       {array}   models.Stock
// @Failure      500       {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks [get]
func (h *Handler) ListStocks(c *gin.Context) {
	var exchanges []string
	if q := c.Query("exchange"); q != "" {
		exchanges = strings.Split(q, ",")
	}

	stocks, err := h.svc.ListStocks(c.Request.Context(), exchanges...)
	if err != nil {
		fail(c, err, "failed to list stocks")
		return
	}
	if stocks == nil {
		stocks = []models.Stock{}
	}
	c.JSON(http.StatusOK, stocks)
}

func performanceID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "performance id is required", nil)
		return "", false
	}
	return id, true
}

func respond(c *gin.Context, body any, missing bool, err error, notFound string) {
	switch {
	case err != nil:
		fail(c, err, "failed to fetch stock data")
	case missing:
		middleware.AbortWithError(c, http.StatusNotFound, notFound, nil)
	default:
		c.JSON(http.StatusOK, body)
	}
}

func fail(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		status = http.StatusGatewayTimeout
	}
	middleware.AbortWithError(c, status, msg, err)
}
