package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	location         *time.Location
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingHandler{reportingService: rs, location: loc, now: time.Now}
}

// RegisterReportingRoutes registers the report routes. loc is the zone used when a request omits tz.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	newReportingHandler(reportingService, loc).register(rg)
}

func (h *reportingHandler) register(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/daily-series", h.getDailySeries)
		reports.GET("/categories", h.getCategoryReport)
	}
}

// parseReportQuery binds and parses the shared report parameters, writing a 400 on failure.
func (h *reportingHandler) parseReportQuery(c *gin.Context, logger *slog.Logger) (dto.ReportParams, bool) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return dto.ReportParams{}, false
	}

	params, err := query.ToParams(h.now(), h.location)
	if err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return dto.ReportParams{}, false
	}
	return params, true
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Totals, budget utilization, advisory, daily series and category breakdown for one period
// @Tags reports
// @Produce json
// @Param period query string false "daily, weekly, monthly or yearly" default(monthly)
// @Param anchor query string false "RFC3339 instant or YYYY-MM-DD; defaults to now"
// @Param tz query string false "IANA time zone"
// @Param category query string false "Restrict the category breakdown"
// @Param budgetCeiling query string false "Override the stored budget ceiling"
// @Param sort query bool false "Sort categories by magnitude"
// @Param days query int false "Series length in days" default(7)
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} dto.ErrorWithResultResponse "Store unavailable"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "result": dto.EmptyReportSummaryResponse(domain.Monthly)})
		return
	}

	params, ok := h.parseReportQuery(c, logger)
	if !ok {
		return
	}

	result, err := h.reportingService.Summary(c.Request.Context(), ownerID, params)
	if err != nil {
		respondErrorWithResult(c, logger, err, "Failed to build report summary", dto.EmptyReportSummaryResponse(params.Period))
		return
	}

	c.JSON(http.StatusOK, dto.ToReportSummaryResponse(result))
}

// getDailySeries godoc
// @Summary Daily series
// @Description Per-day income and expense for the trailing days ending at the anchor
// @Tags reports
// @Produce json
// @Param anchor query string false "RFC3339 instant or YYYY-MM-DD; defaults to now"
// @Param tz query string false "IANA time zone"
// @Param days query int false "Series length in days" default(7)
// @Success 200 {object} dto.DailySeriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} dto.ErrorWithResultResponse "Store unavailable"
// @Security BearerAuth
// @Router /reports/daily-series [get]
func (h *reportingHandler) getDailySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params, ok := h.parseReportQuery(c, logger)
	if !ok {
		return
	}

	series, err := h.reportingService.DailySeries(c.Request.Context(), ownerID, params)
	if err != nil {
		respondErrorWithResult(c, logger, err, "Failed to build daily series",
			dto.DailySeriesResponse{Buckets: []dto.SeriesBucketResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySeriesResponse(*series))
}

// getCategoryReport godoc
// @Summary Category breakdown
// @Description Net totals per category within the period window
// @Tags reports
// @Produce json
// @Param period query string false "daily, weekly, monthly or yearly" default(monthly)
// @Param anchor query string false "RFC3339 instant or YYYY-MM-DD; defaults to now"
// @Param tz query string false "IANA time zone"
// @Param category query string false "Only this category"
// @Param sort query bool false "Sort by magnitude"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} dto.ErrorWithResultResponse "Store unavailable"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params, ok := h.parseReportQuery(c, logger)
	if !ok {
		return
	}

	breakdown, err := h.reportingService.CategoryReport(c.Request.Context(), ownerID, params)
	if err != nil {
		respondErrorWithResult(c, logger, err, "Failed to build category report",
			dto.CategoryBreakdownResponse{Categories: []dto.CategoryTotalResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(*breakdown))
}
