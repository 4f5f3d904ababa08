package handlers

import (
	"net/http"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterCategoryRoutes registers the category picker and drill-down routes
func RegisterCategoryRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &categoryHandler{reportingService: reportingService}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:category", h.getCategoryDetail)
	}
}

// listCategories godoc
// @Summary Suggested categories
// @Description Lists the suggested category labels for a transaction kind
// @Tags categories
// @Produce json
// @Param kind query string true "income or expense"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, err := domain.ParseTransactionKind(c.Query("kind"))
	if err != nil {
		respondError(c, logger, err, "Invalid transaction kind")
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Kind:       string(kind),
		Categories: domain.SuggestedCategories(kind),
	})
}

// getCategoryDetail godoc
// @Summary Category drill-down
// @Description Lists every transaction of one category with its net total
// @Tags categories
// @Produce json
// @Param category path string true "Category label"
// @Success 200 {object} dto.CategoryDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} dto.ErrorWithResultResponse "Store unavailable"
// @Security BearerAuth
// @Router /categories/{category} [get]
func (h *categoryHandler) getCategoryDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category := c.Param("category")
	detail, err := h.reportingService.CategoryDetail(c.Request.Context(), ownerID, category)
	if err != nil {
		respondErrorWithResult(c, logger, err, "Failed to load category",
			dto.CategoryDetailResponse{Category: category, Transactions: []dto.TransactionResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDetailResponse(detail))
}
