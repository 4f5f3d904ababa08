package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

// RegisterBudgetRoutes registers the per-owner budget routes
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvc) {
	h := &budgetHandler{budgetService: budgetService}

	rg.GET("/budget", h.getBudget)
	rg.PUT("/budget", h.setBudget)
}

// getBudget godoc
// @Summary Get the budget ceiling
// @Description Returns the stored ceiling, or the default when none is stored
// @Tags budget
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /budget [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// setBudget godoc
// @Summary Set the budget ceiling
// @Tags budget
// @Accept json
// @Produce json
// @Param budget body dto.SetBudgetRequest true "New ceiling"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budget [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to store budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}
