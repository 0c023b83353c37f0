package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/usecase/dashboard"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles the finance aggregate endpoints.
type FinanceController struct {
	summaryUseCase   *dashboard.GetFinanceSummaryUseCase
	budgetsUseCase   *dashboard.GetBudgetUsageUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	summaryUseCase *dashboard.GetFinanceSummaryUseCase,
	budgetsUseCase *dashboard.GetBudgetUsageUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *FinanceController {
	return &FinanceController{
		summaryUseCase:   summaryUseCase,
		budgetsUseCase:   budgetsUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Summary handles GET /finance/summary requests.
func (c *FinanceController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// Budgets handles GET /finance/budgets requests.
func (c *FinanceController) Budgets(ctx *gin.Context) {
	output, err := c.budgetsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetsResponse(output))
}

// Spending handles GET /finance/spending requests.
func (c *FinanceController) Spending(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSpendingResponse(output))
}
