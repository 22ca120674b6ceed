package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mintmind/backend/internal/application/usecase/dashboard"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/entrypoint/dto"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase     *dashboard.GetSummaryUseCase
	dailySeriesUseCase *dashboard.GetDailySeriesUseCase
	breakdownUseCase   *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	dailySeriesUseCase *dashboard.GetDailySeriesUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:     summaryUseCase,
		dailySeriesUseCase: dailySeriesUseCase,
		breakdownUseCase:   breakdownUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{
		UserID: userID,
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := time.Parse("2006-01", monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM",
			})
			return
		}
		input.Month = month
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetDailySeries handles GET /dashboard/daily-series requests.
func (c *DashboardController) GetDailySeries(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetDailySeriesInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = endDate
	}

	output, err := c.dailySeriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySeriesResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetCategoryBreakdownInput{
		UserID: userID,
		Type:   entity.TransactionType(ctx.Query("type")),
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = endDate
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}
