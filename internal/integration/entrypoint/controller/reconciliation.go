package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
	"github.com/paymatch/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	runUseCase        *reconciliation.RunReconciliationUseCase
	getResultsUseCase *reconciliation.GetResultsUseCase
	getSummaryUseCase *reconciliation.GetSummaryUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	runUseCase *reconciliation.RunReconciliationUseCase,
	getResultsUseCase *reconciliation.GetResultsUseCase,
	getSummaryUseCase *reconciliation.GetSummaryUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		runUseCase:        runUseCase,
		getResultsUseCase: getResultsUseCase,
		getSummaryUseCase: getSummaryUseCase,
	}
}

// Run handles POST /reconciliation/run requests.
func (c *ReconciliationController) Run(ctx *gin.Context) {
	var req dto.RunReconciliationRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}
	}

	input := reconciliation.RunReconciliationInput{}
	if req.Rules != nil {
		rules, err := req.Rules.ToValueObject()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid rules override",
				Details: err.Error(),
			})
			return
		}
		input.RulesOverride = &rules
	}

	output, err := c.runUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var rulesErr *domainerror.RulesError
		if errors.As(err, &rulesErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: rulesErr.Message,
				Code:  string(rulesErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to run reconciliation",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RunReconciliationResponse{
		Results: dto.ResultsToDTO(output.Results),
		Summary: dto.SummaryToDTO(output.Summary),
	})
}

// GetResults handles GET /reconciliation/results requests.
func (c *ReconciliationController) GetResults(ctx *gin.Context) {
	filter, err := parseResultFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid filter parameters",
			Details: err.Error(),
		})
		return
	}

	output, err := c.getResultsUseCase.Execute(ctx.Request.Context(), reconciliation.GetResultsInput{
		Filter: filter,
	})
	if err != nil {
		respondResultStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetResultsResponse{
		Results: dto.ResultsToDTO(output.Results),
		Total:   output.Total,
	})
}

// GetSummary handles GET /reconciliation/summary requests.
func (c *ReconciliationController) GetSummary(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondResultStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetSummaryResponse{
		Summary: dto.SummaryToDTO(output.Summary),
	})
}

// parseResultFilter builds a ResultFilter from query parameters. All
// parameters are optional; unset ones impose no constraint.
func parseResultFilter(ctx *gin.Context) (valueobject.ResultFilter, error) {
	var filter valueobject.ResultFilter

	if statuses := ctx.Query("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			filter.Dispositions = append(filter.Dispositions, valueobject.Disposition(strings.TrimSpace(s)))
		}
	}

	if from := ctx.Query("date_from"); from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return valueobject.ResultFilter{}, err
		}
		filter.DateFrom = &t
	}
	if to := ctx.Query("date_to"); to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return valueobject.ResultFilter{}, err
		}
		filter.DateTo = &t
	}

	if min := ctx.Query("amount_min"); min != "" {
		d, err := decimal.NewFromString(min)
		if err != nil {
			return valueobject.ResultFilter{}, err
		}
		filter.AmountMin = &d
	}
	if max := ctx.Query("amount_max"); max != "" {
		d, err := decimal.NewFromString(max)
		if err != nil {
			return valueobject.ResultFilter{}, err
		}
		filter.AmountMax = &d
	}

	filter.Search = ctx.Query("q")

	return filter, nil
}

// respondResultStoreError maps result store errors to HTTP responses.
func respondResultStoreError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrNoReconciliationRun) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No reconciliation run available; trigger a run first",
			Code:  string(domainerror.ErrCodeNoReconciliationRun),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to load reconciliation results",
	})
}
