package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paymatch/backend/internal/application/usecase/rules"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/integration/entrypoint/dto"
)

// RulesController handles rule configuration endpoints.
type RulesController struct {
	getRulesUseCase    *rules.GetRulesUseCase
	updateRulesUseCase *rules.UpdateRulesUseCase
}

// NewRulesController creates a new rules controller instance.
func NewRulesController(
	getRulesUseCase *rules.GetRulesUseCase,
	updateRulesUseCase *rules.UpdateRulesUseCase,
) *RulesController {
	return &RulesController{
		getRulesUseCase:    getRulesUseCase,
		updateRulesUseCase: updateRulesUseCase,
	}
}

// Get handles GET /rules requests.
func (c *RulesController) Get(ctx *gin.Context) {
	output, err := c.getRulesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load rule configuration",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.GetRulesResponse{
		Rules:     dto.RulesToDTO(output.Rules),
		IsDefault: output.IsDefault,
	})
}

// Update handles PUT /rules requests. Invalid configurations are rejected
// with the validation error code and never persisted.
func (c *RulesController) Update(ctx *gin.Context) {
	var req dto.UpdateRulesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ruleSet, err := req.Rules.ToValueObject()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid amount tolerance",
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateRulesUseCase.Execute(ctx.Request.Context(), rules.UpdateRulesInput{
		Rules: ruleSet,
	})
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
			Error: "Failed to save rule configuration",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.GetRulesResponse{
		Rules: dto.RulesToDTO(output.Rules),
	})
}
