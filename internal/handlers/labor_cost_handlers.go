package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"labor_cost_backend/internal/models"
	"labor_cost_backend/internal/report"
	"labor_cost_backend/internal/services"
	"labor_cost_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LaborCostHandler holds the labor cost service.
type LaborCostHandler struct {
	laborService services.LaborCostService
	sheetName    string
}

// NewLaborCostHandler creates a new LaborCostHandler.
func NewLaborCostHandler(ls services.LaborCostService, sheetName string) *LaborCostHandler {
	return &LaborCostHandler{laborService: ls, sheetName: sheetName}
}

// ShareLinkResponse is returned by CreateShareLink.
type ShareLinkResponse struct {
	Query string                `json:"query"`
	Input models.FinancialInput `json:"input"`
}

// GetBenchmarks lists the benchmark band of every restaurant type.
func (h *LaborCostHandler) GetBenchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, h.laborService.Benchmarks())
}

// GetDefaults returns the blank calculator state.
func (h *LaborCostHandler) GetDefaults(c *gin.Context) {
	input := h.laborService.Reset()
	c.JSON(http.StatusOK, ShareLinkResponse{Query: services.EncodeShareQuery(input), Input: input})
}

// ComputeLaborTotal sums itemized labor components.
func (h *LaborCostHandler) ComputeLaborTotal(c *gin.Context) {
	var components models.LaborComponents
	if err := c.ShouldBindJSON(&components); err != nil {
		utils.LogWarn(err, "ComputeLaborTotal: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}

	total, err := h.laborService.LaborTotal(components)
	if err != nil {
		respondServiceError(c, "ComputeLaborTotal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_labor_cost": total})
}

// EvaluateJSON evaluates a FinancialInput posted as JSON.
func (h *LaborCostHandler) EvaluateJSON(c *gin.Context) {
	var input models.FinancialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.LogWarn(err, "EvaluateJSON: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}
	h.evaluate(c, input)
}

// EvaluateQuery evaluates a FinancialInput encoded as share-link query parameters.
func (h *LaborCostHandler) EvaluateQuery(c *gin.Context) {
	input, err := services.DecodeShareQuery(c.Request.URL.Query())
	if err != nil {
		respondServiceError(c, "EvaluateQuery", err)
		return
	}
	h.evaluate(c, input)
}

func (h *LaborCostHandler) evaluate(c *gin.Context, input models.FinancialInput) {
	calc, err := h.laborService.Calculate(input)
	if err != nil {
		respondServiceError(c, "Evaluate", err)
		return
	}
	utils.LogDebug("Labor cost evaluated", map[string]interface{}{
		"restaurant_type":  calc.Input.RestaurantType,
		"period":           calc.Input.Period,
		"labor_percentage": calc.Result.LaborPercentage,
		"status":           calc.Result.Status,
	})
	c.JSON(http.StatusOK, calc)
}

// CreateShareLink normalizes a posted input and returns its share query.
func (h *LaborCostHandler) CreateShareLink(c *gin.Context) {
	var input models.FinancialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.LogWarn(err, "CreateShareLink: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}

	normalized, err := h.laborService.Normalize(input)
	if err != nil {
		respondServiceError(c, "CreateShareLink", err)
		return
	}
	c.JSON(http.StatusOK, ShareLinkResponse{Query: services.EncodeShareQuery(normalized), Input: normalized})
}

// DownloadReport evaluates a share-link query and streams the result as an xlsx workbook.
func (h *LaborCostHandler) DownloadReport(c *gin.Context) {
	input, err := services.DecodeShareQuery(c.Request.URL.Query())
	if err != nil {
		respondServiceError(c, "DownloadReport", err)
		return
	}
	calc, err := h.laborService.Calculate(input)
	if err != nil {
		respondServiceError(c, "DownloadReport", err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, calc, h.laborService.Benchmarks(), h.sheetName); err != nil {
		utils.LogError(err, "DownloadReport: Failed to build workbook")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(calc)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func respondServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrLaborInputValidation),
		errors.Is(err, services.ErrInvalidPeriod),
		errors.Is(err, services.ErrInvalidRestaurantType),
		errors.Is(err, services.ErrMalformedNumber):
		utils.LogWarn(err, op+": Rejected input")
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.LogError(err, op+": Unexpected error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to evaluate labor cost.", "Internal error"))
	}
}
