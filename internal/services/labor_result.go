package services

import (
	"fmt"
	"math"

	"labor_cost_backend/internal/models"
)

// StatusLabel returns the badge text shown for a status.
func StatusLabel(status models.LaborStatus) string {
	switch status {
	case models.StatusHealthy:
		return "Within Range"
	case models.StatusBelowRange:
		return "Below Standard"
	case models.StatusAboveRange:
		return "Above Standard"
	default:
		return "Enter Data"
	}
}

// StatusAdvice returns the analysis text for a status. NoData has none.
func StatusAdvice(status models.LaborStatus, rt models.RestaurantType) string {
	switch status {
	case models.StatusHealthy:
		return fmt.Sprintf("You are managing labor efficiently for a %s establishment. Maintain this balance.", rt)
	case models.StatusBelowRange:
		return "Your labor cost is unusually low. Ensure you aren't understaffing, which can hurt service quality and burn out staff."
	case models.StatusAboveRange:
		return "Costs are high. Consider reviewing staff schedules during slow periods, auditing overtime, or cross-training employees."
	default:
		return ""
	}
}

// TargetPercentage is the midpoint of the benchmark band, rounded to a whole percent.
func TargetPercentage(b models.Benchmark) float64 {
	return math.Round((b.Min + b.Max) / 2)
}

// DescribeResult adds the display fields to a result.
func DescribeResult(input models.FinancialInput, result models.CalculationResult) models.ResultView {
	return models.ResultView{
		CalculationResult:      result,
		LaborPercentageDisplay: FormatPercentage(result.LaborPercentage),
		StatusLabel:            StatusLabel(result.Status),
		Advice:                 StatusAdvice(result.Status, input.RestaurantType),
		GaugePercent:           math.Min(result.LaborPercentage, 100),
		TargetPercentage:       TargetPercentage(result.Benchmark),
	}
}
