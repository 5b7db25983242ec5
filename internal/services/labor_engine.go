package services

import (
	"math"

	"labor_cost_backend/internal/models"
)

// DefaultBenchmarks is the industry benchmark table, in percent of revenue.
var DefaultBenchmarks = map[models.RestaurantType]models.Benchmark{
	models.QuickService: {Min: 20, Max: 25},
	models.CasualDining: {Min: 25, Max: 30},
	models.FineDining:   {Min: 30, Max: 35},
}

// PeriodMultiplier returns the factor that annualizes a cost for the period.
func PeriodMultiplier(p models.Period) float64 {
	switch p {
	case models.PeriodWeekly:
		return 52
	case models.PeriodMonthly:
		return 12
	default:
		return 1
	}
}

// BenchmarkFor looks up the benchmark for rt, falling back to Casual Dining.
func BenchmarkFor(benchmarks map[models.RestaurantType]models.Benchmark, rt models.RestaurantType) models.Benchmark {
	if b, ok := benchmarks[rt]; ok {
		return b
	}
	return DefaultBenchmarks[models.CasualDining]
}

// ComputeLaborCostTotal sums the itemized labor components. Unset components count as zero.
func ComputeLaborCostTotal(components models.LaborComponents) float64 {
	total := 0.0
	for _, v := range components.Values() {
		if v != nil {
			total += *v
		}
	}
	return total
}

// Evaluate derives the labor cost percentage, its classification and the secondary metrics.
// In detailed mode the caller must already have set TotalLaborCost from the components.
func Evaluate(input models.FinancialInput, benchmarks map[models.RestaurantType]models.Benchmark) models.CalculationResult {
	benchmark := BenchmarkFor(benchmarks, input.RestaurantType)
	result := models.CalculationResult{
		Status:           models.StatusNoData,
		Benchmark:        benchmark,
		AnnualProjection: input.TotalLaborCost * PeriodMultiplier(input.Period),
	}

	if input.Revenue > 0 {
		result.CostPerThousandRevenue = snap(input.TotalLaborCost / input.Revenue * 1000)
	}

	if input.Revenue <= 0 || input.TotalLaborCost <= 0 {
		return result
	}

	result.LaborPercentage = snap(input.TotalLaborCost / input.Revenue * 100)

	// Bounds are inclusive.
	switch {
	case result.LaborPercentage < benchmark.Min:
		result.Status = models.StatusBelowRange
	case result.LaborPercentage > benchmark.Max:
		result.Status = models.StatusAboveRange
	default:
		result.Status = models.StatusHealthy
	}
	return result
}

// snap rounds away binary noise such as 28.000000000000004 so values landing on a
// benchmark bound compare equal to it. Magnitudes too large to scale are returned as is.
func snap(v float64) float64 {
	const scale = 1e9
	if math.Abs(v) >= 1e12 {
		return v
	}
	return math.Round(v*scale) / scale
}
