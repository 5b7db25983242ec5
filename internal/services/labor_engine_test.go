package services

import (
	"testing"

	"labor_cost_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestComputeLaborCostTotal(t *testing.T) {
	tests := []struct {
		name       string
		components models.LaborComponents
		want       float64
	}{
		{name: "all absent", components: models.LaborComponents{}, want: 0},
		{
			name: "all zero",
			components: models.LaborComponents{
				HourlyWages: f64(0), SalariedWages: f64(0), Overtime: f64(0), PayrollTaxes: f64(0),
				Benefits: f64(0), Bonuses: f64(0), PTO: f64(0),
			},
			want: 0,
		},
		{
			name: "all set",
			components: models.LaborComponents{
				HourlyWages: f64(12000), SalariedWages: f64(8000), Overtime: f64(1500), PayrollTaxes: f64(2000),
				Benefits: f64(1200), Bonuses: f64(500), PTO: f64(800),
			},
			want: 26000,
		},
		{
			name:       "some missing",
			components: models.LaborComponents{HourlyWages: f64(100.5), PTO: f64(49.5)},
			want:       150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLaborCostTotal(tt.components))
		})
	}
}

func TestComputeLaborCostTotal_OrderIndependent(t *testing.T) {
	a := models.LaborComponents{HourlyWages: f64(3), Overtime: f64(5), Bonuses: f64(7)}
	b := models.LaborComponents{Bonuses: f64(3), SalariedWages: f64(5), PTO: f64(7)}
	assert.Equal(t, ComputeLaborCostTotal(a), ComputeLaborCostTotal(b))
}

func TestEvaluate_NoData(t *testing.T) {
	tests := []struct {
		name    string
		revenue float64
		labor   float64
	}{
		{"zero revenue", 0, 500},
		{"zero labor", 1000, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		for _, rt := range models.RestaurantTypes {
			t.Run(tt.name+"/"+string(rt), func(t *testing.T) {
				res := Evaluate(models.FinancialInput{
					Period:         models.PeriodMonthly,
					RestaurantType: rt,
					Revenue:        tt.revenue,
					TotalLaborCost: tt.labor,
				}, DefaultBenchmarks)

				assert.Equal(t, models.StatusNoData, res.Status)
				assert.Equal(t, 0.0, res.LaborPercentage)
			})
		}
	}
}

func TestEvaluate_Classification(t *testing.T) {
	tests := []struct {
		name       string
		rt         models.RestaurantType
		revenue    float64
		labor      float64
		wantPct    float64
		wantStatus models.LaborStatus
	}{
		{"casual dining healthy", models.CasualDining, 1000, 280, 28, models.StatusHealthy},
		{"quick service above range", models.QuickService, 1000, 300, 30, models.StatusAboveRange},
		{"fine dining below range", models.FineDining, 1000, 200, 20, models.StatusBelowRange},
		{"quick service at min", models.QuickService, 1000, 200, 20, models.StatusHealthy},
		{"quick service at max", models.QuickService, 1000, 250, 25, models.StatusHealthy},
		{"casual dining at min", models.CasualDining, 1000, 250, 25, models.StatusHealthy},
		{"casual dining at max", models.CasualDining, 1000, 300, 30, models.StatusHealthy},
		{"fine dining at min", models.FineDining, 1000, 300, 30, models.StatusHealthy},
		{"fine dining at max", models.FineDining, 1000, 350, 35, models.StatusHealthy},
		{"fine dining just above", models.FineDining, 1000, 351, 35.1, models.StatusAboveRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(models.FinancialInput{
				Period:         models.PeriodMonthly,
				RestaurantType: tt.rt,
				Revenue:        tt.revenue,
				TotalLaborCost: tt.labor,
			}, DefaultBenchmarks)

			assert.Equal(t, tt.wantPct, res.LaborPercentage)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, DefaultBenchmarks[tt.rt], res.Benchmark)
		})
	}
}

func TestEvaluate_UnknownRestaurantTypeFallsBackToCasualDining(t *testing.T) {
	res := Evaluate(models.FinancialInput{
		Period:         models.PeriodMonthly,
		RestaurantType: "Food Truck",
		Revenue:        1000,
		TotalLaborCost: 280,
	}, DefaultBenchmarks)

	assert.Equal(t, models.Benchmark{Min: 25, Max: 30}, res.Benchmark)
	assert.Equal(t, models.StatusHealthy, res.Status)
}

func TestEvaluate_AnnualProjection(t *testing.T) {
	tests := []struct {
		period models.Period
		want   float64
	}{
		{models.PeriodWeekly, 52000},
		{models.PeriodMonthly, 12000},
		{models.PeriodYearly, 1000},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			res := Evaluate(models.FinancialInput{
				Period:         tt.period,
				RestaurantType: models.CasualDining,
				Revenue:        4000,
				TotalLaborCost: 1000,
			}, DefaultBenchmarks)
			assert.Equal(t, tt.want, res.AnnualProjection)
		})
	}
}

func TestEvaluate_CostPerThousandRevenue(t *testing.T) {
	res := Evaluate(models.FinancialInput{
		Period:         models.PeriodMonthly,
		RestaurantType: models.CasualDining,
		Revenue:        50000,
		TotalLaborCost: 14000,
	}, DefaultBenchmarks)
	assert.Equal(t, 280.0, res.CostPerThousandRevenue)

	res = Evaluate(models.FinancialInput{
		Period:         models.PeriodMonthly,
		RestaurantType: models.CasualDining,
		TotalLaborCost: 14000,
	}, DefaultBenchmarks)
	assert.Equal(t, 0.0, res.CostPerThousandRevenue)
}

func TestEvaluate_Idempotent(t *testing.T) {
	input := models.FinancialInput{
		Period:         models.PeriodWeekly,
		RestaurantType: models.FineDining,
		Revenue:        18750.25,
		TotalLaborCost: 6123.4,
	}
	assert.Equal(t, Evaluate(input, DefaultBenchmarks), Evaluate(input, DefaultBenchmarks))
}

func TestPeriodMultiplier(t *testing.T) {
	assert.Equal(t, 52.0, PeriodMultiplier(models.PeriodWeekly))
	assert.Equal(t, 12.0, PeriodMultiplier(models.PeriodMonthly))
	assert.Equal(t, 1.0, PeriodMultiplier(models.PeriodYearly))
}

func TestEvaluate_LargeFiniteFiguresStayFinite(t *testing.T) {
	res := Evaluate(models.FinancialInput{
		Period:         models.PeriodYearly,
		RestaurantType: models.CasualDining,
		Revenue:        1e307,
		TotalLaborCost: 1e307,
	}, DefaultBenchmarks)

	assert.Equal(t, 100.0, res.LaborPercentage)
	assert.Equal(t, 1000.0, res.CostPerThousandRevenue)
	assert.Equal(t, models.StatusAboveRange, res.Status)
}

func TestEvaluate_FractionalBoundsStayExact(t *testing.T) {
	res := Evaluate(models.FinancialInput{
		Period:         models.PeriodMonthly,
		RestaurantType: models.FineDining,
		Revenue:        1000,
		TotalLaborCost: 351,
	}, DefaultBenchmarks)
	assert.Equal(t, 35.1, res.LaborPercentage)
	assert.Equal(t, 351.0, res.CostPerThousandRevenue)
}
