package models

// Period is the reporting cadence of the supplied figures.
type Period string

const (
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
	PeriodYearly  Period = "Yearly"
)

// Periods lists the supported periods in display order.
var Periods = []Period{PeriodWeekly, PeriodMonthly, PeriodYearly}

// RestaurantType selects the benchmark row.
type RestaurantType string

const (
	QuickService RestaurantType = "Quick Service"
	CasualDining RestaurantType = "Casual Dining"
	FineDining   RestaurantType = "Fine Dining"
)

// RestaurantTypes lists the supported restaurant types in display order.
var RestaurantTypes = []RestaurantType{QuickService, CasualDining, FineDining}

// LaborComponents itemizes labor cost for detailed labor mode.
// A nil field means the value was never entered.
type LaborComponents struct {
	HourlyWages   *float64 `json:"hourly_wages,omitempty" validate:"omitempty,min=0"`
	SalariedWages *float64 `json:"salaried_wages,omitempty" validate:"omitempty,min=0"`
	Overtime      *float64 `json:"overtime,omitempty" validate:"omitempty,min=0"`
	PayrollTaxes  *float64 `json:"payroll_taxes,omitempty" validate:"omitempty,min=0"`
	Benefits      *float64 `json:"benefits,omitempty" validate:"omitempty,min=0"`
	Bonuses       *float64 `json:"bonuses,omitempty" validate:"omitempty,min=0"`
	PTO           *float64 `json:"pto,omitempty" validate:"omitempty,min=0"`
}

// Values returns the components in entry order, nil for unset ones.
func (lc LaborComponents) Values() []*float64 {
	return []*float64{
		lc.HourlyWages,
		lc.SalariedWages,
		lc.Overtime,
		lc.PayrollTaxes,
		lc.Benefits,
		lc.Bonuses,
		lc.PTO,
	}
}

// FinancialInput holds the figures a user enters for one period.
type FinancialInput struct {
	Period           Period          `json:"period" validate:"required,oneof=Weekly Monthly Yearly"`
	RestaurantType   RestaurantType  `json:"restaurant_type" validate:"required,oneof='Quick Service' 'Casual Dining' 'Fine Dining'"`
	Revenue          float64         `json:"revenue" validate:"min=0"`
	TotalLaborCost   float64         `json:"total_labor_cost" validate:"min=0"`
	UseDetailedLabor bool            `json:"use_detailed_labor"`
	LaborComponents  LaborComponents `json:"labor_components"`
}

// Benchmark is the healthy labor cost percentage band for a restaurant type.
type Benchmark struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BenchmarkRow pairs a restaurant type with its benchmark, for listing.
type BenchmarkRow struct {
	RestaurantType RestaurantType `json:"restaurant_type"`
	Benchmark
}

// LaborStatus classifies a labor cost percentage against its benchmark.
type LaborStatus string

const (
	StatusNoData     LaborStatus = "no_data"
	StatusHealthy    LaborStatus = "healthy"
	StatusBelowRange LaborStatus = "below_range"
	StatusAboveRange LaborStatus = "above_range"
)

// CalculationResult is derived from a FinancialInput and never stored.
type CalculationResult struct {
	LaborPercentage        float64     `json:"labor_percentage"`
	Status                 LaborStatus `json:"status"`
	Benchmark              Benchmark   `json:"benchmark"`
	CostPerThousandRevenue float64     `json:"cost_per_thousand_revenue"`
	AnnualProjection       float64     `json:"annual_projection"`
}

// ResultView decorates a CalculationResult with the display fields used by clients.
type ResultView struct {
	CalculationResult
	LaborPercentageDisplay string  `json:"labor_percentage_display"`
	StatusLabel            string  `json:"status_label"`
	Advice                 string  `json:"advice,omitempty"`
	GaugePercent           float64 `json:"gauge_percent"`
	TargetPercentage       float64 `json:"target_percentage"`
}

// Calculation is the response of a full evaluation.
type Calculation struct {
	Input      FinancialInput `json:"input"`
	Result     ResultView     `json:"result"`
	ShareQuery string         `json:"share_query"`
}
