package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"labor_cost_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// --- Custom Service Errors for Labor Cost ---
var (
	ErrLaborInputValidation  = errors.New("labor cost input validation error")
	ErrInvalidPeriod         = errors.New("invalid period, use Weekly, Monthly or Yearly")
	ErrInvalidRestaurantType = errors.New("invalid restaurant type, use Quick Service, Casual Dining or Fine Dining")
	ErrMalformedNumber       = errors.New("malformed numeric value")
)

// --- LaborCostService Interface ---
type LaborCostService interface {
	Normalize(input models.FinancialInput) (models.FinancialInput, error)
	Calculate(input models.FinancialInput) (*models.Calculation, error)
	LaborTotal(components models.LaborComponents) (float64, error)
	Benchmarks() []models.BenchmarkRow
	Reset() models.FinancialInput
}

// --- laborCostService Implementation ---
type laborCostService struct {
	benchmarks map[models.RestaurantType]models.Benchmark
	validate   *validator.Validate
}

// NewLaborCostService creates a new instance of LaborCostService backed by the default benchmark table.
func NewLaborCostService() LaborCostService {
	return &laborCostService{
		benchmarks: DefaultBenchmarks,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// DefaultFinancialInput is the blank calculator state.
func DefaultFinancialInput() models.FinancialInput {
	return models.FinancialInput{
		Period:         models.PeriodMonthly,
		RestaurantType: models.CasualDining,
	}
}

func (s *laborCostService) Reset() models.FinancialInput {
	return DefaultFinancialInput()
}

func (s *laborCostService) Benchmarks() []models.BenchmarkRow {
	rows := make([]models.BenchmarkRow, 0, len(models.RestaurantTypes))
	for _, rt := range models.RestaurantTypes {
		rows = append(rows, models.BenchmarkRow{RestaurantType: rt, Benchmark: BenchmarkFor(s.benchmarks, rt)})
	}
	return rows
}

func (s *laborCostService) LaborTotal(components models.LaborComponents) (float64, error) {
	if err := s.checkComponents(components); err != nil {
		return 0, err
	}
	return ComputeLaborCostTotal(components), nil
}

// Normalize applies defaults, derives the total in detailed mode and validates the result.
func (s *laborCostService) Normalize(input models.FinancialInput) (models.FinancialInput, error) {
	if input.Period == "" {
		input.Period = models.PeriodMonthly
	}
	if input.RestaurantType == "" {
		input.RestaurantType = models.CasualDining
	}

	if input.UseDetailedLabor {
		if err := s.checkComponents(input.LaborComponents); err != nil {
			return input, err
		}
		input.TotalLaborCost = ComputeLaborCostTotal(input.LaborComponents)
	}

	if !isFinite(input.Revenue) {
		return input, fmt.Errorf("%w: revenue", ErrMalformedNumber)
	}
	if !isFinite(input.TotalLaborCost) {
		return input, fmt.Errorf("%w: total labor cost", ErrMalformedNumber)
	}

	if err := s.validate.Struct(input); err != nil {
		return input, translateValidationError(err)
	}
	return input, nil
}

// Calculate normalizes the input and evaluates it against the benchmark table.
func (s *laborCostService) Calculate(input models.FinancialInput) (*models.Calculation, error) {
	normalized, err := s.Normalize(input)
	if err != nil {
		return nil, err
	}

	result := Evaluate(normalized, s.benchmarks)
	if !isFinite(result.LaborPercentage) || !isFinite(result.CostPerThousandRevenue) || !isFinite(result.AnnualProjection) {
		return nil, fmt.Errorf("%w: figures are too large to evaluate", ErrMalformedNumber)
	}

	return &models.Calculation{
		Input:      normalized,
		Result:     DescribeResult(normalized, result),
		ShareQuery: EncodeShareQuery(normalized),
	}, nil
}

func (s *laborCostService) checkComponents(components models.LaborComponents) error {
	for i, v := range components.Values() {
		if v != nil && !isFinite(*v) {
			return fmt.Errorf("%w: %s", ErrMalformedNumber, componentKeys[i])
		}
	}
	if err := s.validate.Struct(components); err != nil {
		return translateValidationError(err)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrLaborInputValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Period":
			return fmt.Errorf("%w: %q", ErrInvalidPeriod, fe.Value())
		case "RestaurantType":
			return fmt.Errorf("%w: %q", ErrInvalidRestaurantType, fe.Value())
		}
		switch fe.Tag() {
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be positive", fieldLabel(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fieldLabel(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrLaborInputValidation, strings.Join(msgs, "; "))
}

func fieldLabel(field string) string {
	switch field {
	case "Revenue":
		return "Revenue"
	case "TotalLaborCost":
		return "Labor cost"
	case "PTO":
		return "PTO"
	}
	// HourlyWages -> Hourly wages
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
