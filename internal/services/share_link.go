package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"labor_cost_backend/internal/models"
	"labor_cost_backend/pkg/utils"
)

// Query keys of a shareable calculator link.
const (
	QueryKeyPeriod           = "period"
	QueryKeyRestaurantType   = "restaurantType"
	QueryKeyRevenue          = "revenue"
	QueryKeyTotalLaborCost   = "totalLaborCost"
	QueryKeyUseDetailedLabor = "useDetailedLabor"
)

// componentKeys follows the order of models.LaborComponents.Values.
var componentKeys = []string{"hourlyWages", "salariedWages", "overtime", "payrollTaxes", "benefits", "bonuses", "pto"}

// EncodeShareQuery serializes an input into URL query parameters, one key per field.
func EncodeShareQuery(input models.FinancialInput) string {
	values := url.Values{}
	values.Set(QueryKeyPeriod, string(input.Period))
	values.Set(QueryKeyRestaurantType, string(input.RestaurantType))
	values.Set(QueryKeyRevenue, utils.FormatDecimal(input.Revenue))
	values.Set(QueryKeyTotalLaborCost, utils.FormatDecimal(input.TotalLaborCost))
	values.Set(QueryKeyUseDetailedLabor, strconv.FormatBool(input.UseDetailedLabor))

	for i, v := range input.LaborComponents.Values() {
		if v != nil {
			values.Set(componentKeys[i], utils.FormatDecimal(*v))
		}
	}
	return values.Encode()
}

// DecodeShareQuery restores an input from URL query parameters.
// Missing keys fall back to the blank calculator state; present but non-numeric numbers are rejected.
func DecodeShareQuery(values url.Values) (models.FinancialInput, error) {
	input := DefaultFinancialInput()

	if v := strings.TrimSpace(values.Get(QueryKeyPeriod)); v != "" {
		input.Period = models.Period(v)
	}
	if v := strings.TrimSpace(values.Get(QueryKeyRestaurantType)); v != "" {
		input.RestaurantType = models.RestaurantType(v)
	}
	input.UseDetailedLabor = values.Get(QueryKeyUseDetailedLabor) == "true"

	var err error
	if input.Revenue, err = decodeNumber(values, QueryKeyRevenue); err != nil {
		return input, err
	}
	if input.TotalLaborCost, err = decodeNumber(values, QueryKeyTotalLaborCost); err != nil {
		return input, err
	}

	targets := []**float64{
		&input.LaborComponents.HourlyWages,
		&input.LaborComponents.SalariedWages,
		&input.LaborComponents.Overtime,
		&input.LaborComponents.PayrollTaxes,
		&input.LaborComponents.Benefits,
		&input.LaborComponents.Bonuses,
		&input.LaborComponents.PTO,
	}
	for i, key := range componentKeys {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			continue
		}
		n, err := utils.ParseDecimal(raw)
		if err != nil {
			return input, fmt.Errorf("%w: %s=%q", ErrMalformedNumber, key, raw)
		}
		*targets[i] = &n
	}
	return input, nil
}

func decodeNumber(values url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := utils.ParseDecimal(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedNumber, key, raw)
	}
	return n, nil
}
