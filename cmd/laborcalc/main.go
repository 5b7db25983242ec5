package main

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"labor_cost_backend/internal/models"
	"labor_cost_backend/internal/report"
	"labor_cost_backend/internal/services"
	"labor_cost_backend/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("laborcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	periodNames := make([]string, 0, len(models.Periods))
	for _, p := range models.Periods {
		periodNames = append(periodNames, string(p))
	}
	period := fs.String("period", string(models.PeriodMonthly), "reporting period: "+strings.Join(periodNames, ", "))
	restaurantType := fs.String("type", string(models.CasualDining), `restaurant type: "Quick Service", "Casual Dining" or "Fine Dining"`)
	revenue := fs.Float64("revenue", 0, "gross sales for the period")
	labor := fs.Float64("labor", 0, "total labor cost for the period (ignored with -detailed)")
	detailed := fs.Bool("detailed", false, "sum itemized labor components instead of -labor")
	query := fs.String("query", "", "share-link query string; overrides the other input flags")
	share := fs.Bool("share", false, "print the share-link query after the report")
	verbose := fs.Bool("v", false, "debug logging to stderr")

	componentFlags := []struct {
		name  string
		usage string
	}{
		{"hourly-wages", "hourly wages"},
		{"salaried-wages", "salaried wages"},
		{"overtime", "overtime"},
		{"payroll-taxes", "payroll taxes"},
		{"benefits", "benefits"},
		{"bonuses", "bonuses"},
		{"pto", "paid time off"},
	}
	componentValues := make([]*float64, len(componentFlags))
	for i, cf := range componentFlags {
		componentValues[i] = fs.Float64(cf.name, 0, cf.usage+" (with -detailed)")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	utils.InitLoggerTo(stderr, level, "console")

	var input models.FinancialInput
	if *query != "" {
		values, err := url.ParseQuery(strings.TrimPrefix(*query, "?"))
		if err != nil {
			fmt.Fprintf(stderr, "invalid -query: %v\n", err)
			return 2
		}
		input, err = services.DecodeShareQuery(values)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -query: %v\n", err)
			return 2
		}
	} else {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

		input = models.FinancialInput{
			Period:           models.Period(*period),
			RestaurantType:   models.RestaurantType(*restaurantType),
			Revenue:          *revenue,
			TotalLaborCost:   *labor,
			UseDetailedLabor: *detailed,
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
		for i, cf := range componentFlags {
			if set[cf.name] {
				*targets[i] = componentValues[i]
			}
		}
	}

	svc := services.NewLaborCostService()
	calc, err := svc.Calculate(input)
	if err != nil {
		utils.LogDebug("rejected input", map[string]interface{}{"error": err.Error()})
		fmt.Fprintf(stderr, "invalid input: %v\n", err)
		return 2
	}

	fmt.Fprintln(stdout, report.RenderTerminal(calc))
	if *share {
		fmt.Fprintln(stdout, "?"+calc.ShareQuery)
	}
	return 0
}
