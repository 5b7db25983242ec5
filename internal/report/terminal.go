package report

import (
	"fmt"
	"strings"

	"labor_cost_backend/internal/models"
	"labor_cost_backend/pkg/utils"

	"github.com/charmbracelet/lipgloss"
)

const boxWidth = 64

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Width(30)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(boxWidth)

	statusColors = map[models.LaborStatus]lipgloss.Color{
		models.StatusHealthy:    lipgloss.Color("#22C55E"),
		models.StatusBelowRange: lipgloss.Color("#F59E0B"),
		models.StatusAboveRange: lipgloss.Color("#EF4444"),
		models.StatusNoData:     lipgloss.Color("#888888"),
	}
)

// RenderTerminal renders a calculation as a boxed plain-text report.
func RenderTerminal(calc *models.Calculation) string {
	in := calc.Input
	res := calc.Result

	inputs := []string{
		titleStyle.Render("Financial Inputs"),
		line("Period", string(in.Period)),
		line("Restaurant type", string(in.RestaurantType)),
		line("Revenue", "$"+utils.FormatMoney(in.Revenue)),
		line("Total labor cost", "$"+utils.FormatMoney(in.TotalLaborCost)),
	}
	if in.UseDetailedLabor {
		inputs = append(inputs, line("Itemized", "yes"))
	}

	if res.Status == models.StatusNoData {
		body := strings.Join(append(inputs, "", "Enter your revenue and labor costs to see the analysis."), "\n")
		return boxStyle.Render(body)
	}

	status := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColors[res.Status]).
		Render(res.StatusLabel)

	results := []string{
		titleStyle.Render("Labor Cost Percentage"),
		line("Labor cost", res.LaborPercentageDisplay),
		line("Status", status),
		line("Benchmark", fmt.Sprintf("%s%% - %s%%", utils.FormatDecimal(res.Benchmark.Min), utils.FormatDecimal(res.Benchmark.Max))),
		line("Target", utils.FormatDecimal(res.TargetPercentage)+"%"),
		"",
		titleStyle.Render("Analysis"),
		res.Advice,
		"",
		line("Per $1,000 revenue", "$"+utils.FormatMoney(res.CostPerThousandRevenue)),
		line("Annual projection", "$"+utils.FormatMoney(res.AnnualProjection)),
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(inputs, "\n"),
		"",
		strings.Join(results, "\n"),
	)
	return boxStyle.Render(body)
}

func line(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
