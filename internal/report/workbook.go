package report

import (
	"errors"
	"fmt"
	"io"

	"labor_cost_backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// BenchmarkSheet is the name of the benchmark table sheet.
const BenchmarkSheet = "Benchmarks"

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "Labor Cost"

// CheckSheetName reports whether name is usable as the calculation sheet:
// Excel's sheet-name rules apply and the benchmark sheet name is taken.
func CheckSheetName(name string) error {
	if name == BenchmarkSheet {
		return fmt.Errorf("sheet name %q is reserved", name)
	}
	wb := excelize.NewFile()
	defer wb.Close()
	return wb.SetSheetName("Sheet1", name)
}

type row struct {
	label string
	value interface{}
}

// BuildWorkbook lays out a calculation and the benchmark table as a two-sheet workbook.
// The caller owns the returned file and must Close it.
func BuildWorkbook(calc *models.Calculation, benchmarks []models.BenchmarkRow, sheetName string) (*excelize.File, error) {
	if calc == nil {
		return nil, errors.New("calculation is nil")
	}
	if sheetName == "" || sheetName == BenchmarkSheet {
		sheetName = DefaultSheetName
	}

	wb := excelize.NewFile()
	if err := wb.SetSheetName("Sheet1", sheetName); err != nil {
		wb.Close()
		return nil, err
	}
	if _, err := wb.NewSheet(BenchmarkSheet); err != nil {
		wb.Close()
		return nil, err
	}

	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		wb.Close()
		return nil, err
	}

	if err := writeCalculation(wb, sheetName, bold, calc); err != nil {
		wb.Close()
		return nil, err
	}
	if err := writeBenchmarks(wb, bold, benchmarks); err != nil {
		wb.Close()
		return nil, err
	}

	wb.SetActiveSheet(0)
	return wb, nil
}

// WriteWorkbook builds the workbook and streams it to w.
func WriteWorkbook(w io.Writer, calc *models.Calculation, benchmarks []models.BenchmarkRow, sheetName string) error {
	wb, err := BuildWorkbook(calc, benchmarks, sheetName)
	if err != nil {
		return err
	}
	defer wb.Close()
	return wb.Write(w)
}

func writeCalculation(wb *excelize.File, sheet string, headerStyle int, calc *models.Calculation) error {
	in := calc.Input
	res := calc.Result

	sections := []struct {
		title string
		rows  []row
	}{
		{
			title: "Financial Inputs",
			rows: []row{
				{"Period", string(in.Period)},
				{"Restaurant Type", string(in.RestaurantType)},
				{"Revenue", in.Revenue},
				{"Total Labor Cost", in.TotalLaborCost},
				{"Itemized Labor", in.UseDetailedLabor},
			},
		},
		{
			title: "Results",
			rows: []row{
				{"Labor Cost Percentage", res.LaborPercentage},
				{"Status", res.StatusLabel},
				{"Benchmark Min %", res.Benchmark.Min},
				{"Benchmark Max %", res.Benchmark.Max},
				{"Target %", res.TargetPercentage},
				{"Labor Cost per $1,000 Revenue", res.CostPerThousandRevenue},
				{"Annual Projection", res.AnnualProjection},
				{"Analysis", res.Advice},
			},
		},
	}

	if in.UseDetailedLabor {
		sections[0].rows = append(sections[0].rows, componentRows(in.LaborComponents)...)
	}

	r := 1
	for _, sec := range sections {
		if err := setRow(wb, sheet, r, sec.title, nil); err != nil {
			return err
		}
		if err := wb.SetCellStyle(sheet, cell(1, r), cell(2, r), headerStyle); err != nil {
			return err
		}
		r++
		for _, rw := range sec.rows {
			if err := setRow(wb, sheet, r, rw.label, rw.value); err != nil {
				return err
			}
			r++
		}
		r++
	}

	if err := setRow(wb, sheet, r, "Share Query", calc.ShareQuery); err != nil {
		return err
	}
	return wb.SetColWidth(sheet, "A", "A", 32)
}

func componentRows(lc models.LaborComponents) []row {
	labels := []string{"Hourly Wages", "Salaried Wages", "Overtime", "Payroll Taxes", "Benefits", "Bonuses", "PTO"}
	rows := make([]row, 0, len(labels))
	for i, v := range lc.Values() {
		amount := 0.0
		if v != nil {
			amount = *v
		}
		rows = append(rows, row{"  " + labels[i], amount})
	}
	return rows
}

func writeBenchmarks(wb *excelize.File, headerStyle int, benchmarks []models.BenchmarkRow) error {
	headers := []string{"Restaurant Type", "Min %", "Max %"}
	for i, h := range headers {
		if err := wb.SetCellValue(BenchmarkSheet, cell(i+1, 1), h); err != nil {
			return err
		}
	}
	if err := wb.SetCellStyle(BenchmarkSheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	for i, b := range benchmarks {
		r := i + 2
		if err := wb.SetCellValue(BenchmarkSheet, cell(1, r), string(b.RestaurantType)); err != nil {
			return err
		}
		if err := wb.SetCellValue(BenchmarkSheet, cell(2, r), b.Min); err != nil {
			return err
		}
		if err := wb.SetCellValue(BenchmarkSheet, cell(3, r), b.Max); err != nil {
			return err
		}
	}
	return wb.SetColWidth(BenchmarkSheet, "A", "A", 20)
}

func setRow(wb *excelize.File, sheet string, r int, label string, value interface{}) error {
	if err := wb.SetCellValue(sheet, cell(1, r), label); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return wb.SetCellValue(sheet, cell(2, r), value)
}

func cell(col, r int) string {
	name, err := excelize.CoordinatesToCellName(col, r)
	if err != nil {
		// col and r are always positive here.
		panic(fmt.Sprintf("invalid cell %d,%d: %v", col, r, err))
	}
	return name
}

// Filename returns the download name for a calculation workbook.
func Filename(calc *models.Calculation) string {
	return fmt.Sprintf("labor-cost-%s-%s.xlsx", slug(string(calc.Input.RestaurantType)), slug(string(calc.Input.Period)))
}

func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out = append(out, ch+('a'-'A'))
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return string(out)
}
