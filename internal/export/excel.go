package export

import (
	"fmt"

	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Forms"

var headers = []string{
	"Form Number", "Type", "Amount", "Status",
	"Cost Center", "Customer", "Submitted By", "Date Created",
}

// Reporter writes form listings to Excel workbooks
type Reporter struct {
	logger *zap.Logger
}

// NewReporter creates an Excel reporter
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// WriteForms writes the given forms to an .xlsx workbook at path,
// one row per form in the order given
func (r *Reporter) WriteForms(path string, forms []entity.Form) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, form := range forms {
		row := i + 2
		values := []interface{}{
			form.FormNumber,
			form.FormType.Label(),
			form.TotalAmount.String(),
			form.Status.String(),
			form.CostCenter.Name,
			form.CostCenter.Customer.Name,
			form.SubmittedBy.FullName,
			form.DateCreated.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "H", 18); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	r.logger.Info("Exported forms to Excel",
		zap.String("path", path),
		zap.Int("count", len(forms)))
	return nil
}
