package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/models"
)

// ExportHandler serves Excel downloads of the at-risk keyword list.
type ExportHandler struct {
	data *dataset.Store
}

// NewExportHandler creates a new export handler.
func NewExportHandler(data *dataset.Store) *ExportHandler {
	return &ExportHandler{data: data}
}

// AtRisk streams an xlsx workbook of every at-risk keyword in the current
// filter, not just the first page the dashboard table shows.
func (h *ExportHandler) AtRisk(c fiber.Ctx) error {
	filter := c.Query("category", models.FilterAll)
	failing := dataset.AtRisk(h.data.Records(), filter, 0)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "At Risk"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Keyword", "Category", "Google #1 Brand", "AI Recommendations"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, rec := range failing {
		values := []any{rec.Keyword, string(rec.Category()), rec.GoogleTopBrand, rec.FormattedRecs()}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="at_risk_keywords.xlsx"`)
	return c.Send(buf.Bytes())
}
