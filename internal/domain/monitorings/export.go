package monitorings

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	listSheet   = "Monitorings"
	reportSheet = "Report"
)

var exportHeader = []string{
	"Date",
	"Weight",
	"Vomit",
	"AM Pill",
	"PM Pill",
	"Urination",
	"Defecation",
	"Walks",
	"Custom Symptom",
	"Custom Symptom Name",
	"Custom Value",
	"Custom Value Name",
	"Notes",
}

// Export arma un .xlsx con las entradas del rango y el reporte.
func (s *Service) Export(ctx context.Context, petID, start, end, username string) ([]byte, error) {
	items, rep, err := s.listAndReport(ctx, petID, start, end, username)
	if err != nil {
		return nil, err
	}

	b, err := renderWorkbook(items, rep)
	if err != nil {
		s.log.Error("monitoring export failed", map[string]any{"pet_id": petID, "error": err})
		return nil, err
	}
	return b, nil
}

func renderWorkbook(items []Monitoring, rep Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(listSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(reportSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(listSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(listSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, m := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []any{
			m.Date.Format(BodyDateLayout),
			m.Weight,
			m.Vomit,
			m.AmPill,
			m.PmPill,
			m.Urination,
			m.Defecation,
			m.WalkCnt,
			optionalBool(m.CustomSymptom),
			m.CustomSymptomName,
			optionalInt(m.CustomInt),
			m.CustomIntName,
			m.Notes,
		}
		if err := f.SetSheetRow(listSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	reportRows := [][]any{
		{"Start", rep.Start.Format(BodyDateLayout)},
		{"End", rep.End.Format(BodyDateLayout)},
		{"Days", rep.Days},
		{"Weight Avg", rep.WeightAvg},
		{"Vomit Count", rep.VomitCount},
		{"AM Pill Taken", rep.AmPillTrue},
		{"PM Pill Taken", rep.PmPillTrue},
		{"Urination Avg", rep.UrinationAvg},
		{"Defecation Avg", rep.DefecationAvg},
		{"Walk Avg", rep.WalkAvg},
		{"Custom Symptom Name", rep.CustomSymptomName},
		{"Custom Symptom Count", rep.CustomSymptomCount},
		{"Custom Symptom True", rep.CustomSymptomTrue},
		{"Custom Value Name", rep.CustomIntName},
		{"Custom Value Count", rep.CustomIntCount},
		{"Custom Value Avg", rep.CustomIntAvg},
	}
	for i, row := range reportRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(reportSheet, "A1", fmt.Sprintf("A%d", len(reportRows)), headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set report style: %w", err)
	}
	_ = f.SetColWidth(listSheet, "A", "A", 12)
	_ = f.SetColWidth(listSheet, "M", "M", 40)
	_ = f.SetColWidth(reportSheet, "A", "A", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// nil se exporta como celda vacía.
func optionalBool(v *bool) any {
	if v == nil {
		return ""
	}
	return *v
}

func optionalInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
