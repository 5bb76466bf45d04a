package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

const (
	SheetObservations = "Observations"
	SheetDaily        = "Daily"
)

var (
	observationHeader = []interface{}{
		"Province/State", "Country/Region", "Lat", "Long", "Date",
		"Confirmed", "Deaths", "Recovered", "Active", "WHO Region",
		"Case Fatality Rate (%)", "Recovery Rate (%)", "Active Case Ratio (%)",
	}
	dailyHeader = []interface{}{
		"Date", "Confirmed", "Deaths", "Recovered", "Active",
		"Case Fatality Rate (%)", "Recovery Rate (%)", "Active Case Ratio (%)",
	}
)

// Write renders a workbook with one row per observation and one row per day.
func Write(w io.Writer, rows []domain.Observation, days []domain.DailyTotals) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetObservations); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeObservations(f, rows); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetDaily); err != nil {
		return fmt.Errorf("create daily sheet: %w", err)
	}
	if err := writeDaily(f, days); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeObservations(f *excelize.File, rows []domain.Observation) error {
	sw, err := f.NewStreamWriter(SheetObservations)
	if err != nil {
		return fmt.Errorf("observations stream: %w", err)
	}
	if err := sw.SetRow("A1", observationHeader); err != nil {
		return fmt.Errorf("observations header: %w", err)
	}
	for i, o := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		err := sw.SetRow(cell, []interface{}{
			o.ProvinceState, o.CountryRegion, o.Lat, o.Long, o.Date.Format(domain.DateLayout),
			o.Confirmed, o.Deaths, o.Recovered, o.Active, o.WHORegion,
			round2(o.CFR()), round2(o.RecoveryRate()), round2(o.ActiveRatio()),
		})
		if err != nil {
			return fmt.Errorf("observation row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("observations flush: %w", err)
	}
	return nil
}

func writeDaily(f *excelize.File, days []domain.DailyTotals) error {
	if err := f.SetSheetRow(SheetDaily, "A1", &dailyHeader); err != nil {
		return fmt.Errorf("daily header: %w", err)
	}
	for i, d := range days {
		r := d.Totals.Rates()
		row := []interface{}{
			d.Date.Format(domain.DateLayout),
			d.Confirmed, d.Deaths, d.Recovered, d.Active,
			round2(r.CFR), round2(r.RecoveryRate), round2(r.ActiveRatio),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetDaily, cell, &row); err != nil {
			return fmt.Errorf("daily row %d: %w", i+2, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
