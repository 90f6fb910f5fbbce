package export

import (
	"io"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	sheetForecasts = "Forecasts"
	sheetAccuracy  = "Accuracy"
	sheetHistory   = "History"
)

// WriteXLSX escreve uma planilha com as abas de previsões, acurácia e histórico
func WriteXLSX(w io.Writer, report *domain.ForecastReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetForecasts); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetAccuracy); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetHistory); err != nil {
		return err
	}

	if err := writeRows(f, sheetForecasts, forecastHeader, forecastCells(report)); err != nil {
		return err
	}
	if err := writeRows(f, sheetAccuracy, accuracyHeader, accuracyCells(report)); err != nil {
		return err
	}
	if err := writeRows(f, sheetHistory, historyHeader, historyCells(report)); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}

	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func forecastCells(report *domain.ForecastReport) [][]interface{} {
	if report == nil {
		return nil
	}

	rows := make([][]interface{}, 0, len(report.Forecasts))
	for _, p := range report.Forecasts {
		rows = append(rows, []interface{}{
			p.TargetMonthDate.Format(time.DateOnly),
			p.StrategyLabel,
			utils.RoundWithTwoDecimalPlace(p.PredictedValue),
		})
	}
	return rows
}

func accuracyCells(report *domain.ForecastReport) [][]interface{} {
	scores := sortedAccuracy(report)

	rows := make([][]interface{}, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, []interface{}{
			score.StrategyLabel,
			utils.RoundWithTwoDecimalPlace(score.MeanAbsolutePercentageError),
			score.Formatted,
		})
	}
	return rows
}

func historyCells(report *domain.ForecastReport) [][]interface{} {
	if report == nil {
		return nil
	}

	rows := make([][]interface{}, 0, len(report.History))
	for _, obs := range report.History {
		rows = append(rows, []interface{}{
			obs.MonthIndex,
			obs.MonthDate.Format(time.DateOnly),
			obs.TotalSales.InexactFloat64(),
			obs.TotalProfit.InexactFloat64(),
			obs.OrderCount,
		})
	}
	return rows
}
