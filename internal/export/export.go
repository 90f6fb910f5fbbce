// Package export serializa relatórios de previsão em formatos para download
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat indica um formato de exportação desconhecido
var ErrUnsupportedFormat = errors.New("formato de exportação não suportado")

// ParseFormat converte o texto recebido em Format. Vazio equivale a csv.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
}

// ContentType retorna o MIME do formato
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName monta o nome do arquivo de download. Ex: forecast_20240701_020000.csv
func FileName(f Format, generatedAt time.Time) string {
	return fmt.Sprintf("forecast_%s.%s", generatedAt.Format("20060102_150405"), f)
}

// Write serializa o relatório no formato informado
func Write(w io.Writer, f Format, report *domain.ForecastReport) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

var (
	forecastHeader = []string{"target_month_date", "strategy_label", "predicted_value"}
	accuracyHeader = []string{"strategy_label", "mean_absolute_percentage_error", "formatted"}
	historyHeader  = []string{"month_index", "month_date", "total_sales", "total_profit", "order_count"}
)

// WriteCSV escreve a tabela combinada de previsões
func WriteCSV(w io.Writer, report *domain.ForecastReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(forecastHeader); err != nil {
		return err
	}
	for _, row := range forecastRows(report) {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func forecastRows(report *domain.ForecastReport) [][]string {
	if report == nil {
		return nil
	}

	rows := make([][]string, 0, len(report.Forecasts))
	for _, p := range report.Forecasts {
		rows = append(rows, []string{
			p.TargetMonthDate.Format(time.DateOnly),
			p.StrategyLabel,
			strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(p.PredictedValue), 'f', 2, 64),
		})
	}
	return rows
}

// sortedAccuracy retorna as pontuações em ordem de label para saída estável
func sortedAccuracy(report *domain.ForecastReport) []domain.AccuracyScore {
	if report == nil {
		return nil
	}

	scores := make([]domain.AccuracyScore, 0, len(report.Accuracy))
	for _, score := range report.Accuracy {
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].StrategyLabel < scores[j].StrategyLabel
	})
	return scores
}
