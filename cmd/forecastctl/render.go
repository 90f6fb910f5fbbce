package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/export"
	"github.com/vfg2006/retail-sales-insights-api/pkg/utils"
)

type outputFormatKind string

const (
	outputTable outputFormatKind = "table"
	outputJSON  outputFormatKind = "json"
	outputCSV   outputFormatKind = "csv"
)

func parseOutputFormat(s string) (outputFormatKind, error) {
	switch outputFormatKind(s) {
	case "", outputTable:
		return outputTable, nil
	case outputJSON, outputCSV:
		return outputFormatKind(s), nil
	}
	return "", fmt.Errorf("formato de saída inválido: %s", s)
}

func renderReport(w io.Writer, report *domain.ForecastReport, format outputFormatKind) error {
	switch format {
	case outputJSON:
		_, err := fmt.Fprintln(w, utils.PrettyJson(report))
		return err
	case outputCSV:
		return export.WriteCSV(w, report)
	default:
		return renderTable(w, report)
	}
}

func renderTable(w io.Writer, report *domain.ForecastReport) error {
	if report.IsEmpty() {
		_, err := fmt.Fprintln(w, "Sem dados históricos para gerar previsões")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Campo alvo: %s\tHorizonte: %d meses\tHistórico: %d meses\n\n", report.TargetField, report.Horizon, len(report.History))

	fmt.Fprintln(tw, "MÊS\tESTRATÉGIA\tPREVISÃO")
	for _, p := range report.Forecasts {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", p.TargetMonthDate.Format(time.DateOnly), p.StrategyLabel, p.PredictedValue)
	}

	labels := make([]string, 0, len(report.Accuracy))
	for label := range report.Accuracy {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Fprintln(tw, "\nESTRATÉGIA\tMAPE\t")
	for _, label := range labels {
		fmt.Fprintf(tw, "%s\t%s\t\n", label, report.Accuracy[label].Formatted)
	}

	return tw.Flush()
}
