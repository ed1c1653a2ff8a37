package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

type ExportData struct {
	ID        string               `json:"id"`
	Lambda    float64              `json:"lambda"`
	T         float64              `json:"terminal_time"`
	XT        float64              `json:"terminal_value"`
	Theta0    float64              `json:"theta0"`
	Theta1    float64              `json:"theta1"`
	ThetaStar float64              `json:"theta_star"`
	Residuals map[string]float64   `json:"residuals"`
	Samples   int                  `json:"samples"`
	Times     []float64            `json:"times"`
	Curves    map[string][]float64 `json:"curves"`
}

func buildExport(meta *RunMetadata, labels []string, times []float64, series [][]float64) ExportData {
	curves := make(map[string][]float64, len(labels))
	for i, label := range labels {
		curves[label] = series[i]
	}
	return ExportData{
		ID:        meta.ID,
		Lambda:    meta.Lambda,
		T:         meta.T,
		XT:        meta.XT,
		Theta0:    meta.Theta0,
		Theta1:    meta.Theta1,
		ThetaStar: meta.ThetaStar,
		Residuals: meta.Residuals,
		Samples:   meta.Samples,
		Times:     times,
		Curves:    curves,
	}
}

func ExportJSON(w io.Writer, meta *RunMetadata, labels []string, times []float64, series [][]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(meta, labels, times, series))
}

func ExportJSONStdout(meta *RunMetadata, labels []string, times []float64, series [][]float64) error {
	return ExportJSON(os.Stdout, meta, labels, times, series)
}

func ExportCSV(w io.Writer, labels []string, times []float64, series [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"time"}, labels...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for j := range labels {
			val := 0.0
			if i < len(series[j]) {
				val = series[j][i]
			}
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
