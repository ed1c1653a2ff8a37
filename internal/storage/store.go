package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/shootlab/internal/shooting"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Lambda    float64            `json:"lambda"`
	T         float64            `json:"terminal_time"`
	XT        float64            `json:"terminal_value"`
	Theta0    float64            `json:"theta0"`
	Theta1    float64            `json:"theta1"`
	ThetaStar float64            `json:"theta_star"`
	Samples   int                `json:"samples"`
	Residuals map[string]float64 `json:"residuals"`
}

// Save writes one evaluation as a run directory: metadata.json with the
// parameters and residuals, curves.csv with the sampled trajectories.
func (s *Store) Save(p shooting.Problem, eval shooting.Evaluation, samples int, shots []shooting.Shot) (string, error) {
	// nanosecond resolution so back-to-back saves get distinct directories
	runID := fmt.Sprintf("shoot_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Lambda:    p.Lambda,
		T:         p.T,
		XT:        p.XT,
		Theta0:    eval.Theta0,
		Theta1:    eval.Theta1,
		ThetaStar: eval.ThetaStar,
		Samples:   samples,
		Residuals: map[string]float64{
			"theta0":     eval.F0,
			"theta1":     eval.F1,
			"theta_star": eval.FStar,
		},
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "curves.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(shots) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for _, shot := range shots {
		header = append(header, columnName(shot.Label))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	// all shots share the same grid
	times := shots[0].Curve.Times
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, shot := range shots {
			row = append(row, strconv.FormatFloat(shot.Curve.Values[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func columnName(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurves reads curves.csv back as labels, the shared time grid, and one
// value series per label.
func (s *Store) LoadCurves(runID string) ([]string, []float64, [][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "curves.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []string{}, []float64{}, [][]float64{}, nil
	}

	labels := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	series := make([][]float64, len(labels))
	for i := range series {
		series[i] = make([]float64, 0, len(records)-1)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < len(labels)+1 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j := range labels {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			series[j] = append(series[j], val)
		}
	}

	return labels, times, series, nil
}
