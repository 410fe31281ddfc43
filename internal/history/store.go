// Package history persists finished calculations under a data directory,
// one subdirectory per run: metadata.json, the inputs and result as CSV,
// and the row-operation trace as plain text.
package history

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/matrixlab/internal/ops"
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
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Timestamp time.Time `json:"timestamp"`
	Precision int       `json:"precision"`
	Shapes    []string  `json:"shapes"` // input shapes, e.g. "2x3"
	Scalar    string    `json:"scalar,omitempty"`
	Pivots    []int     `json:"pivots,omitempty"`
	Note      string    `json:"note,omitempty"`
	Steps     int       `json:"steps"`
}

// Save records one calculation and returns its run id.
func (s *Store) Save(op string, inputs [][][]float64, res *ops.Result, precision int) (string, error) {
	runID := fmt.Sprintf("%s_%d", op, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	shapes := make([]string, len(inputs))
	for i, in := range inputs {
		cols := 0
		if len(in) > 0 {
			cols = len(in[0])
		}
		shapes[i] = fmt.Sprintf("%dx%d", len(in), cols)
	}

	meta := RunMetadata{
		ID:        runID,
		Op:        op,
		Timestamp: time.Now(),
		Precision: precision,
		Shapes:    shapes,
		Scalar:    res.Scalar,
		Pivots:    res.Pivots,
		Note:      res.Note,
		Steps:     len(res.Steps),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for i, in := range inputs {
		if err := writeCSV(filepath.Join(runDir, fmt.Sprintf("input_%d.csv", i+1)), in); err != nil {
			return "", err
		}
	}

	if res.Matrix != nil {
		if err := writeCSV(filepath.Join(runDir, "result.csv"), res.Matrix); err != nil {
			return "", err
		}
	}

	if len(res.Steps) > 0 {
		var b strings.Builder
		for i, step := range res.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step.Desc)
		}
		if err := os.WriteFile(filepath.Join(runDir, "steps.txt"), []byte(b.String()), 0644); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResult reads the saved result matrix; runs without a matrix result
// (determinant, independence) return nil.
func (s *Store) LoadResult(runID string) ([][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "result.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// LoadSteps reads the saved trace descriptions, one per line.
func (s *Store) LoadSteps(runID string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "steps.txt"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return lines, nil
}

// ExportJSON writes a run, including its result matrix, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	result, err := s.LoadResult(runID)
	if err != nil {
		return err
	}

	out := struct {
		RunMetadata
		Result [][]float64 `json:"result,omitempty"`
	}{*meta, result}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportCSV writes a run's result matrix as CSV.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	result, err := s.LoadResult(runID)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("run %s has no matrix result", runID)
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()
	return writeRecords(cw, result)
}

func writeCSV(path string, m [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()
	return writeRecords(w, m)
}

func writeRecords(w *csv.Writer, m [][]float64) error {
	for _, row := range m {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
