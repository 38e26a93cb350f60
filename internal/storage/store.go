// Package storage persists table runs under a data directory, one
// subdirectory per run with metadata.json and steps.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/slopefield/internal/euler"
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
	Formula   string    `json:"formula"`
	Timestamp time.Time `json:"timestamp"`
	Step      float64   `json:"step"`
	X0        float64   `json:"x0"`
	Y0        float64   `json:"y0"`
	XEnd      float64   `json:"x_end"`
	Precision int       `json:"precision"`
	Records   int       `json:"records"`
}

// Save writes a run directory and returns its id.
func (s *Store) Save(meta RunMetadata, steps []euler.Step) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Records = len(steps)

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

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeSteps(csvFile, steps, meta.Precision); err != nil {
		return "", err
	}
	return runID, nil
}

func writeSteps(w io.Writer, steps []euler.Step, precision int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "y", "yp", "dy"}); err != nil {
		return err
	}
	for _, st := range steps {
		row := []string{
			strconv.FormatFloat(st.X, 'f', precision, 64),
			strconv.FormatFloat(st.Y, 'f', precision, 64),
			strconv.FormatFloat(st.YP, 'f', precision, 64),
			strconv.FormatFloat(st.DY, 'f', precision, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns metadata for every run directory that parses.
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

// LoadSteps reads the stored step records back.
func (s *Store) LoadSteps(runID string) ([]euler.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []euler.Step{}, nil
	}

	steps := make([]euler.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for i, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		steps = append(steps, euler.Step{X: vals[0], Y: vals[1], YP: vals[2], DY: vals[3]})
	}
	return steps, nil
}
