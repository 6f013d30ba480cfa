package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists sweep results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSearchConfigs(configs []SearchConfig) error {
	path := filepath.Join(w.baseDir, "search_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "iterations", "pruning", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Iterations),
			strconv.FormatBool(config.Pruning),
			strconv.FormatInt(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"id", "config", "run", "wins", "draws", "visits", "nodes",
		"playouts", "playout_moves", "proven_nodes", "solved", "duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Run),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Visits),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.PlayoutMoves),
			strconv.Itoa(record.ProvenNodes),
			strconv.FormatBool(record.Solved),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}
