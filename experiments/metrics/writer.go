package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SequenceConfig describes how an experiment generates input weight
// sequences.
type SequenceConfig struct {
	ID        int
	Generator string // "fibonacci", "constant" or "uniform"
	Length    int
	MaxWeight uint32 // Upper bound for generated weights (uniform only)
	Seed      uint64 // Base seed for seeded generators
}

type GameRecord struct {
	ID       int
	Sequence int // SequenceConfig.ID
	GameMetric
}

type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}

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

func (w *Writer) WriteSequenceConfigs(configs []SequenceConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "sequence_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sequence configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "generator", "length", "max_weight", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sequence configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Generator,
			strconv.Itoa(config.Length),
			strconv.FormatUint(uint64(config.MaxWeight), 10),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sequence config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "sequence", "starting_player", "winner", "score_a", "score_b", "turns", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Sequence),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			strconv.FormatFloat(record.ScoreA, 'f', -1, 64),
			strconv.FormatFloat(record.ScoreB, 'f', -1, 64),
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "turn_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turn records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "turn", "player", "box", "kind", "weight", "score"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write turn records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Box),
			record.Kind,
			strconv.FormatUint(uint64(record.Weight), 10),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write turn record row: %w", err)
		}
	}

	return nil
}
