package export

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

	"github.com/san-kum/sortviz/internal/experiment"
)

type ExportData struct {
	Algorithm   string                 `json:"algorithm"`
	Pattern     string                 `json:"pattern"`
	Seed        int64                  `json:"seed"`
	Length      int                    `json:"length"`
	Comparisons int                    `json:"comparisons"`
	Swaps       int                    `json:"swaps"`
	Shifts      int                    `json:"shifts"`
	Steps       int                    `json:"steps"`
	Elapsed     string                 `json:"elapsed"`
	Baseline    []int                  `json:"baseline"`
	Final       []int                  `json:"final"`
	Metrics     map[string]float64     `json:"metrics"`
	Trace       []experiment.TraceStep `json:"trace"`
}

func newExportData(result *experiment.Result) ExportData {
	return ExportData{
		Algorithm:   string(result.Algorithm),
		Pattern:     string(result.Pattern),
		Seed:        result.Seed,
		Length:      result.Stats.Length,
		Comparisons: result.Stats.Comparisons,
		Swaps:       result.Stats.Swaps,
		Shifts:      result.Stats.Shifts,
		Steps:       result.Stats.Steps,
		Elapsed:     result.Stats.Elapsed.Round(time.Microsecond).String(),
		Baseline:    result.Baseline,
		Final:       result.Final,
		Metrics:     result.Metrics,
		Trace:       result.Trace,
	}
}

func WriteJSON(w io.Writer, result *experiment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(result))
}

// WriteCSV writes one row per visible step.
func WriteCSV(w io.Writer, result *experiment.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seq", "kind", "i", "j", "value_i", "value_j"}); err != nil {
		return err
	}
	for _, s := range result.Trace {
		row := []string{
			strconv.Itoa(s.Seq),
			s.Kind,
			strconv.Itoa(s.I),
			strconv.Itoa(s.J),
			strconv.Itoa(s.ValueI),
			strconv.Itoa(s.ValueJ),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile picks JSON or CSV from the extension of path.
func WriteFile(path string, result *experiment.Result) error {
	var write func(io.Writer, *experiment.Result) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".csv":
		write = WriteCSV
	default:
		return fmt.Errorf("unsupported trace format: %s (use .json or .csv)", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return write(file, result)
}
