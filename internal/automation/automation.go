package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
)

var logger = logging.GetLogger("automation")

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`

	dir string
}

// ScenarioStep is one run. Values, when present, replaces the generated
// baseline; SaveAs writes the trace next to the scenario file.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Pattern   string `yaml:"pattern"`
	Seed      int64  `yaml:"seed"`
	Values    []int  `yaml:"values"`
	SaveAs    string `yaml:"save_as"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	scenario.dir = filepath.Dir(path)

	return &scenario, nil
}

// RunScenario executes the steps in order. The context is checked between
// runs; a run in progress always finishes.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]experiment.Result, error) {
	results := make([]experiment.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.WithFields(logrus.Fields{
			"step":      fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)),
			"algorithm": step.Algorithm,
			"pattern":   step.Pattern,
		}).Info("running")

		pattern, err := array.ParsePattern(step.Pattern)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(experiment.Config{
			Algorithm: step.Algorithm,
			Pattern:   pattern,
			Seed:      step.Seed,
			Values:    step.Values,
		}, registry)
		if err := exp.Setup(nil, metrics.Defaults()); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run()
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		if step.SaveAs != "" {
			path := step.SaveAs
			if !filepath.IsAbs(path) {
				path = filepath.Join(scenario.dir, path)
			}
			if err := export.WriteFile(path, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			logger.Debugf("trace written to %s", path)
		}

		results = append(results, *result)
	}

	return results, nil
}

// PatternSweep runs one algorithm once per input pattern with a shared seed.
type PatternSweep struct {
	Algorithm string
	Patterns  []array.Pattern
	Seed      int64
}

type SweepResult struct {
	Pattern     array.Pattern
	Steps       int
	Comparisons int
	Inversions  int
}

func RunSweep(ctx context.Context, sweep *PatternSweep, registry *experiment.Registry) ([]SweepResult, error) {
	patterns := sweep.Patterns
	if len(patterns) == 0 {
		patterns = array.Patterns
	}
	results := make([]SweepResult, 0, len(patterns))

	for i, p := range patterns {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		exp := experiment.New(experiment.Config{
			Algorithm: sweep.Algorithm,
			Pattern:   p,
			Seed:      sweep.Seed,
		}, registry)
		if err := exp.Setup(nil, []metrics.Metric{metrics.NewInversions()}); err != nil {
			return nil, err
		}

		result, err := exp.Run()
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Pattern:     p,
			Steps:       result.Stats.Steps,
			Comparisons: result.Stats.Comparisons,
			Inversions:  int(result.Metrics["inversions"]),
		})

		logger.Infof("sweep %d/%d: %s pattern=%s steps=%d", i+1, len(patterns), sweep.Algorithm, p, result.Stats.Steps)
	}

	return results, nil
}

// TrialConfig repeats a run over consecutive seeds.
type TrialConfig struct {
	Algorithm string
	Pattern   array.Pattern
	Seed      int64
	NumTrials int
}

type TrialResult struct {
	TrialID int
	Seed    int64
	Steps   int
	Sorted  bool
}

func RunTrials(ctx context.Context, cfg *TrialConfig, registry *experiment.Registry) ([]TrialResult, error) {
	results := make([]TrialResult, 0, cfg.NumTrials)

	for trial := 0; trial < cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		seed := cfg.Seed + int64(trial)
		exp := experiment.New(experiment.Config{
			Algorithm: cfg.Algorithm,
			Pattern:   cfg.Pattern,
			Seed:      seed,
		}, registry)
		if err := exp.Setup(nil, nil); err != nil {
			return nil, err
		}

		result, err := exp.Run()
		if err != nil {
			return nil, err
		}

		results = append(results, TrialResult{
			TrialID: trial,
			Seed:    seed,
			Steps:   result.Stats.Steps,
			Sorted:  array.IsSorted(result.Final),
		})

		if (trial+1)%10 == 0 {
			logger.Infof("trials: %d/%d complete", trial+1, cfg.NumTrials)
		}
	}

	return results, nil
}

// TrialStats returns the mean step count and how many trials ended sorted.
func TrialStats(results []TrialResult) (meanSteps float64, sorted int) {
	if len(results) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range results {
		total += r.Steps
		if r.Sorted {
			sorted++
		}
	}
	return float64(total) / float64(len(results)), sorted
}
