package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
)

const scenarioYAML = `name: smoke
description: two small runs
steps:
  - algorithm: insertion
    values: [9, 1]
    save_as: insertion.json
  - algorithm: selection
    values: [5, 3, 8, 1]
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if scenario.Name != "smoke" || len(scenario.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", scenario)
	}

	results, err := RunScenario(context.Background(), scenario, experiment.NewRegistry())
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Stats.Shifts != 1 {
		t.Errorf("insertion shifts = %d, want 1", results[0].Stats.Shifts)
	}
	if got := results[1].Final; !array.IsSorted(got) {
		t.Errorf("selection result not sorted: %v", got)
	}
	if results[1].Stats.Steps != 3 {
		t.Errorf("selection steps = %d, want 3", results[1].Stats.Steps)
	}

	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "insertion.json")); err != nil {
		t.Errorf("trace not written: %v", err)
	}
}

func TestRunScenarioUnknownAlgorithm(t *testing.T) {
	scenario := &Scenario{Steps: []ScenarioStep{{Algorithm: "quick"}}}
	_, err := RunScenario(context.Background(), scenario, nil)
	if !errors.Is(err, experiment.ErrUnknownAlgorithm) {
		t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenario := &Scenario{Steps: []ScenarioStep{{Algorithm: "bubble", Values: []int{2, 1}}}}
	results, err := RunScenario(ctx, scenario, nil)
	if !errors.Is(err, context.Canceled) || len(results) != 0 {
		t.Fatalf("got %d results, err %v", len(results), err)
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &PatternSweep{
		Algorithm: "bubble",
		Patterns:  []array.Pattern{array.PatternSorted, array.PatternReversed},
		Seed:      7,
	}
	results, err := RunSweep(context.Background(), sweep, experiment.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Steps != 0 || results[0].Inversions != 0 {
		t.Errorf("sorted input: %+v", results[0])
	}
	if results[1].Steps != results[1].Inversions || results[1].Steps == 0 {
		t.Errorf("bubble swaps should equal inversions on reversed input: %+v", results[1])
	}
}

func TestRunTrials(t *testing.T) {
	cfg := &TrialConfig{Algorithm: "insertion", Seed: 1, NumTrials: 3}
	results, err := RunTrials(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	mean, sorted := TrialStats(results)
	if sorted != 3 {
		t.Errorf("sorted = %d, want 3", sorted)
	}
	if mean <= 0 {
		t.Errorf("mean steps = %v", mean)
	}
	if results[2].Seed != 3 {
		t.Errorf("seed = %d, want 3", results[2].Seed)
	}
}
