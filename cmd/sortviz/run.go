package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
)

// algorithmArg falls back to the configured algorithm.
func algorithmArg(args []string) (string, error) {
	name := cfg.Algorithm
	if len(args) > 0 {
		name = args[0]
	}
	alg, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return "", err
	}
	return string(alg), nil
}

func runSort(cmd *cobra.Command, args []string) error {
	alg, err := algorithmArg(args)
	if err != nil {
		return err
	}
	p, err := parsePattern()
	if err != nil {
		return err
	}

	expCfg := experiment.Config{Algorithm: alg, Pattern: p, Seed: cfg.Seed}
	if (live || cfg.Audio.Enabled) && !noDelay {
		expCfg.Delay = sorting.DefaultDelay
	}

	var displays sorting.MultiDisplay
	var renderer *tui.LiveRenderer
	if live {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		renderer = tui.NewLiveRenderer(screen, alg, frameRate)
		expCfg.Interrupt = renderer.Interrupts()
		displays = append(displays, renderer)
	}

	var recorder *export.Recorder
	if gifFile != "" {
		recorder = export.NewRecorder(alg, 0.5, 4)
		displays = append(displays, recorder)
	}

	var last render.Frame
	displays = append(displays, sorting.DisplayFunc(func(f render.Frame) { last = f }))

	var observers []sorting.Observer
	if s := startAudio(); s != nil {
		defer s.Stop()
		observers = append(observers, s)
	}

	exp := experiment.New(expCfg, nil)
	if err := exp.Setup(displays, metrics.Defaults(), observers...); err != nil {
		return err
	}

	if renderer != nil {
		closer, err := logToFile()
		if err != nil {
			return err
		}
		defer closer.Close()
		if err := renderer.Start(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		renderer.Draw(render.Of(exp.State(), render.DefaultGeometry()))
	}

	logger.Debugf("running %s sort on %s input (seed %d)", alg, p, cfg.Seed)
	result, err := exp.Run()
	if renderer != nil {
		if err == nil {
			renderer.Wait()
		}
		renderer.Stop()
	}
	if err != nil {
		return fmt.Errorf("%s sort: %w", alg, err)
	}

	printResult(result)

	if traceFile != "" {
		if err := export.WriteFile(traceFile, result); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		fmt.Printf("trace written to %s\n", traceFile)
	}
	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.FrameToSVG(last, 1)), 0644); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
		fmt.Printf("svg written to %s\n", svgFile)
	}
	if pngFile != "" {
		if err := export.SavePNG(pngFile, last, fmt.Sprintf("%s  %d steps", alg, result.Stats.Steps)); err != nil {
			return fmt.Errorf("writing png: %w", err)
		}
		fmt.Printf("png written to %s\n", pngFile)
	}
	if recorder != nil {
		if err := recorder.Save(gifFile); err != nil {
			return fmt.Errorf("writing gif: %w", err)
		}
		fmt.Printf("gif written to %s (%d frames)\n", gifFile, recorder.Frames())
	}
	return nil
}

func printResult(r *experiment.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "algorithm\t%s\n", r.Algorithm)
	fmt.Fprintf(w, "pattern\t%s\n", r.Pattern)
	fmt.Fprintf(w, "seed\t%d\n", r.Seed)
	fmt.Fprintf(w, "length\t%d\n", r.Stats.Length)
	fmt.Fprintf(w, "steps\t%d\n", r.Stats.Steps)
	fmt.Fprintf(w, "comparisons\t%d\n", r.Stats.Comparisons)
	fmt.Fprintf(w, "swaps\t%d\n", r.Stats.Swaps)
	fmt.Fprintf(w, "shifts\t%d\n", r.Stats.Shifts)
	fmt.Fprintf(w, "elapsed\t%s\n", r.Stats.Elapsed.Round(time.Microsecond))
	w.Flush()

	fmt.Println("\nmetrics:")
	for _, m := range []string{"inversions", "sortedness", "movement"} {
		if v, ok := r.Metrics[m]; ok {
			fmt.Printf("  %s: %.4f\n", m, v)
		}
	}
}

func plotSort(cmd *cobra.Command, args []string) error {
	alg, err := algorithmArg(args)
	if err != nil {
		return err
	}
	p, err := parsePattern()
	if err != nil {
		return err
	}

	inv := metrics.NewInversions()
	exp := experiment.New(experiment.Config{Algorithm: alg, Pattern: p, Seed: cfg.Seed}, nil)
	if err := exp.Setup(nil, []metrics.Metric{inv}); err != nil {
		return err
	}
	result, err := exp.Run()
	if err != nil {
		return err
	}

	history := inv.History()
	if len(history) < 2 {
		fmt.Printf("%s sort took no steps on %s input\n", alg, p)
		return nil
	}
	fmt.Println(asciigraph.Plot(history,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s sort: remaining inversions over %d steps", alg, result.Stats.Steps)),
	))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if scenario.Name != "" {
		fmt.Printf("scenario %s: %s\n", scenario.Name, scenario.Description)
	}
	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tPATTERN\tLENGTH\tSTEPS\tCOMPARISONS\tINVERSIONS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%.0f\n",
			i+1, r.Algorithm, r.Pattern, r.Stats.Length, r.Stats.Steps, r.Stats.Comparisons, r.Metrics["inversions"])
	}
	w.Flush()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	alg, err := algorithmArg(args)
	if err != nil {
		return err
	}
	sweep := &automation.PatternSweep{Algorithm: alg, Seed: cfg.Seed}
	results, err := automation.RunSweep(context.Background(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tSTEPS\tCOMPARISONS\tINVERSIONS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Pattern, r.Steps, r.Comparisons, r.Inversions)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	alg, err := algorithmArg(args)
	if err != nil {
		return err
	}
	p, err := parsePattern()
	if err != nil {
		return err
	}
	tc := &automation.TrialConfig{
		Algorithm: alg,
		Pattern:   p,
		Seed:      cfg.Seed,
		NumTrials: trials,
	}

	start := time.Now()
	results, err := automation.RunTrials(context.Background(), tc, experiment.NewRegistry())
	if err != nil {
		return err
	}
	mean, sorted := automation.TrialStats(results)

	fmt.Printf("%s sort, %s input, %d trials in %v\n", tc.Algorithm, p, len(results), time.Since(start).Round(time.Millisecond))
	fmt.Printf("  mean steps: %.1f\n", mean)
	fmt.Printf("  sorted:     %d/%d\n", sorted, len(results))
	return nil
}
