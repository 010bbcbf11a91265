package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/gops/agent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	gopsAddr   string
	dataDir    string

	seed     int64
	pattern  string
	theme    string
	useAudio bool

	live      bool
	noDelay   bool
	traceFile string
	svgFile   string
	pngFile   string
	gifFile   string
	frameRate int
	trials    int

	cfg *config.Config
)

var logger = logging.GetLogger("sortviz")

func main() {
	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "animated selection, bubble and insertion sort",
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if gopsAddr != "" {
				agent.Close()
			}
		},
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&gopsAddr, "gops", "", "start the gops agent on this address")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for logs and recordings")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&pattern, "pattern", config.DefaultPattern, "initial array pattern")
	pf.BoolVar(&useAudio, "audio", false, "play a tone for every step")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal visualizer (default)",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "visualizer in a 910x750 window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run one sort and report its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().BoolVar(&live, "live", false, "draw the run in the terminal")
	runCmd.Flags().BoolVar(&noDelay, "no-delay", false, "skip the pause after each step in live or audio runs")
	runCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate bound for --live")
	runCmd.Flags().StringVar(&traceFile, "trace", "", "write every step to a .json or .csv file")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write the final frame as SVG")
	runCmd.Flags().StringVar(&pngFile, "png", "", "write the final frame as PNG")
	runCmd.Flags().StringVar(&gifFile, "gif", "", "record the run as an animated GIF")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot remaining inversions per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSort,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of sorts from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "run one algorithm over every input pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "repeat a run over consecutive seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&trials, "trials", 20, "number of runs")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms and their keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tDESCRIPTION")
			for _, e := range experiment.NewRegistry().List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Name, e.Description)
			}
			return w.Flush()
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list input patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range array.Patterns {
				fmt.Println(p)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s on %s input, %s theme\n", name, p.Algorithm, p.Pattern, p.Theme)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, plotCmd, scenarioCmd, sweepCmd, benchCmd, algorithmsCmd, patternsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup merges preset, config file and flags, then configures logging and
// diagnostics. Flags set on the command line always win.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = useAudio
	}
	if f := flags.Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLogLevel(lvl)

	if gopsAddr != "" {
		if err := agent.Listen(agent.Options{Addr: gopsAddr}); err != nil {
			return fmt.Errorf("gops agent: %w", err)
		}
		logger.Debugf("gops agent listening on %s", gopsAddr)
	}
	return nil
}

func parsePattern() (array.Pattern, error) {
	return array.ParsePattern(cfg.Pattern)
}

// newState builds the default 130-bar array from the configured seed and
// pattern, loaded and ready to sort.
func newState() (*array.State, error) {
	p, err := parsePattern()
	if err != nil {
		return nil, err
	}
	st := array.NewDefault(rand.New(rand.NewSource(cfg.Seed)))
	if err := st.Fill(p); err != nil {
		return nil, err
	}
	st.Load()
	return st, nil
}

// logToFile moves log output into the data directory while a full-screen
// display owns the terminal.
func logToFile() (io.Closer, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}
	return logging.SetOutFile(filepath.Join(cfg.DataDir, "sortviz.log"))
}

// startAudio returns nil when audio is off or the device cannot be opened.
func startAudio() *audio.Sonifier {
	if !cfg.Audio.Enabled {
		return nil
	}
	s := audio.NewSonifier(cfg.Audio, array.MaxHeight)
	if err := s.Start(); err != nil {
		logger.Warnf("audio disabled: %v", err)
		return nil
	}
	return s
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the terminal visualizer needs a tty; try 'sortviz run'")
	}
	st, err := newState()
	if err != nil {
		return err
	}
	p, _ := parsePattern()

	closer, err := logToFile()
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := viz.Options{Pattern: p, Theme: cfg.Theme, DataDir: cfg.DataDir}
	if s := startAudio(); s != nil {
		defer s.Stop()
		opts.Observers = append(opts.Observers, s)
	}
	return viz.RunInteractive(st, opts)
}

func runGUI(cmd *cobra.Command, args []string) error {
	st, err := newState()
	if err != nil {
		return err
	}
	p, _ := parsePattern()

	opts := gui.Options{Pattern: p}
	if s := startAudio(); s != nil {
		defer s.Stop()
		opts.Audio = s
	}
	gui.RunInteractive(st, opts)
	return nil
}
