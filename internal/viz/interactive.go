package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Options configures the controller. A nil Pacer means DefaultDelay.
type Options struct {
	Registry  *experiment.Registry
	Pattern   array.Pattern
	Theme     string
	DataDir   string
	Pacer     sorting.Pacer
	Observers []sorting.Observer
}

type frameMsg struct {
	frame      render.Frame
	inversions int
}

type doneMsg struct {
	stats  sorting.Stats
	err    error
	gif    string
	gifErr error
}

// listen waits for the next frame. Exactly one listener is pending at any
// time: Init starts it and every frameMsg re-arms it.
func (m Model) listen() tea.Cmd {
	frames := m.frames
	return func() tea.Msg {
		return <-frames
	}
}

// start loads the working array and runs entry on a fresh goroutine.
func (m *Model) start(entry experiment.Entry) tea.Cmd {
	m.st.Load()
	m.resetView()
	m.busy = true
	m.algorithm = entry.Name
	m.saved = ""
	m.err = nil
	logger.Infof("starting %s sort", entry.Name)

	st, frames, pacer := m.st, m.frames, m.pacer
	observers := append([]sorting.Observer(nil), m.observers...)
	dataDir := m.dataDir

	var rec *export.Recorder
	if m.recording {
		rec = export.NewRecorder(string(entry.Name), 0.5, 4)
	}

	return func() tea.Msg {
		display := sorting.DisplayFunc(func(f render.Frame) {
			if rec != nil {
				rec.Redraw(f)
			}
			frames <- frameMsg{frame: f, inversions: metrics.CountInversions(f.Heights())}
		})
		eng := sorting.New(st, sorting.WithDisplay(display), sorting.WithPacer(pacer))
		for _, o := range observers {
			eng.AddObserver(o)
		}

		stats, err := entry.Run(eng)
		msg := doneMsg{stats: stats, err: err}
		if rec != nil && err == nil {
			msg.gif, msg.gifErr = saveRecording(rec, dataDir, entry.Name)
		}
		return msg
	}
}

func saveRecording(rec *export.Recorder, dir string, alg sorting.Algorithm) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.gif", alg, time.Now().Format("20060102-150405")))
	if err := rec.Save(path); err != nil {
		return "", fmt.Errorf("save recording: %w", err)
	}
	logger.Infof("recording saved to %s (%d frames)", path, rec.Frames())
	return path, nil
}

// RunInteractive blocks until the user quits.
func RunInteractive(st *array.State, opts Options) error {
	_, err := tea.NewProgram(New(st, opts), tea.WithAltScreen()).Run()
	return err
}
