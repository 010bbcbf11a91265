package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	canvasCols = 65
	canvasRows = 20
)

var logger = logging.GetLogger("viz")

var errInvalidChoice = errors.New("invalid choice, try again")

// Model is the Bubble Tea controller. It owns the array state while idle;
// during a run the sort goroutine owns it and Model only reads frames.
type Model struct {
	st        *array.State
	registry  *experiment.Registry
	pattern   array.Pattern
	pacer     sorting.Pacer
	dataDir   string
	observers []sorting.Observer

	frames chan frameMsg
	frame  render.Frame
	canvas *Canvas

	busy       bool
	algorithm  sorting.Algorithm
	steps      int
	inversions []float64
	stats      *sorting.Stats
	recording  bool
	saved      string
	err        error

	theme    Theme
	styles   styles
	showHelp bool
	width    int
	height   int
}

func New(st *array.State, opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = experiment.NewRegistry()
	}
	if opts.Pacer == nil {
		opts.Pacer = sorting.SleepPacer{Delay: sorting.DefaultDelay}
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		st:        st,
		registry:  opts.Registry,
		pattern:   opts.Pattern,
		pacer:     opts.Pacer,
		dataDir:   opts.DataDir,
		observers: opts.Observers,
		frames:    make(chan frameMsg),
		canvas:    NewCanvas(canvasCols, canvasRows),
		theme:     theme,
		styles:    newStyles(theme),
		width:     120,
		height:    30,
	}
	m.resetView()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		m.frame = msg.frame
		if !msg.frame.Complete {
			m.steps++
			m.inversions = append(m.inversions, float64(msg.inversions))
		}
		return m, m.listen()
	case doneMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			stats := msg.stats
			m.stats = &stats
			logger.Infof("%s sort finished: %d steps in %s", stats.Algorithm, stats.Steps, stats.Elapsed.Round(time.Millisecond))
		} else {
			logger.Errorf("sort failed: %v", msg.err)
		}
		if msg.gifErr != nil {
			m.err = msg.gifErr
		} else if msg.gif != "" {
			m.saved = msg.gif
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		return m, nil
	case "g":
		m.recording = !m.recording
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.busy {
		return m, nil
	}
	if key == "0" {
		if err := m.st.Fill(m.pattern); err != nil {
			m.err = err
			return m, nil
		}
		m.st.Load()
		m.resetView()
		m.err = nil
		return m, nil
	}
	if entry, ok := m.registry.ByKey(key); ok {
		cmd := m.start(entry)
		return m, cmd
	}
	m.err = errInvalidChoice
	return m, nil
}

// resetView redraws the idle state from the array.
func (m *Model) resetView() {
	m.frame = render.Of(m.st, render.DefaultGeometry())
	m.algorithm = ""
	m.steps = 0
	m.stats = nil
	m.inversions = []float64{float64(metrics.CountInversions(m.st.Values()))}
}

func (m Model) Busy() bool { return m.busy }

func (m Model) View() string {
	m.canvas.DrawFrame(m.frame)
	barColor := render.DefaultPalette.Sorting
	if len(m.frame.Bars) > 0 {
		barColor = m.frame.Bars[0].Color
	}
	bars := lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(barColor))).Render(m.canvas.String())
	canvasView := m.styles.canvas.Render(bars)

	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("SORTVIZ") + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.inversions) > 1 {
		chart := asciigraph.Plot(m.inversions, asciigraph.Height(6), asciigraph.Width(36), asciigraph.Caption("inversions"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	remaining := m.inversions[len(m.inversions)-1]
	if m.frame.Complete {
		remaining = 0
	}
	progress := 1.0
	if initial := m.inversions[0]; initial > 0 {
		progress = 1 - remaining/initial
	}
	s.WriteString(st.label.Render("Steps") + st.value.Render(fmt.Sprintf("%d", m.steps)) + "\n")
	s.WriteString(st.label.Render("Inversions") + st.value.Render(fmt.Sprintf("%.0f", remaining)) + "\n")
	s.WriteString(st.label.Render("Progress") + st.ProgressBar(progress, 20) + "\n")

	if m.stats != nil {
		s.WriteString(st.label.Render("Comparisons") + st.value.Render(fmt.Sprintf("%d", m.stats.Comparisons)) + "\n")
		s.WriteString(st.label.Render("Swaps") + st.value.Render(fmt.Sprintf("%d", m.stats.Swaps)) + "\n")
		s.WriteString(st.label.Render("Shifts") + st.value.Render(fmt.Sprintf("%d", m.stats.Shifts)) + "\n")
		s.WriteString(st.label.Render("Elapsed") + st.value.Render(m.stats.Elapsed.Round(time.Millisecond).String()) + "\n")
	}
	if m.recording {
		s.WriteString("\n" + st.record.Render("● REC") + "\n")
	}
	if m.saved != "" {
		s.WriteString(st.label.Render("Saved") + st.value.Render(m.saved) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + st.errorMsg.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + st.KeyHints("1", "selection", "2", "bubble", "3", "insertion") + "\n")
	s.WriteString(st.KeyHints("0", "randomize", "t", "theme", "g", "record", "q", "quit") + "\n")

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	switch {
	case m.busy:
		return m.styles.running.Render("SORTING " + strings.ToUpper(string(m.algorithm)))
	case m.frame.Complete:
		return m.styles.done.Render("SORTED " + strings.ToUpper(string(m.algorithm)))
	}
	return m.styles.label.UnsetWidth().Render("IDLE  theme: " + m.theme.Name)
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  1        - Selection sort           ║
║  2        - Bubble sort              ║
║  3        - Insertion sort           ║
║  0        - New random array         ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
