package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shootlab/internal/analysis"
	"github.com/san-kum/shootlab/internal/config"
	"github.com/san-kum/shootlab/internal/export"
	"github.com/san-kum/shootlab/internal/shooting"
	"github.com/san-kum/shootlab/internal/storage"
	"github.com/san-kum/shootlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type view int

const (
	viewCurves view = iota
	viewSweep
)

var paramInfo = map[string]string{
	"lambda":  "growth rate",
	"T":       "terminal time",
	"x_T":     "terminal value",
	"theta0":  "first guess x(0)",
	"theta1":  "second guess x(0)",
	"samples": "plot grid points",
}

// nudge step per parameter for left/right adjustment
var paramStep = map[string]float64{
	"lambda":  0.1,
	"T":       0.5,
	"x_T":     0.1,
	"theta0":  0.1,
	"theta1":  0.1,
	"samples": 50,
}

type model struct {
	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	view       view
	dataDir    string
	presets    []string
	presetIdx  int
	status     string
	statusTime time.Time

	width  int
	height int
}

func NewApp(cfg *config.Config, dataDir string) *model {
	presets := config.ListPresets()
	sort.Strings(presets)

	return &model{
		params: map[string]float64{
			"lambda":  cfg.Lambda,
			"T":       cfg.T,
			"x_T":     cfg.XT,
			"theta0":  cfg.Theta0,
			"theta1":  cfg.Theta1,
			"samples": float64(cfg.Samples),
		},
		paramNames: []string{"lambda", "T", "x_T", "theta0", "theta1", "samples"},
		dataDir:    dataDir,
		presets:    presets,
		presetIdx:  -1,
		width:      100,
		height:     32,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.setParam(m.paramNames[m.paramCursor], val)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "ctrl+c":
			return m, tea.Quit
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		name := m.paramNames[m.paramCursor]
		m.setParam(name, m.params[name]-paramStep[name])
	case "right", "l":
		name := m.paramNames[m.paramCursor]
		m.setParam(name, m.params[name]+paramStep[name])
	case "tab":
		if m.view == viewCurves {
			m.view = viewSweep
		} else {
			m.view = viewCurves
		}
	case "p":
		m.cyclePreset()
	case "s":
		m.saveRun()
	case "e":
		m.exportSVG()
	}
	return m, nil
}

func (m *model) setParam(name string, val float64) {
	if name == "samples" {
		if val < 2 {
			val = 2
		}
		val = float64(int(val))
	}
	m.params[name] = val
}

func (m *model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	name := m.presets[m.presetIdx]
	cfg := config.GetPreset(name)
	if cfg == nil {
		return
	}
	m.params["lambda"] = cfg.Lambda
	m.params["T"] = cfg.T
	m.params["x_T"] = cfg.XT
	m.params["theta0"] = cfg.Theta0
	m.params["theta1"] = cfg.Theta1
	m.params["samples"] = float64(cfg.Samples)
	m.note("preset: " + name)
}

func (m *model) note(s string) {
	m.status = s
	m.statusTime = time.Now()
}

func (m model) problem() shooting.Problem {
	return shooting.Problem{
		Lambda: m.params["lambda"],
		T:      m.params["T"],
		XT:     m.params["x_T"],
	}
}

func (m model) samples() int {
	n := int(m.params["samples"])
	if n < 2 {
		n = 2
	}
	return n
}

func (m *model) saveRun() {
	p := m.problem()
	eval := p.Evaluate(m.params["theta0"], m.params["theta1"])
	shots := p.Shots(m.params["theta0"], m.params["theta1"], m.samples())

	st := storage.New(m.dataDir)
	if err := st.Init(); err != nil {
		m.note("save failed: " + err.Error())
		return
	}
	runID, err := st.Save(p, eval, m.samples(), shots)
	if err != nil {
		m.note("save failed: " + err.Error())
		return
	}
	m.note("saved run " + runID)
}

func (m *model) exportSVG() {
	p := m.problem()
	shots := p.Shots(m.params["theta0"], m.params["theta1"], m.samples())
	curves, points := export.ShotFigure(p, shots)

	path := fmt.Sprintf("shootlab_%d.svg", time.Now().Unix())
	if err := export.WriteSVG(path, curves, points, 800, 500); err != nil {
		m.note("export failed: " + err.Error())
		return
	}
	m.note("wrote " + path)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("    " + cyan.Render("shooting method") + dim.Render("  x'(t) = λx(t),  x(T) = x_T") + "\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	left := m.viewParams()
	right := m.viewEvaluation()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n")

	switch m.view {
	case viewCurves:
		b.WriteString(m.viewCurvePlot())
	case viewSweep:
		b.WriteString(m.viewSweepPlot())
	}

	if m.status != "" && time.Since(m.statusTime) < 5*time.Second {
		b.WriteString("\n  " + green.Render(m.status) + "\n")
	}

	b.WriteString("\n" + dim.Render("  ↑↓ select  ←→ adjust  enter edit  tab curves/residual  p preset  s save  e svg  q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("  " + dim.Render("parameters") + "\n")
	b.WriteString("  " + dimmer.Render(strings.Repeat("─", 32)) + "\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%10.4f", m.params[name])
		if name == "samples" {
			val = fmt.Sprintf("%10d", int(m.params[name]))
		}
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + magenta.Render(val) + "  " + dimmer.Render(paramInfo[name]) + "\n")
		} else {
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "  " + dimmer.Render(paramInfo[name]) + "\n")
		}
	}

	return b.String()
}

func (m model) viewEvaluation() string {
	p := m.problem()
	eval := p.Evaluate(m.params["theta0"], m.params["theta1"])

	var b strings.Builder
	b.WriteString(dim.Render("shooting evaluation  F(θ) = θ·e^(λT) − x_T") + "\n")
	b.WriteString(dimmer.Render(strings.Repeat("─", 42)) + "\n")
	b.WriteString(fmt.Sprintf("%s %14.6f   %s %14.6f\n",
		dim.Render("θ₀       "), eval.Theta0, dim.Render("F(θ₀)"), eval.F0))
	b.WriteString(fmt.Sprintf("%s %14.6f   %s %14.6f\n",
		dim.Render("θ₁       "), eval.Theta1, dim.Render("F(θ₁)"), eval.F1))
	b.WriteString(fmt.Sprintf("%s %14.6f   %s %14.6f\n",
		dim.Render("θ* exact "), eval.ThetaStar, dim.Render("F(θ*)"), eval.FStar))
	return b.String()
}

func (m model) plotSize() (int, int) {
	w := m.width - 16
	h := m.height - 18
	if w < 40 {
		w = 40
	}
	if w > 110 {
		w = 110
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

func (m model) viewCurvePlot() string {
	p := m.problem()
	shots := p.Shots(m.params["theta0"], m.params["theta1"], m.samples())

	w, h := m.plotSize()
	pl := viz.NewPlot(w, h)

	tags := []uint8{viz.TagExact, viz.TagShot0, viz.TagShot1, viz.TagFinal}
	for i, shot := range shots {
		pl.AddSeries(viz.Series{
			Label: shot.Label,
			Xs:    shot.Curve.Times,
			Ys:    shot.Curve.Values,
			Color: tags[i%len(tags)],
		})
	}
	pl.AddMarker(viz.Marker{Label: "terminal condition", X: p.T, Y: p.XT, Color: viz.TagMarker})

	palette := viz.DefaultPalette()
	var b strings.Builder
	b.WriteString("\n  " + dim.Render("x(t) = θ·e^(λt)") + "\n")
	b.WriteString(indent(pl.Render(palette), "  "))
	b.WriteString("  " + pl.Legend(palette) + "\n")
	b.WriteString("  " + dimmer.Render("linear case: the shooting condition solves in closed form, so only three trial paths are shown") + "\n")
	return b.String()
}

func (m model) viewSweepPlot() string {
	p := m.problem()
	theta0 := m.params["theta0"]
	theta1 := m.params["theta1"]

	w, h := m.plotSize()
	min, max := analysis.Window(p, theta0, theta1)
	points := analysis.ResidualSweep(p, min, max, w*2)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = pt.Theta
		ys[i] = pt.Residual
	}

	pl := viz.NewPlot(w, h)
	pl.AddSeries(viz.Series{Label: "F(θ)", Xs: xs, Ys: ys, Color: viz.TagExact})
	pl.AddSeries(viz.Series{Label: "zero", Xs: []float64{min, max}, Ys: []float64{0, 0}, Color: viz.TagFinal})
	pl.AddMarker(viz.Marker{Label: "θ* (root)", X: p.ExactTheta(), Y: 0, Color: viz.TagMarker})
	pl.AddMarker(viz.Marker{Label: "θ₀", X: theta0, Y: p.Residual(theta0), Color: viz.TagShot0})
	pl.AddMarker(viz.Marker{Label: "θ₁", X: theta1, Y: p.Residual(theta1), Color: viz.TagShot1})

	palette := viz.DefaultPalette()
	var b strings.Builder
	b.WriteString("\n  " + dim.Render("shooting residual over θ") + "\n")
	b.WriteString(indent(pl.Render(palette), "  "))
	b.WriteString("  " + pl.Legend(palette) + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

// RunInteractive starts the TUI with the given starting configuration.
func RunInteractive(cfg *config.Config, dataDir string) error {
	p := tea.NewProgram(NewApp(cfg, dataDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
