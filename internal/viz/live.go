package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurosim/internal/analysis"
	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/neuro"
)

const (
	chunkSize       = 64
	historyCapacity = 600
	sparkWidth      = 36
)

var (
	channelsStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model streams generated chunks and tracks their channel statistics.
type Model struct {
	gen      *neuro.Generator
	cfg      *config.Config
	noise    neuro.NoiseType
	batch    neuro.Batch
	acc      *analysis.Accumulator
	meanHist []float64
	selected int
	ticks    int
	running  bool
	showHelp bool
	err      error
}

func NewModel(cfg *config.Config) (Model, error) {
	noise, err := neuro.ParseNoiseType(cfg.Noise)
	if err != nil {
		return Model{}, err
	}
	return Model{
		gen:      neuro.New(cfg.SamplePeriod),
		cfg:      cfg,
		noise:    noise,
		acc:      analysis.NewAccumulator(),
		meanHist: make([]float64, 0, historyCapacity),
		running:  true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running && m.err == nil
		case "r":
			m.reset()
		case "m":
			m.switchMode()
		case "tab":
			m.selected = (m.selected + 1) % neuro.NumChannels
			m.meanHist = m.meanHist[:0]
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.generate()
		}
		return m, tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// generate pulls the next chunk. A fixed seed walks forward with the tick
// counter so the stream stays reproducible without repeating chunks.
func (m *Model) generate() {
	seed := m.cfg.Seed
	if seed != 0 {
		seed += int64(m.ticks)
	}

	var (
		batch neuro.Batch
		err   error
	)
	if m.cfg.Mode == config.ModeTrajectory {
		tc := neuro.TrajectoryConfig{NumSignals: chunkSize, Noise: m.noise, Amplitude: m.cfg.NoiseAmplitude, Seed: seed}
		batch, err = m.gen.GenerateTrajectory(m.cfg.StartPose(), m.cfg.EndPose(), tc)
	} else {
		cc := neuro.ClusterConfig{NumSignals: chunkSize, Strength: m.cfg.Strength, Seed: seed}
		batch, err = m.gen.GenerateCluster(m.cfg.StartPose(), m.cfg.EndPose(), cc)
	}
	if err != nil {
		m.err = err
		m.running = false
		return
	}

	m.err = nil
	m.batch = batch
	for _, sig := range batch {
		m.acc.Observe(sig)
	}

	mean := 0.0
	for _, v := range batch.Channel(m.selected) {
		mean += v
	}
	m.meanHist = append(m.meanHist, mean/float64(len(batch)))
	if len(m.meanHist) > historyCapacity {
		m.meanHist = m.meanHist[1:]
	}
	m.ticks++
}

func (m *Model) reset() {
	m.acc.Reset()
	m.meanHist = m.meanHist[:0]
	m.batch = nil
	m.ticks = 0
	m.err = nil
	m.running = true
}

func (m *Model) switchMode() {
	if m.cfg.Mode == config.ModeTrajectory {
		m.cfg.Mode = config.ModeCluster
	} else {
		m.cfg.Mode = config.ModeTrajectory
	}
	m.reset()
}

func (m *Model) adjust(dir float64) {
	if m.cfg.Mode == config.ModeTrajectory {
		m.cfg.NoiseAmplitude += 0.1 * dir
		if m.cfg.NoiseAmplitude < 0 {
			m.cfg.NoiseAmplitude = 0
		}
	} else {
		m.cfg.Strength += 0.05 * dir
		if m.cfg.Strength < 0 {
			m.cfg.Strength = 0
		}
		if m.cfg.Strength > 1 {
			m.cfg.Strength = 1
		}
	}
}

func (m Model) View() string {
	summaries := m.acc.Summary()

	var rows strings.Builder
	for ch := 0; ch < neuro.NumChannels; ch++ {
		spark := SparklineChart(m.batch.Channel(ch), sparkWidth)
		line := fmt.Sprintf("%s %s %s",
			MetricLabel.Render(fmt.Sprintf("c%02d", ch)),
			spark,
			MetricValue.Render(fmt.Sprintf("%8.1f", summaries[ch].Mean)))
		if ch == m.selected {
			rows.WriteString(activeStyle.Render("> ") + line + "\n")
		} else {
			rows.WriteString("  " + line + "\n")
		}
	}
	channelView := channelsStyle.Render(rows.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("NEUROSIM "+strings.ToUpper(m.cfg.Mode)) + "\n")
	switch {
	case m.err != nil:
		s.WriteString(StatusPaused.Render("STALLED") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("STREAMING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.meanHist) > 1 {
		chart := asciigraph.Plot(m.meanHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption(fmt.Sprintf("c%02d chunk mean", m.selected)))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Signals") + valueStyle.Render(fmt.Sprintf("%d", m.acc.Count())) + "\n")
	sel := summaries[m.selected]
	s.WriteString(labelStyle.Render("Mean") + valueStyle.Render(fmt.Sprintf("%.2f", sel.Mean)) + "\n")
	s.WriteString(labelStyle.Render("Std") + valueStyle.Render(fmt.Sprintf("%.2f", sel.Std)) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("[%d, %d]", sel.Min, sel.Max)) + "\n")

	s.WriteString("\n" + Separator(24) + "\n")
	if m.cfg.Mode == config.ModeTrajectory {
		s.WriteString(fmt.Sprintf("%-10s %s %.2f\n", "amplitude", ProgressBar(m.cfg.NoiseAmplitude/5, 10), m.cfg.NoiseAmplitude))
		s.WriteString(labelStyle.Render("noise") + valueStyle.Render(m.noise.String()) + "\n")
	} else {
		s.WriteString(fmt.Sprintf("%-10s %s %.2f\n", "strength", ProgressBar(m.cfg.Strength, 10), m.cfg.Strength))
	}

	if m.err != nil {
		s.WriteString("\n" + StatusPaused.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n\n" + KeyHint.Render("SP:Pause R:Reset Q:Quit\nM:Mode Tab:Channel ↑↓:Tune ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, channelView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume stream      ║
║  R        - Reset statistics         ║
║  M        - Switch generation mode   ║
║  Tab      - Cycle focused channel    ║
║  Up/K     - Raise strength/amplitude ║
║  Down/J   - Lower strength/amplitude ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
