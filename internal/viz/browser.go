package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/neurosim/internal/config"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var presetInfo = map[string]string{
	"balanced": "even activation blend",
	"focused":  "sharp cluster identity",
	"diffuse":  "washed-out clusters",
	"sparse":   "small batch",
	"reach":    "forward reach",
	"grasp":    "precision grip",
	"wave":     "lateral sweep",
	"clean":    "noise-free ramp",
}

const (
	stateMenu = iota
	stateLive
)

type entry struct {
	mode, name string
	cfg        *config.Config
}

// Browser is a preset picker wrapped around the live stream view.
type Browser struct {
	state, cursor int
	entries       []entry
	live          Model
	err           error
}

func NewBrowser() *Browser {
	var entries []entry
	for _, mode := range []string{config.ModeCluster, config.ModeTrajectory} {
		for _, name := range config.ListPresets(mode) {
			entries = append(entries, entry{mode: mode, name: name, cfg: config.GetPreset(mode, name)})
		}
	}
	return &Browser{entries: entries}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	default:
		if b.state == stateLive {
			newLive, cmd := b.live.Update(msg)
			b.live = newLive.(Model)
			return b, cmd
		}
	}
	return b, nil
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b.state == stateLive {
		if msg.String() == "esc" {
			b.state = stateMenu
			return b, nil
		}
		newLive, cmd := b.live.Update(msg)
		b.live = newLive.(Model)
		return b, cmd
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.entries)-1 {
			b.cursor++
		}
	case "enter", " ":
		e := b.entries[b.cursor]
		// Presets are shared; stream a private copy so tuning keys
		// never bleed into the package-level table.
		cfg := *e.cfg
		live, err := NewModel(&cfg)
		if err != nil {
			b.err = err
			return b, nil
		}
		b.live, b.err = live, nil
		b.state = stateLive
		return b, b.live.Init()
	}
	return b, nil
}

func (b Browser) View() string {
	if b.state == stateLive {
		return b.live.View()
	}
	return b.viewMenu()
}

func (b Browser) viewMenu() string {
	var s strings.Builder
	s.WriteString("\n\n    " + cyan.Bold(true).Render("NEUROSIM") + "\n    " + dim.Render("neural signal synthesizer") + "\n    " + dim.Render("─────────────────────────") + "\n\n")
	lastMode := ""
	for i, e := range b.entries {
		if e.mode != lastMode {
			if lastMode != "" {
				s.WriteString("\n")
			}
			s.WriteString("    " + dimmer.Render(e.mode) + "\n")
			lastMode = e.mode
		}
		desc := presetInfo[e.name]
		if i == b.cursor {
			s.WriteString(fmt.Sprintf("    %s %s  %s\n", cyan.Render("▸"), white.Bold(true).Render(fmt.Sprintf("%-12s", e.name)), accent.Render(desc)))
		} else {
			s.WriteString(fmt.Sprintf("      %s  %s\n", dim.Render(fmt.Sprintf("%-12s", e.name)), dimmer.Render(desc)))
		}
	}
	if b.err != nil {
		s.WriteString("\n    " + StatusPaused.Render(b.err.Error()) + "\n")
	}
	s.WriteString("\n    " + cyan.Render("j/k") + dim.Render(" navigate  ") + cyan.Render("enter") + dim.Render(" stream  ") + cyan.Render("esc") + dim.Render(" back  ") + cyan.Render("q") + dim.Render(" quit") + "\n")
	return s.String()
}

// RunBrowser opens the preset browser in the alternate screen.
func RunBrowser() error {
	_, err := tea.NewProgram(NewBrowser(), tea.WithAltScreen()).Run()
	return err
}

// RunLive streams cfg directly without the preset menu.
func RunLive(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
