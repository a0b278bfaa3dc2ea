package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/rtbase/callconv"
	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/fastconv"
	"github.com/wippyai/rtbase/numeric"
	"github.com/wippyai/rtbase/target"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	spellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newExploreCommand(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse targets and their resolutions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.InvalidInput(errors.PhaseConfigure, "explore needs an interactive terminal")
			}
			_, err := tea.NewProgram(newExploreModel(target.Known()), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type exploreState int

const (
	stateSelectTarget exploreState = iota
	stateDetail
	stateConvert
)

type exploreModel struct {
	err      error
	table    *callconv.Table
	set      *numeric.Set
	result   string
	targets  []target.Platform
	input    textinput.Model
	selected int
	state    exploreState
}

func newExploreModel(targets []target.Platform) *exploreModel {
	ti := textinput.New()
	ti.Placeholder = "2.5"
	ti.Prompt = "value: "
	ti.Width = 30
	return &exploreModel{targets: targets, input: ti, state: stateSelectTarget}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateConvert {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.input.Blur()
			m.state = stateDetail
			return m, nil
		case "enter":
			m.result = convertValue(m.input.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == stateSelectTarget && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateSelectTarget && m.selected < len(m.targets)-1 {
			m.selected++
		}

	case "enter":
		if m.state == stateSelectTarget {
			m.resolveSelected()
			m.state = stateDetail
		}

	case "c":
		if m.state == stateDetail && m.err == nil {
			m.result = ""
			m.input.SetValue("")
			m.input.Focus()
			m.state = stateConvert
		}

	case "esc":
		if m.state == stateDetail {
			m.state = stateSelectTarget
			m.err = nil
		}
	}

	return m, nil
}

func (m *exploreModel) resolveSelected() {
	p := m.targets[m.selected]
	m.table, m.err = callconv.DefaultResolver().ResolveAll(p)
	if m.err != nil {
		return
	}
	m.set, m.err = numeric.Resolve(p)
}

func convertValue(s string) string {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errorStyle.Render("not a number")
	}
	got, err := fastconv.Checked(x)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return resultStyle.Render(fmt.Sprintf("fast=%d rne=%d fixed16=%#08x",
		got, int32(math.RoundToEven(x)), uint32(fastconv.Float64ToFixed16(x))))
}

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rtbase"))
	b.WriteString(" ")
	if m.state == stateSelectTarget {
		b.WriteString("targets\n\n")
		for i, p := range m.targets {
			line := fmt.Sprintf("%-28s %s", p, p.DataModel())
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter resolve • q quit"))
		return b.String()
	}

	p := m.targets[m.selected]
	b.WriteString(p.String())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
		return b.String()
	}

	for _, c := range callconv.Conventions() {
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-14s", c.Macro())))
		b.WriteString(spellStyle.Render(m.table.Func(c).Render("R", "f")))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s %q  %s %q\n", nameStyle.Render("export"), m.table.Export, nameStyle.Render("import"), m.table.Import)
	fmt.Fprintf(&b, "%s %s  %s %s\n\n", nameStyle.Render("inline"), spellStyle.Render(m.table.Inline.Render("R", "f")),
		nameStyle.Render("round"), spellStyle.Render(m.table.Round.String()))

	for _, t := range m.set.Types() {
		fmt.Fprintf(&b, "%s %s\n", nameStyle.Render(fmt.Sprintf("%-9s", t.Name)), spellStyle.Render(t.C))
	}
	b.WriteString("\n")

	if m.state == stateConvert {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.result != "" {
			b.WriteString(m.result)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))
		return b.String()
	}

	b.WriteString(helpStyle.Render("c convert • esc back • q quit"))
	return b.String()
}
