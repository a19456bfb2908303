package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexshd/infoecon"
)

const barCells = 30

type keyMap struct {
	Research key.Binding
	Produce  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Research: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "research")),
		Produce:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "produce")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Research, k.Produce, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Research, k.Produce}, {k.Help, k.Quit}}
}

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	money  lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	box    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Width(22),
		value:  lipgloss.NewStyle().Bold(true),
		money:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		box:    lipgloss.NewStyle().Padding(1, 2),
	}
}

// model is the interactive simulator. It owns the economy; every key press
// is one turn.
type model struct {
	econ   *infoecon.Economy
	keys   keyMap
	help   help.Model
	bar    progress.Model
	styles styles

	status string
	err    error
}

func newModel(econ *infoecon.Economy) model {
	bar := progress.New(
		progress.WithSolidFill("#7D56F4"),
		progress.WithWidth(barCells),
		progress.WithoutPercentage(),
	)
	return model{
		econ:   econ,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    bar,
		styles: defaultStyles(),
		status: "Press r to research, p to produce.",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Research):
			m.play(infoecon.ActionResearch)
		case key.Matches(msg, m.keys.Produce):
			m.play(infoecon.ActionProduce)
		}
	}
	return m, nil
}

func (m *model) play(a infoecon.Action) {
	step, err := m.econ.Apply(a)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	switch a {
	case infoecon.ActionResearch:
		m.status = fmt.Sprintf("Turn %d: researched, H(p) now %.3f", step.Turn, step.Metrics.Entropy)
		if m.econ.Stalled() {
			m.status += " (best method has zero weight, research is stalled)"
		}
	case infoecon.ActionProduce:
		m.status = fmt.Sprintf("Turn %d: produced %.3f", step.Turn, step.Income)
	}
}

func (m model) View() string {
	var sb strings.Builder
	s := m.styles

	sb.WriteString(s.title.Render("Info-Theoretic Economic Simulator"))
	sb.WriteString("\n")

	mt := m.econ.Metrics()
	stats := []struct {
		label string
		value string
	}{
		{"Turn", fmt.Sprintf("%d", m.econ.Turn())},
		{"Entropy H(p)", f3(mt.Entropy)},
		{"Knowledge K(t)", f3(mt.Knowledge)},
		{"TFP A(t)", f3(mt.TFP)},
		{"Real Wage w_r(t)", f3(mt.RealWage)},
		{"Time Price π_g(t)", f3(mt.TimePrice)},
		{"Production Y(t)", f3(mt.Output)},
	}
	for _, st := range stats {
		sb.WriteString(s.label.Render(st.label+":") + s.value.Render(st.value) + "\n")
	}
	sb.WriteString(s.label.Render("Money (score):") + s.money.Render(fmt.Sprintf("%.2f", m.econ.Money())) + "\n\n")

	sb.WriteString("Probability Distribution p(ω):\n")
	for i, w := range m.econ.Distribution() {
		fmt.Fprintf(&sb, "Method %d: %.3f %s\n", i, w, m.bar.ViewAs(w))
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(s.err.Render("Error: "+m.err.Error()) + "\n")
	} else {
		sb.WriteString(s.status.Render(m.status) + "\n")
	}
	sb.WriteString("\n" + m.help.View(m.keys))

	return s.box.Render(sb.String())
}

func runTUI(econ *infoecon.Economy, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newModel(econ),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
