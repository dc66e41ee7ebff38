package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/gojabind"
	"github.com/wippyai/idl-bindings/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	convStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
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

type modelState int

const (
	stateSelectConv modelState = iota
	stateInputExpr
	stateShowResult
)

type interactiveModel struct {
	cfg      *Config
	reg      *registry.Registry
	realm    *gojabind.Realm
	names    []string
	input    textinput.Model
	selected int
	state    modelState
	result   string
	isErr    bool
	history  []string
}

func newInteractiveModel(cfg *Config, reg *registry.Registry) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "script expression, e.g. [1, 2.5, '3']"
	ti.Prompt = "> "
	ti.Width = 60

	return &interactiveModel{
		cfg:   cfg,
		reg:   reg,
		realm: newRealm(),
		names: reg.Names(),
		input: ti,
		state: stateSelectConv,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputExpr {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectConv && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectConv && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectConv:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputExpr

			case stateInputExpr:
				m.runConversion()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectConv
				m.result = ""
				m.isErr = false
			}

		case "esc":
			switch m.state {
			case stateInputExpr:
				m.input.Blur()
				m.state = stateSelectConv
			case stateShowResult:
				m.state = stateSelectConv
				m.result = ""
				m.isErr = false
			}
		}
	}

	if m.state == stateInputExpr {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) runConversion() {
	expr := m.input.Value()
	name := m.names[m.selected]

	raw, err := m.realm.Runtime().RunString(expr)
	if err != nil {
		m.result = fmt.Sprintf("evaluate: %v", err)
		m.isErr = true
		return
	}

	in := m.realm.Value(raw)
	ctx := convert.Context{Prefix: m.cfg.Prefix, Realm: m.realm}
	result, convErr := m.reg.Convert(name, in, ctx)
	m.realm.Drain()
	if convErr != nil {
		m.result = convErr.Error()
		m.isErr = true
	} else {
		m.result = fmt.Sprintf("%#v", result)
		m.isErr = false
	}
	m.history = append(m.history, fmt.Sprintf("%s(%s)", name, expr))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IDL Converter Testbed"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectConv:
		b.WriteString("Select a converter:\n\n")
		for i, name := range m.names {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + convStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputExpr:
		b.WriteString(fmt.Sprintf("Converter %s\n\n", convStyle.Render(m.names[m.selected])))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("%s(%s)\n\n", convStyle.Render(m.names[m.selected]), kindStyle.Render(m.input.Value())))
		if m.isErr {
			b.WriteString(errorStyle.Render(m.result))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	if len(m.history) > 0 && m.state == stateSelectConv {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d conversion(s) this session", len(m.history))))
	}

	return b.String()
}

func runInteractive(cfg *Config, reg *registry.Registry) error {
	p := tea.NewProgram(newInteractiveModel(cfg, reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
