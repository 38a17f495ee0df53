package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/js-runtime/handle"
	"github.com/wippyai/js-runtime/object"
	"github.com/wippyai/js-runtime/typedarray"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
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

type interactiveModel struct {
	err      error
	ctx      *object.Context
	table    *handle.Table
	kinds    []typedarray.Kind
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectKind modelState = iota
	stateInputArgs
	stateShowResult
)

type constructedMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		ctx:   object.NewContext(),
		table: handle.NewTable(),
		kinds: typedarray.Kinds(),
		state: stateSelectKind,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				m.table.Close()
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectKind && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectKind && m.selected < len(m.kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectKind:
				m.prepareInput()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.construct

			case stateShowResult:
				m.state = stateSelectKind
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectKind
			case stateShowResult:
				m.state = stateSelectKind
				m.result = ""
				m.err = nil
			}
		}

	case constructedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "length (8) or values (1,2,3); empty for no arguments"
	ti.Prompt = "args: "
	ti.Width = 48
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) construct() tea.Msg {
	kind := m.kinds[m.selected]

	args, err := parseArgs(m.ctx, kind, m.input.Value())
	if err != nil {
		return constructedMsg{err: err}
	}

	target := typedarray.IntrinsicConstructor(m.ctx, kind)
	obj, err := typedarray.Construct(m.ctx, kind, target, args)
	if err != nil {
		return constructedMsg{err: err}
	}

	h, err := m.table.Insert(obj)
	if err != nil {
		return constructedMsg{err: err}
	}

	view := typedarray.ViewOf(obj)
	var b strings.Builder
	fmt.Fprintf(&b, "handle %d\n", h)
	b.WriteString(describeView(m.ctx, view))
	b.WriteByte('\n')
	b.WriteString(hexDump(view))
	return constructedMsg{result: b.String()}
}

// parseArgs turns the free-form input into constructor arguments: empty for
// none, a bare integer for the length path, a comma-separated list for the
// iterable path.
func parseArgs(ctx *object.Context, kind typedarray.Kind, input string) ([]object.Value, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	if !strings.Contains(input, ",") {
		if n, err := strconv.ParseInt(input, 10, 64); err == nil {
			return []object.Value{object.Number(n)}, nil
		}
	}
	var elems []object.Value
	for _, s := range strings.Split(input, ",") {
		v, err := parseValue(kind, strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return []object.Value{object.NewArrayLike(ctx.Realm, elems...)}, nil
}

// parseValue parses one element, as a big integer for BigInt kinds and as a
// number otherwise.
func parseValue(kind typedarray.Kind, s string) (object.Value, error) {
	if kind.Content() == typedarray.ContentBigInt {
		i, ok := new(big.Int).SetString(strings.TrimSuffix(s, "n"), 10)
		if !ok {
			return nil, fmt.Errorf("invalid bigint value %q", s)
		}
		return object.BigInt{Int: i}, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q", s)
	}
	return object.Number(n), nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TypedArray Inspector"))
	fmt.Fprintf(&b, " %d object(s) held\n\n", m.table.Len())

	switch m.state {
	case stateSelectKind:
		b.WriteString("Select a constructor:\n\n")
		for i, k := range m.kinds {
			line := kindStyle.Render(k.String()) +
				typeStyle.Render(fmt.Sprintf("  %d byte(s), %s", k.Size(), k.Content()))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + k.String()))
				b.WriteString(typeStyle.Render(fmt.Sprintf("  %d byte(s), %s", k.Size(), k.Content())))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter construct • q quit"))

	case stateInputArgs:
		fmt.Fprintf(&b, "new %s(...)\n\n", kindStyle.Render(m.kinds[m.selected].String()))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter construct • esc back"))

	case stateShowResult:
		fmt.Fprintf(&b, "new %s(...)\n\n", kindStyle.Render(m.kinds[m.selected].String()))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
