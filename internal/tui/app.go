// Package tui is the interactive terminal front end: an operation menu,
// free-text matrix entry in any accepted notation, and a result screen
// with a scrollable row-operation trace.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/matrixlab/internal/config"
	"github.com/san-kum/matrixlab/internal/format"
	"github.com/san-kum/matrixlab/internal/ops"
	"github.com/san-kum/matrixlab/internal/parse"
)

type state int

const (
	stateMenu state = iota
	stateInput
	stateResult
)

type model struct {
	state  state
	theme  Theme
	st     styles
	reg    *ops.Registry
	names  []string
	cursor int

	selected ops.Op
	inputs   []string // one free-text buffer per operand
	field    int      // active operand
	errMsg   string

	result     *ops.Result
	stepCursor int
	showSteps  bool

	precision int
	width     int
	height    int
}

var inputLabels = map[string][]string{
	"cramer": {"coefficient matrix A", "right-hand side b"},
	"indep":  {"vectors (one per row)"},
}

func NewApp(cfg *config.Config) *model {
	theme := GetTheme(cfg.Theme)
	reg := ops.NewRegistry()
	return &model{
		state:     stateMenu,
		theme:     theme,
		st:        newStyles(theme),
		reg:       reg,
		names:     reg.List(),
		precision: cfg.Precision,
		width:     80,
		height:    24,
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

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Theme cycling works everywhere except while typing a matrix.
	if m.state != stateInput && msg.String() == "t" {
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
		return m, nil
	}

	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		op, err := m.reg.Get(m.names[m.cursor])
		if err != nil {
			return m, nil
		}
		m.selected = op
		m.inputs = make([]string, op.Arity)
		m.field = 0
		m.errMsg = ""
		m.state = stateInput
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.errMsg = ""
		return m, nil
	case "tab":
		if len(m.inputs) > 1 {
			m.field = (m.field + 1) % len(m.inputs)
		}
		return m, nil
	case "ctrl+r":
		m.inputs[m.field] = randomMatrixText(m.selected, m.field)
		return m, nil
	case "ctrl+s":
		return m.compute()
	case "enter":
		m.inputs[m.field] += "\n"
		return m, nil
	case "backspace":
		if buf := m.inputs[m.field]; len(buf) > 0 {
			m.inputs[m.field] = buf[:len(buf)-1]
		}
		return m, nil
	}

	if s := msg.String(); len(s) == 1 {
		m.inputs[m.field] += s
	} else if msg.Type == tea.KeySpace {
		m.inputs[m.field] += " "
	}
	return m, nil
}

func (m model) compute() (tea.Model, tea.Cmd) {
	parsed := make([][][]float64, len(m.inputs))
	for i, text := range m.inputs {
		var (
			mat [][]float64
			err error
		)
		if m.selected.Name == "indep" {
			mat, err = parse.Vectors(text)
		} else {
			mat, err = parse.Matrix(text)
		}
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		parsed[i] = mat
	}

	var a, b [][]float64
	a = parsed[0]
	if len(parsed) > 1 {
		b = parsed[1]
	}

	res, err := m.reg.Run(m.selected.Name, a, b, m.precision)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.result = res
	m.errMsg = ""
	m.stepCursor = 0
	m.showSteps = false
	m.state = stateResult
	return m, tea.ClearScreen
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.result = nil
		return m, tea.ClearScreen
	case "e":
		m.state = stateInput
		return m, tea.ClearScreen
	case "s":
		m.showSteps = !m.showSteps
		m.stepCursor = 0
	case "up", "k":
		if m.stepCursor > 0 {
			m.stepCursor--
		}
	case "down", "j":
		if m.result != nil && m.stepCursor < len(m.result.Steps)-1 {
			m.stepCursor++
		}
	}
	return m, nil
}

// randomMatrixText fills the active field with small integers, 3x3 for
// matrices and 3x1 for Cramer's right-hand side.
func randomMatrixText(op ops.Op, field int) string {
	rows, cols := 3, 3
	if op.Name == "cramer" && field == 1 {
		cols = 1
	}
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", rand.Intn(19)-9)
		}
	}
	return b.String()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInput:
		return m.viewInput()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.st.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + m.st.title.Render("m a t r i x l a b") + "\n")
	b.WriteString(m.st.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.names {
		op, _ := m.reg.Get(name)
		if i == m.cursor {
			b.WriteString("      " + m.st.sel.Render("▸ ") + m.st.item.Render(fmt.Sprintf("%-12s", name)) + m.st.dim.Render(op.Info) + "\n")
		} else {
			b.WriteString("        " + m.st.dim.Render(fmt.Sprintf("%-12s", name)) + m.st.faint.Render(op.Info) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.st.dim.Render("      ↑↓ select   enter choose   t theme ("+m.theme.Name+")   q quit") + "\n")

	return b.String()
}

func (m model) viewInput() string {
	var b strings.Builder

	b.WriteString("\n      " + m.st.title.Render(m.selected.Name) + "  " + m.st.dim.Render(m.selected.Info) + "\n")
	b.WriteString(m.st.faint.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	labels := inputLabels[m.selected.Name]
	for i, buf := range m.inputs {
		label := fmt.Sprintf("matrix %c", 'A'+i)
		if i < len(labels) {
			label = labels[i]
		}
		marker := "  "
		style := m.st.dim
		if i == m.field {
			marker = m.st.sel.Render("▸ ")
			style = m.st.item
		}
		b.WriteString("      " + marker + style.Render(label) + "\n")

		lines := strings.Split(buf, "\n")
		for li, line := range lines {
			cursor := ""
			if i == m.field && li == len(lines)-1 {
				cursor = m.st.accent.Render("▋")
			}
			b.WriteString("        " + m.st.item.Render(line) + cursor + "\n")
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("      " + m.st.bad.Render("✗ "+m.errMsg) + "\n\n")
	}

	hint := "type freely: 1 2; 3 4  or  [[1,2],[3,4]]  or rows on lines"
	b.WriteString("      " + m.st.faint.Render(hint) + "\n")
	b.WriteString("      " + m.st.dim.Render("ctrl+s compute   ctrl+r random   tab field   esc back") + "\n")

	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	res := m.result
	if res == nil {
		return ""
	}

	b.WriteString("\n      " + m.st.title.Render(m.selected.Name) + "  " + m.st.good.Render("✓") + "\n")
	b.WriteString(m.st.faint.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	if res.Scalar != "" {
		b.WriteString("      " + m.st.accent.Render("result: "+res.Scalar) + "\n")
	}
	if res.Note != "" {
		b.WriteString("      " + m.st.dim.Render(res.Note) + "\n")
	}
	if len(res.Pivots) > 0 {
		cols := make([]string, len(res.Pivots))
		for i, p := range res.Pivots {
			cols[i] = fmt.Sprintf("%d", p+1)
		}
		b.WriteString("      " + m.st.dim.Render("pivot columns: "+strings.Join(cols, ", ")) + "\n")
	}
	if res.Matrix != nil {
		for _, line := range strings.Split(format.Grid(res.Matrix, m.precision), "\n") {
			b.WriteString("      " + m.st.item.Render(line) + "\n")
		}
		b.WriteString("\n      " + m.st.faint.Render(format.Line(res.Matrix, m.precision)) + "\n")
	}

	if m.showSteps && len(res.Steps) > 0 {
		b.WriteString("\n      " + m.st.title.Render(fmt.Sprintf("steps (%d/%d)", m.stepCursor+1, len(res.Steps))) + "\n")
		step := res.Steps[m.stepCursor]
		b.WriteString("      " + m.st.accent.Render(step.Desc) + "\n")
		if step.Snapshot != nil {
			for _, line := range strings.Split(format.Grid(step.Snapshot, m.precision), "\n") {
				b.WriteString("        " + m.st.dim.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n      " + m.st.dim.Render("s steps   ↑↓ walk   e edit   t theme   esc menu   q quit") + "\n")

	return b.String()
}

// RunInteractive starts the TUI and blocks until the user quits.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
