package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/bindgroup"
	"github.com/wippyai/slang-go/reflection"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D9A")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D9A"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type itemKind int

const (
	itemEntryPoint itemKind = iota
	itemParameter
	itemBindings
)

func (k itemKind) String() string {
	switch k {
	case itemEntryPoint:
		return "entry"
	case itemParameter:
		return "param"
	}
	return "layout"
}

// browseItem is one row of the browser. Details are rendered when the
// program is loaded so the view never calls into the library.
type browseItem struct {
	kind    itemKind
	name    string
	summary string
	detail  string
}

type browserState int

const (
	stateList browserState = iota
	stateDetail
	stateFilter
	stateCompiled
)

type browserModel struct {
	opts     *options
	prog     *program
	err      error
	items    []browseItem
	visible  []int
	filter   textinput.Model
	selected int
	state    browserState
	result   string
}

func newBrowserModel(opts *options) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = "filter: "
	ti.Width = 40
	return &browserModel{opts: opts, filter: ti, state: stateList}
}

type loadedMsg struct {
	err   error
	prog  *program
	items []browseItem
}

type compiledMsg struct {
	err    error
	result string
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadProgram
}

func (m *browserModel) loadProgram() tea.Msg {
	var diag bytes.Buffer
	prog, err := load(m.opts, zap.NewNop(), &diag)
	if err != nil {
		prog.Close()
		if diag.Len() > 0 {
			err = fmt.Errorf("%w\n%s", err, strings.TrimSpace(diag.String()))
		}
		return loadedMsg{err: err}
	}
	return loadedMsg{prog: prog, items: browseItems(prog.shader)}
}

func browseItems(shader *reflection.Shader) []browseItem {
	var items []browseItem
	for _, ep := range shader.EntryPoints() {
		items = append(items, browseItem{
			kind:    itemEntryPoint,
			name:    ep.Name(),
			summary: ep.Stage().String(),
			detail:  entryPointDetail(ep),
		})
	}
	for _, p := range shader.Parameters() {
		items = append(items, browseItem{
			kind:    itemParameter,
			name:    p.Name(),
			summary: typeName(p.Type()),
			detail:  parameterDetail(p),
		})
	}
	if layout, err := bindgroup.FromShader(shader); err == nil {
		var b strings.Builder
		printBindings(&b, layout)
		items = append(items, browseItem{
			kind:    itemBindings,
			name:    "bind groups",
			summary: fmt.Sprintf("%d groups", len(layout.Groups)),
			detail:  b.String(),
		})
	}
	return items
}

func entryPointDetail(ep *reflection.EntryPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "stage: %s\n", ep.Stage())
	if ep.Stage() == abi.StageCompute {
		size := ep.ComputeThreadGroupSize()
		fmt.Fprintf(&b, "numthreads: %d %d %d\n", size[0], size[1], size[2])
	}
	for i, p := range ep.Parameters() {
		fmt.Fprintf(&b, "param %d: %s %s : %s\n", i, typeName(p.Type()), p.Name(), semantic(p))
	}
	if fn := ep.Function(); fn != nil {
		fmt.Fprintf(&b, "returns: %s\n", typeName(fn.ResultType()))
	}
	return b.String()
}

func parameterDetail(p *reflection.VariableLayout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type: %s\n", typeName(p.Type()))
	fmt.Fprintf(&b, "category: %s\n", p.Category())
	fmt.Fprintf(&b, "binding: %d space %d\n", p.BindingIndex(), p.BindingSpace())
	tl := p.TypeLayout()
	if tl == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "kind: %s\n", tl.Kind())
	if size := tl.Size(abi.CategoryUniform); size > 0 && size != abi.UnorderedSize {
		fmt.Fprintf(&b, "uniform size: %d\n", size)
	}
	if elem, ok := tl.ElementTypeLayout(); ok {
		tl = elem
	}
	for _, f := range tl.Fields() {
		fmt.Fprintf(&b, "  %s %s @%d\n", typeName(f.Type()), f.Name(), f.Offset(abi.CategoryUniform))
	}
	return b.String()
}

// applyFilter recomputes the visible rows.
func (m *browserModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, it := range m.items {
		if q == "" || strings.Contains(strings.ToLower(it.name), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *browserModel) current() (browseItem, bool) {
	if m.selected < len(m.visible) {
		return m.items[m.visible[m.selected]], true
	}
	return browseItem{}, false
}

func (m *browserModel) compile() tea.Msg {
	if m.prog == nil || m.prog.linked == nil {
		return compiledMsg{err: fmt.Errorf("program not loaded")}
	}
	code, d, err := m.prog.linked.TargetCode(0)
	var diag strings.Builder
	printDiagnostics(&diag, d)
	if err != nil {
		return compiledMsg{err: err, result: diag.String()}
	}
	defer code.Release()
	return compiledMsg{result: fmt.Sprintf("%s%s: %d bytes", diag.String(), m.opts.target, code.Size())}
}

func (m *browserModel) quit() (tea.Model, tea.Cmd) {
	if m.prog != nil {
		m.prog.Close()
		m.prog = nil
	}
	return m, tea.Quit
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				return m.quit()
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateList
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit()

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "c":
			if m.state == stateList {
				return m, m.compile
			}

		case "enter":
			switch m.state {
			case stateList:
				if _, ok := m.current(); ok {
					m.state = stateDetail
				}
			case stateDetail, stateCompiled:
				m.state = stateList
			}

		case "esc":
			if m.state != stateList {
				m.state = stateList
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.prog = msg.prog
		m.items = msg.items
		m.applyFilter()

	case compiledMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateCompiled
	}
	return m, nil
}

func (m *browserModel) View() string {
	if m.err != nil && m.state != stateCompiled {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.prog == nil {
		return "Loading module..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Slang Reflection"))
	b.WriteString(" ")
	b.WriteString(m.opts.moduleName())
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(m.opts.target.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString("Nothing to show.\n")
		}
		for i, idx := range m.visible {
			it := m.items[idx]
			line := fmt.Sprintf("%-6s %s %s", it.kind, it.name, it.summary)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + fmt.Sprintf("%-6s %s %s", it.kind, nameStyle.Render(it.name), typeStyle.Render(it.summary)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • c compile • q quit"))

	case stateDetail:
		it, _ := m.current()
		b.WriteString(fmt.Sprintf("%s %s\n\n", it.kind, nameStyle.Render(it.name)))
		b.WriteString(it.detail)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))

	case stateCompiled:
		if m.err != nil {
			if m.result != "" {
				b.WriteString(m.result)
			}
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(okStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}
	return b.String()
}

func runInteractive(opts *options) error {
	p := tea.NewProgram(newBrowserModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
