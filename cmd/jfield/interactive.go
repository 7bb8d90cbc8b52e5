package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jvm-bridge/accessor"
	"github.com/wippyai/jvm-bridge/jvm"
	"github.com/wippyai/jvm-bridge/lookup"
	"github.com/wippyai/jvm-bridge/vm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
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
	stateSelectClass modelState = iota
	stateSelectField
	stateInputValue
	stateShowResult
)

type interactiveModel struct {
	rt        *vm.Runtime
	instances *vm.InstanceTable
	classes   []string
	fields    []jvm.FieldInfo
	input     textinput.Model
	result    string
	resultErr bool
	selClass  int
	selField  int
	state     modelState
}

func newInteractiveModel(rt *vm.Runtime) *interactiveModel {
	classes := rt.ClassNames()
	sort.Strings(classes)

	input := textinput.New()
	input.Placeholder = "value"
	input.CharLimit = 128

	return &interactiveModel{
		rt:        rt,
		instances: vm.NewInstanceTable(),
		classes:   classes,
		input:     input,
		state:     stateSelectClass,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelectClass:
		return m.updateSelectClass(keyMsg)
	case stateSelectField:
		return m.updateSelectField(keyMsg)
	case stateInputValue:
		return m.updateInputValue(keyMsg)
	default:
		return m.updateShowResult(keyMsg)
	}
}

func (m *interactiveModel) updateSelectClass(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selClass > 0 {
			m.selClass--
		}
	case "down", "j":
		if m.selClass < len(m.classes)-1 {
			m.selClass++
		}
	case "L":
		m.showLookup()
	case "enter":
		if len(m.classes) == 0 {
			break
		}
		fields, err := m.classFields(m.classes[m.selClass])
		if err != nil {
			m.showError(err)
			break
		}
		m.fields = fields
		m.selField = 0
		m.state = stateSelectField
	}
	return m, nil
}

func (m *interactiveModel) updateSelectField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectClass
	case "up", "k":
		if m.selField > 0 {
			m.selField--
		}
	case "down", "j":
		if m.selField < len(m.fields)-1 {
			m.selField++
		}
	case "s":
		if len(m.fields) == 0 {
			break
		}
		m.input.SetValue("")
		m.input.Focus()
		m.state = stateInputValue
		return m, textinput.Blink
	case "enter", "g":
		if len(m.fields) == 0 {
			break
		}
		m.performGet()
	}
	return m, nil
}

func (m *interactiveModel) updateInputValue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectField
		return m, nil
	case "enter":
		m.performSet(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) updateShowResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		if len(m.fields) > 0 {
			m.state = stateSelectField
		} else {
			m.state = stateSelectClass
		}
	}
	return m, nil
}

func (m *interactiveModel) classFields(className string) ([]jvm.FieldInfo, error) {
	cls, err := m.rt.FindClass(className)
	if err != nil {
		return nil, err
	}
	return m.rt.Fields(cls)
}

// receiver returns the field's receiver: nil for statics, a named per-class
// instance (created on first use) otherwise, so repeated sets against the
// same class observe each other.
func (m *interactiveModel) receiver(className string, static bool) (jvm.Object, error) {
	if static {
		return nil, nil
	}
	if obj, ok := m.instances.Get(className); ok {
		return obj, nil
	}
	obj, err := m.rt.NewInstance(className)
	if err != nil {
		return nil, err
	}
	if err := m.instances.Put(className, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *interactiveModel) boundField() (*accessor.Field, jvm.Object, error) {
	className := m.classes[m.selClass]
	fi := m.fields[m.selField]

	f, err := accessor.Bind(m.rt, className, fi.Name, fi.Descriptor)
	if err != nil {
		return nil, nil, err
	}
	recv, err := m.receiver(className, f.IsStatic())
	if err != nil {
		return nil, nil, err
	}
	return f, recv, nil
}

func (m *interactiveModel) performGet() {
	f, recv, err := m.boundField()
	if err != nil {
		m.showError(err)
		return
	}

	result, err := rawGet(m.rt, f, recv)
	if err != nil {
		m.showError(err)
		return
	}
	m.showResult(fmt.Sprintf("%s.%s = %v", f.Owner(), f.Name(), result))
}

func (m *interactiveModel) performSet(literal string) {
	f, recv, err := m.boundField()
	if err != nil {
		m.showError(err)
		return
	}

	v, err := parseValue(m.rt, f.Kind(), literal)
	if err != nil {
		m.showError(err)
		return
	}
	if err := f.Set(recv, v); err != nil {
		m.showError(err)
		return
	}
	m.showResult(fmt.Sprintf("%s.%s set to %v", f.Owner(), f.Name(), displayValue(v)))
}

func (m *interactiveModel) showLookup() {
	obj, err := lookup.AcquireTrustedLookup(m.rt)
	if err != nil {
		m.showError(err)
		return
	}
	m.showResult("acquired trusted lookup: " + obj.Class().Name())
}

func (m *interactiveModel) showResult(s string) {
	m.result = s
	m.resultErr = false
	m.state = stateShowResult
}

func (m *interactiveModel) showError(err error) {
	m.result = err.Error()
	m.resultErr = true
	m.state = stateShowResult
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jfield"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectClass:
		b.WriteString("Classes:\n")
		for i, name := range m.classes {
			line := "  " + classStyle.Render(name)
			if i == m.selClass {
				line = selectedStyle.Render("> " + name)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(helpStyle.Render("\n↑/↓ select · enter fields · L trusted lookup · q quit"))

	case stateSelectField:
		b.WriteString(classStyle.Render(m.classes[m.selClass]) + "\n")
		for i, fi := range m.fields {
			tag := "instance"
			if fi.Static {
				tag = "static"
			}
			text := fmt.Sprintf("%s %s (%s)", fi.Name, fieldStyle.Render(fi.Descriptor), tag)
			if i == m.selField {
				text = selectedStyle.Render("> " + fmt.Sprintf("%s %s (%s)", fi.Name, fi.Descriptor, tag))
			} else {
				text = "  " + text
			}
			b.WriteString(text + "\n")
		}
		b.WriteString(helpStyle.Render("\ng get · s set · esc back · q quit"))

	case stateInputValue:
		fi := m.fields[m.selField]
		b.WriteString(fmt.Sprintf("Set %s.%s (%s):\n\n", m.classes[m.selClass], fi.Name, fi.Descriptor))
		b.WriteString(m.input.View())
		b.WriteString(helpStyle.Render("\n\nenter apply · esc cancel"))

	default:
		style := resultStyle
		if m.resultErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.result))
		b.WriteString(helpStyle.Render("\n\nenter/esc back · q quit"))
	}

	return b.String()
}

func runInteractive(rt *vm.Runtime) error {
	p := tea.NewProgram(newInteractiveModel(rt))
	_, err := p.Run()
	return err
}
