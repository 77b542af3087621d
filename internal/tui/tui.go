// Package tui provides a Bubble Tea TUI for viewing captured scripts.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/capturecli/internal/script"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	lineNoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Per line kind
	kindStyles = map[script.Kind]lipgloss.Style{
		script.KindShebang:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		script.KindComment:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		script.KindSettingsMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
		script.KindSetting:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		script.KindStepComment:    lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		script.KindCommand:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
)

// ── Tab definitions ─────────────────

type tabID int

const (
	tabScript tabID = iota
	tabSteps
	tabCount
)

var tabNames = [tabCount]string{"Script", "Steps"}

// reloadMsg carries a freshly read copy of the script.
type reloadMsg struct {
	doc *script.Document
	err error
}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	filename  string
	doc       *script.Document
	follow    bool
	loadErr   error
	activeTab tabID
	viewports [tabCount]viewport.Model
	width     int
	height    int
	ready     bool
}

// New creates a new TUI model for the script doc read from path.
// With follow set, every reload scrolls to the newest line.
func New(path string, doc *script.Document, follow bool) Model {
	return Model{
		filename: filepath.Base(path),
		doc:      doc,
		follow:   follow,
	}
}

// Load reads the script at path.
func Load(path string) (*script.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return script.Parse(string(data)), nil
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			return m, nil
		case "1", "2":
			m.activeTab = tabID(msg.String()[0] - '1')
			return m, nil
		case "G", "end":
			m.viewports[m.activeTab].GotoBottom()
			return m, nil
		case "g", "home":
			m.viewports[m.activeTab].GotoTop()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil

	case reloadMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.doc = msg.doc
		}
		if m.ready {
			m.refreshViewports()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  capturecli  " + m.filename)

	var tabParts []string
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf(" %d %s ", i+1, tabNames[i])
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < tabCount-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ tab  ↑/↓ scroll  g/G top/bottom  q quit  " + m.summary()
	if m.follow {
		hint += "  [following]"
	}
	if m.loadErr != nil {
		hint += "  " + errorStyle.Render("reload failed: "+m.loadErr.Error())
	}
	pct := fmt.Sprintf("%3.0f%%", m.viewports[m.activeTab].ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// summary describes the step-comment setting and the step count.
func (m Model) summary() string {
	comments := "unset"
	if enabled, found := m.doc.StepComments(); found {
		comments = "off"
		if enabled {
			comments = "on"
		}
	}
	return fmt.Sprintf("step comments: %s  steps: %d", comments, len(m.doc.Steps()))
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	// title(1) + tabRow(1) + statusBar(1) = 3 fixed rows
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	for i := tabID(0); i < tabCount; i++ {
		vp := viewport.New(m.width, vpHeight)
		vp.SetContent(m.renderTab(i))
		m.viewports[i] = vp
	}
	if m.follow {
		m.viewports[tabScript].GotoBottom()
	}
}

func (m *Model) refreshViewports() {
	for i := tabID(0); i < tabCount; i++ {
		m.viewports[i].SetContent(m.renderTab(i))
		if m.follow {
			m.viewports[i].GotoBottom()
		}
	}
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(t tabID) string {
	switch t {
	case tabScript:
		return renderScript(m.doc)
	case tabSteps:
		return renderSteps(m.doc)
	}
	return ""
}

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func renderScript(doc *script.Document) string {
	var sb strings.Builder
	width := len(fmt.Sprint(len(doc.Lines)))
	for i, line := range doc.Lines {
		no := lineNoStyle.Render(fmt.Sprintf("%*d ", width, i+1))
		style, ok := kindStyles[script.Classify(line)]
		if ok {
			line = style.Render(line)
		}
		sb.WriteString(no + " " + line + "\n")
	}
	return sb.String()
}

func renderSteps(doc *script.Document) string {
	steps := doc.Steps()
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Steps (%d)", len(steps))))
	if len(steps) == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
		return sb.String()
	}
	for i, s := range steps {
		num := lineNoStyle.Render(fmt.Sprintf("  %3d.", i+1))
		sb.WriteString(num + "  " + kindStyles[script.KindCommand].Render(s.Command) + "\n")
		if s.Comment != "" {
			sb.WriteString("        " + kindStyles[script.KindStepComment].Render(s.Comment) + "\n")
		}
	}
	return sb.String()
}

// Run starts the TUI for the script at path. With follow set the view
// reloads whenever the file changes on disk.
func Run(path string, follow bool) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	p := tea.NewProgram(New(path, doc, follow), tea.WithAltScreen())

	if follow {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := Watch(ctx, path, p.Send); err != nil {
				p.Send(reloadMsg{err: fmt.Errorf("watching %s: %w", path, err)})
			}
		}()
	}

	_, err = p.Run()
	return err
}
