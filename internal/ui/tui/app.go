package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/byobox/internal/domain"
)

type screen int

const (
	screenNoWorkspace screen = iota
	screenBoxes
	screenBuilder
	screenResult
)

type boxItem struct {
	entry boxEntry
}

func (i boxItem) Title() string { return i.entry.box.Name }
func (i boxItem) Description() string {
	desc := fmt.Sprintf("%s • fee %s", i.entry.catalog, money(i.entry.box.Fee))
	if d := strings.TrimSpace(i.entry.box.Description); d != "" {
		desc += " • " + d
	}
	return desc
}
func (i boxItem) FilterValue() string { return i.entry.box.Name }

// row is one selectable product line in the builder.
type row struct {
	category int
	product  int
}

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	width  int
	height int

	workspaceRoot string
	cfg           domain.Config
	loading       bool

	boxes list.Model

	entry   boxEntry
	session domain.Session
	rows    []row
	cursor  int

	confirmLeave bool
	submitting   bool
	spin         spinner.Model
	bar          progress.Model

	receipt   domain.Receipt
	receiptID string

	toast    string
	toastSeq int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.logger()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Boxes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenNoWorkspace,
		cfg:   domain.DefaultConfig(),
		boxes: l,
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage()),
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.boxes.SetSize(max(msg.Width-8, 20), max(msg.Height-10, 5))
		return m, nil

	case workspaceRefreshedMsg:
		if !msg.found {
			m.scr = screenNoWorkspace
			m.workspaceRoot = ""
			return m, nil
		}
		m.workspaceRoot = msg.root
		m.scr = screenBoxes
		m.loading = true
		return m, cmdLoadBoxes(m.deps, msg.root)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			return m.withToast(userMessage(msg.err))
		}
		m.workspaceRoot = msg.root
		m.scr = screenBoxes
		m.loading = true
		return m, cmdLoadBoxes(m.deps, msg.root)

	case boxesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withToast(userMessage(msg.err))
		}
		m.cfg = msg.cfg
		items := make([]list.Item, 0, len(msg.entries))
		for _, e := range msg.entries {
			items = append(items, boxItem{entry: e})
		}
		cmd := m.boxes.SetItems(items)
		return m, cmd

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			return m.withToast(userMessage(msg.err))
		}
		m.session = m.session.MarkSubmitted()
		m.receipt = msg.receipt
		m.receiptID = msg.id
		m.scr = screenResult
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenNoWorkspace:
			return m.updateNoWorkspace(msg)
		case screenBoxes:
			return m.updateBoxes(msg)
		case screenBuilder:
			return m.updateBuilder(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}

	if m.scr == screenBoxes {
		var cmd tea.Cmd
		m.boxes, cmd = m.boxes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateNoWorkspace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "i":
		return m, cmdInitWorkspaceHere(m.deps)
	}
	return m, nil
}

func (m model) updateBoxes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.boxes.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.boxes, cmd = m.boxes.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.boxes.SelectedItem().(boxItem)
		if !ok {
			return m, nil
		}
		return m.openBox(it.entry), nil
	}

	var cmd tea.Cmd
	m.boxes, cmd = m.boxes.Update(msg)
	return m, cmd
}

func (m model) openBox(e boxEntry) model {
	m.entry = e
	m.session = domain.NewSession(e.box)
	m.rows = buildRows(e.box)
	m.cursor = 0
	m.confirmLeave = false
	m.scr = screenBuilder
	return m
}

func buildRows(b domain.Box) []row {
	var rows []row
	for ci, c := range b.Categories {
		for pi := range c.Products {
			rows = append(rows, row{category: ci, product: pi})
		}
	}
	return rows
}

func (m model) current() (domain.Category, domain.Product, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return domain.Category{}, domain.Product{}, false
	}
	r := m.rows[m.cursor]
	c := m.session.Box().Categories[r.category]
	return c, c.Products[r.product], true
}

func (m model) updateBuilder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	key := msg.String()
	if key != "esc" {
		m.confirmLeave = false
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case "+", "=", "right", "l", "enter":
		c, p, ok := m.current()
		if !ok {
			return m, nil
		}
		next, err := m.session.Increase(c.ID, p.ID)
		if err != nil {
			return m.withToast(userMessage(err))
		}
		m.session = next
		return m, nil

	case "-", "left", "h":
		c, p, ok := m.current()
		if !ok {
			return m, nil
		}
		next, err := m.session.Decrease(c.ID, p.ID)
		if err != nil {
			// Decreasing an unselected product is a no-op.
			return m, nil
		}
		m.session = next
		return m, nil

	case "u":
		next, ok := m.session.Undo()
		if !ok {
			return m.withToast("Nothing to undo")
		}
		m.session = next
		return m, nil

	case "r":
		m.session = m.session.Reset()
		return m, nil

	case "s":
		if err := domain.RequireComplete(m.session.Box(), m.session.Ledger()); err != nil {
			return m.withToast(userMessage(err))
		}
		m.submitting = true
		return m, tea.Batch(
			m.spin.Tick,
			cmdSubmit(m.deps, m.workspaceRoot, m.cfg, m.entry.catalog, m.session),
		)

	case "esc":
		if m.session.Dirty() && !m.confirmLeave {
			m.confirmLeave = true
			return m.withToast("Unsaved selections. Press esc again to discard")
		}
		m.confirmLeave = false
		m.scr = screenBoxes
		return m, nil
	}

	return m, nil
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", "esc", "enter":
		m.scr = screenBoxes
		m.receipt = domain.Receipt{}
		m.receiptID = ""
		return m, nil
	}
	return m, nil
}

func (m model) withToast(text string) (model, tea.Cmd) {
	m.toastSeq++
	m.toast = text
	return m, cmdExpireToast(m.toastSeq)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("byobox") + "\n" +
		m.theme.Subtitle.Render("Build your own box") + "\n"

	var body string
	switch m.scr {
	case screenNoWorkspace:
		body = m.theme.Card.Render(
			"No workspace found.\n\n" +
				m.theme.Help.Render("i init workspace here • q quit"),
		)

	case screenBoxes:
		banner := m.theme.Help.Render("Workspace: " + m.workspaceRoot)
		var content string
		switch {
		case m.loading:
			content = "Loading catalogs..."
		case len(m.boxes.Items()) == 0:
			content = "No boxes found in " + m.cfg.Paths.CatalogsDir + "/"
		default:
			content = m.boxes.View()
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		body = banner + "\n\n" + m.theme.Card.Render(content) + "\n" + help

	case screenBuilder:
		body = m.viewBuilder()

	case screenResult:
		body = m.theme.Card.Render(renderReceipt(m.theme, m.receipt, m.receiptID)) + "\n" +
			m.theme.Help.Render("n new box • q quit")

	default:
		body = "unknown state"
	}

	if m.toast != "" {
		body += "\n\n" + m.theme.Toast.Render(m.toast)
	}
	return wrap.Render(header + "\n" + body)
}

func (m model) viewBuilder() string {
	s := m.session
	box := s.Box()
	states := s.CategoryStates()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(box.Name))
	if box.Description != "" {
		b.WriteString("\n" + m.theme.Subtitle.Render(box.Description))
	}
	b.WriteString("\n\n")

	i := 0
	for _, st := range states {
		b.WriteString(renderCategoryHeader(m.theme, m.bar, st))
		b.WriteString("\n")
		for _, p := range st.Category.Products {
			cursor := "  "
			line := renderProductLine(p, s.Quantity(st.Category.ID, p.ID))
			if i == m.cursor {
				cursor = m.theme.Cursor.Render("> ")
				line = m.theme.Cursor.Render(line)
			}
			b.WriteString(cursor + line + "\n")
			i++
		}
		b.WriteString("\n")
	}

	q := s.Quote()
	b.WriteString(fmt.Sprintf("Fee %s   Products %s   ", money(q.Fee), money(q.ProductsTotal)))
	b.WriteString(m.theme.Total.Render("Total " + money(q.Total)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(domain.OverallProgress(states) / 100))
	if s.Complete() {
		b.WriteString("  " + m.theme.Valid.Render("ready"))
	} else {
		b.WriteString("  " + m.theme.Invalid.Render("incomplete"))
	}

	help := "↑/↓ move • +/→ add • -/← remove • u undo • r reset • s submit • esc back"
	if m.submitting {
		help = m.spin.View() + " Adding to cart..."
	}
	return m.theme.Card.Render(b.String()) + "\n" + m.theme.Help.Render(help)
}
