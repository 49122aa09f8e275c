// Package tui runs a carousel Stage in the terminal with Bubble Tea. Arrow
// keys, h/l, mouse clicks on the side buttons, left clicks on the cards and
// right clicks all navigate, with the same cooldown as the graphical host.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/carousel"
)

// CellWidth is the nominal pixel width of one terminal column, used to pick
// responsive styles from the terminal's width.
const CellWidth = 8.0

const (
	buttonCols = 5
	footerRows = 1
)

// Styles holds the lipgloss styles used to draw the carousel.
type Styles struct {
	Selected lipgloss.Style
	Side     lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns rounded boxes with a highlighted selection.
func DefaultStyles() Styles {
	return Styles{
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Bold(true).
			Padding(1, 2),
		Side: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Faint(true).
			Padding(1, 1),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

type tickMsg time.Time

// Model is a Bubble Tea model around a Stage.
type Model[T carousel.Item] struct {
	stage  *carousel.Stage[T]
	label  func(T) string
	detail func(T) string
	styles Styles
	tick   time.Duration

	width, height int
	quitting      bool
}

// Option configures a Model.
type Option[T carousel.Item] func(*Model[T])

// WithDetail adds a second line of text under each card's label.
func WithDetail[T carousel.Item](fn func(T) string) Option[T] {
	return func(m *Model[T]) { m.detail = fn }
}

// WithStyles replaces the default styles.
func WithStyles[T carousel.Item](s Styles) Option[T] {
	return func(m *Model[T]) { m.styles = s }
}

// New creates a model for stage. tps is the stage's update rate.
func New[T carousel.Item](stage *carousel.Stage[T], label func(T) string, tps int, opts ...Option[T]) Model[T] {
	if tps <= 0 {
		tps = carousel.DefaultTPS
	}
	if label == nil {
		label = func(it T) string { return it.ItemID() }
	}
	m := Model[T]{
		stage:  stage,
		label:  label,
		styles: DefaultStyles(),
		tick:   time.Second / time.Duration(tps),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts a full-screen program with mouse support and blocks until the
// user quits.
func Run[T carousel.Item](m Model[T]) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m Model[T]) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.stage.Update()
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.stage.SetViewport(float64(msg.Width)*CellWidth, float64(msg.Height))
		m.stage.Binding().SetLayout(Layout(msg.Width, msg.Height))
		return m, nil

	case tea.KeyMsg:
		ctrl := m.stage.Controller()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			ctrl.Previous()
		case "right", "l", " ":
			ctrl.Next()
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.stage.Feed(ev)
		}
		return m, nil
	}
	return m, nil
}

// pointerEvent converts a terminal mouse event into pointer 0 input. Wheel
// events and bare motion are dropped.
func pointerEvent(msg tea.MouseMsg) (carousel.PointerEvent, bool) {
	ev := carousel.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Button = carousel.MouseButtonLeft
		case tea.MouseButtonRight:
			ev.Button = carousel.MouseButtonRight
		case tea.MouseButtonMiddle:
			ev.Button = carousel.MouseButtonMiddle
		default:
			return ev, false
		}
		ev.Pressed = true
	case tea.MouseActionRelease:
		// The binding uses the button captured at press time.
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonNone {
			return ev, false
		}
		ev.Pressed = true
	default:
		return ev, false
	}
	return ev, true
}

// Layout returns the hit regions in terminal cells: a button column on each
// edge and the cards in between.
func Layout(width, height int) carousel.Layout {
	h := float64(max(height-footerRows, 0))
	return carousel.Layout{
		Area:       carousel.Rect{Width: float64(width), Height: h},
		PrevButton: carousel.Rect{Width: buttonCols, Height: h},
		NextButton: carousel.Rect{X: float64(width - buttonCols), Width: buttonCols, Height: h},
	}
}

// View implements tea.Model.
func (m Model[T]) View() string {
	if m.quitting {
		return ""
	}

	ctrl := m.stage.Controller()
	cards := m.stage.Cards()
	var boxes []string
	for _, a := range ctrl.Visible() {
		c := cards[a.Index]
		if !c.Style.Visible || c.Style.Clip != carousel.ClipNone {
			continue
		}
		boxes = append(boxes, m.renderCard(c))
	}

	btn := m.styles.Button
	if !m.stage.Binding().ButtonsEnabled() {
		btn = m.styles.Disabled
	}
	prev := btn.Width(buttonCols).Align(lipgloss.Center).Render("‹")
	next := btn.Width(buttonCols).Align(lipgloss.Center).Render("›")

	row := lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
	inner := max(m.width-2*buttonCols, 0)
	body := lipgloss.JoinHorizontal(lipgloss.Center,
		prev,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, row),
		next,
	)
	if m.height > footerRows {
		body = lipgloss.PlaceVertical(m.height-footerRows, lipgloss.Center, body)
	}

	footer := m.styles.Footer.Render(fmt.Sprintf("%d/%d  %s  ←/→ navigate · q quit",
		ctrl.SelectedIndex()+1, ctrl.Len(), ctrl.State()))
	return body + "\n" + footer
}

func (m Model[T]) renderCard(c carousel.Card[T]) string {
	style := m.styles.Side
	if c.Slot == carousel.SlotSelected {
		style = m.styles.Selected
	}
	lines := []string{m.label(c.Item)}
	if m.detail != nil && c.Slot == carousel.SlotSelected {
		if d := m.detail(c.Item); d != "" {
			lines = append(lines, "", d)
		}
	}
	width := int(24 * c.Style.Scale)
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
