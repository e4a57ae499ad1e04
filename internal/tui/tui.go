package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// handPaneHeight is the rendered height of the dealer/player pane including
// its border
const handPaneHeight = 7

// Model is the Bubble Tea model driving one blackjack session. It only
// renders the round and forwards key presses to it.
type Model struct {
	round  *game.Round
	logger *log.Logger

	commentary viewport.Model
	errMsg     string
	quitting   bool

	width  int
	height int
}

// NewModel creates a model for the given round. Nothing is dealt until the
// user asks for a new round.
func NewModel(round *game.Round, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &Model{
		round:      round,
		logger:     logger.WithPrefix("tui"),
		commentary: vp,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "n":
			m.run("deal", m.round.DealIn)
		case "h":
			m.apply(game.Hit)
		case "s":
			m.apply(game.Stand)
		case "d":
			m.apply(game.DoubleDown)
		case "up", "k", "down", "j", "pgup", "pgdown":
			var cmd tea.Cmd
			m.commentary, cmd = m.commentary.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// apply forwards an action to the round
func (m *Model) apply(action game.Action) {
	m.run(strings.ToLower(action.String()), func() error {
		return m.round.Apply(action)
	})
}

// run executes a round command, then re-syncs the view with the engine.
// Update runs after every command so a deal that closes the turn resolves
// immediately.
func (m *Model) run(name string, command func() error) {
	m.errMsg = ""

	err := command()
	if err == nil {
		err = m.round.Update()
	}
	if err != nil {
		m.logger.Warn("Command failed", "command", name, "error", err)
		m.errMsg = describeError(err)
	} else {
		m.logger.Debug("Command applied", "command", name, "round", m.round.ID())
	}

	m.refreshCommentary()
}

func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidAction):
		return "That move is not available right now"
	case errors.Is(err, deck.ErrShoeExhausted):
		return "The shoe is empty, press n to reshuffle and deal"
	default:
		return err.Error()
	}
}

func (m *Model) refreshCommentary() {
	entries := m.round.Commentary()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, InfoStyle.Render(e.At.Format("15:04:05"))+" "+CommentaryStyle.Render(e.Text))
	}
	m.commentary.SetContent(strings.Join(lines, "\n"))

	if m.commentary.Height > 0 && m.commentary.Width > 0 {
		m.commentary.GotoBottom()
	}
}

func (m *Model) resize() {
	width := m.width - 2
	height := m.height - handPaneHeight - 6
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.commentary.Width = width
	m.commentary.Height = height
	m.refreshCommentary()
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ ")

	hands := PaneStyle.
		Width(max(m.width-2, 1)).
		Render(m.renderHands())

	commentary := PaneStyle.
		Width(max(m.width-2, 1)).
		Height(m.commentary.Height).
		Render(m.commentary.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, hands, commentary, m.renderActionBar())
}

// renderHands renders the dealer and player hands
func (m *Model) renderHands() string {
	var b strings.Builder

	dealer := m.round.Dealer()
	player := m.round.Player()

	b.WriteString(HandInfoStyle.Render("Dealer"))
	b.WriteString("\n")
	b.WriteString(renderHand(&dealer.Hand))
	b.WriteString("\n\n")

	b.WriteString(HandInfoStyle.Render("You"))
	if player.DoubledDown() {
		b.WriteString(WarningStyle.Render(" (doubled)"))
	}
	b.WriteString("\n")
	b.WriteString(renderHand(&player.Hand))

	return b.String()
}

func renderHand(h *game.Hand) string {
	if h.CardCount() == 0 {
		return InfoStyle.Render("no cards")
	}

	scores := make([]string, 0, 2)
	for _, s := range h.DistinctScores() {
		scores = append(scores, fmt.Sprintf("%d", s))
	}

	return fmt.Sprintf("%s  %s %s  %s %s",
		formatCards(h.Cards()),
		InfoStyle.Render("scores"), strings.Join(scores, "/"),
		InfoStyle.Render("best"), h.Outcome())
}

// renderActionBar renders the legal actions, the round result and key help
func (m *Model) renderActionBar() string {
	var b strings.Builder

	player := m.round.Player()
	switch {
	case !player.Dealt():
		b.WriteString(HandInfoStyle.Render("Press n to deal"))
	case m.round.Resolved():
		b.WriteString(resultStyle(m.round.Result()).Render("Result: " + m.round.Result().String()))
		b.WriteString("  ")
		b.WriteString(InfoStyle.Render("n to deal again"))
	default:
		b.WriteString(m.renderAvailableActions(player.Actions()))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("h hit • s stand • d double down • n new round • ↑↓ scroll • q quit"))

	return b.String()
}

// renderAvailableActions renders the legal actions as buttons
func (m *Model) renderAvailableActions(actions game.ActionSet) string {
	var buttons []string
	for _, a := range actions.List() {
		switch a {
		case game.Hit:
			buttons = append(buttons, SuccessStyle.Render("[h]it"))
		case game.Stand:
			buttons = append(buttons, WarningStyle.Render("[s]tand"))
		case game.DoubleDown:
			buttons = append(buttons, ErrorStyle.Render("[d]ouble down"))
		}
	}
	if len(buttons) == 0 {
		buttons = append(buttons, InfoStyle.Render("[no actions available]"))
	}
	return ActionsStyle.Render("Actions: ") + strings.Join(buttons, " ")
}

func resultStyle(r game.Result) lipgloss.Style {
	switch r {
	case game.PlayerWins, game.PlayerBlackjack:
		return SuccessStyle
	case game.DealerWins:
		return ErrorStyle
	default:
		return WarningStyle
	}
}

// formatCards formats cards with colors
func formatCards(cards []deck.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Round returns the round the model drives
func (m *Model) Round() *game.Round {
	return m.round
}

// Err returns the last error message shown to the user
func (m *Model) Err() string {
	return m.errMsg
}
