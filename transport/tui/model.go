package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/morpion/internal/bot"
	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/usecase"
)

type gameManager interface {
	Board() entity.Board
	Turn() entity.Side
	Outcome() entity.Outcome
	PlayAt(cell int) (entity.Outcome, error)
	BotTurn() (bot.Decision, entity.Outcome, error)
}

var (
	backgrounds = map[entity.Outcome]lipgloss.Color{
		entity.NotTerminal: lipgloss.Color("#ffffff"),
		entity.CircleWins:  lipgloss.Color("#000040"),
		entity.CrossWins:   lipgloss.Color("#400000"),
		entity.Draw:        lipgloss.Color("#404040"),
	}

	cellColors = map[entity.Cell]lipgloss.Color{
		entity.Empty:         lipgloss.Color("#000000"),
		entity.Circle.Cell(): lipgloss.Color("#0000ff"),
		entity.Cross.Cell():  lipgloss.Color("#ff0000"),
	}
)

var cellStyle = lipgloss.NewStyle().
	Width(cellWidth).
	Height(cellHeight).
	Align(lipgloss.Center, lipgloss.Center).
	Bold(true).
	Foreground(lipgloss.Color("#ffffff"))

// Model - bubbletea model of one game in the terminal window.
type Model struct {
	logger *slog.Logger
	game   gameManager

	width  int
	height int
	layout layout
	help   help.Model
}

// New - builds the model and lets the bot open the game when it moves first.
func New(logger *slog.Logger, game gameManager) *Model {
	m := &Model{
		logger: logger.With("component", "tui"),
		game:   game,
		help:   help.New(),
		layout: newLayout(gridWidth, gridHeight+footerHeight),
	}

	if game.Turn() == usecase.BotSide && !game.Outcome().IsTerminal() {
		if _, _, err := game.BotTurn(); err != nil {
			m.logger.Error("bot failed to open the game", "error", err)
		}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout = newLayout(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Play):
			m.playAt(int(msg.String()[0] - '1'))
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if cell, ok := m.layout.cellAt(msg.X, msg.Y); ok {
			m.playAt(cell)
		}
	}

	return m, nil
}

// playAt - a finished game or a refused placement leaves everything as it was.
func (m *Model) playAt(cell int) {
	log := m.logger.With("method", "playAt")

	if m.game.Outcome().IsTerminal() {
		return
	}

	outcome, err := m.game.PlayAt(cell)
	if err != nil {
		log.Debug("move ignored", "cell", cell, "error", err)
		return
	}

	log.Debug("move played", "cell", cell, "outcome", outcome.String())
}

func (m *Model) View() string {
	outcome := m.game.Outcome()
	background := lipgloss.NewStyle().Background(backgrounds[outcome])

	width := max(m.width, m.layout.left+gridWidth)
	height := max(m.height, m.layout.top+gridHeight+footerHeight)

	blankLine := background.Render(strings.Repeat(" ", width))
	leftPad := background.Render(strings.Repeat(" ", m.layout.left))
	rightPad := background.Render(strings.Repeat(" ", width-m.layout.left-gridWidth))

	lines := make([]string, 0, height)
	for range m.layout.top {
		lines = append(lines, blankLine)
	}

	for _, line := range strings.Split(m.renderGrid(background), "\n") {
		lines = append(lines, leftPad+line+rightPad)
	}

	for len(lines) < height-footerHeight {
		lines = append(lines, blankLine)
	}

	lines = append(lines, status(outcome), m.help.ShortHelpView(keys.ShortHelp()))

	return strings.Join(lines, "\n")
}

func (m *Model) renderGrid(background lipgloss.Style) string {
	board := m.game.Board()

	columnGap := background.Width(gapX).Height(cellHeight).Render("")
	rowGap := background.Width(gridWidth).Height(gapY).Render("")

	rows := make([]string, 0, 5)
	for row := range 3 {
		if row > 0 {
			rows = append(rows, rowGap)
		}

		cells := make([]string, 0, 5)
		for col := range 3 {
			if col > 0 {
				cells = append(cells, columnGap)
			}

			cell := board[row*3+col]
			mark := strings.TrimSpace(cell.Mark())
			cells = append(cells, cellStyle.Background(cellColors[cell]).Render(mark))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func status(outcome entity.Outcome) string {
	if winner, ok := outcome.Winner(); ok {
		return fmt.Sprintf("Player %s wins!", winner.Mark())
	}

	if outcome == entity.Draw {
		return "It's a draw!"
	}

	return fmt.Sprintf("Your turn (%s)", usecase.HumanSide.Mark())
}

// Run - opens the alternate screen and plays until the window is closed.
func Run(logger *slog.Logger, game gameManager) error {
	program := tea.NewProgram(New(logger, game), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}

	return nil
}
