package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/morpion/internal/bot"
	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/usecase"
	"github.com/rocketscienceinc/morpion/testing/suite"
)

// lowestCellOpponent - always answers with the first empty cell.
type lowestCellOpponent struct{}

func (lowestCellOpponent) ChooseMove(board entity.Board) bot.Decision {
	for cell := range board.EmptyCells() {
		return bot.Decision{Cell: cell}
	}

	panic("no empty cell")
}

const emptyRows = "  |   |  \n  |   |  \n  |   |  \n"

func TestParseCell(t *testing.T) {
	tests := []struct {
		line string
		want int
		ok   bool
	}{
		{line: "1", want: 0, ok: true},
		{line: " 9 \r", want: 8, ok: true},
		{line: "5", want: 4, ok: true},
		{line: "0", ok: false},
		{line: "10", ok: false},
		{line: "-3", ok: false},
		{line: "abc", ok: false},
		{line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseCell(tt.line)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConsole_Run(t *testing.T) {
	t.Run("Scripted game prints every human turn and the winner", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: an opponent that takes the lowest cell and a human aiming at the first column,
		// with one occupied cell typed in between
		game := usecase.NewGameManager(st.Logger, lowestCellOpponent{}, usecase.HumanSide)
		in := strings.NewReader("1\n1\n4\n7\n")
		out := &bytes.Buffer{}

		// When: the console runs the game
		err := New(st.Logger, game, in, out).Run()

		// Then: boards, prompts and the result are printed in order
		require.NoError(t, err)
		want := emptyRows + "O >> " +
			"O | X |  \n  |   |  \n  |   |  \nO >> " +
			"O | X | X\nO |   |  \n  |   |  \nO >> " +
			"O | X | X\nO |   |  \nO |   |  \nPlayer O wins!\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("Invalid lines are silently skipped", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: input mixing garbage and out of range numbers before valid cells
		game := usecase.NewGameManager(st.Logger, lowestCellOpponent{}, usecase.HumanSide)
		in := strings.NewReader("abc\n0\n10\n\n1\n4\n7\n")
		out := &bytes.Buffer{}

		// When: the console runs the game
		err := New(st.Logger, game, in, out).Run()

		// Then: no error message is printed and the game still ends with the human's win
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out.String(), "O >> "))
		assert.True(t, strings.HasSuffix(out.String(), "Player O wins!\n"))
	})

	t.Run("Game against the real bot reaches a result", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: the searching bot and a human trying every cell in ascending order
		game := usecase.NewGameManager(st.Logger, bot.New(st.Logger, bot.WithCache()), usecase.HumanSide)
		in := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\n")
		out := &bytes.Buffer{}

		// When: the console runs the game
		err := New(st.Logger, game, in, out).Run()

		// Then: the game ends with a win or a draw
		require.NoError(t, err)
		assert.True(t, game.Outcome().IsTerminal())
		output := out.String()
		assert.True(t,
			strings.HasSuffix(output, "Player O wins!\n") ||
				strings.HasSuffix(output, "Player X wins!\n") ||
				strings.HasSuffix(output, "It's a draw!\n"),
			output)
	})

	t.Run("Bot moving first plays before the first prompt", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: the bot opens the game
		game := usecase.NewGameManager(st.Logger, lowestCellOpponent{}, usecase.BotSide)
		out := &bytes.Buffer{}

		// When: the input ends right away
		err := New(st.Logger, game, strings.NewReader(""), out).Run()

		// Then: the first board already shows the bot's cross
		require.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, "X |   |  \n  |   |  \n  |   |  \nO >> ", out.String())
	})

	t.Run("Closed input stops the game", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: input holding only unusable lines
		game := usecase.NewGameManager(st.Logger, lowestCellOpponent{}, usecase.HumanSide)
		out := &bytes.Buffer{}

		// When: the console runs
		err := New(st.Logger, game, strings.NewReader("x\n42\n"), out).Run()

		// Then: ErrInputClosed is returned after the first prompt
		require.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, emptyRows+"O >> ", out.String())
		assert.Equal(t, entity.Board{}, game.Board())
	})
}
