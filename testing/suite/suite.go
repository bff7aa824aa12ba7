package suite

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/morpion/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - parses a board literal such as "OX. / .O. / ..X": O for Circle, X for Cross, '.' for Empty.
// Spaces, '/' and '|' are ignored.
func (that *Suite) Board(literal string) entity.Board {
	that.Helper()

	return ParseBoard(that.T, literal)
}

func ParseBoard(t *testing.T, literal string) entity.Board {
	t.Helper()

	var board entity.Board

	index := 0
	for _, r := range strings.ToUpper(literal) {
		var cell entity.Cell
		switch r {
		case ' ', '/', '|', '\n', '\t':
			continue
		case 'O':
			cell = entity.Circle.Cell()
		case 'X':
			cell = entity.Cross.Cell()
		case '.':
			cell = entity.Empty
		default:
			t.Fatalf("unexpected rune %q in board literal %q", r, literal)
		}

		if index >= entity.CellCount {
			t.Fatalf("board literal %q has more than %d cells", literal, entity.CellCount)
		}

		board[index] = cell
		index++
	}

	if index != entity.CellCount {
		t.Fatalf("board literal %q has %d cells, want %d", literal, index, entity.CellCount)
	}

	return board
}
