package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/chzyer/readline"
	"github.com/samber/lo"
)

var ErrQuit = errors.New("player quit")

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

type HumanAgent struct {
	in  LineReader
	out io.Writer
}

func NewHumanAgent(in LineReader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: in, out: out}
}

func (h *HumanAgent) help() {
	io.WriteString(h.out, "possible commands: \n")
	io.WriteString(h.out, "  help - print this help information\n")
	io.WriteString(h.out, "  [number] - play the nth suggested move\n")
	io.WriteString(h.out, "  [square] - play on a square, e.g. d3\n")
	io.WriteString(h.out, "  quit - exit the game immediately\n")
}

// FindMove shows the board and reads commands until one selects a legal move.
func (h *HumanAgent) FindMove(state *game.GameState) (int, metrics.SearchMetric, error) {
	Render(h.out, state)
	for {
		line, err := h.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return 0, metrics.SearchMetric{}, ErrQuit
		}
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("failed to read command: %w", err)
		}

		command := strings.TrimSpace(line)
		switch {
		case command == "":
			continue
		case command == "quit":
			return 0, metrics.SearchMetric{}, ErrQuit
		case command == "help":
			h.help()
		case unicode.IsDigit(rune(command[0])):
			n, err := strconv.Atoi(command)
			if err != nil || n < 1 || n > len(state.LegalMoves()) {
				io.WriteString(h.out, "Invalid move.\n")
				continue
			}
			return n - 1, metrics.SearchMetric{}, nil
		default:
			sq, err := game.ParseSquare(command)
			if err != nil {
				fmt.Fprintf(h.out, "Invalid command '%s'\n", command)
				continue
			}
			_, index, ok := lo.FindIndexOf(state.LegalMoves(), func(m game.Move) bool {
				return m.Square() == sq
			})
			if !ok {
				io.WriteString(h.out, "Invalid move.\n")
				continue
			}
			return index, metrics.SearchMetric{}, nil
		}
	}
}
