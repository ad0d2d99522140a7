package cli

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	discStyle   = lipgloss.NewStyle().Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
)

const (
	blackDisc = "⚫"
	whiteDisc = "⚪"
)

func border(left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(left)
	for i := 0; i < game.BoardSize; i++ {
		sb.WriteString("────")
		if i+1 != game.BoardSize {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	return sb.String()
}

// RenderBoard draws the board with the 1-based number of each legal move in its cell.
func RenderBoard(state *game.GameState) string {
	numbers := map[game.Square]int{}
	for i, m := range state.LegalMoves() {
		numbers[m.Square()] = i + 1
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < game.BoardSize; x++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %c  ", 'a'+x)))
	}
	sb.WriteString("\n")

	sb.WriteString(border("┌", "┬", "┐"))
	for y := 0; y < game.BoardSize; y++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%d ", y+1)))
		for x := 0; x < game.BoardSize; x++ {
			if x > 0 {
				sb.WriteString(" │ ")
			} else {
				sb.WriteString("│ ")
			}

			switch state.Board.At(x, y) {
			case game.Black:
				sb.WriteString(discStyle.Render(blackDisc))
			case game.White:
				sb.WriteString(discStyle.Render(whiteDisc))
			default:
				if n, ok := numbers[game.Square{X: x, Y: y}]; ok {
					sb.WriteString(numberStyle.Render(fmt.Sprintf("%2d", n)))
				} else {
					sb.WriteString("  ")
				}
			}
		}
		sb.WriteString(" │\n")

		if y+1 != game.BoardSize {
			sb.WriteString(border("├", "┼", "┤"))
		}
	}
	sb.WriteString(border("└", "┴", "┘"))
	return sb.String()
}

// RenderStatus reports whose turn it is, or the outcome once the game is over.
func RenderStatus(state *game.GameState) string {
	if !state.IsTerminal() {
		return fmt.Sprintf("%s's turn (%d moves)\n", state.Player(), len(state.LegalMoves()))
	}

	var result string
	switch state.Winner() {
	case game.BlackWins:
		result = "BLACK WINS!"
	case game.WhiteWins:
		result = "WHITE WINS!"
	default:
		result = "TIE!"
	}
	return fmt.Sprintf("%s\n%s (%d-%d)\n", titleStyle.Render("GAME OVER!"), titleStyle.Render(result),
		state.DiscCount(game.Black), state.DiscCount(game.White))
}

func Render(w io.Writer, state *game.GameState) {
	io.WriteString(w, RenderBoard(state))
	io.WriteString(w, RenderStatus(state))
}
