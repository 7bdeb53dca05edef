// Package cli implements the interactive terminal game loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fourline/fourline"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/render"
)

const help = `commands:
  <column>    place a token (0-6)
  p <column>  preview a move
  c <column>  clear the preview
  r           restart the game
  q           quit`

// RunPlay drives an interactive game on in/out until the user quits or the
// input ends.
func RunPlay(game *fourline.Game, in io.Reader, out io.Writer) error {
	renderer := render.NewRenderer(out)
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, renderer.Banner())
	fmt.Fprintln(out, "fourline: four in a row wins.")
	fmt.Fprintln(out, help)
	fmt.Fprint(out, renderer.Board(game.State()))

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case line == "q":
			return nil
		case line == "r":
			game.Restart()
		case line == "h" || line == "help":
			fmt.Fprintln(out, help)
			continue
		case strings.HasPrefix(line, "p "):
			column, ok := parseColumn(out, strings.TrimPrefix(line, "p "))
			if !ok {
				continue
			}
			game.Hover(column)
		case strings.HasPrefix(line, "c "):
			column, ok := parseColumn(out, strings.TrimPrefix(line, "c "))
			if !ok {
				continue
			}
			game.ClearHover(column)
		default:
			column, ok := parseColumn(out, line)
			if !ok {
				continue
			}
			before := game.State()
			after := game.Place(column)
			if before.InProgress() && after.CurrentPlayer() == before.CurrentPlayer() && after.InProgress() {
				fmt.Fprintf(out, "column %d is full, pick another\n", column)
			}
		}
		fmt.Fprint(out, renderer.Board(game.State()))
	}
}

func parseColumn(out io.Writer, raw string) (int, bool) {
	column, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !domain.ValidColumn(column) {
		fmt.Fprintf(out, "expected a column between 0 and %d\n", domain.Columns-1)
		return 0, false
	}
	return column, true
}
