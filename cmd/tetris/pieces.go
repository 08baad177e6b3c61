package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagKicks bool

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `Shows every tetromino in its four orientations. The rotation center
is marked with +. With --kicks, also lists the wall kick candidates tried for
each turn, in screen coordinates (x right, y down).`,
	Args: cobra.NoArgs,
	Run:  runPieces,
}

func init() {
	piecesCmd.Flags().BoolVar(&flagKicks, "kicks", false, "Also print wall kick candidates")
}

// Each orientation is drawn in a 5x5 cell box around the rotation center.
const (
	pieceBox   = 5
	pieceSpan  = pieceBox*2 + 2
	pieceRows  = pieceBox + 1
	pieceShift = 2
)

func runPieces(_ *cobra.Command, _ []string) {
	rotations := []tetris.Rotation{tetris.Spawn, tetris.Right, tetris.Two, tetris.Left}

	fmt.Printf("%s pieces\n\n", catalogTitle())
	for _, s := range tetris.Shapes() {
		def := tetris.Lookup(s)
		fmt.Printf("%s  (%s, %s kicks)\n", s, def.Color(), def.Family())

		screen := core.NewScreen(pieceSpan*len(rotations), pieceRows)
		for i, r := range rotations {
			drawOrientation(screen, i*pieceSpan, def, r)
		}
		fmt.Println(tui.RenderScreen(screen))

		if flagKicks {
			printKicks(def)
		}
		fmt.Println()
	}
}

// catalogTitle returns the registered title of the game, or its ID when the
// game is missing from the registry.
func catalogTitle() string {
	for _, g := range registry.List() {
		if g.ID == tetris.GameID {
			return g.Title
		}
	}
	return tetris.GameID
}

func drawOrientation(screen *core.Screen, left int, def *tetris.Definition, r tetris.Rotation) {
	screen.DrawText(left, 0, "rot "+r.String())
	for y := range pieceBox {
		for x := range pieceBox {
			screen.DrawTextColored(left+x*2, y+1, "· ", core.ColorDarkGray)
		}
	}

	for _, off := range def.Offsets(r) {
		x := left + (off.X+pieceShift)*2
		y := off.Y + pieceShift + 1
		screen.DrawTextColored(x, y, "██", def.Color())
	}
	screen.SetColored(left+pieceShift*2+1, pieceShift+1, '+', core.ColorWhite)
}

func printKicks(def *tetris.Definition) {
	for _, from := range []tetris.Rotation{tetris.Spawn, tetris.Right, tetris.Two, tetris.Left} {
		for _, dir := range []tetris.RotateDirection{tetris.Clockwise, tetris.CounterClockwise} {
			to := from.Next(dir)
			kicks := def.Kicks(from, to)
			parts := make([]string, len(kicks))
			for i, k := range kicks {
				parts[i] = k.String()
			}
			fmt.Printf("  %s->%s  %s\n", from, to, strings.Join(parts, " "))
		}
	}
}
