// Command lightsout plays Lights Out in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

func main() {
	conf := lightsout.DefaultConfig()
	flag.IntVar(&conf.Rows, "rows", conf.Rows, "number of rows")
	flag.IntVar(&conf.Cols, "cols", conf.Cols, "number of columns")
	flag.Float64Var(&conf.ChanceLightStartsOn, "chance", conf.ChanceLightStartsOn, "chance a light starts on")
	solvable := flag.Bool("solvable", false, "generate a board that is known to be solvable")
	flips := flag.Int("flips", lightsout.DefaultShuffleFlips, "random flips used by -solvable")
	flag.Parse()

	if err := run(conf, *solvable, *flips); err != nil {
		fmt.Fprintln(os.Stderr, "lightsout:", err)
		os.Exit(1)
	}
}

func run(conf lightsout.Config, solvable bool, flips int) error {
	src := lightsout.NewRand(time.Now().UnixNano())
	newBoard := func() (lightsout.Board, error) {
		if solvable {
			return lightsout.NewSolvable(conf, flips, src)
		}
		return lightsout.New(conf, src)
	}

	board, err := newBoard()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()

	ui := &view{screen: screen, board: board}

	for {
		ui.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'n':
				if ui.board, err = newBoard(); err != nil {
					return err
				}
			default:
				ui.handleKey(ev)
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				ui.handleClick(ev.Position())
			}
		}
	}
}
