package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/constants"
	"github.com/jvestell/MusicNotesApp/note"
)

var (
	positionsTuning  string
	positionsMaxFret int
	positionsTriads  bool
)

func init() {
	positionsCmd.Flags().StringVar(&positionsTuning, "tuning", constants.DefaultTuning, "tuning name from the tunings table")
	positionsCmd.Flags().IntVar(&positionsMaxFret, "max-fret", 12, "highest fret to search")
	positionsCmd.Flags().BoolVar(&positionsTriads, "triads", false, "show triad windows instead of full fingerings")
	rootCmd.AddCommand(positionsCmd)
}

var positionsCmd = &cobra.Command{
	Use:   "positions <root> <type>",
	Short: "Searches the fretboard for playable chord fingerings",
	Long:  `Searches the fretboard for playable chord fingerings, e.g. "mna positions E2 Major --max-fret 5"`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(showPositions(args[0], args[1]))
	},
}

func showPositions(rootStr, chordType string) error {
	engine := mustEngine()

	root, err := note.Parse(rootStr)
	if err != nil {
		return err
	}
	c, err := engine.GetChord(root, chordType)
	if err != nil {
		return err
	}

	if positionsTriads {
		triads, err := engine.TriadPositions(c, positionsTuning, positionsMaxFret)
		if err != nil {
			return err
		}
		fmt.Printf("%v triad windows (%v tuning):\n", c.Name(), positionsTuning)
		for _, pos := range triads {
			for _, sf := range pos {
				fmt.Printf("  string %v fret %v", sf.String+1, sf.Fret)
			}
			fmt.Println()
		}
		return nil
	}

	positions, err := engine.ChordPositions(c, positionsTuning, positionsMaxFret)
	if err != nil {
		return err
	}

	fmt.Printf("%v fingerings (%v tuning):\n", c.Name(), positionsTuning)
	for _, p := range positions {
		fmt.Printf("  frets %v fingers %v", p.Frets, p.Fingers)
		if p.Barre != nil {
			fmt.Printf(" barre at fret %v", p.Barre.Fret)
		}
		fmt.Println()
	}
	return nil
}
