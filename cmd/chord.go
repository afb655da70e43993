package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/note"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <type>",
	Short: "Shows a chord's notes, triad and compatible scales",
	Long:  `Shows a chord's notes, triad and compatible scales, e.g. "mna chord C4 Major"`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(showChord(args[0], args[1]))
	},
}

func showChord(rootStr, chordType string) error {
	engine := mustEngine()

	root, err := note.Parse(rootStr)
	if err != nil {
		return err
	}
	c, err := engine.GetChord(root, chordType)
	if err != nil {
		return err
	}

	fmt.Printf("%v (%v%v)\n", c.Name(), c.Root.Name, engine.ChordTypes.Symbol(c.Type))
	for _, n := range c.Notes {
		fmt.Printf("  %-4v %-3v midi %v\n", n, note.IntervalName(c.Root.Interval(n)), n.MidiNumber())
	}

	fmt.Printf("triad:")
	for _, n := range c.Triad() {
		fmt.Printf(" %v", n)
	}
	fmt.Println()

	fmt.Println("compatible scales:")
	for _, s := range engine.ScalesForChord(c) {
		fmt.Printf("  %v\n", s.Name())
	}
	return nil
}
