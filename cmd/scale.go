package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/note"
)

var modeDegree int

func init() {
	scaleCmd.Flags().IntVar(&modeDegree, "mode", 0, "show the mode rooted at this scale degree (1-indexed)")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <type>",
	Short: "Shows a scale's notes and its diatonic chords",
	Long:  `Shows a scale's notes and its diatonic chords, e.g. "mna scale C4 Major"`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(showScale(args[0], args[1]))
	},
}

func showScale(rootStr, scaleType string) error {
	engine := mustEngine()

	root, err := note.Parse(rootStr)
	if err != nil {
		return err
	}
	s, err := engine.GetScale(root, scaleType)
	if err != nil {
		return err
	}

	if modeDegree != 0 {
		s, err = s.Mode(modeDegree)
		if err != nil {
			return err
		}
	}

	fmt.Println(s.Name())
	for i, n := range s.Notes {
		fmt.Printf("  %v: %-4v midi %v\n", i+1, n, n.MidiNumber())
	}

	fmt.Println("diatonic chords:")
	for _, c := range engine.ChordsInScale(s) {
		fmt.Printf("  degree %v: %v\n", engine.DegreeOf(s, c.Root), c.Name())
	}
	return nil
}
