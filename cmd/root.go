package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/theory"
)

var rootCmd = &cobra.Command{
	Use:   "mna",
	Short: "Guitar music theory explorer",
	Long:  `Explore notes, chords, scales and fretboard fingerings from the command line.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func mustEngine() *theory.Engine {
	engine, err := theory.NewDefault()
	if err != nil {
		panic("Could not load theory data: " + err.Error())
	}
	return engine
}
