package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/midi"
	"github.com/jvestell/MusicNotesApp/note"
)

var (
	exportScale bool
	exportOut   string
)

func init() {
	exportCmd.Flags().BoolVar(&exportScale, "scale", false, "export a scale run instead of a block chord")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output filename (default <uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <type>",
	Short: "Writes a chord or scale to a MIDI file",
	Long:  `Writes a chord or scale to a MIDI file, e.g. "mna export C4 Major --scale"`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(export(args[0], args[1]))
	},
}

func export(rootStr, typeName string) error {
	engine := mustEngine()

	root, err := note.Parse(rootStr)
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = uuid.New().String() + ".mid"
	}

	if exportScale {
		s, err := engine.GetScale(root, typeName)
		if err != nil {
			return err
		}
		if err := midi.WriteRun(s.Notes, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %v to %v\n", s.Name(), path)
		return nil
	}

	c, err := engine.GetChord(root, typeName)
	if err != nil {
		return err
	}
	if err := midi.WriteChord(c.Notes, path); err != nil {
		return err
	}
	fmt.Printf("Wrote %v to %v\n", c.Name(), path)
	return nil
}
