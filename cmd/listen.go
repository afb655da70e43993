package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jvestell/MusicNotesApp/theory"
	"github.com/jvestell/MusicNotesApp/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI input",
	Long:  `Names chords played on a MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func printChords(engine *theory.Engine, notes []uint8) {
	if len(notes) < 2 {
		return
	}
	chords := engine.IdentifyChords(notes)
	if len(chords) == 0 {
		fmt.Printf("notes %v: no chord match\n", notes)
		return
	}
	fmt.Printf("notes %v: %v\n", notes, strings.Join(chords, ", "))
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	engine := mustEngine()
	held := make(map[uint8]bool)

	// wait for the strum to settle before naming anything
	settled := debounce.New(150 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var channel, key, velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			held[key] = true
		case msg.GetNoteEnd(&channel, &key):
			delete(held, key)
		default:
			return
		}
		notes := util.GetKeys(held)
		settled(func() {
			printChords(engine, notes)
		})
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("listening on %v, ctrl-c to quit\n", in)
	select {}
}
