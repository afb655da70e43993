package main

import "github.com/jvestell/MusicNotesApp/cmd"

func main() {
	cmd.Execute()
}
