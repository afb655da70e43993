package constants

import "os"

func GetDataDir() string {
	path := os.Getenv("DATA_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

const NumStrings = 6

// Physical fretboard limits for the fingering search.
const (
	MaxFretLimit = 24
	MaxFretSpan  = 4
	NumFingers   = 4
)

// MaxPositions caps how many ranked fingerings are returned.
const MaxPositions = 10

const DefaultTuning = "standard"
