package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jvestell/MusicNotesApp/chord"
	"github.com/jvestell/MusicNotesApp/constants"
	"github.com/jvestell/MusicNotesApp/model"
	"github.com/jvestell/MusicNotesApp/note"
	"github.com/jvestell/MusicNotesApp/theory"
)

var engine *theory.Engine

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the theory engine over HTTP",
	Long:  `Serves the theory engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadEngine loads the formula tables for the HTTP handlers. Split
// out so tests can call the handlers directly.
func LoadEngine() {
	engine = mustEngine()
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func parseChordVars(w http.ResponseWriter, r *http.Request) (rootNote note.Note, chordType string, ok bool) {
	vars := mux.Vars(r)
	rootNote, err := note.Parse(vars["root"])
	if err != nil {
		writeError(w, 400, err.Error())
		return rootNote, "", false
	}
	return rootNote, vars["type"], true
}

func chordResponse(c chord.Chord, symbol string) model.ChordResponse {
	res := model.ChordResponse{
		Name:        c.Name(),
		Symbol:      symbol,
		MidiNumbers: c.MidiNumbers(),
	}
	for _, n := range c.Notes {
		res.Notes = append(res.Notes, n.String())
	}
	for _, n := range c.Triad() {
		res.Triad = append(res.Triad, n.String())
	}
	return res
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	root, chordType, ok := parseChordVars(w, r)
	if !ok {
		return
	}
	c, err := engine.GetChord(root, chordType)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}
	json.NewEncoder(w).Encode(chordResponse(c, engine.ChordTypes.Symbol(c.Type)))
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	root, scaleType, ok := parseChordVars(w, r)
	if !ok {
		return
	}
	s, err := engine.GetScale(root, scaleType)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}

	res := model.ScaleResponse{Name: s.Name(), MidiNumbers: s.MidiNumbers()}
	for _, n := range s.Notes {
		res.Notes = append(res.Notes, n.String())
	}
	json.NewEncoder(w).Encode(res)
}

func HandleScaleChords(w http.ResponseWriter, r *http.Request) {
	root, scaleType, ok := parseChordVars(w, r)
	if !ok {
		return
	}
	s, err := engine.GetScale(root, scaleType)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}

	res := make([]model.ChordResponse, 0)
	for _, c := range engine.ChordsInScale(s) {
		cr := chordResponse(c, engine.ChordTypes.Symbol(c.Type))
		cr.Degree = engine.DegreeOf(s, c.Root)
		res = append(res, cr)
	}
	json.NewEncoder(w).Encode(res)
}

func HandleChordScales(w http.ResponseWriter, r *http.Request) {
	root, chordType, ok := parseChordVars(w, r)
	if !ok {
		return
	}
	c, err := engine.GetChord(root, chordType)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}

	res := make([]model.ScaleResponse, 0)
	for _, s := range engine.ScalesForChord(c) {
		sr := model.ScaleResponse{Name: s.Name(), MidiNumbers: s.MidiNumbers()}
		for _, n := range s.Notes {
			sr.Notes = append(sr.Notes, n.String())
		}
		res = append(res, sr)
	}
	json.NewEncoder(w).Encode(res)
}

func HandlePositions(w http.ResponseWriter, r *http.Request) {
	var input model.PositionsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not decode request body: "+err.Error())
		return
	}
	if input.Tuning == "" {
		input.Tuning = constants.DefaultTuning
	}
	if input.MaxFret == 0 {
		input.MaxFret = 12
	}

	root, err := note.Parse(input.Root)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	c, err := engine.GetChord(root, input.Type)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}
	positions, err := engine.ChordPositions(c, input.Tuning, input.MaxFret)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	if positions == nil {
		positions = make([]model.ChordPosition, 0)
	}
	json.NewEncoder(w).Encode(model.PositionsResponse{Positions: positions})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not decode request body: "+err.Error())
		return
	}

	chords := engine.IdentifyChords(input.Notes)
	if chords == nil {
		chords = make([]string, 0)
	}
	json.NewEncoder(w).Encode(model.IdentifyResponse{Chords: chords})
}

func serve() {
	LoadEngine()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords/{root}/{type}", HandleChord).Methods("GET")
	router.HandleFunc("/chords/{root}/{type}/scales", HandleChordScales).Methods("GET")
	router.HandleFunc("/scales/{root}/{type}", HandleScale).Methods("GET")
	router.HandleFunc("/scales/{root}/{type}/chords", HandleScaleChords).Methods("GET")
	router.HandleFunc("/positions", HandlePositions).Methods("POST")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")

	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetPort()
	log.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
