package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/index"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/note"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var allFiles map[model.FileNum]model.ToneFileOverview

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves indexed tones over http for a piano roll`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func LoadServeFiles() error {
	overviews, err := index.LoadOverviews()
	if err != nil {
		return err
	}
	allFiles = make(map[model.FileNum]model.ToneFileOverview, len(overviews))
	for _, o := range overviews {
		allFiles[o.FileNum] = o
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func HandleFiles(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ToneFileOverview, 0, len(allFiles))
	for _, o := range allFiles {
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].FileNum < res[j].FileNum
	})
	writeJSON(w, http.StatusOK, res)
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.NoteName, 0, len(note.Names))
	for pitch, name := range note.Names {
		res = append(res, model.NoteName{Pitch: uint8(pitch), Name: name})
	}
	writeJSON(w, http.StatusOK, res)
}

func parseTick(r *http.Request, key string, fallback uint32) (uint32, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%v must be a tick count", key)
	}
	return uint32(v), nil
}

// HandleTones serves the start-sorted tones of one file overlapping
// [from, to]. Both default to the whole file.
func HandleTones(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a file number")
		return
	}
	overview, ok := allFiles[model.FileNum(id)]
	if !ok {
		writeError(w, http.StatusNotFound, "No such file")
		return
	}

	tf, err := index.ReadToneFile(filepath.Join(constants.GetIndexDir(), overview.Filename))
	if err != nil {
		log.Printf("Could not read tone file: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not read tone file")
		return
	}

	from, err := parseTick(r, "from", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseTick(r, "to", tf.Duration)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if from > to {
		writeError(w, http.StatusBadRequest, "from must not be after to")
		return
	}

	tone.SortByStart(tf.Tones)
	tones := tone.Window(tf.Tones, from, to)
	if tones == nil {
		tones = []model.Tone{}
	}

	writeJSON(w, http.StatusOK, model.TonesResponse{
		FileId:       tf.FileNum,
		Duration:     tf.Duration,
		From:         from,
		To:           to,
		Tones:        tones,
		MidiMetadata: tf.MidiMetadata,
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/files", HandleFiles).Methods("GET")
	router.HandleFunc("/files/{id}/tones", HandleTones).Methods("GET")
	router.HandleFunc("/notes", HandleNotes).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	if err := LoadServeFiles(); err != nil {
		log.Fatal(err)
	}

	addr := ":" + constants.GetPort()
	log.Printf("Serving %v files on %v", len(allFiles), addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
