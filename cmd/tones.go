package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Lolirofle/midi-notes-display/midi"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/note"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/spf13/cobra"
)

var (
	sortByStart bool
	perTrack    bool
	asJSON      bool
)

func init() {
	tonesCmd.Flags().BoolVar(&sortByStart, "sort", false, "sort tones by start time instead of end time")
	tonesCmd.Flags().BoolVar(&perTrack, "per-track", false, "start every track's clock at zero")
	tonesCmd.Flags().BoolVar(&asJSON, "json", false, "print tones as json")
	rootCmd.AddCommand(tonesCmd)
}

var tonesCmd = &cobra.Command{
	Use:   "tones <file>",
	Short: "Prints tones of a midi file",
	Long:  `Prints every tone of a midi file, one per line`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(printTones(cmd.OutOrStdout(), args[0]))
	},
}

func reduce(tracks model.Tracks) []model.Tone {
	var tones []model.Tone
	if perTrack {
		tones = tone.FromTracksEach(tracks)
	} else {
		tones = tone.FromTracks(tracks)
	}
	if sortByStart {
		tone.SortByStart(tones)
	}
	return tones
}

func writeTones(w io.Writer, tones []model.Tone) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tones)
	}
	for _, t := range tones {
		_, err := fmt.Fprintf(w, "%-5v %-4v %8v %8v %3v %3v\n",
			note.Name(t.Pitch), t.Pitch, t.StartTime, t.EndTime, t.AttackVelocity, t.ReleaseVelocity)
		if err != nil {
			return err
		}
	}
	return nil
}

func printTones(w io.Writer, path string) error {
	tracks, err := midi.ReadTracks(path)
	if err != nil {
		return err
	}
	return writeTones(w, reduce(tracks))
}
