package cmd

import (
	"fmt"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/midi"
	"github.com/Lolirofle/midi-notes-display/sample"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <in> <out>",
	Short: "Writes matched notes to a new midi file",
	Long: `Writes a single track midi file holding only the notes that were
closed by a note off. Unmatched and repeated note ons are left out.
Tones do not keep their channel, so every note is written on channel 1
(drums on channel 10 included).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(export(args[0], args[1]))
	},
}

func export(in, out string) error {
	mf, err := midi.ReadMidiFile(in)
	if err != nil {
		return err
	}

	timeFormat := mf.TimeFormat
	if timeFormat == nil {
		timeFormat = smf.MetricTicks(constants.DefaultTicksPerQuarter)
	}

	tones := tone.FromTracks(midi.ToTracks(mf))
	fmt.Printf("Writing %v tones to %v\n", len(tones), out)
	return sample.WriteFile(out, sample.FromTones(tones, timeFormat))
}
