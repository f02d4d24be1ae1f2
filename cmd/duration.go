package cmd

import (
	"fmt"

	"github.com/Lolirofle/midi-notes-display/midi"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(durationCmd)
}

var durationCmd = &cobra.Command{
	Use:   "duration <file>",
	Short: "Prints total ticks of a midi file",
	Long:  `Prints the sum of every delta time across all tracks of a midi file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tracks, err := midi.ReadTracks(args[0])
		cobra.CheckErr(err)
		fmt.Fprintln(cmd.OutOrStdout(), tone.Duration(tracks))
	},
}
