package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midi-notes-display",
	Short: "Turns midi files into tones",
	Long: `Reads standard midi files and reduces their note events into tones,
closed intervals between a note on and its note off, for a piano roll.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
