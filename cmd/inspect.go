package cmd

import (
	"fmt"

	"github.com/Lolirofle/midi-notes-display/index"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.dat>",
	Short: "Inspects a tone file",
	Long:  `Prints the header and tones of one indexed tone file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	tf, err := index.ReadToneFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("fileNum: %v\n", tf.FileNum)
	fmt.Printf("midiPath: %v\n", tf.MidiPath)
	fmt.Printf("duration: %v\n", tf.Duration)
	if tf.MidiMetadata != nil {
		fmt.Printf("metadata: %+v\n", *tf.MidiMetadata)
	}
	fmt.Printf("tones: %v\n", len(tf.Tones))
	return writeTones(rootCmd.OutOrStdout(), tf.Tones)
}
