package cmd

import (
	"strconv"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/file"
	"github.com/Lolirofle/midi-notes-display/index"
	"github.com/Lolirofle/midi-notes-display/util"
	"github.com/spf13/cobra"
)

var withMetadata bool

func init() {
	indexCmd.Flags().BoolVar(&withMetadata, "metadata", false, "attach metadata from DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [max]",
	Short: "Creates index",
	Long:  `Reduces every midi file under MEDIA_PATH into a tone file under INDEX_PATH`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			cobra.CheckErr(err)
			maxNum = arg1
		}

		cobra.CheckErr(Index(maxNum, withMetadata))
	},
}

func Index(maxNum int, withMetadata bool) error {
	util.EnsureOutputDir()
	// only tone files are ours to remove, INDEX_PATH may hold other files
	if err := index.DeleteAll(); err != nil {
		return err
	}
	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	overviews, err := index.ProcessAllMidiFiles(fileNumMap, withMetadata)
	if err != nil {
		return err
	}
	util.CreateBinary(index.GetAllFilesPath(), overviews)
	return nil
}
