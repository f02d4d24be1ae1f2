package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/index"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/note"
	"github.com/Lolirofle/midi-notes-display/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the tone files in INDEX_PATH`,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := analyzeToneFiles()
		cobra.CheckErr(err)
		r.print()
	},
}

type toneFilesReport struct {
	numFiles      int
	numTones      int
	totalTicks    uint64
	longestTicks  uint32
	soundingTicks uint64
	pitchCounts   [model.NumPitches]int
}

func analyzeToneFiles() (toneFilesReport, error) {
	var report toneFilesReport

	filenames, err := index.ToneFilenames()
	if err != nil {
		return report, err
	}

	var durations []uint32
	for _, filename := range filenames {
		tf, err := index.ReadToneFile(filepath.Join(constants.GetIndexDir(), filename))
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", filename, err)
			continue
		}
		report.numFiles += 1
		report.numTones += len(tf.Tones)
		report.longestTicks = util.Max(report.longestTicks, tf.Duration)
		durations = append(durations, tf.Duration)
		for _, t := range tf.Tones {
			if t.Pitch > model.MaxPitch {
				continue
			}
			report.pitchCounts[t.Pitch] += 1
			report.soundingTicks += uint64(t.Duration())
		}
	}
	report.totalTicks = util.Sum(durations)

	return report, nil
}

func (r toneFilesReport) print() {
	fmt.Printf("numFiles: %v\n", r.numFiles)
	fmt.Printf("numTones: %v\n", r.numTones)
	fmt.Printf("totalTicks: %v\n", r.totalTicks)
	fmt.Printf("longestTicks: %v\n", r.longestTicks)
	fmt.Printf("soundingTicks: %v\n", r.soundingTicks)
	if r.numFiles > 0 {
		fmt.Printf("avgTonesPerFile: %v\n", float32(r.numTones)/float32(r.numFiles))
	}
	for pitch, count := range r.pitchCounts {
		if count > 0 {
			fmt.Printf("%v: %v\n", note.Name(uint8(pitch)), count)
		}
	}
}
