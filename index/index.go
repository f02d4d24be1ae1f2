package index

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/db"
	"github.com/Lolirofle/midi-notes-display/midi"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/Lolirofle/midi-notes-display/util"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var toneFileRegexp = regexp.MustCompile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")

func IsToneFilename(filename string) bool {
	return toneFileRegexp.MatchString(filename)
}

func GetAllFilesPath() string {
	return filepath.Join(constants.GetIndexDir(), constants.AllFilesFilename)
}

// BuildToneFile reduces one parsed file. It does no I/O.
func BuildToneFile(fileNum model.FileNum, midiPath string, tracks model.Tracks) model.ToneFile {
	return model.ToneFile{
		FileNum:  fileNum,
		MidiPath: midiPath,
		Duration: tone.Duration(tracks),
		Tones:    tone.FromTracks(tracks),
	}
}

func writeToneFile(tf model.ToneFile) model.ToneFileOverview {
	filename := uuid.New().String() + ".dat"
	util.CreateBinary(filepath.Join(constants.GetIndexDir(), filename), tf)
	return model.ToneFileOverview{
		FileNum:  tf.FileNum,
		MidiPath: tf.MidiPath,
		Filename: filename,
		NumTones: len(tf.Tones),
		Duration: tf.Duration,
	}
}

func processMidiFile(fileNum model.FileNum, midiPath string, metadatas map[string]model.MidiMetadata) (model.ToneFileOverview, error) {
	tracks, err := midi.ReadTracks(filepath.Join(constants.GetMediaDir(), midiPath))
	if err != nil {
		return model.ToneFileOverview{}, err
	}

	tf := BuildToneFile(fileNum, midiPath, tracks)
	if md, ok := metadatas[midiPath]; ok {
		tf.MidiMetadata = &md
	}
	return writeToneFile(tf), nil
}

// ProcessAllMidiFiles writes one tone file per readable midi file and
// returns their overviews ordered by file number. Files that fail to parse
// are skipped.
func ProcessAllMidiFiles(m model.FileNumToMidiPath, withMetadata bool) ([]model.ToneFileOverview, error) {
	keys := util.GetKeysSorted(m)

	metadatas := make(map[string]model.MidiMetadata)
	if withMetadata {
		var paths []string
		for _, num := range keys {
			paths = append(paths, m[num])
		}
		var err error
		metadatas, err = db.GetAllMidiMetadatas(paths)
		if err != nil {
			return nil, err
		}
	}

	res := make([]model.ToneFileOverview, 0, len(keys))
	for i, num := range keys {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
		overview, err := processMidiFile(num, m[num], metadatas)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", m[num], err)
			continue
		}
		res = append(res, overview)
	}
	return res, nil
}

func ReadToneFile(path string) (model.ToneFile, error) {
	tf, err := util.ReadBinary[model.ToneFile](path)
	return tf, errors.Wrap(err, "Could not read tone file "+path)
}

func LoadOverviews() ([]model.ToneFileOverview, error) {
	overviews, err := util.ReadBinary[[]model.ToneFileOverview](GetAllFilesPath())
	return overviews, errors.Wrap(err, "Could not load overviews")
}

func ToneFilenames() ([]string, error) {
	entries, err := os.ReadDir(constants.GetIndexDir())
	if err != nil {
		return nil, errors.Wrap(err, "Could not read index dir")
	}
	var res []string
	for _, entry := range entries {
		if !entry.IsDir() && IsToneFilename(entry.Name()) {
			res = append(res, entry.Name())
		}
	}
	return res, nil
}

func DeleteAll() error {
	filenames, err := ToneFilenames()
	if err != nil {
		return err
	}
	for _, filename := range filenames {
		os.Remove(filepath.Join(constants.GetIndexDir(), filename))
	}
	return nil
}
