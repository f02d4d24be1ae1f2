package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherAllMidiPaths(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.mid", "b.MIDI", "notes.txt", "sub/c.midi"} {
		path := filepath.Join(root, name)
		os.MkdirAll(filepath.Dir(path), 0777)
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	assert := assert.New(t)
	assert.ElementsMatch([]string{"a.mid", "b.MIDI", filepath.Join("sub", "c.midi")}, GatherAllMidiPaths(root, 0))
	assert.Len(GatherAllMidiPaths(root, 2), 2)
}

func TestGetKeysSorted(t *testing.T) {
	m := map[uint32]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []uint32{1, 2, 3}, GetKeysSorted(m))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.dat")
	data := map[uint32]string{1: "one.mid", 2: "two.mid"}
	CreateBinary(path, data)

	read, err := ReadBinary[map[uint32]string](path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(data, read)
}

func TestReadBinaryMissing(t *testing.T) {
	_, err := ReadBinary[int](filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestMaxSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(9), Max[uint32](2, 9))
	assert.Equal(uint64(6), Sum([]int{1, 2, 3}))
}
