//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lolirofle/midi-notes-display/cmd"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/sample"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

// C major triad, then a short E that starts after the triad but closes
// before its G.
var fixture = []model.Tone{
	{Pitch: 60, StartTime: 0, EndTime: 960, AttackVelocity: 100, ReleaseVelocity: 64},
	{Pitch: 64, StartTime: 0, EndTime: 960, AttackVelocity: 100, ReleaseVelocity: 64},
	{Pitch: 67, StartTime: 0, EndTime: 1920, AttackVelocity: 100, ReleaseVelocity: 64},
	{Pitch: 76, StartTime: 960, EndTime: 1440, AttackVelocity: 90, ReleaseVelocity: 0},
}

func TestMain(m *testing.M) {
	media, _ := os.MkdirTemp("", "media")
	out, _ := os.MkdirTemp("", "out")
	os.Setenv("MEDIA_PATH", media)
	os.Setenv("INDEX_PATH", out)

	mf := sample.FromTones(fixture, smf.MetricTicks(960))
	if err := sample.WriteFile(filepath.Join(media, "triad.mid"), mf); err != nil {
		panic(err.Error())
	}
	if err := cmd.Index(0, false); err != nil {
		panic(err.Error())
	}
	if err := cmd.LoadServeFiles(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(media)
	os.RemoveAll(out)
	os.Exit(exitVal)
}

func getTones(t *testing.T, url string) model.TonesResponse {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var res model.TonesResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		panic(err.Error())
	}
	return res
}

func TestWholeFileE2E(t *testing.T) {
	res := getTones(t, "/files/1/tones")

	assert := assert.New(t)
	assert.Equal(uint32(1920), res.Duration)
	assert.Equal(fixture, res.Tones)
}

func TestWindowE2E(t *testing.T) {
	res := getTones(t, "/files/1/tones?from=1000&to=1200")

	assert := assert.New(t)
	assert.Equal([]model.Tone{fixture[2], fixture[3]}, res.Tones)
}
