package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C₋₂", Name(0))
	assert.Equal("A₋₁", Name(9))
	assert.Equal("C♯₋₁", Name(13))
	assert.Equal("G₈", Name(127))
	assert.Equal("", Name(128))
}

func TestNamesAreFilled(t *testing.T) {
	for i, name := range Names {
		assert.NotEmpty(t, name, "pitch %v", i)
	}
}
