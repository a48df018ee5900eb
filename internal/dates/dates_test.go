package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("2024-12-01 1800")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 12, 1, 18, 0, 0, 0, time.Local)))
}

func TestParseTrimsWhitespace(t *testing.T) {
	got, err := Parse("  2024-12-01 1800 ")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
}

func TestParseRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2024-12-01", "01/12/2024 1800", "2024-12-01 18:00"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormat(t *testing.T) {
	d := time.Date(2024, 12, 1, 18, 0, 0, 0, time.Local)
	assert.Equal(t, "Dec 1 2024, 6:00pm", Format(d))
}
