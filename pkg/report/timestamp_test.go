package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2030-01-01",
		"2030-01-01T00:00:00Z",
		"2030-01-01T00:00:00",
		"2030-01-01 00:00:00",
		"2030-01-01 00:00:00+00:00",
		" 2030-01-01T00:00:00+00:00 ",
	} {
		got, err := ParseTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseTime("next tuesday")
	assert.Error(t, err)
}
