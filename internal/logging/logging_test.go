package logging

import (
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.LogLevel{
		"disabled": logging.LogLevelDisabled,
		"error":    logging.LogLevelError,
		"Warn":     logging.LogLevelWarn,
		"warning":  logging.LogLevelWarn,
		"info":     logging.LogLevelInfo,
		" debug ":  logging.LogLevelDebug,
		"TRACE":    logging.LogLevelTrace,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParseLevel(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewLoggerFactory(t *testing.T) {
	f, err := NewLoggerFactory("debug")
	require.NoError(t, err)
	df, ok := f.(*logging.DefaultLoggerFactory)
	require.True(t, ok)
	assert.Equal(t, logging.LogLevelDebug, df.DefaultLogLevel)
	assert.NotNil(t, f.NewLogger("vastapi"))

	f, err = NewLoggerFactory("")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = NewLoggerFactory("loud")
	assert.Error(t, err)
}
