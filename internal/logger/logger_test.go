package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "info", LogFormatJsonValue))

	log.Debug().Msg("hidden")
	log.Info().Int("rows", 3).Msg("end of file reached")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "end of file reached", entry["message"])
	assert.EqualValues(t, 3, entry["rows"])
	assert.NotContains(t, entry, "pid")
}

func TestSetupDebugText(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "debug", LogFormatTextValue))

	log.Debug().Int("row", 1).Msg("row parsed")
	assert.Contains(t, buf.String(), "row parsed")
	assert.Contains(t, buf.String(), "row=1")
	assert.NotContains(t, buf.String(), "pid=")
}

func TestSetupErrors(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	var buf bytes.Buffer
	assert.EqualError(t, Setup(&buf, "trace", LogFormatTextValue), "unknown log level trace")
	assert.EqualError(t, Setup(&buf, "", LogFormatTextValue), "unknown log level ")
	assert.EqualError(t, Setup(&buf, "info", "xml"), "unknown log format xml")
}
