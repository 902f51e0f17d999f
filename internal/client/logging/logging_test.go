package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("user_id", "u1").Msg("logged in")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "logged in", entry["message"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("debug", FormatConsole, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("request sent")
	assert.Contains(t, buf.String(), "request sent")
	assert.Contains(t, buf.String(), "DBG")
}

func TestNew_Errors(t *testing.T) {
	_, err := New("loud", FormatJSON, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
