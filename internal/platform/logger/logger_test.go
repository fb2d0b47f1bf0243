package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONLogger_MergesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "vet", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"client": "Ana", "": "dropped"}).Info("invoice created", map[string]any{"amount": "50"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "invoice created", entry["message"])
	assert.Equal(t, "vet", entry["app"])
	assert.Equal(t, "Ana", entry["client"])
	assert.Equal(t, "50", entry["amount"])
	assert.NotContains(t, entry, "")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With(map[string]any{"a": 1})
	l.Error("x", map[string]any{"err": assert.AnError})
}
