package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	vectors := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"info":    INFO,
		"warning": WARN,
		"warn":    WARN,
		"err":     ERROR,
		"Error":   ERROR,
	}
	for value, expected := range vectors {
		t.Run(value, func(t *testing.T) {
			level, err := ParseLevel(value)
			require.NoError(t, err)
			assert.Equal(t, expected, level)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, WARN)
	defer Init(nil, TRACE)

	l := NewLogger("history", 2)
	l.Debugf("dropped %d", 1)
	l.Infof("hidden")
	assert.Empty(t, buf.String())

	l.Warnf("dropped %d", 2)
	assert.Contains(t, buf.String(), "WARN  ")
	assert.Contains(t, buf.String(), "[history] dropped 2")
	assert.Contains(t, buf.String(), "logger_test.go")

	buf.Reset()
	Errorf("root %s", "message")
	assert.Contains(t, buf.String(), "ERROR ")
	assert.Contains(t, buf.String(), "root message")
	assert.NotContains(t, buf.String(), "[")
}

func TestDisabled(t *testing.T) {
	Init(nil, TRACE)
	// must not panic without a writer
	Tracef("nothing")
	NewLogger("x", 2).Errorf("nothing")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warn", WARN.String())
	assert.Equal(t, "level(7)", LogLevel(7).String())
}
