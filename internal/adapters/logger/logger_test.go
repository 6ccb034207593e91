package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/park/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()

	var out bytes.Buffer
	log.SetOutput(&out)

	log.Info("resolving film/maya")
	log.Warn("resolution attempt failed, retrying")
	log.Error(zerr.With(zerr.New("spawn failed"), "command", "maya"))

	text := out.String()
	assert.Contains(t, text, "level=INFO")
	assert.Contains(t, text, "resolving film/maya")
	assert.Contains(t, text, "level=WARN")
	assert.Contains(t, text, "retrying")
	assert.Contains(t, text, "level=ERROR")
	assert.Contains(t, text, "spawn failed")
}
