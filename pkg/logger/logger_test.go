package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn")

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Warn().Str("room", "101").Msg("habitación ocupada")
	entry := decode(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "101", entry["room"])
	assert.Equal(t, "habitación ocupada", entry["message"])
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	root := logger.NewWithWriter(&buf, "info")

	root.Component("residents").Info().Msg("habitación asignada")
	entry := decode(t, &buf)
	assert.Equal(t, "residents", entry["component"])

	buf.Reset()
	root.Info().Msg("sin componente")
	assert.NotContains(t, decode(t, &buf), "component")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verboso"))
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() { log.Component("x").Error().Msg("nada") })
}
