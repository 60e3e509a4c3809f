package log

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes prefixed levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("DRIVER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow frame")
		l.Error("renderer failed")

		out := buf.String()
		assert.Contains(t, out, config.ColorCyan+"[DRIVER]"+config.ColorReset)
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" started")
		assert.Contains(t, out, "[WARNING]"+config.LogColorReset+" slow frame")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" renderer failed")
	})

	t.Run("rejects bad arguments", func(t *testing.T) {
		_, err := New("", config.ColorCyan, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("APP", config.ColorCyan, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("nop discards", func(t *testing.T) {
		assert.NotPanics(t, func() { Nop().Error("ignored") })
	})
}
