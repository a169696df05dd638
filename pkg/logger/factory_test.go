package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/logger"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew(t *testing.T) {
	t.Run("json format by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hello")

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "hello", rec["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("static attributes on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("service", "langswitch")))

		log.Info("hello")

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "langswitch", rec["service"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{
		Level:   "debug",
		Format:  logger.FormatJSON,
		Service: "langswitch-test",
	}, logger.WithOutput(&buf))

	log.Debug("visible at debug")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "visible at debug", rec["msg"])
	assert.Equal(t, "langswitch-test", rec["service"])
}

type ctxKey struct{}

func TestContextExtractors(t *testing.T) {
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(ctxKey{}).(string)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("request_id", v), true
	}

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(extractor, nil))

	t.Run("injects attribute when context carries it", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")

		log.InfoContext(ctx, "with value")

		rec := decodeRecord(t, &buf)
		assert.Equal(t, "req-42", rec["request_id"])
	})

	t.Run("skips attribute otherwise", func(t *testing.T) {
		buf.Reset()

		log.InfoContext(context.Background(), "without value")

		rec := decodeRecord(t, &buf)
		assert.NotContains(t, rec, "request_id")
	})
}

func TestAttrs(t *testing.T) {
	t.Run("error attr", func(t *testing.T) {
		assert.Equal(t, "error", logger.Error(assert.AnError).Key)
		assert.Empty(t, logger.Error(nil).Key)
	})

	t.Run("session id attr", func(t *testing.T) {
		attr := logger.SessionID("abc")
		assert.Equal(t, "session_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.String())
		assert.Empty(t, logger.SessionID("").Key)
	})

	t.Run("domain attrs", func(t *testing.T) {
		assert.Equal(t, "lang", logger.Language("ha").Key)
		assert.Equal(t, "module", logger.Module("billing").Key)
		assert.Equal(t, "count", logger.Count(5).Key)
		assert.Equal(t, "component", logger.Component("api").Key)
		assert.Equal(t, "event", logger.Event("startup").Key)
	})
}
