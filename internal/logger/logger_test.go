package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/daniswhoiam/movie-api/internal/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("production without level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := logger.NewLogger(logger.Development, "loud")
		require.Error(t, err)
	})
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, logger.Production, logger.ParseEnvironment("production"))
	assert.Equal(t, logger.Production, logger.ParseEnvironment("PRODUCTION"))
	assert.Equal(t, logger.Development, logger.ParseEnvironment("dev"))
	assert.Equal(t, logger.Development, logger.ParseEnvironment(""))
}

func TestLogPrefersContextLogger(t *testing.T) {
	ctxLogger := logger.New(zap.NewNop())
	globalLogger := logger.New(zap.NewNop())
	logger.SetGlobal(globalLogger)
	t.Cleanup(func() { logger.SetGlobal(nil) })

	ctx := logger.NewContext(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, logger.Log(ctx))
	assert.Same(t, globalLogger, logger.Log(context.Background()))
}

func TestLogFallsBack(t *testing.T) {
	logger.SetGlobal(nil)
	assert.NotNil(t, logger.Log(context.Background()))
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.New(zap.New(core))

	ctx := logger.NewRequestIDContext(context.Background(), "req-42")
	l.Info(ctx, "hello", zap.String("k", "v"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields[logger.RequestID])
	assert.Equal(t, "v", fields["k"])
}

func TestNewRequestIDContextGenerates(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "")
	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)
}
