package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env string, threshold time.Duration) *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.Logging.SlowQueryThreshold = threshold

	return &config.Config{
		Primary:       config.Primary{Env: env},
		Observability: obs,
	}
}

func TestSlowQueryTracer(t *testing.T) {
	const sql = "SELECT id FROM products"

	t.Run("warns past the threshold", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		tracer := &slowQueryTracer{logger: &logger, threshold: time.Millisecond}

		ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
		time.Sleep(5 * time.Millisecond)
		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

		assert.Contains(t, buf.String(), "slow query")
		assert.Contains(t, buf.String(), sql)
	})

	t.Run("fast statements stay quiet", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		tracer := &slowQueryTracer{logger: &logger, threshold: time.Hour}

		ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

		assert.Empty(t, buf.String())
	})

	t.Run("end without start is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		tracer := &slowQueryTracer{logger: &logger, threshold: 0}

		tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

		assert.Empty(t, buf.String())
	})
}

func TestQueryTracer(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("threshold alone yields the slow query tracer", func(t *testing.T) {
		tracer := queryTracer(testConfig("production", 100*time.Millisecond), &logger, false)

		slow, ok := tracer.(*slowQueryTracer)
		require.True(t, ok, "got %T", tracer)
		assert.Equal(t, 100*time.Millisecond, slow.threshold)
	})

	t.Run("local env adds SQL logging", func(t *testing.T) {
		tracer := queryTracer(testConfig("local", 100*time.Millisecond), &logger, false)

		multi, ok := tracer.(*multiTracer)
		require.True(t, ok, "got %T", tracer)
		require.Len(t, multi.tracers, 2)
		assert.IsType(t, &tracelog.TraceLog{}, multi.tracers[0])
		assert.IsType(t, &slowQueryTracer{}, multi.tracers[1])
	})

	t.Run("no tracer when nothing is enabled", func(t *testing.T) {
		assert.Nil(t, queryTracer(testConfig("production", 0), &logger, false))
	})
}

func TestMultiTracer_FansOut(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	first := &slowQueryTracer{logger: &logger, threshold: 0}
	second := &slowQueryTracer{logger: &logger, threshold: 0}
	multi := &multiTracer{tracers: []any{first, second}}

	ctx := multi.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	multi.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("slow query")))
}
