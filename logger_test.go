package sortcheck

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogFeed(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithRound(3)

	l.LogFeed(context.Background(), 2, 10, nil)
	assert.Contains(t, buf.String(), `"msg":"partitions fed"`)
	assert.Contains(t, buf.String(), `"round":3`)
	assert.Contains(t, buf.String(), `"elements":10`)

	buf.Reset()
	l.LogFeed(context.Background(), 2, 10, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogVerdict(context.Background(), Verdict{})
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil), WithLogLevel(slog.LevelWarn)})

	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.Greater(t, o.concurrency, 0)

	o = applyOptions([]Option{WithConcurrency(3)})
	assert.Equal(t, 3, o.concurrency)
	assert.False(t, o.hasRound)

	o = applyOptions([]Option{WithRound(0)})
	assert.True(t, o.hasRound)
	assert.Zero(t, o.round)
}
