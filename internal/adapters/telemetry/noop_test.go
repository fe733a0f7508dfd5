package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/adapters/telemetry"
	"go.trai.ch/zerr"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "index assets")
	require.Equal(t, context.Background(), ctx)

	span.SetAttribute("completed", 3)
	span.RecordError(zerr.New("ignored"))

	n, err := span.Write([]byte("progress"))
	require.NoError(t, err)
	require.Equal(t, len("progress"), n)

	span.End()
}
