package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/ui/output"
)

func TestColorProfileRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	require.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNewWritesToGivenWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	_, err := out.WriteString(out.String("hello").Bold().String())
	require.NoError(t, err)
	require.Equal(t, "hello", buf.String())
}
