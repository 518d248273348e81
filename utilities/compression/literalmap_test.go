package compression_test

import (
	"bytes"
	"testing"

	c "github.com/dargueta/bootpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralMap__MarkAndCount(t *testing.T) {
	literals := c.NewLiteralMap(20)
	literals.Mark(0)
	literals.Mark(9)
	literals.Mark(19)
	literals.Mark(20)
	literals.Mark(-1)

	assert.Equal(t, 3, literals.Count())
	assert.True(t, literals.IsLiteral(9))
	assert.False(t, literals.IsLiteral(8))
	assert.False(t, literals.IsLiteral(20))
}

func TestLiteralMap__Render(t *testing.T) {
	literals := c.NewLiteralMap(10)
	literals.Mark(1)
	literals.Mark(4)
	literals.Mark(9)

	var output bytes.Buffer
	require.NoError(t, literals.Render(&output, 4))
	assert.Equal(t, "0000  .L..\n0004  L...\n0008  .L\n", output.String())
}

func TestLiteralMap__RenderBadWidth(t *testing.T) {
	var output bytes.Buffer
	assert.Error(t, c.NewLiteralMap(4).Render(&output, 0))
}
