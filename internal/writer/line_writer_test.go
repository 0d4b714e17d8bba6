package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineWriter_Write(t *testing.T) {
	var buf bytes.Buffer

	err := NewLineWriter(&buf).Write([]string{"Louis VIII", "Louis IX"})

	require.NoError(t, err)
	assert.Equal(t, "Louis VIII\nLouis IX\n", buf.String())
}

func TestLineWriter_Write_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := NewLineWriter(&buf).Write(nil)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
