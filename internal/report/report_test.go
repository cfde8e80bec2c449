package report

import (
	"bytes"
	"math"
	"testing"

	bst "github.com/Noxtal/my-binary-search-tree"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tree := bst.New(0.5)
	tree.Insert(0.5)
	tree.Insert(0.9)
	tree.Insert(0.1)

	s, err := Build(tree, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.5, 0.5, 0.1}, s.Values)
	assert.Equal(t, 4, s.Nodes)
	assert.True(t, s.Found)
	assert.Equal(t, 0.5, s.Probe)
	// Children hold 0.9 and 0.5, which truncate to 0.
	assert.Equal(t, 1, s.Height)
	assert.True(t, s.Balanced)

	s, err = Build(tree, 2)
	require.NoError(t, err)
	assert.False(t, s.Found)
}

func TestBuildOverflow(t *testing.T) {
	tree := bst.New(0.0)
	tree.Insert(math.MaxFloat64)

	_, err := Build(tree, 0)
	assert.ErrorIs(t, err, bst.ErrHeightOverflow)
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	err := Render(&buf, Summary{
		Values:   []float64{0.9, 0.5, 0.1},
		Nodes:    3,
		Height:   1,
		Balanced: true,
		Probe:    0.5,
		Found:    true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "nodes    : 3")
	assert.Contains(t, out, "in-order : [0.9 0.5 0.1]")
	assert.Contains(t, out, "height   : 1")
	assert.Contains(t, out, "balanced : true")
	assert.Contains(t, out, "has(0.5) : true")
}
