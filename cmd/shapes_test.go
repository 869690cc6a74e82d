package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/aberke/fractals/internal/model"
)

func TestShapesCmd_ListsCurvesAndEdges(t *testing.T) {
	root := newRootCmd()
	root.AddCommand(newShapesCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	root.SetArgs([]string{"shapes"})
	require.NoError(t, root.Execute())

	output := out.String()

	assert.Contains(t, output, "Curves")
	assert.Contains(t, output, "Edge shapes (tree)")

	for _, name := range []string{
		"triangle", "arrowhead", "tree",
		"straight", "quad", "arc", "catmull", "catmull-random",
	} {
		assert.Contains(t, output, name)
	}
}

func TestShapesCmd_RejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.AddCommand(newShapesCmd())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	root.SetArgs([]string{"shapes", "extra"})
	assert.Error(t, root.Execute())
}

func TestEdgeKindDescriptions_CoverAllKinds(t *testing.T) {
	for _, kind := range m.EdgeKinds() {
		assert.NotEmpty(t, edgeKindDescriptions[kind], "kind %s", kind)
	}
}
