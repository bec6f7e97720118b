package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/render"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[37;47m#\033[0m", render.Colorize(gridsearch.Wall))
	assert.Equal(t, "\033[92;102mm\033[0m", render.Colorize(gridsearch.Mountain))
	assert.Equal(t, "\033[35;45mo\033[0m", render.Colorize(gridsearch.PathMarker))
	assert.Equal(t, "x", render.Colorize(gridsearch.Terrain('x')))
}

func TestBoard_MarksPathButKeepsEndpoints(t *testing.T) {
	g, err := gridsearch.Parse([]string{"A..", "##.", ".#B"})
	require.NoError(t, err)
	res, err := gridsearch.Search(context.Background(), g, gridsearch.AStar)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Board(&buf, g, res.Path, false))
	assert.Equal(t, "Aoo\n##o\n.#B\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Board(&buf, g, nil, false))
	assert.Equal(t, "A..\n##.\n.#B\n", buf.String())
}

func TestBoard_Color(t *testing.T) {
	g, err := gridsearch.Parse([]string{"AB"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Board(&buf, g, []gridsearch.Point{{X: 1, Y: 0}}, true))
	assert.Equal(t, "\033[31;41mA\033[0m\033[36;46mB\033[0m\n", buf.String())
}

func TestLegend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Legend(&buf, false))
	assert.Equal(t, "-- Color Legend --\n"+
		"w - Water\n"+
		"m - Mountain\n"+
		"f - Forest\n"+
		"g - Grassland\n"+
		"r - Road\n"+
		"A - Start\n"+
		"B - End\n"+
		"o - Optimal path\n"+
		"# - Wall\n", buf.String())
}

func TestStats(t *testing.T) {
	results := []gridsearch.Result{
		{Found: true, TotalCost: 3, Closed: 4, Open: 0},
		{Found: false, Closed: 16, Open: 0},
		{Found: true, TotalCost: 120, Closed: 250, Open: 31},
	}

	var buf bytes.Buffer
	require.NoError(t, render.Stats(&buf, "A*", results))
	assert.Equal(t, ""+
		"        A*\n"+
		"     Costs    3    -  120\n"+
		"    Closed    4   16  250\n"+
		"Discovered    0    0   31\n", buf.String())
}
