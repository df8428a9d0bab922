package grid

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple tests a 3×4 layout with two regions.
//
//	. . # .
//	. # # .
//	# # . .
//
// Expected: regions of size 3 (top-left) and 4 (right side).
func TestConnectedComponents_Simple(t *testing.T) {
	g := MustParse("" +
		"..#.\n" +
		".##.\n" +
		"##..\n")

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{3, 4}, sizes)
	assert.Equal(t, Coord{0, 0}, comps[0][0], "first component seeded at first traversable cell")
}

// TestConnectedComponents_DiagonalDoesNotConnect checks corner-touching cells
// stay separate under orthogonal moves.
func TestConnectedComponents_DiagonalDoesNotConnect(t *testing.T) {
	g := MustParse("" +
		".#\n" +
		"#.\n")
	assert.Len(t, g.ConnectedComponents(), 2)
	assert.False(t, g.Connected(Coord{0, 0}, Coord{1, 1}))
}

func TestConnectedComponents_AllWallAndSingle(t *testing.T) {
	g := MustParse("##\n##\n")
	assert.Empty(t, g.ConnectedComponents())

	one := MustParse("S\n")
	comps := one.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []Coord{{0, 0}}, comps[0])
}

func TestConnected(t *testing.T) {
	g := MustParse("" +
		"S.#.\n" +
		"..#E\n")
	assert.True(t, g.Connected(Coord{0, 0}, Coord{1, 1}))
	assert.False(t, g.Connected(Coord{0, 0}, Coord{1, 3}))
	assert.True(t, g.Connected(Coord{0, 3}, Coord{1, 3}))
	assert.True(t, g.Connected(Coord{0, 0}, Coord{0, 0}))
	assert.False(t, g.Connected(Coord{0, 2}, Coord{0, 2}), "wall is never connected")
	assert.False(t, g.Connected(Coord{0, 0}, Coord{5, 5}))
}

func TestComponentOf(t *testing.T) {
	g := MustParse("" +
		"S.#.\n" +
		"..#E\n")
	assert.Equal(t, []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, g.ComponentOf(Coord{0, 0}))
	assert.Equal(t, []Coord{{1, 3}, {0, 3}}, g.ComponentOf(Coord{1, 3}))
	assert.Nil(t, g.ComponentOf(Coord{0, 2}))
	assert.Nil(t, g.ComponentOf(Coord{-1, 0}))
}
