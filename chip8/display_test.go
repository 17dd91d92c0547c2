package chip8

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSprite(t *testing.T) {
	d := NewDisplay()
	glyphA := font[0xA*5 : 0xA*5+5]

	collided, err := d.DrawSprite(glyphA, 0, 0)
	require.NoError(t, err)
	assert.False(t, collided)

	g := d.State()
	// F0 90 F0 90 90
	assert.Equal(t, []bool{true, true, true, true, false}, g[0][:5])
	assert.Equal(t, []bool{true, false, false, true, false}, g[1][:5])
	assert.Equal(t, []bool{true, false, false, true, false}, g[4][:5])

	collided, err = d.DrawSprite(glyphA, 0, 0)
	require.NoError(t, err)
	assert.True(t, collided)
	assert.Equal(t, Grid{}, d.State())
}

func TestDrawSpriteWraps(t *testing.T) {
	d := NewDisplay()
	_, err := d.DrawSprite([]uint8{0xFF, 0x80}, ScreenWidth-4, ScreenHeight-1)
	require.NoError(t, err)

	g := d.State()
	for x := ScreenWidth - 4; x < ScreenWidth; x++ {
		assert.True(t, g[ScreenHeight-1][x], "x=%d", x)
	}
	for x := 0; x < 4; x++ {
		assert.True(t, g[ScreenHeight-1][x], "x=%d", x)
	}
	assert.True(t, g[0][ScreenWidth-4])
	assert.False(t, g[0][ScreenWidth-3])
}

func TestDrawSpriteTooBig(t *testing.T) {
	d := NewDisplay()
	_, err := d.DrawSprite(make([]uint8, ScreenHeight+1), 0, 0)
	assert.ErrorIs(t, err, ErrSpriteTooBig)
}

func TestSnapshot(t *testing.T) {
	d := NewDisplay()
	_, changed := d.Snapshot()
	assert.True(t, changed)
	_, changed = d.Snapshot()
	assert.False(t, changed)

	_, err := d.DrawSprite([]uint8{0x80}, 3, 4)
	require.NoError(t, err)
	g, changed := d.Snapshot()
	assert.True(t, changed)
	assert.True(t, g[4][3])

	d.Clear()
	g, changed = d.Snapshot()
	assert.True(t, changed)
	assert.Equal(t, Grid{}, g)
}

func TestGridRender(t *testing.T) {
	var g Grid
	g[0][0] = true
	g[1][63] = true

	var sb strings.Builder
	require.NoError(t, g.Render(&sb, "#", "."))
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, ScreenHeight)
	assert.Equal(t, "#"+strings.Repeat(".", 63), lines[0])
	assert.Equal(t, strings.Repeat(".", 63)+"#", lines[1])
}
