package scene

import (
	"testing"

	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
	"github.com/hubastard/sprite2d/engine/gfx/renderer2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queued struct {
	t renderer2d.Transform
	s renderer2d.Sprite
	c colors.Color
}

type recorder struct{ draws []queued }

func (r *recorder) QueueDrawSprite(t renderer2d.Transform, s renderer2d.Sprite, c colors.Color) {
	r.draws = append(r.draws, queued{t, s, c})
}

var tex = core.Texture{Handle: 3, Width: 32, Height: 32}

func TestContainerCreateGetDestroy(t *testing.T) {
	c := NewContainer()
	a := c.Create(renderer2d.TransformAt(1, 2), renderer2d.SpriteFromPixels(tex, 0, 0, 16, 16))
	b := c.Create(renderer2d.TransformAt(3, 4), renderer2d.SpriteFromPixels(tex, 16, 0, 16, 16))
	assert.Equal(t, 2, c.Len())

	e := c.Get(a)
	require.NotNil(t, e)
	assert.True(t, e.Active)
	assert.True(t, e.Visible)
	assert.Equal(t, float32(1), e.Transform.Pos.X())

	assert.True(t, c.Destroy(a))
	assert.False(t, c.Destroy(a), "double destroy")
	assert.Nil(t, c.Get(a))
	assert.Equal(t, 1, c.Len())

	// slot is reused, the stale id stays dead
	a2 := c.Create(renderer2d.TransformAt(5, 6), renderer2d.Sprite{})
	assert.Equal(t, a.index, a2.index)
	assert.Nil(t, c.Get(a))
	assert.NotNil(t, c.Get(a2))
	assert.NotNil(t, c.Get(b))
	assert.Nil(t, c.Get(ID{index: 99}))
}

func TestContainerRenderQueuesVisible(t *testing.T) {
	c := NewContainer()
	a := c.Create(renderer2d.TransformAt(1, 1), renderer2d.SpriteFromPixels(tex, 0, 0, 8, 8))
	hidden := c.Create(renderer2d.TransformAt(2, 2), renderer2d.SpriteFromPixels(tex, 8, 0, 8, 8))
	gone := c.Create(renderer2d.TransformAt(3, 3), renderer2d.SpriteFromPixels(tex, 16, 0, 8, 8))
	last := c.Create(renderer2d.TransformAt(4, 4), renderer2d.SpriteFromPixels(tex, 24, 0, 8, 8))

	c.Get(hidden).Visible = false
	c.Destroy(gone)

	var r recorder
	c.Render(&r)

	require.Len(t, r.draws, 2)
	assert.Equal(t, c.Get(a).Transform, r.draws[0].t)
	assert.Equal(t, c.Get(last).Sprite, r.draws[1].s)
	for _, d := range r.draws {
		assert.Equal(t, colors.White, d.c)
	}
}
