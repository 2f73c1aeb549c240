package scene

import (
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/gfx/renderer2d"
)

// SpriteQueuer accepts one sprite draw per call. *renderer2d.Renderer
// implements it.
type SpriteQueuer interface {
	QueueDrawSprite(t renderer2d.Transform, s renderer2d.Sprite, c colors.Color)
}

var _ SpriteQueuer = (*renderer2d.Renderer)(nil)

// ID identifies an entity. The generation makes ids of destroyed entities
// stale once their slot is reused.
type ID struct {
	index int
	gen   uint32
}

// Entity is a placed sprite.
type Entity struct {
	Transform renderer2d.Transform
	Sprite    renderer2d.Sprite
	Active    bool
	Visible   bool
}

type slot struct {
	gen    uint32
	alive  bool
	entity Entity
}

// Container stores entities in slots and reuses freed slots.
type Container struct {
	slots []slot
	free  []int
	count int
}

func NewContainer() *Container { return &Container{} }

func (c *Container) Len() int { return c.count }

// Create adds an active, visible entity.
func (c *Container) Create(t renderer2d.Transform, s renderer2d.Sprite) ID {
	e := Entity{Transform: t, Sprite: s, Active: true, Visible: true}

	var idx int
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		idx = len(c.slots)
		c.slots = append(c.slots, slot{})
	}
	sl := &c.slots[idx]
	sl.gen++
	sl.alive = true
	sl.entity = e
	c.count++
	return ID{index: idx, gen: sl.gen}
}

// Get returns the entity for id, or nil when id is stale.
func (c *Container) Get(id ID) *Entity {
	if id.index < 0 || id.index >= len(c.slots) {
		return nil
	}
	sl := &c.slots[id.index]
	if !sl.alive || sl.gen != id.gen {
		return nil
	}
	return &sl.entity
}

// Destroy removes the entity. It reports false for stale ids.
func (c *Container) Destroy(id ID) bool {
	if c.Get(id) == nil {
		return false
	}
	sl := &c.slots[id.index]
	sl.alive = false
	sl.entity = Entity{}
	c.free = append(c.free, id.index)
	c.count--
	return true
}

// Render queues every visible entity, untinted, in slot order.
func (c *Container) Render(q SpriteQueuer) {
	for i := range c.slots {
		sl := &c.slots[i]
		if !sl.alive || !sl.entity.Visible {
			continue
		}
		q.QueueDrawSprite(sl.entity.Transform, sl.entity.Sprite, colors.White)
	}
}
