package stage

import "github.com/google/uuid"

// Selection is a tile clicked without dragging.
type Selection struct {
	Stage  uuid.UUID
	Tile   int
	Source int
	ID     string
}

// clickTracker separates taps from drags: a press arms it, any drag motion
// disarms it, and a release while armed counts as a click.
type clickTracker struct {
	armed bool
}

func (c *clickTracker) press()  { c.armed = true }
func (c *clickTracker) moved()  { c.armed = false }
func (c *clickTracker) cancel() { c.armed = false }

func (c *clickTracker) release() bool {
	fired := c.armed
	c.armed = false
	return fired
}
