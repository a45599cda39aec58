package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indices in the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the index steps turns ahead without moving.
func (c *Cycler) Peek(steps int) int {
	return ((c.current+c.direction*steps)%c.size + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek(1)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
