package world

// Obstacle is an axis-aligned rectangle in world space, anchored at its
// bottom-left corner. Obstacles are compared by pointer identity: two
// obstacles with identical geometry are distinct entities.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Top returns the world y of the obstacle's upper edge.
func (o *Obstacle) Top() float64 { return o.Y + o.H }

// Right returns the world x of the obstacle's right edge.
func (o *Obstacle) Right() float64 { return o.X + o.W }

// Area returns the rectangle area, which drives hit damage.
func (o *Obstacle) Area() float64 { return o.W * o.H }

// Overlaps reports whether the obstacle intersects the square of side size
// anchored at (x, y). Edge contact does not count as overlap.
func (o *Obstacle) Overlaps(x, y, size float64) bool {
	return x+size > o.X && x < o.Right() && y+size > o.Y && y < o.Top()
}
