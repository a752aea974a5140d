package gamemath

// Direction is a cardinal direction bit flag. Movement input may combine
// several flags; a facing or a bullet heading is always exactly one.
type Direction uint8

const (
	Forward  Direction = 1 << iota // screen up
	Backward                       // screen down
	Left
	Right
)

// Cardinal reports whether d is exactly one of the four directions.
func (d Direction) Cardinal() bool {
	switch d {
	case Forward, Backward, Left, Right:
		return true
	}
	return false
}

// Has reports whether flag is set in d.
func (d Direction) Has(flag Direction) bool {
	return d&flag != 0
}

// RotateLeft turns a cardinal direction a quarter turn counterclockwise:
// Forward, Left, Backward, Right, Forward.
func (d Direction) RotateLeft() Direction {
	switch d {
	case Forward:
		return Left
	case Left:
		return Backward
	case Backward:
		return Right
	case Right:
		return Forward
	}
	return d
}

// RotateRight is the inverse of RotateLeft.
func (d Direction) RotateRight() Direction {
	switch d {
	case Forward:
		return Right
	case Right:
		return Backward
	case Backward:
		return Left
	case Left:
		return Forward
	}
	return d
}

// Unit returns the screen-space unit vector for a cardinal direction.
// Forward points toward negative Y.
func (d Direction) Unit() Vec2 {
	switch d {
	case Forward:
		return Vec2{X: 0, Y: -1}
	case Backward:
		return Vec2{X: 0, Y: 1}
	case Left:
		return Vec2{X: -1, Y: 0}
	case Right:
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{}
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "mixed"
}
