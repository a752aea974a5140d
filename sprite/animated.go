package sprite

// Animated is a sprite that steps through an ordered list of frames.
type Animated struct {
	*Sprite
	frames []*Frame
	index  int
}

func NewAnimated(frames []*Frame) *Animated {
	return &Animated{
		Sprite: New(frames[0]),
		frames: frames,
	}
}

// SetFrame selects the frame at index i, clamped to the valid range.
func (a *Animated) SetFrame(i int) {
	i = max(0, min(i, len(a.frames)-1))
	a.index = i
	a.SetVisual(a.frames[i])
}

func (a *Animated) FrameIndex() int { return a.index }
func (a *Animated) FrameCount() int { return len(a.frames) }
