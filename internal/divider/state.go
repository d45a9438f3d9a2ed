package divider

// State is the mutable drag state of a single split view. Offsets are
// measured from the pivot line; positive values move the divider down.
//
// AtTop and AtBottom report whether Current sits on the upward (numerically
// smaller) or downward clamp boundary. Both are true when the two boundaries
// coincide, e.g. for a zero-height container.
type State struct {
	Current  float64
	Previous float64
	AtTop    bool
	AtBottom bool
	Expanded bool

	config Config
	height float64
}

// New validates cfg and returns a State resting on the pivot line.
func New(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &State{
		Expanded: cfg.Expanded,
		config:   cfg,
	}, nil
}

// MustNew is like New but panics when cfg is invalid.
func MustNew(cfg Config) *State {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Config returns the configuration the state was constructed with.
func (s *State) Config() Config {
	return s.config
}

// Limits returns the offsets of the upward and downward clamp boundaries for
// a container of the given height. top <= bottom for every valid config.
func (s *State) Limits(height float64) (top, bottom float64) {
	top = height * (s.config.Pivot - s.config.Range.Hi)
	bottom = height * (s.config.Pivot - s.config.Range.Lo)
	return top, bottom
}

// Clamp restricts offset to [top, bottom].
func Clamp(offset, top, bottom float64) float64 {
	return max(top, min(bottom, offset))
}

// ApplyDragDelta moves the divider to previous+deltaY, clamped to the limits
// for height. It may be called for every intermediate drag position; repeated
// calls with the same arguments leave the state unchanged. It reports whether
// any observable field changed.
func (s *State) ApplyDragDelta(deltaY, height float64) bool {
	s.height = height
	top, bottom := s.Limits(height)
	return s.moveTo(Clamp(s.Previous+deltaY, top, bottom), top, bottom)
}

// CommitDrag makes the current offset the baseline for the next drag.
func (s *State) CommitDrag() bool {
	if s.Previous == s.Current {
		return false
	}
	s.Previous = s.Current
	return true
}

// CancelDrag abandons an in-progress drag and returns the divider to the last
// committed offset.
func (s *State) CancelDrag() bool {
	top, bottom := s.Limits(s.height)
	return s.moveTo(s.Previous, top, bottom)
}

// Nudge performs a complete one-step drag of deltaY.
func (s *State) Nudge(deltaY, height float64) bool {
	moved := s.ApplyDragDelta(deltaY, height)
	committed := s.CommitDrag()
	return moved || committed
}

// Reset returns the divider to the pivot line of a container of the given
// height.
func (s *State) Reset(height float64) bool {
	s.height = height
	top, bottom := s.Limits(height)
	moved := s.moveTo(Clamp(0, top, bottom), top, bottom)
	committed := s.CommitDrag()
	return moved || committed
}

// Resize re-clamps both offsets to the limits of a container of the given
// height and recomputes the boundary flags.
func (s *State) Resize(height float64) bool {
	s.height = height
	top, bottom := s.Limits(height)
	prev := Clamp(s.Previous, top, bottom)
	committed := s.Previous != prev
	s.Previous = prev
	moved := s.moveTo(Clamp(s.Current, top, bottom), top, bottom)
	return moved || committed
}

// ToggleExpanded flips the expansion state. Offsets and boundary flags are
// not touched.
func (s *State) ToggleExpanded() {
	s.Expanded = !s.Expanded
}

func (s *State) moveTo(offset, top, bottom float64) bool {
	atTop := offset == top
	atBottom := offset == bottom
	changed := s.Current != offset || s.AtTop != atTop || s.AtBottom != atBottom
	s.Current = offset
	s.AtTop = atTop
	s.AtBottom = atBottom
	return changed
}
