package divider

// ToggleControlSize is the default height of the expand/collapse control.
const ToggleControlSize = 24

// Layout is the geometry derived from a State for one render pass.
//
// BottomHeight and DividerOffsetY are only meaningful when Expanded is true;
// a collapsed view omits the bottom pane and the divider control entirely.
type Layout struct {
	Expanded       bool
	BottomHeight   float64
	DividerOffsetY float64 // from the vertical centre of the container
	ToggleOffsetY  float64 // from the top of the container
}

// ComputeLayout computes the layout for a container of the given height using
// ToggleControlSize for the toggle control.
func ComputeLayout(s *State, height float64) Layout {
	return ComputeLayoutWithToggle(s, height, ToggleControlSize)
}

// ComputeLayoutWithToggle is ComputeLayout for a toggle control of toggleSize.
func ComputeLayoutWithToggle(s *State, height, toggleSize float64) Layout {
	if !s.Expanded {
		return Layout{ToggleOffsetY: height - toggleSize}
	}
	bottom := BottomHeight(s, height)
	return Layout{
		Expanded:       true,
		BottomHeight:   bottom,
		DividerOffsetY: height*(0.5-s.config.Pivot) + s.Current,
		ToggleOffsetY:  height - bottom,
	}
}

// BottomHeight returns the bottom pane height, never less than the configured
// minimum.
func BottomHeight(s *State, height float64) float64 {
	return max(s.config.MinimumBottomHeight, height*s.config.Pivot-s.Current)
}
