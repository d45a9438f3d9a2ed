package intents

// ToggleBottom expands or collapses the bottom pane.
type ToggleBottom struct{}

func (ToggleBottom) isIntent() {}

// Nudge moves the divider by Delta rows as one complete drag. Negative values
// move it up.
type Nudge struct {
	Delta float64
}

func (Nudge) isIntent() {}

// ResetDivider returns the divider to its pivot.
type ResetDivider struct{}

func (ResetDivider) isIntent() {}

// CancelDrag abandons the drag in progress.
type CancelDrag struct{}

func (CancelDrag) isIntent() {}

type Quit struct{}

func (Quit) isIntent() {}

// AddMessage shows a flash message. Warnings and sticky messages stay until
// dismissed.
type AddMessage struct {
	Text    string
	Warning bool
	Sticky  bool
}

func (AddMessage) isIntent() {}

type DismissOldest struct{}

func (DismissOldest) isIntent() {}
