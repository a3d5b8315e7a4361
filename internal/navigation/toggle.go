package navigation

// Toggle is an open/closed switch for an overlay (mobile panel, dropdown).
type Toggle struct {
	open     bool
	onChange func(open bool)
}

func (t *Toggle) IsOpen() bool {
	return t.open
}

func (t *Toggle) Open() {
	t.SetOpen(true)
}

func (t *Toggle) Close() {
	t.SetOpen(false)
}

// SetOpen handles an open-state change request, wherever it comes from:
// a trigger, a link inside the overlay or a dismiss gesture.
func (t *Toggle) SetOpen(open bool) {
	if t.open == open {
		return
	}

	t.open = open

	if t.onChange != nil {
		t.onChange(open)
	}
}

// OnChange registers a listener called after each effective state change.
func (t *Toggle) OnChange(fn func(open bool)) {
	t.onChange = fn
}
