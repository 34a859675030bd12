package tui

// renderDoneMsg arrives when the render started by the seq-th ctrl+s is over.
type renderDoneMsg struct {
	seq uint64
	err error
}

type copiedMsg struct{}

// clearStatusMsg clears the status only if it is still the seq-th one.
type clearStatusMsg struct {
	seq uint64
}
