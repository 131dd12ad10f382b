package models

// Tab is one entry of a tab bar. Route is where selecting the tab leads.
type Tab struct {
	Title string
	Route Route
	Help  string
}

// TabState tracks the selected tab of a tab bar. Navigation wraps.
type TabState struct {
	Tabs  []Tab
	index int
}

// NewTabState creates a tab bar with the first tab selected.
func NewTabState(tabs ...Tab) *TabState {
	return &TabState{Tabs: tabs}
}

// Index returns the selected tab index.
func (t *TabState) Index() int {
	return t.index
}

// Current returns the selected tab. The zero Tab is returned when the
// bar is empty.
func (t *TabState) Current() Tab {
	if len(t.Tabs) == 0 {
		return Tab{}
	}
	return t.Tabs[t.index]
}

// Next selects the following tab.
func (t *TabState) Next() {
	if len(t.Tabs) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.Tabs)
}

// Previous selects the preceding tab.
func (t *TabState) Previous() {
	if len(t.Tabs) == 0 {
		return
	}
	t.index = (t.index - 1 + len(t.Tabs)) % len(t.Tabs)
}

// SetIndex selects tab i; out of range values are ignored.
func (t *TabState) SetIndex(i int) {
	if i >= 0 && i < len(t.Tabs) {
		t.index = i
	}
}

// Find returns the index of the tab leading to block, or -1.
func (t *TabState) Find(block Block) int {
	for i, tab := range t.Tabs {
		if tab.Route.Block == block {
			return i
		}
	}
	return -1
}
