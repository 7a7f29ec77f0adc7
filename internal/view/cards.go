package view

// Accordion keeps at most one card expanded.
type Accordion struct {
	expanded int
	n        int
}

func NewAccordion(n int) *Accordion {
	return &Accordion{expanded: -1, n: n}
}

// Toggle expands card i and collapses the others, or collapses i if it was
// already expanded.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.n {
		return
	}
	if a.expanded == i {
		a.expanded = -1
		return
	}
	a.expanded = i
}

func (a *Accordion) Expanded(i int) bool { return i >= 0 && a.expanded == i }
func (a *Accordion) Len() int            { return a.n }

// Toggles is a set of independent on/off items, such as team member bios.
type Toggles []bool

func (t Toggles) Toggle(i int) {
	if i >= 0 && i < len(t) {
		t[i] = !t[i]
	}
}
