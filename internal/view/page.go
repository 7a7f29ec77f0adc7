package view

// RevealThreshold is the visible fraction at which a section is revealed.
const RevealThreshold = 0.1

// Section is a vertical block of a page. Top is set by NewPage.
type Section struct {
	ID     string
	Title  string
	Lines  []string
	Height float64
	Top    float64

	revealed bool
}

func (s *Section) Revealed() bool { return s.revealed }

// Page stacks sections top to bottom.
type Page struct {
	Sections []*Section
	Height   float64
}

// NewPage lays out sections one after another starting at top.
func NewPage(top float64, sections ...Section) *Page {
	p := &Page{Height: top}
	for i := range sections {
		s := sections[i]
		s.Top = p.Height
		p.Height += s.Height
		p.Sections = append(p.Sections, &s)
	}
	return p
}

// Section looks a section up by id.
func (p *Page) Section(id string) (*Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Reveal marks every section that intersects the viewport enough. Revealed
// sections stay revealed.
func (p *Page) Reveal(offset, viewport float64) {
	for _, s := range p.Sections {
		if s.revealed || s.Height <= 0 {
			continue
		}
		top := max(s.Top, offset)
		bottom := min(s.Top+s.Height, offset+viewport)
		if bottom-top >= s.Height*RevealThreshold {
			s.revealed = true
		}
	}
}
