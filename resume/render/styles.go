package render

// TextStyle captures the font and line metrics for one kind of line.
type TextStyle struct {
	Bold       bool
	Size       float64
	LineHeight float64
}

const (
	FontFamily = "Helvetica"

	// Vertical gaps in millimetres.
	HeaderGap  = 5
	SectionGap = 4
)

// StyleMap centralizes the formatting for each resume element.
var StyleMap = map[string]TextStyle{
	"name": {
		Bold:       true,
		Size:       20,
		LineHeight: 12,
	},
	"contact": {
		Size:       12,
		LineHeight: 8,
	},
	"sectionHeading": {
		Bold:       true,
		Size:       14,
		LineHeight: 10,
	},
	"body": {
		Size:       12,
		LineHeight: 8,
	},
}

func (s TextStyle) fontStyle() string {
	if s.Bold {
		return "B"
	}
	return ""
}
