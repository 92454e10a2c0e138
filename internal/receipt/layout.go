package receipt

import "strings"

type Format string

const (
	FormatThermal Format = "THERMAL"
	FormatFormal  Format = "FORMAL"
)

func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToUpper(s)) {
	case FormatThermal:
		return FormatThermal, true
	case FormatFormal:
		return FormatFormal, true
	}
	return "", false
}

type LineStyle string

const (
	StyleNormal   LineStyle = ""
	StyleEmphasis LineStyle = "emphasis"
	StyleNote     LineStyle = "note"
	StyleRule     LineStyle = "rule"
)

// Line is one visual row of a receipt section. Label/Value carry the usual
// left/right pair; Columns carries tabular rows in the formal layout's
// items table. A rule line has no content at all.
type Line struct {
	Label   string    `json:"label,omitempty"`
	Value   string    `json:"value,omitempty"`
	Columns []string  `json:"columns,omitempty"`
	Style   LineStyle `json:"style,omitempty"`
}

type Section struct {
	Name  string `json:"name"`
	Lines []Line `json:"lines"`
}

// Layout is the structural description of a rendered receipt. Print and
// share collaborators consume it; nothing here touches a device.
type Layout struct {
	Format   Format    `json:"format"`
	Sections []Section `json:"sections"`
}

func (l *Layout) Section(name string) (Section, bool) {
	for _, s := range l.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
