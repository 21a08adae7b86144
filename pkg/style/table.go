package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is a rounded box style. The colored variant is meant for terminals.
func NewDefaultTableStyle(colored bool) *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}

	if colored {
		style.Color.Header = text.Colors{text.Bold, text.FgHiCyan}
		style.Color.Footer = text.Colors{text.FgHiBlack}
	}
	return &style
}
