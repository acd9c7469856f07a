package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/martinstarman/mersge/internal/conflict"
)

// panelRow is one visible line of a panel before any styling is applied.
type panelRow struct {
	text   string
	change conflict.Change
	cursor bool
}

// sideRows builds the rows for the local or incoming panel. Every document
// row is visible and the one under the cursor is flagged.
func sideRows(lines []conflict.Line, cursor int) []panelRow {
	rows := make([]panelRow, len(lines))
	for i, line := range lines {
		rows[i] = panelRow{text: line.Text, change: line.Change, cursor: i == cursor}
	}
	return rows
}

// resultRows builds the rows for the result panel. Removed rows are dropped
// from the visible text, so this panel can be shorter than the other two.
func resultRows(doc *conflict.Document) []panelRow {
	rows := make([]panelRow, 0, doc.Len())
	for i, line := range doc.Result {
		if line.Change == conflict.Removed {
			continue
		}
		rows = append(rows, panelRow{text: line.Text, change: line.Change, cursor: i == doc.Cursor})
	}
	return rows
}

// resultCursorRow maps the document cursor onto the result panel's visible
// rows, for scroll following. When the cursor row itself is removed the
// position of the next visible row is returned.
func resultCursorRow(doc *conflict.Document) int {
	row := 0
	for i := 0; i < doc.Cursor && i < doc.Len(); i++ {
		if doc.Result[i].Change != conflict.Removed {
			row++
		}
	}
	return row
}

// fitLine truncates or pads text to exactly width terminal cells, so the
// cursor highlight spans the whole row and wide runes keep columns aligned.
func fitLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, "…"), width)
}
