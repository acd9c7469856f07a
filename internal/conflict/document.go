package conflict

import "bytes"

// Change classifies a line relative to the merge base.
type Change int

const (
	// Unchanged lines are common to both sides.
	Unchanged Change = iota
	// Added lines exist only on the side that carries them.
	Added
	// Removed lines are skipped when the document is rendered back to a file.
	Removed
)

// Side selects one of the two conflicting revisions.
type Side int

const (
	Local Side = iota
	Incoming
)

// Line is a single row in one of the three columns.
type Line struct {
	Text   string
	Change Change
}

// Placeholder texts keep the three columns index aligned inside conflict
// regions. ResultPending fills result rows that still await a decision,
// Missing fills the side that has no line of its own at that row.
const (
	ResultPending = "#"
	Missing       = "-"
)

// Document holds the three line-aligned columns of a conflicted file and the
// cursor the operations act on. The three slices always have equal length.
type Document struct {
	Local    []Line
	Result   []Line
	Incoming []Line

	// Cursor is the row index MoveUp, MoveDown and Accept operate on.
	Cursor int

	// Unbalanced is set by Parse when the conflict markers were malformed.
	Unbalanced bool
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.Result) }

// MoveUp moves the cursor one row up, stopping at the first row.
func (d *Document) MoveUp() {
	if d.Cursor > 0 {
		d.Cursor--
	}
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (d *Document) MoveDown() {
	if d.Cursor < d.Len()-1 {
		d.Cursor++
	}
}

// Accept resolves the row under the cursor with the given side's line. An
// Added line replaces the result text, a Removed line marks the result row
// removed, an Unchanged line leaves the row alone. Accepting a second time,
// from either side, overwrites the earlier decision.
func (d *Document) Accept(side Side) {
	if d.Len() == 0 {
		return
	}

	line := d.Local[d.Cursor]
	if side == Incoming {
		line = d.Incoming[d.Cursor]
	}

	switch line.Change {
	case Added:
		d.Result[d.Cursor] = Line{Text: line.Text, Change: Added}
	case Removed:
		d.Result[d.Cursor].Change = Removed
	}
}

// Conflicted reports whether row i came out of a conflict region.
func (d *Document) Conflicted(i int) bool {
	return d.Local[i].Change != Unchanged || d.Incoming[i].Change != Unchanged
}

// ConflictCount returns the number of conflicted rows.
func (d *Document) ConflictCount() int {
	count := 0
	for i := range d.Result {
		if d.Conflicted(i) {
			count++
		}
	}
	return count
}

// UnresolvedCount returns the number of conflicted rows no side has been
// accepted for yet. Accepting always stamps the result row Added or Removed,
// so a conflicted row that is still Unchanged is untouched.
func (d *Document) UnresolvedCount() int {
	count := 0
	for i := range d.Result {
		if d.Conflicted(i) && d.Result[i].Change == Unchanged {
			count++
		}
	}
	return count
}

// Resolved renders the result column back into file content. Removed rows
// are dropped and every remaining row is terminated with a newline.
func (d *Document) Resolved() []byte {
	var buf bytes.Buffer
	for _, line := range d.Result {
		if line.Change == Removed {
			continue
		}
		buf.WriteString(line.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
