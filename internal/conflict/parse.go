package conflict

import "strings"

// Conflict markers as git merge writes them. Only the prefix matters, the
// remainder of a marker line (branch name, commit id) is discarded.
const (
	markerLocal    = "<<<<<<<"
	markerSplit    = "======="
	markerIncoming = ">>>>>>>"
)

// region tracks which part of a conflict block the parser is inside.
type region int

const (
	regionNone region = iota
	regionLocal
	regionIncoming
)

// Parse spreads file content over the three columns, one row per content
// line. Lines outside conflict blocks land in all three columns as
// Unchanged. Inside a block the owning side receives the line as Added while
// the opposite column records a Missing placeholder and the result column a
// ResultPending placeholder, which keeps the columns index aligned. Marker
// lines themselves produce no row.
//
// Malformed marker sequences never abort the parse: the region switches on
// every marker regardless of the current one, and the document is flagged
// Unbalanced so callers can warn about it.
func Parse(content []byte) *Document {
	doc := &Document{}
	reg := regionNone

	for _, text := range splitLines(string(content)) {
		switch {
		case strings.HasPrefix(text, markerLocal):
			if reg != regionNone {
				doc.Unbalanced = true
			}
			reg = regionLocal
		case strings.HasPrefix(text, markerSplit):
			if reg != regionLocal {
				doc.Unbalanced = true
			}
			reg = regionIncoming
		case strings.HasPrefix(text, markerIncoming):
			if reg != regionIncoming {
				doc.Unbalanced = true
			}
			reg = regionNone
		default:
			switch reg {
			case regionLocal:
				doc.Local = append(doc.Local, Line{Text: text, Change: Added})
				doc.Result = append(doc.Result, Line{Text: ResultPending})
				doc.Incoming = append(doc.Incoming, Line{Text: Missing, Change: Removed})
			case regionIncoming:
				doc.Local = append(doc.Local, Line{Text: Missing, Change: Removed})
				doc.Result = append(doc.Result, Line{Text: ResultPending})
				doc.Incoming = append(doc.Incoming, Line{Text: text, Change: Added})
			default:
				doc.Local = append(doc.Local, Line{Text: text})
				doc.Result = append(doc.Result, Line{Text: text})
				doc.Incoming = append(doc.Incoming, Line{Text: text})
			}
		}
	}

	// Input ended inside a conflict block.
	if reg != regionNone {
		doc.Unbalanced = true
	}

	return doc
}

// splitLines splits content on newlines without producing an empty final
// line for newline-terminated input. Windows line endings are stripped.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
