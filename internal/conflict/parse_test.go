package conflict_test

import (
	"reflect"
	"testing"

	"github.com/martinstarman/mersge/internal/conflict"
)

func TestParse(t *testing.T) {
	type columns struct {
		local    []conflict.Line
		result   []conflict.Line
		incoming []conflict.Line
	}

	tests := []struct {
		name    string
		content string
		want    columns
	}{
		{
			name:    "empty input",
			content: "",
			want:    columns{},
		},
		{
			name:    "no conflict markers",
			content: "a\nb\n",
			want: columns{
				local:    []conflict.Line{{Text: "a"}, {Text: "b"}},
				result:   []conflict.Line{{Text: "a"}, {Text: "b"}},
				incoming: []conflict.Line{{Text: "a"}, {Text: "b"}},
			},
		},
		{
			name:    "single conflict",
			content: "a\n<<<<<<< HEAD\nb\n=======\nc\n>>>>>>> feature\nd\n",
			want: columns{
				local: []conflict.Line{
					{Text: "a"},
					{Text: "b", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
					{Text: "d"},
				},
				result: []conflict.Line{
					{Text: "a"},
					{Text: "#"},
					{Text: "#"},
					{Text: "d"},
				},
				incoming: []conflict.Line{
					{Text: "a"},
					{Text: "-", Change: conflict.Removed},
					{Text: "c", Change: conflict.Added},
					{Text: "d"},
				},
			},
		},
		{
			name:    "bare markers without labels",
			content: "a\n<<<<<<<\nb\n=======\nc\n>>>>>>>\nd\n",
			want: columns{
				local: []conflict.Line{
					{Text: "a"},
					{Text: "b", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
					{Text: "d"},
				},
				result: []conflict.Line{
					{Text: "a"},
					{Text: "#"},
					{Text: "#"},
					{Text: "d"},
				},
				incoming: []conflict.Line{
					{Text: "a"},
					{Text: "-", Change: conflict.Removed},
					{Text: "c", Change: conflict.Added},
					{Text: "d"},
				},
			},
		},
		{
			name:    "sides of different size",
			content: "<<<<<<< HEAD\none\ntwo\n=======\nthree\n>>>>>>> feature\n",
			want: columns{
				local: []conflict.Line{
					{Text: "one", Change: conflict.Added},
					{Text: "two", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
				},
				result: []conflict.Line{
					{Text: "#"},
					{Text: "#"},
					{Text: "#"},
				},
				incoming: []conflict.Line{
					{Text: "-", Change: conflict.Removed},
					{Text: "-", Change: conflict.Removed},
					{Text: "three", Change: conflict.Added},
				},
			},
		},
		{
			name:    "empty conflict sides",
			content: "a\n<<<<<<< HEAD\n=======\n>>>>>>> feature\nb\n",
			want: columns{
				local:    []conflict.Line{{Text: "a"}, {Text: "b"}},
				result:   []conflict.Line{{Text: "a"}, {Text: "b"}},
				incoming: []conflict.Line{{Text: "a"}, {Text: "b"}},
			},
		},
		{
			name:    "no trailing newline",
			content: "a\nb",
			want: columns{
				local:    []conflict.Line{{Text: "a"}, {Text: "b"}},
				result:   []conflict.Line{{Text: "a"}, {Text: "b"}},
				incoming: []conflict.Line{{Text: "a"}, {Text: "b"}},
			},
		},
		{
			name:    "windows line endings",
			content: "a\r\n<<<<<<< HEAD\r\nb\r\n=======\r\nc\r\n>>>>>>> feature\r\n",
			want: columns{
				local: []conflict.Line{
					{Text: "a"},
					{Text: "b", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
				},
				result: []conflict.Line{
					{Text: "a"},
					{Text: "#"},
					{Text: "#"},
				},
				incoming: []conflict.Line{
					{Text: "a"},
					{Text: "-", Change: conflict.Removed},
					{Text: "c", Change: conflict.Added},
				},
			},
		},
		{
			name:    "adjacent conflicts",
			content: "<<<<<<< HEAD\na\n=======\nb\n>>>>>>> x\n<<<<<<< HEAD\nc\n=======\nd\n>>>>>>> x\n",
			want: columns{
				local: []conflict.Line{
					{Text: "a", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
					{Text: "c", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
				},
				result: []conflict.Line{
					{Text: "#"},
					{Text: "#"},
					{Text: "#"},
					{Text: "#"},
				},
				incoming: []conflict.Line{
					{Text: "-", Change: conflict.Removed},
					{Text: "b", Change: conflict.Added},
					{Text: "-", Change: conflict.Removed},
					{Text: "d", Change: conflict.Added},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := conflict.Parse([]byte(tt.content))

			if !reflect.DeepEqual(doc.Local, tt.want.local) {
				t.Errorf("Parse() local = %v, want %v", doc.Local, tt.want.local)
			}
			if !reflect.DeepEqual(doc.Result, tt.want.result) {
				t.Errorf("Parse() result = %v, want %v", doc.Result, tt.want.result)
			}
			if !reflect.DeepEqual(doc.Incoming, tt.want.incoming) {
				t.Errorf("Parse() incoming = %v, want %v", doc.Incoming, tt.want.incoming)
			}
			if doc.Unbalanced {
				t.Errorf("Parse() unbalanced = true, want false")
			}
			if doc.Cursor != 0 {
				t.Errorf("Parse() cursor = %d, want 0", doc.Cursor)
			}
		})
	}
}

func TestParseUnbalanced(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "balanced conflict",
			content: "<<<<<<< HEAD\na\n=======\nb\n>>>>>>> x\n",
			want:    false,
		},
		{
			name:    "input ends inside local side",
			content: "a\n<<<<<<< HEAD\nb\n",
			want:    true,
		},
		{
			name:    "input ends inside incoming side",
			content: "<<<<<<< HEAD\na\n=======\nb\n",
			want:    true,
		},
		{
			name:    "separator before opener",
			content: "a\n=======\nb\n>>>>>>> x\n",
			want:    true,
		},
		{
			name:    "stray closer",
			content: "a\n>>>>>>> x\nb\n",
			want:    true,
		},
		{
			name:    "opener repeated",
			content: "<<<<<<< HEAD\n<<<<<<< HEAD\na\n=======\nb\n>>>>>>> x\n",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := conflict.Parse([]byte(tt.content))
			if doc.Unbalanced != tt.want {
				t.Errorf("Parse() unbalanced = %v, want %v", doc.Unbalanced, tt.want)
			}
		})
	}
}

// The three columns must stay the same length whatever the input looks
// like, including malformed marker sequences.
func TestParseKeepsColumnsAligned(t *testing.T) {
	contents := []string{
		"",
		"a\nb\nc\n",
		"a\n<<<<<<< HEAD\nb\n=======\nc\n>>>>>>> x\nd\n",
		"<<<<<<< HEAD\none\ntwo\nthree\n=======\nfour\n>>>>>>> x\n",
		"a\n<<<<<<< HEAD\nb\n",
		"=======\na\n>>>>>>> x\n<<<<<<< HEAD\nb\n",
	}

	for _, content := range contents {
		doc := conflict.Parse([]byte(content))
		if len(doc.Local) != len(doc.Result) || len(doc.Incoming) != len(doc.Result) {
			t.Errorf("Parse(%q) column lengths = %d/%d/%d, want equal",
				content, len(doc.Local), len(doc.Result), len(doc.Incoming))
		}
	}
}
