package story

import (
	"reflect"
	"testing"

	"codeberg.org/arvoss/wordlens/internal/collection"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Segment
	}{
		{
			name: "two blanks with literal text preserved",
			body: "The {{cat}} sat on the {{mat}}.",
			want: []Segment{
				{Text: "The "},
				{Text: "cat", Blank: true},
				{Text: " sat on the "},
				{Text: "mat", Blank: true},
				{Text: "."},
			},
		},
		{
			name: "no markers",
			body: "Just plain text.",
			want: []Segment{{Text: "Just plain text."}},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "marker at start and end",
			body: "{{cat}} chases {{mouse}}",
			want: []Segment{
				{Text: "cat", Blank: true},
				{Text: " chases "},
				{Text: "mouse", Blank: true},
			},
		},
		{
			name: "adjacent markers",
			body: "{{a}}{{b}}",
			want: []Segment{
				{Text: "a", Blank: true},
				{Text: "b", Blank: true},
			},
		},
		{
			name: "unterminated marker stays literal",
			body: "The {{cat sat.",
			want: []Segment{{Text: "The {{cat sat."}},
		},
		{
			name: "whitespace preserved exactly",
			body: "  {{a}}\n\t{{b}}  ",
			want: []Segment{
				{Text: "  "},
				{Text: "a", Blank: true},
				{Text: "\n\t"},
				{Text: "b", Blank: true},
				{Text: "  "},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSegmentsRoundTrip(t *testing.T) {
	body := "One {{two}} three {{four}} five."
	var rebuilt string
	for _, seg := range Segments(body) {
		if seg.Blank {
			rebuilt += "{{" + seg.Text + "}}"
		} else {
			rebuilt += seg.Text
		}
	}
	if rebuilt != body {
		t.Errorf("segments do not reassemble the body: got %q, want %q", rebuilt, body)
	}
}

func TestCandidates(t *testing.T) {
	items := []collection.SavedItem{
		{Word: "gato", ImageURL: "img-1"},
		{Word: "perro", ImageURL: "img-2"},
		{Word: "gato", ImageURL: "img-3"}, // same word, different image
		{Word: "pez", ImageURL: "img-4"},
	}

	got := Candidates(items)
	want := []string{"gato", "perro", "pez"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesEmpty(t *testing.T) {
	if got := Candidates(nil); len(got) != 0 {
		t.Errorf("Candidates(nil) = %v, want empty", got)
	}
}
