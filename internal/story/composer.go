// Package story turns the saved-word collection into fill-in-the-blank
// practice material. It derives the candidate word list and splits the
// generated story body into literal and revealable segments.
package story

import (
	"regexp"

	"codeberg.org/arvoss/wordlens/internal/collection"
)

// Segment is one piece of a story body. When Blank is true, Text is a
// vocabulary word to be hidden until the reader reveals it; otherwise Text
// is rendered verbatim.
type Segment struct {
	Text  string
	Blank bool
}

var markerRe = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Segments splits a story body on {{word}} markers, preserving all literal
// text, order and whitespace exactly as returned by the generator.
func Segments(body string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range markerRe.FindAllStringSubmatchIndex(body, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: body[last:m[0]]})
		}
		segments = append(segments, Segment{Text: body[m[2]:m[3]], Blank: true})
		last = m[1]
	}
	if last < len(body) {
		segments = append(segments, Segment{Text: body[last:]})
	}
	return segments
}

// Candidates derives the story word list from the collection: the distinct
// set of words across all saved items, in order of first appearance.
func Candidates(items []collection.SavedItem) []string {
	seen := make(map[string]bool, len(items))
	var words []string
	for _, item := range items {
		if item.Word == "" || seen[item.Word] {
			continue
		}
		seen[item.Word] = true
		words = append(words, item.Word)
	}
	return words
}
