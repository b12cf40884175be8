package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/arvoss/wordlens/internal/story"
)

// StoryView displays a fill-in-the-blank story. Blanks render as numbered
// gaps in the text; the matching numbered buttons below reveal them one at a
// time. Revealing is one-way: there is no way to hide a word again.
type StoryView struct {
	widget.BaseWidget

	container  *fyne.Container
	titleLabel *widget.Label
	body       *widget.RichText
	buttonRow  *fyne.Container

	segments []story.Segment
	revealed []bool
}

// NewStoryView creates an empty story view
func NewStoryView() *StoryView {
	v := &StoryView{}

	v.titleLabel = widget.NewLabel("")
	v.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	v.body = widget.NewRichText()
	v.body.Wrapping = fyne.TextWrapWord

	v.buttonRow = container.NewHBox()

	v.container = container.NewBorder(
		v.titleLabel,
		v.buttonRow,
		nil, nil,
		container.NewScroll(v.body),
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *StoryView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// SetStory replaces the displayed story. All blanks start hidden.
func (v *StoryView) SetStory(title string, segments []story.Segment) {
	v.segments = segments
	v.revealed = make([]bool, len(segments))

	v.titleLabel.SetText(title)
	v.buttonRow.Objects = nil

	blank := 0
	for i, seg := range segments {
		if !seg.Blank {
			continue
		}
		blank++
		index := i
		number := blank
		var btn *widget.Button
		btn = widget.NewButton(fmt.Sprintf("%d", number), func() {
			v.reveal(index)
			btn.Disable()
		})
		v.buttonRow.Add(btn)
	}
	v.buttonRow.Refresh()
	v.renderBody()
}

// Clear empties the view.
func (v *StoryView) Clear() {
	v.segments = nil
	v.revealed = nil
	v.titleLabel.SetText("")
	v.buttonRow.Objects = nil
	v.buttonRow.Refresh()
	v.body.ParseMarkdown("")
}

// reveal uncovers one blank. Revealed blanks stay revealed.
func (v *StoryView) reveal(index int) {
	if index < 0 || index >= len(v.revealed) || v.revealed[index] {
		return
	}
	v.revealed[index] = true
	v.renderBody()
}

// renderBody redraws the story text with hidden blanks shown as numbered
// gaps and revealed blanks shown in bold.
func (v *StoryView) renderBody() {
	var b strings.Builder
	blank := 0
	for i, seg := range v.segments {
		if !seg.Blank {
			b.WriteString(seg.Text)
			continue
		}
		blank++
		if v.revealed[i] {
			fmt.Fprintf(&b, "**%s**", seg.Text)
		} else {
			fmt.Fprintf(&b, "`[%d]____`", blank)
		}
	}
	v.body.ParseMarkdown(b.String())
}
