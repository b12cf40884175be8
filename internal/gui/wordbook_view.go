package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/arvoss/wordlens/internal/collection"
	"codeberg.org/arvoss/wordlens/internal/story"
)

// makeWordbookView builds the wordbook tab: the saved-word list with a
// detail pane, and the practice-story area.
func (a *Application) makeWordbookView() fyne.CanvasObject {
	a.savedCountLabel = widget.NewLabel("No saved words yet")
	a.savedCountLabel.TextStyle = fyne.TextStyle{Italic: true}

	a.savedList = widget.NewList(
		func() int {
			return len(a.savedItems)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("word")
			label.Truncation = fyne.TextTruncateEllipsis
			removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			return container.NewBorder(nil, nil, nil, removeBtn, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(a.savedItems) {
				return
			}
			item := a.savedItems[id]
			row := obj.(*fyne.Container)
			for _, child := range row.Objects {
				switch w := child.(type) {
				case *widget.Label:
					w.SetText(item.Word)
				case *widget.Button:
					w.OnTapped = func() {
						a.onRemoveItem(item.ID)
					}
				}
			}
		},
	)
	a.savedList.OnSelected = func(id widget.ListItemID) {
		if id >= len(a.savedItems) {
			return
		}
		a.showItemDetail(a.savedItems[id])
	}

	a.itemDetailView = widget.NewRichTextFromMarkdown("Select a saved word to see its details.")
	a.itemDetailView.Wrapping = fyne.TextWrapWord

	detailScroll := container.NewScroll(a.itemDetailView)
	detailScroll.SetMinSize(fyne.NewSize(0, 140))

	listSection := container.NewBorder(
		a.savedCountLabel,
		detailScroll,
		nil, nil,
		a.savedList,
	)

	a.storyButton = ttwidget.NewButtonWithIcon("Compose story", theme.DocumentCreateIcon(), a.onComposeStory)
	a.storyView = NewStoryView()

	storySection := container.NewBorder(
		container.NewHBox(a.storyButton, layout.NewSpacer()),
		nil, nil, nil,
		a.storyView,
	)

	split := container.NewHSplit(listSection, storySection)
	split.SetOffset(0.4)
	return split
}

// refreshWordbook reloads the saved-item snapshot backing the list widget.
func (a *Application) refreshWordbook() {
	a.savedItems = a.store.Items()

	if len(a.savedItems) == 0 {
		a.savedCountLabel.SetText("No saved words yet")
	} else {
		a.savedCountLabel.SetText(fmt.Sprintf("%d saved words", len(a.savedItems)))
	}
	a.savedList.Refresh()
}

// showItemDetail renders one saved item in the detail pane.
func (a *Application) showItemDetail(item collection.SavedItem) {
	a.itemDetailView.ParseMarkdown(fmt.Sprintf("## %s\n\n%s", item.Word, item.Definition))
}

// onRemoveItem deletes a saved word after confirmation.
func (a *Application) onRemoveItem(id string) {
	dialog.ShowConfirm("Remove word", "Remove this word from the wordbook?", func(confirmed bool) {
		if !confirmed {
			return
		}
		a.store.Remove(id)
		a.refreshWordbook()
		a.updateSaveButton()
		a.updateStatus("Word removed from wordbook")
	}, a.window)
}

// onComposeStory generates a practice story from the saved words. One
// generation at a time; the previous story is cleared before the request is
// issued.
func (a *Application) onComposeStory() {
	a.mu.Lock()
	if a.storyPending {
		a.mu.Unlock()
		return
	}
	a.storyPending = true
	a.mu.Unlock()

	words := story.Candidates(a.store.Items())
	if len(words) == 0 {
		a.mu.Lock()
		a.storyPending = false
		a.mu.Unlock()
		dialog.ShowInformation("No Words", "Save some words first, then compose a story from them.", a.window)
		return
	}

	a.storyView.Clear()
	a.storyButton.Disable()
	a.updateStatus("Composing practice story...")

	explanation := a.explanationLang.Name

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		quiz, err := a.gw.ComposeStory(a.ctx, words, explanation)

		fyne.Do(func() {
			a.mu.Lock()
			a.storyPending = false
			a.mu.Unlock()
			a.storyButton.Enable()

			if err != nil {
				a.showError(fmt.Errorf("story generation failed: %w", err))
				a.updateStatus("Story generation failed")
				return
			}

			a.storyView.SetStory(quiz.Title, story.Segments(quiz.Content))
			a.updateStatus("Story ready. Click the numbers to reveal the words.")
		})
	}()
}
