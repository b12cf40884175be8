package gui

import (
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/arvoss/wordlens/internal/gateway"
	"codeberg.org/arvoss/wordlens/internal/language"
	"codeberg.org/arvoss/wordlens/internal/session"
)

// makeSearchView builds the search tab: word input, language selectors,
// definition pane and the image gallery with its action toolbar.
func (a *Application) makeSearchView() fyne.CanvasObject {
	a.searchInput = widget.NewEntry()
	a.searchInput.SetPlaceHolder("Word to explore...")
	a.searchInput.OnSubmitted = func(string) {
		a.onSearch()
		a.window.Canvas().Unfocus()
	}

	a.searchButton = ttwidget.NewButton("", a.onSearch)
	a.searchButton.Icon = theme.SearchIcon()

	a.explanationSelect = widget.NewSelect(language.Names(), func(name string) {
		if l, ok := language.ByName(name); ok {
			a.explanationLang = l
		}
	})
	a.explanationSelect.SetSelected(a.explanationLang.Name)

	a.nativeSelect = widget.NewSelect(language.Names(), func(name string) {
		if l, ok := language.ByName(name); ok {
			a.nativeLang = l
		}
	})
	a.nativeSelect.SetSelected(a.nativeLang.Name)

	langRow := container.New(layout.NewGridLayout(2),
		container.NewBorder(nil, nil, widget.NewLabel("Explain in:"), nil, a.explanationSelect),
		container.NewBorder(nil, nil, widget.NewLabel("Native:"), nil, a.nativeSelect),
	)

	inputSection := container.NewBorder(nil, nil, nil, a.searchButton, a.searchInput)

	a.definitionView = widget.NewRichTextFromMarkdown("Search a word to see its definition.")
	a.definitionView.Wrapping = fyne.TextWrapWord

	a.meaningsView = widget.NewRichText()
	a.meaningsView.Wrapping = fyne.TextWrapWord

	meaningsScroll := container.NewScroll(a.meaningsView)
	meaningsScroll.SetMinSize(fyne.NewSize(0, 120))

	textSection := container.NewVSplit(
		container.NewScroll(a.definitionView),
		meaningsScroll,
	)
	textSection.SetOffset(0.7)

	a.imageDisplay = NewImageDisplay()
	a.galleryLabel = widget.NewLabel("0/0")

	a.prevImageBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.onPrevImage)
	a.nextImageBtn = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.onNextImage)
	a.variationBtn = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onVariation)
	a.likeBtn = ttwidget.NewButtonWithIcon("", theme.MoveUpIcon(), a.onLike)
	a.dislikeBtn = ttwidget.NewButtonWithIcon("", theme.MoveDownIcon(), a.onDislike)
	a.saveBtn = ttwidget.NewButtonWithIcon("", theme.ContentAddIcon(), a.onSave)
	a.speakBtn = ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), a.onSpeak)
	a.meaningsBtn = ttwidget.NewButtonWithIcon("", theme.VisibilityIcon(), a.onRevealMeanings)
	a.chatBtn = ttwidget.NewButtonWithIcon("", theme.MailComposeIcon(), a.onOpenChat)

	toolbar := container.NewHBox(
		a.prevImageBtn,
		a.galleryLabel,
		a.nextImageBtn,
		widget.NewSeparator(),
		a.variationBtn,
		a.likeBtn,
		a.dislikeBtn,
		widget.NewSeparator(),
		a.saveBtn,
		a.speakBtn,
		widget.NewSeparator(),
		a.meaningsBtn,
		a.chatBtn,
	)

	imageSection := container.NewBorder(nil, toolbar, nil, nil, a.imageDisplay)

	split := container.NewHSplit(textSection, imageSection)
	split.SetOffset(0.5)

	a.setSearchActionsEnabled(false)
	a.updateGalleryControls()

	return container.NewBorder(
		container.NewVBox(inputSection, langRow, widget.NewSeparator()),
		nil, nil, nil,
		split,
	)
}

// setSearchActionsEnabled toggles the buttons that only make sense once a
// definition has been committed.
func (a *Application) setSearchActionsEnabled(enabled bool) {
	if enabled {
		a.variationBtn.Enable()
		a.saveBtn.Enable()
		a.speakBtn.Enable()
		a.meaningsBtn.Enable()
		a.chatBtn.Enable()
	} else {
		a.variationBtn.Disable()
		a.saveBtn.Disable()
		a.speakBtn.Disable()
		a.meaningsBtn.Disable()
		a.chatBtn.Disable()
	}
}

// onSearch starts a new search cycle. All prior per-word state is discarded
// synchronously before the definition and first image are requested
// concurrently.
func (a *Application) onSearch() {
	word := strings.TrimSpace(a.searchInput.Text)
	if word == "" {
		return
	}

	a.token = a.session.Begin(word)
	tok := a.token

	a.mu.Lock()
	a.definitionLoading = true
	a.imageLoading = true
	a.mu.Unlock()

	a.definitionView.ParseMarkdown(fmt.Sprintf("Looking up **%s**...", word))
	a.meaningsView.ParseMarkdown("")
	a.imageDisplay.SetGenerating()
	a.setSearchActionsEnabled(false)
	a.updateGalleryControls()
	a.updateStatus(fmt.Sprintf("Searching '%s'...", word))

	a.wg.Add(2)
	go a.fetchDefinition(tok, word)
	go a.fetchImage(tok, word, "")
}

// fetchDefinition requests the structured definition and commits it through
// the session token. A failed or absent definition means the search failed.
func (a *Application) fetchDefinition(tok session.Token, word string) {
	defer a.wg.Done()

	def, err := a.gw.Define(a.ctx, word, a.explanationLang.Name, a.nativeLang.Name)

	fyne.Do(func() {
		a.mu.Lock()
		a.definitionLoading = false
		a.mu.Unlock()

		if !a.session.Current(tok) {
			return
		}
		if err != nil {
			a.definitionView.ParseMarkdown("")
			a.showError(fmt.Errorf("definition lookup failed: %w", err))
			a.updateStatus(fmt.Sprintf("Search for '%s' failed", word))
			return
		}

		a.session.SetDefinition(tok, def)
		a.renderDefinition(def)
		a.setSearchActionsEnabled(true)
		a.updateSaveButton()
		a.updateStatus(fmt.Sprintf("Definition ready for '%s'", word))
	})
}

// fetchImage requests one illustrative image. Image generation is
// best-effort: a missing image leaves the gallery untouched.
func (a *Application) fetchImage(tok session.Token, word, styleContext string) {
	defer a.wg.Done()

	ref := a.gw.GenerateImage(a.ctx, word, styleContext)

	fyne.Do(func() {
		a.mu.Lock()
		a.imageLoading = false
		a.mu.Unlock()

		if !a.session.AppendImage(tok, ref) {
			if a.session.Current(tok) && len(a.session.Images()) == 0 {
				a.imageDisplay.Clear()
			}
			return
		}
		a.updateGallery()
	})
}

// renderDefinition fills the definition pane from the committed definition.
func (a *Application) renderDefinition(def *gateway.WordDefinition) {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", def.Word)
	if def.Phonetic != "" {
		fmt.Fprintf(&b, "*%s*", def.Phonetic)
	}
	if def.PartOfSpeech != "" {
		if def.Phonetic != "" {
			b.WriteString(" · ")
		}
		b.WriteString(def.PartOfSpeech)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s\n\n", def.Definition)
	if def.NativeDefinition != "" && a.nativeLang.Code != a.explanationLang.Code {
		fmt.Fprintf(&b, "**%s:** %s\n\n", a.nativeLang.NativeName, def.NativeDefinition)
	}
	if len(def.Examples) > 0 {
		b.WriteString("**Examples**\n\n")
		for _, example := range def.Examples {
			fmt.Fprintf(&b, "- %s\n", example)
		}
		b.WriteString("\n")
	}
	if len(def.Synonyms) > 0 {
		fmt.Fprintf(&b, "**Synonyms:** %s\n\n", strings.Join(def.Synonyms, ", "))
	}
	if def.Etymology != "" {
		fmt.Fprintf(&b, "**Etymology:** %s\n\n", def.Etymology)
	}
	if len(def.VibeTags) > 0 {
		fmt.Fprintf(&b, "*%s*\n", strings.Join(def.VibeTags, " · "))
	}

	a.definitionView.ParseMarkdown(b.String())
}

// updateGallery refreshes the displayed image and all gallery-derived
// controls.
func (a *Application) updateGallery() {
	ref := a.session.ActiveImage()
	if ref == "" {
		a.imageDisplay.Clear()
	} else {
		a.imageDisplay.SetReference(ref)
	}
	a.updateGalleryControls()
	a.updateFeedbackButtons()
	a.updateSaveButton()
}

// updateGalleryControls sets the position label and navigation button state.
func (a *Application) updateGalleryControls() {
	images := a.session.Images()
	if len(images) == 0 {
		a.galleryLabel.SetText("0/0")
		a.prevImageBtn.Disable()
		a.nextImageBtn.Disable()
		a.likeBtn.Disable()
		a.dislikeBtn.Disable()
		return
	}

	active := a.session.ActiveIndex()
	a.galleryLabel.SetText(fmt.Sprintf("%d/%d", active+1, len(images)))

	if active > 0 {
		a.prevImageBtn.Enable()
	} else {
		a.prevImageBtn.Disable()
	}
	if active < len(images)-1 {
		a.nextImageBtn.Enable()
	} else {
		a.nextImageBtn.Disable()
	}
	a.likeBtn.Enable()
	a.dislikeBtn.Enable()
}

// updateFeedbackButtons highlights the feedback state of the active image.
func (a *Application) updateFeedbackButtons() {
	fb := a.session.FeedbackFor(a.session.ActiveImage())

	a.likeBtn.Importance = widget.MediumImportance
	a.dislikeBtn.Importance = widget.MediumImportance
	switch fb {
	case session.FeedbackLike:
		a.likeBtn.Importance = widget.HighImportance
	case session.FeedbackDislike:
		a.dislikeBtn.Importance = widget.HighImportance
	}
	a.likeBtn.Refresh()
	a.dislikeBtn.Refresh()
}

// updateSaveButton disables the save button when the exact (word, image)
// pair is already in the wordbook.
func (a *Application) updateSaveButton() {
	if a.session.Definition() == nil {
		a.saveBtn.Disable()
		return
	}
	if a.store.Contains(a.session.Word(), a.session.ActiveImage()) {
		a.saveBtn.Disable()
		return
	}
	a.saveBtn.Enable()
}

func (a *Application) onPrevImage() {
	a.session.SetActiveIndex(a.session.ActiveIndex() - 1)
	a.updateGallery()
}

func (a *Application) onNextImage() {
	a.session.SetActiveIndex(a.session.ActiveIndex() + 1)
	a.updateGallery()
}

// onVariation requests another image for the current word, steering the
// style with the definition's vibe tags. One variation at a time.
func (a *Application) onVariation() {
	a.mu.Lock()
	if a.imageLoading {
		a.mu.Unlock()
		return
	}
	a.imageLoading = true
	a.mu.Unlock()

	styleContext := ""
	if def := a.session.Definition(); def != nil {
		styleContext = strings.Join(def.VibeTags, ", ")
	}

	a.updateStatus("Generating image variation...")
	a.wg.Add(1)
	go a.fetchImage(a.token, a.session.Word(), styleContext)
}

func (a *Application) onLike() {
	a.session.ToggleFeedback(a.session.ActiveImage(), session.FeedbackLike)
	a.updateFeedbackButtons()
}

func (a *Application) onDislike() {
	a.session.ToggleFeedback(a.session.ActiveImage(), session.FeedbackDislike)
	a.updateFeedbackButtons()
}

// onSave bookmarks the current word with its active image and definition
// snippet. Saving the same pair twice is a no-op.
func (a *Application) onSave() {
	def := a.session.Definition()
	if def == nil {
		return
	}

	item := a.store.Save(a.session.Word(), a.session.ActiveImage(), def.Definition)
	a.refreshWordbook()
	a.updateSaveButton()
	a.updateStatus(fmt.Sprintf("Saved '%s' to wordbook", item.Word))
}

// onRevealMeanings shows the additional-meanings batch, fetching it at most
// once per search cycle.
func (a *Application) onRevealMeanings() {
	if meanings, loaded := a.session.Meanings(); loaded {
		a.renderMeanings(meanings)
		return
	}

	a.mu.Lock()
	if a.meaningsLoading {
		a.mu.Unlock()
		return
	}
	a.meaningsLoading = true
	a.mu.Unlock()

	tok := a.token
	word := a.session.Word()
	a.meaningsView.ParseMarkdown("Looking for hidden meanings...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		meanings, err := a.gw.ExtraMeanings(a.ctx, word, a.explanationLang.Name)
		if err != nil {
			// Meanings degrade silently to an empty batch.
			fmt.Fprintf(os.Stderr, "Warning: hidden meanings for '%s' failed: %v\n", word, err)
			meanings = nil
		}

		fyne.Do(func() {
			a.mu.Lock()
			a.meaningsLoading = false
			a.mu.Unlock()

			if !a.session.SetMeanings(tok, meanings) {
				return
			}
			a.renderMeanings(meanings)
		})
	}()
}

func (a *Application) renderMeanings(meanings []gateway.AdditionalMeaning) {
	if len(meanings) == 0 {
		a.meaningsView.ParseMarkdown("No hidden meanings found.")
		return
	}

	var b strings.Builder
	b.WriteString("**Hidden meanings**\n\n")
	for _, m := range meanings {
		fmt.Fprintf(&b, "- **%s:** %s\n", m.Context, m.Definition)
	}
	a.meaningsView.ParseMarkdown(b.String())
}

// onSpeak synthesizes pronunciation audio and plays it immediately. Missing
// audio is a silent no-op.
func (a *Application) onSpeak() {
	a.mu.Lock()
	if a.speaking {
		a.mu.Unlock()
		return
	}
	a.speaking = true
	a.mu.Unlock()

	word := a.session.Word()
	a.speakBtn.Disable()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		raw, err := a.synth.Synthesize(a.ctx, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: speech synthesis for '%s' failed: %v\n", word, err)
		}

		fyne.Do(func() {
			a.mu.Lock()
			a.speaking = false
			a.mu.Unlock()
			a.speakBtn.Enable()

			if len(raw) == 0 {
				return
			}
			if err := a.player.PlayPCM(raw); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: audio playback failed: %v\n", err)
			}
		})
	}()
}
