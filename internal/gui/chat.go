package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/arvoss/wordlens/internal/gateway"
)

// onOpenChat opens the per-word chat dialog. The transcript lives in the
// session, so closing and reopening the dialog keeps the conversation until
// the next search.
func (a *Application) onOpenChat() {
	word := a.session.Word()
	if word == "" || a.session.Definition() == nil {
		return
	}

	a.chatView = widget.NewRichText()
	a.chatView.Wrapping = fyne.TextWrapWord
	a.renderChat()

	transcript := container.NewScroll(a.chatView)
	transcript.SetMinSize(fyne.NewSize(520, 320))

	a.chatEntry = widget.NewEntry()
	a.chatEntry.SetPlaceHolder("Ask about this word...")
	a.chatEntry.OnSubmitted = func(string) {
		a.onSendChat()
	}
	sendButton := widget.NewButtonWithIcon("", theme.MailSendIcon(), a.onSendChat)

	content := container.NewBorder(
		nil,
		container.NewBorder(nil, nil, nil, sendButton, a.chatEntry),
		nil, nil,
		transcript,
	)

	d := dialog.NewCustom(fmt.Sprintf("Chat about '%s'", word), "Close", content, a.window)
	d.Resize(fyne.NewSize(580, 440))
	d.Show()
	a.window.Canvas().Focus(a.chatEntry)
}

// onSendChat sends one chat turn. Sends are serialized: the input stays
// disabled until the pending reply lands. A failed turn injects a fallback
// assistant message instead of surfacing an error dialog.
func (a *Application) onSendChat() {
	text := strings.TrimSpace(a.chatEntry.Text)
	if text == "" {
		return
	}

	a.mu.Lock()
	if a.chatPending {
		a.mu.Unlock()
		return
	}
	a.chatPending = true
	a.mu.Unlock()

	// The prior transcript is captured before the new message is appended:
	// the gateway receives it separately as the latest turn.
	prior := a.session.Turns()
	a.session.AppendUserMessage(text)
	a.chatEntry.SetText("")
	a.chatEntry.Disable()
	a.renderChat()

	tok := a.token
	word := a.session.Word()
	explanation := a.explanationLang.Name
	native := a.nativeLang.Name

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		reply, err := a.gw.ChatTurn(a.ctx, prior, text, word, explanation, native)

		fyne.Do(func() {
			a.mu.Lock()
			a.chatPending = false
			a.mu.Unlock()
			a.chatEntry.Enable()

			if err != nil {
				reply = "Sorry, I could not answer that. Please try again."
			}
			if _, ok := a.session.AppendAssistantMessage(tok, reply); !ok {
				return
			}
			a.renderChat()
		})
	}()
}

// renderChat redraws the transcript view from the session.
func (a *Application) renderChat() {
	if a.chatView == nil {
		return
	}

	messages := a.session.Chat()
	if len(messages) == 0 {
		a.chatView.ParseMarkdown(fmt.Sprintf("Ask anything about **%s**.", a.session.Word()))
		return
	}

	var b strings.Builder
	for _, msg := range messages {
		if msg.Role == gateway.RoleUser {
			fmt.Fprintf(&b, "**You:** %s\n\n", msg.Text)
		} else {
			fmt.Fprintf(&b, "**WordLens:** %s\n\n", msg.Text)
		}
	}
	a.chatView.ParseMarkdown(b.String())
}
