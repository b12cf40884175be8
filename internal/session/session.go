// Package session holds the state for the word currently under inspection:
// definition, image gallery, per-image feedback, chat transcript and the
// lazily fetched additional meanings. The whole state is discarded at the
// start of every new search, and async results are committed through a
// generation token so a slow response from a superseded search can never
// land in the state of a newer one.
package session

import (
	"github.com/google/uuid"

	"codeberg.org/arvoss/wordlens/internal/gateway"
)

// Feedback is the per-image like/dislike state.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackLike
	FeedbackDislike
)

// ChatMessage is one entry in the per-word chat transcript.
type ChatMessage struct {
	ID   string
	Role string // gateway.RoleUser or gateway.RoleAssistant
	Text string
}

// Token identifies the search generation an in-flight request belongs to.
// Results committed with a stale token are dropped.
type Token struct {
	gen uint64
}

// Session is the per-search state. It is not safe for concurrent use; the
// view controller serializes access under its own lock.
type Session struct {
	word string
	gen  uint64

	definition *gateway.WordDefinition
	images     []string
	active     int
	feedback   map[string]Feedback

	meanings       []gateway.AdditionalMeaning
	meaningsLoaded bool

	chat []ChatMessage
}

// New creates an empty session.
func New() *Session {
	return &Session{feedback: make(map[string]Feedback)}
}

// Begin starts a new search cycle: every piece of prior session state is
// cleared before the caller issues any request, and the returned token must
// accompany every result commit for this cycle.
func (s *Session) Begin(word string) Token {
	s.gen++
	s.word = word
	s.definition = nil
	s.images = nil
	s.active = 0
	s.feedback = make(map[string]Feedback)
	s.meanings = nil
	s.meaningsLoaded = false
	s.chat = nil
	return Token{gen: s.gen}
}

// Current reports whether the token belongs to the active search cycle.
func (s *Session) Current(tok Token) bool {
	return tok.gen == s.gen && s.gen != 0
}

// Word returns the word of the active search cycle.
func (s *Session) Word() string {
	return s.word
}

// SetDefinition commits a definition result. It reports whether the result
// was accepted; stale results are dropped.
func (s *Session) SetDefinition(tok Token, def *gateway.WordDefinition) bool {
	if !s.Current(tok) {
		return false
	}
	s.definition = def
	return true
}

// Definition returns the committed definition, or nil while loading/failed.
func (s *Session) Definition() *gateway.WordDefinition {
	return s.definition
}

// AppendImage commits a generated image to the gallery and advances the
// active index to the new last entry. Stale results are dropped.
func (s *Session) AppendImage(tok Token, ref string) bool {
	if !s.Current(tok) || ref == "" {
		return false
	}
	s.images = append(s.images, ref)
	s.active = len(s.images) - 1
	return true
}

// Images returns the gallery in append order.
func (s *Session) Images() []string {
	out := make([]string, len(s.images))
	copy(out, s.images)
	return out
}

// ActiveIndex returns the index of the displayed gallery entry.
func (s *Session) ActiveIndex() int {
	return s.active
}

// SetActiveIndex moves the gallery selection. Out-of-range values are ignored.
func (s *Session) SetActiveIndex(i int) {
	if i >= 0 && i < len(s.images) {
		s.active = i
	}
}

// ActiveImage returns the currently displayed image reference, or "" when
// the gallery is empty.
func (s *Session) ActiveImage() string {
	if len(s.images) == 0 {
		return ""
	}
	return s.images[s.active]
}

// ToggleFeedback applies like/dislike to an image reference. Selecting the
// value already active clears it; selecting the other value overwrites it.
// The resulting state is returned. Feedback is keyed by image reference, not
// gallery index.
func (s *Session) ToggleFeedback(ref string, value Feedback) Feedback {
	if ref == "" || value == FeedbackNone {
		return s.feedback[ref]
	}
	if s.feedback[ref] == value {
		delete(s.feedback, ref)
		return FeedbackNone
	}
	s.feedback[ref] = value
	return value
}

// FeedbackFor returns the feedback state for an image reference.
func (s *Session) FeedbackFor(ref string) Feedback {
	return s.feedback[ref]
}

// SetMeanings commits the single additional-meanings batch for this cycle.
// Stale results are dropped. A successful commit, even with an empty batch,
// marks the meanings as loaded so they are fetched at most once per word.
func (s *Session) SetMeanings(tok Token, meanings []gateway.AdditionalMeaning) bool {
	if !s.Current(tok) {
		return false
	}
	s.meanings = meanings
	s.meaningsLoaded = true
	return true
}

// Meanings returns the committed batch and whether it has been fetched.
func (s *Session) Meanings() ([]gateway.AdditionalMeaning, bool) {
	return s.meanings, s.meaningsLoaded
}

// AppendUserMessage appends a learner message to the transcript.
func (s *Session) AppendUserMessage(text string) ChatMessage {
	msg := ChatMessage{ID: uuid.NewString(), Role: gateway.RoleUser, Text: text}
	s.chat = append(s.chat, msg)
	return msg
}

// AppendAssistantMessage commits an assistant reply. Replies belonging to a
// superseded search are dropped.
func (s *Session) AppendAssistantMessage(tok Token, text string) (ChatMessage, bool) {
	if !s.Current(tok) {
		return ChatMessage{}, false
	}
	msg := ChatMessage{ID: uuid.NewString(), Role: gateway.RoleAssistant, Text: text}
	s.chat = append(s.chat, msg)
	return msg, true
}

// Chat returns the transcript in order.
func (s *Session) Chat() []ChatMessage {
	out := make([]ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// Turns converts the transcript into gateway chat turns.
func (s *Session) Turns() []gateway.Turn {
	turns := make([]gateway.Turn, len(s.chat))
	for i, msg := range s.chat {
		turns[i] = gateway.Turn{Role: msg.Role, Text: msg.Text}
	}
	return turns
}
