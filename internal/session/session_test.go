package session

import (
	"testing"

	"codeberg.org/arvoss/wordlens/internal/gateway"
)

func testDefinition(word string) *gateway.WordDefinition {
	return &gateway.WordDefinition{
		Word:             word,
		Phonetic:         "/x/",
		PartOfSpeech:     "noun",
		Definition:       "a thing",
		NativeDefinition: "ein Ding",
		Examples:         []string{"example"},
		Etymology:        "unknown",
	}
}

func TestBeginClearsAllState(t *testing.T) {
	s := New()
	tok := s.Begin("gato")

	s.SetDefinition(tok, testDefinition("gato"))
	s.AppendImage(tok, "img-1")
	s.ToggleFeedback("img-1", FeedbackLike)
	s.SetMeanings(tok, []gateway.AdditionalMeaning{{Context: "slang", Definition: "x"}})
	s.AppendUserMessage("what about plurals?")
	s.AppendAssistantMessage(tok, "gatos")

	s.Begin("perro")

	if s.Definition() != nil {
		t.Error("definition not cleared by Begin")
	}
	if len(s.Images()) != 0 {
		t.Error("gallery not cleared by Begin")
	}
	if s.FeedbackFor("img-1") != FeedbackNone {
		t.Error("feedback not cleared by Begin")
	}
	if _, loaded := s.Meanings(); loaded {
		t.Error("meanings not cleared by Begin")
	}
	if len(s.Chat()) != 0 {
		t.Error("chat transcript not cleared by Begin")
	}
	if s.Word() != "perro" {
		t.Errorf("word = %q, want perro", s.Word())
	}
}

func TestStaleResultsAreDropped(t *testing.T) {
	s := New()
	old := s.Begin("gato")
	s.Begin("perro")

	if s.SetDefinition(old, testDefinition("gato")) {
		t.Error("stale definition commit accepted")
	}
	if s.Definition() != nil {
		t.Error("stale definition landed in newer session")
	}
	if s.AppendImage(old, "img-old") {
		t.Error("stale image commit accepted")
	}
	if s.SetMeanings(old, nil) {
		t.Error("stale meanings commit accepted")
	}
	if _, ok := s.AppendAssistantMessage(old, "late reply"); ok {
		t.Error("stale chat reply accepted")
	}
}

func TestZeroTokenNeverCurrent(t *testing.T) {
	s := New()
	if s.Current(Token{}) {
		t.Error("zero token should never be current")
	}
}

func TestGalleryAppendAdvancesActiveIndex(t *testing.T) {
	s := New()
	tok := s.Begin("gato")

	s.AppendImage(tok, "img-1")
	s.AppendImage(tok, "img-2")
	s.AppendImage(tok, "img-3")

	if got := len(s.Images()); got != 3 {
		t.Fatalf("gallery size = %d, want 3", got)
	}
	if s.ActiveIndex() != 2 {
		t.Errorf("active index = %d, want 2", s.ActiveIndex())
	}
	if s.ActiveImage() != "img-3" {
		t.Errorf("active image = %q, want img-3", s.ActiveImage())
	}
}

func TestEmptyImageRefRejected(t *testing.T) {
	s := New()
	tok := s.Begin("gato")
	if s.AppendImage(tok, "") {
		t.Error("empty image ref accepted")
	}
	if len(s.Images()) != 0 {
		t.Error("gallery grew on empty ref")
	}
}

func TestSetActiveIndexBounds(t *testing.T) {
	s := New()
	tok := s.Begin("gato")
	s.AppendImage(tok, "img-1")
	s.AppendImage(tok, "img-2")

	s.SetActiveIndex(0)
	if s.ActiveImage() != "img-1" {
		t.Errorf("active image = %q, want img-1", s.ActiveImage())
	}

	s.SetActiveIndex(5)
	if s.ActiveIndex() != 0 {
		t.Error("out-of-range index changed selection")
	}
	s.SetActiveIndex(-1)
	if s.ActiveIndex() != 0 {
		t.Error("negative index changed selection")
	}
}

func TestFeedbackToggle(t *testing.T) {
	s := New()
	s.Begin("gato")

	if got := s.ToggleFeedback("img-1", FeedbackLike); got != FeedbackLike {
		t.Errorf("first like = %v, want FeedbackLike", got)
	}
	if got := s.ToggleFeedback("img-1", FeedbackLike); got != FeedbackNone {
		t.Errorf("second like = %v, want FeedbackNone", got)
	}

	s.ToggleFeedback("img-1", FeedbackLike)
	if got := s.ToggleFeedback("img-1", FeedbackDislike); got != FeedbackDislike {
		t.Errorf("opposite value = %v, want FeedbackDislike", got)
	}
	if s.FeedbackFor("img-1") != FeedbackDislike {
		t.Error("dislike did not replace like")
	}
}

func TestFeedbackKeyedByReference(t *testing.T) {
	s := New()
	tok := s.Begin("gato")
	s.AppendImage(tok, "img-1")
	s.AppendImage(tok, "img-2")

	s.ToggleFeedback("img-1", FeedbackLike)
	if s.FeedbackFor("img-2") != FeedbackNone {
		t.Error("feedback leaked to another image")
	}
}

func TestMeaningsLoadedOnce(t *testing.T) {
	s := New()
	tok := s.Begin("gato")

	if _, loaded := s.Meanings(); loaded {
		t.Fatal("meanings marked loaded before fetch")
	}
	s.SetMeanings(tok, nil)
	if _, loaded := s.Meanings(); !loaded {
		t.Error("empty batch should still mark meanings as loaded")
	}
}

func TestChatTranscript(t *testing.T) {
	s := New()
	tok := s.Begin("gato")

	s.AppendUserMessage("is it feminine?")
	msg, ok := s.AppendAssistantMessage(tok, "no, gato is masculine")
	if !ok {
		t.Fatal("assistant message rejected for current token")
	}
	if msg.ID == "" {
		t.Error("assistant message has no identifier")
	}

	chat := s.Chat()
	if len(chat) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(chat))
	}
	if chat[0].Role != gateway.RoleUser || chat[1].Role != gateway.RoleAssistant {
		t.Error("transcript roles out of order")
	}

	turns := s.Turns()
	if len(turns) != 2 || turns[1].Text != "no, gato is masculine" {
		t.Error("Turns() does not mirror transcript")
	}
}
