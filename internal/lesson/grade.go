package lesson

import (
	"strings"

	"github.com/codelingo/backend/internal/catalog"
)

// Answer is one submission against the current question. Exactly one of the
// fields is meaningful depending on the question kind.
type Answer struct {
	OptionID string   `json:"option_id,omitempty"`
	Text     string   `json:"text,omitempty"`
	Segments []string `json:"segments,omitempty"`
}

// Grade validates an answer for every kind except pair-match (which is
// interactive, see Session.SubmitPair) and theory (non-gradable).
func Grade(q catalog.Question, ans Answer) bool {
	switch q.Kind {
	case catalog.KindMultipleChoice, catalog.KindTranslation, catalog.KindCodeBuilder, catalog.KindListening:
		correct, ok := q.CorrectOptionID()
		return ok && ans.OptionID == correct
	case catalog.KindFillInBlank:
		given := strings.TrimSpace(ans.Text)
		want := strings.TrimSpace(q.CorrectAnswer)
		return want != "" && strings.EqualFold(given, want)
	case catalog.KindDragAndDrop:
		// Order-sensitive: the assembled concatenation must equal the
		// canonical segments joined in order. Including a distractor or
		// reordering breaks the equality.
		return strings.Join(ans.Segments, "") == strings.Join(q.Segments, "")
	case catalog.KindSpeaking:
		// Completing the recording interaction always passes. Preserved as
		// designed: speaking questions cannot be failed.
		return true
	}
	return false
}
