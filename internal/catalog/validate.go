package catalog

// Valid reports whether a question carries enough payload to be gradable.
// Theory questions are never graded, so they only need prompt content.
// Invalid questions must be filtered out before being offered to a session.
func (q Question) Valid() bool {
	if q.Prompt == "" && q.Kind != KindTheory {
		return false
	}
	switch q.Kind {
	case KindTheory:
		return q.TheoryBody != "" || q.Prompt != ""
	case KindMultipleChoice, KindTranslation, KindCodeBuilder, KindListening:
		if len(q.Options) == 0 {
			return false
		}
		_, ok := q.CorrectOptionID()
		return ok
	case KindFillInBlank:
		return q.CorrectAnswer != ""
	case KindDragAndDrop:
		return len(q.Segments) > 0
	case KindPairMatch:
		return len(q.Pairs) >= 2 && len(q.Pairs)%2 == 0
	case KindSpeaking:
		// Speaking is auto-correct after the recording interaction; the
		// prompt is all it needs.
		return true
	}
	return false
}

// FilterValid returns the gradable subset of questions, preserving order.
func FilterValid(questions []Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}
