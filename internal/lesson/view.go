package lesson

import (
	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/player"
	ws "github.com/codelingo/backend/pkg/http/ws"
)

// QuestionView projects a question for the client, stripping answer keys.
// Drag-and-drop distractors are mixed into the segment pool so the client
// cannot tell canonical segments apart.
func QuestionView(q catalog.Question, rng catalog.Rand) *ws.QuestionView {
	view := &ws.QuestionView{
		ID:         q.ID,
		Kind:       q.Kind,
		Prompt:     q.Prompt,
		TheoryBody: q.TheoryBody,
	}

	for _, opt := range q.Options {
		view.Options = append(view.Options, ws.OptionView{ID: opt.ID, Text: opt.Text})
	}
	for _, item := range q.Pairs {
		view.Pairs = append(view.Pairs, ws.PairView{ID: item.ID, Text: item.Text})
	}

	if q.Kind == catalog.KindDragAndDrop {
		pool := make([]string, 0, len(q.Segments)+len(q.Distractors))
		pool = append(pool, q.Segments...)
		pool = append(pool, q.Distractors...)
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		view.Segments = pool
	}

	return view
}

// SessionView builds the full client-facing session snapshot.
func SessionView(sess *Session, p *player.Profile, rng catalog.Rand) ws.SessionStatePayload {
	payload := ws.SessionStatePayload{
		LevelID:   sess.LevelID,
		Title:     sess.Title,
		Synthetic: sess.Synthetic,
		State:     sess.State,
		Index:     sess.Index,
		Total:     len(sess.Questions),
		Combo:     sess.Combo,
		Hearts:    p.Hearts,
	}
	if q, ok := sess.Current(); ok {
		payload.Question = QuestionView(q, rng)
	}
	return payload
}
