package lesson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/player"
)

var sessionStart = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func mcqQuestion(id, correctID string) catalog.Question {
	return catalog.Question{
		ID:     id,
		Kind:   catalog.KindMultipleChoice,
		Prompt: "Prompt " + id,
		Options: []catalog.Option{
			{ID: correctID, Text: "right", Correct: true},
			{ID: id + "-wrong", Text: "wrong"},
		},
		FeedbackWrong: "not quite",
		FeedbackRight: "nice",
	}
}

func theoryQuestion(id string, concepts ...string) catalog.Question {
	return catalog.Question{ID: id, Kind: catalog.KindTheory, TheoryBody: "Body", Concepts: concepts}
}

func pairQuestion(id string) catalog.Question {
	return catalog.Question{
		ID:     id,
		Kind:   catalog.KindPairMatch,
		Prompt: "Match the pairs",
		Pairs: []catalog.PairItem{
			{ID: "l1", Text: "for", PairID: "r1"},
			{ID: "r1", Text: "loop", PairID: "l1"},
			{ID: "l2", Text: "if", PairID: "r2"},
			{ID: "r2", Text: "branch", PairID: "l2"},
		},
	}
}

func newTestSession(questions ...catalog.Question) *Session {
	return NewSession(catalog.Level{ID: 101, Title: "Loops", Questions: questions, Teaches: []string{"loops"}}, sessionStart)
}

func TestSessionOpensOnTheory(t *testing.T) {
	sess := newTestSession(theoryQuestion("t1", "loops"), mcqQuestion("q1", "a"))
	p := player.NewProfile()

	assert.Equal(t, StateAwaitingTheory, sess.State)

	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.ErrorIs(t, err, ErrAwaitingTheory)

	assert.NoError(t, sess.AdvanceTheory())
	assert.Equal(t, StateAwaitingAnswer, sess.State)
	assert.Equal(t, 1, sess.Index)
}

func TestSessionAdvanceTheoryOutsideTheory(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))

	assert.ErrorIs(t, sess.AdvanceTheory(), ErrNotTheory)
}

func TestSessionSkipsRepeatedTheory(t *testing.T) {
	sess := newTestSession(
		theoryQuestion("t1", "loops"),
		mcqQuestion("q1", "a"),
		theoryQuestion("t2", "loops"),
		mcqQuestion("q2", "b"),
	)
	p := player.NewProfile()

	assert.NoError(t, sess.AdvanceTheory())
	out, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.NoError(t, err)
	assert.True(t, out.Correct)

	// The second theory card teaches nothing new, so it never shows.
	assert.Equal(t, 3, sess.Index)
	assert.Equal(t, StateAwaitingAnswer, sess.State)
}

func TestSessionUntaggedTheoryAlwaysShows(t *testing.T) {
	sess := newTestSession(
		theoryQuestion("t1"),
		mcqQuestion("q1", "a"),
		theoryQuestion("t2"),
	)
	p := player.NewProfile()

	assert.NoError(t, sess.AdvanceTheory())
	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.NoError(t, err)

	assert.Equal(t, StateAwaitingTheory, sess.State, "a card without concept tags shows once regardless")
}

func TestSessionCorrectAnswerAdvancesAndExtendsCombo(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"), mcqQuestion("q2", "b"))
	p := player.NewProfile()

	out, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})

	assert.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, "nice", out.Feedback)
	assert.False(t, out.Done)
	assert.Equal(t, 1, sess.Index)
	assert.Equal(t, 1, sess.Combo)
	assert.Equal(t, 1, sess.CorrectCount)
	assert.Equal(t, player.DefaultMaxHearts, p.Hearts)
}

func TestSessionWrongAnswerKeepsQuestionUp(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"), mcqQuestion("q2", "b"))
	p := player.NewProfile()

	// Build up a combo first so the reset is observable.
	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.NoError(t, err)
	assert.Equal(t, 1, sess.Combo)

	out, err := sess.Submit(p, sessionStart, Answer{OptionID: "q2-wrong"})

	assert.NoError(t, err)
	assert.False(t, out.Correct)
	assert.True(t, out.Retry)
	assert.Equal(t, "not quite", out.Feedback)
	assert.Equal(t, 1, sess.Index, "the same question stays up for retry")
	assert.Equal(t, 0, sess.Combo)
	assert.Equal(t, 1, sess.MaxCombo)
	assert.Equal(t, 1, sess.MistakeCount)
	assert.Equal(t, player.DefaultMaxHearts-1, p.Hearts)

	// Retry succeeds: the question still counts as answered correctly.
	out, err = sess.Submit(p, sessionStart, Answer{OptionID: "b"})
	assert.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, 2, sess.CorrectCount)
}

func TestSessionRefusesSubmitAtZeroHearts(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))
	p := player.NewProfile()
	p.Hearts = 1

	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "q1-wrong"})
	assert.NoError(t, err)
	assert.Zero(t, p.Hearts)

	_, err = sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.ErrorIs(t, err, player.ErrOutOfHearts)
	assert.Equal(t, 0, sess.Index, "a blocked submission grades nothing")
}

func TestSessionCompletesOnLastAnswer(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))
	p := player.NewProfile()

	out, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})

	assert.NoError(t, err)
	assert.True(t, out.Done)
	assert.Equal(t, StateComplete, sess.State)

	_, err = sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSessionSkipCountsAsCorrect(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"), mcqQuestion("q2", "b"))
	p := player.NewProfile()

	out, err := sess.Skip(p)

	assert.NoError(t, err)
	assert.True(t, out.Correct)
	assert.True(t, out.Skipped)
	assert.Equal(t, 1, sess.Index)
	assert.Equal(t, 1, sess.Combo, "a skip extends the combo")
	assert.Equal(t, 1, sess.CorrectCount)
	assert.Zero(t, p.SkipTokens)
}

func TestSessionSkipWithoutTokens(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))
	p := player.NewProfile()
	p.SkipTokens = 0

	_, err := sess.Skip(p)

	assert.ErrorIs(t, err, player.ErrNoSkipTokens)
	assert.Equal(t, 0, sess.Index)
}

func TestSessionSkipOnTheoryIsNoOp(t *testing.T) {
	sess := newTestSession(theoryQuestion("t1", "loops"), mcqQuestion("q1", "a"))
	p := player.NewProfile()

	out, err := sess.Skip(p)

	assert.NoError(t, err)
	assert.False(t, out.Correct)
	assert.False(t, out.Skipped)
	assert.Equal(t, 1, p.SkipTokens, "nothing is spent on a theory card")
	assert.Equal(t, 0, sess.Index)
}

func TestSessionPairMatchFlow(t *testing.T) {
	sess := newTestSession(pairQuestion("p1"), mcqQuestion("q1", "a"))
	p := player.NewProfile()

	// Regular submissions are redirected.
	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "l1"})
	assert.ErrorIs(t, err, ErrPairSubmission)

	// A mismatch is a full wrong answer, but the question stays up.
	out, err := sess.SubmitPair(p, sessionStart, "l1", "r2")
	assert.NoError(t, err)
	assert.False(t, out.Matched)
	assert.Equal(t, 1, sess.MistakeCount)
	assert.Equal(t, player.DefaultMaxHearts-1, p.Hearts)
	assert.Equal(t, 0, sess.Index)

	out, err = sess.SubmitPair(p, sessionStart, "l1", "r1")
	assert.NoError(t, err)
	assert.True(t, out.Matched)
	assert.False(t, out.AllMatched)

	out, err = sess.SubmitPair(p, sessionStart, "l2", "r2")
	assert.NoError(t, err)
	assert.True(t, out.AllMatched)
	assert.Equal(t, 1, sess.Index, "the question completes once every pair is matched")
	assert.Equal(t, 1, sess.CorrectCount, "a completed board counts as one correct answer")
}

func TestSessionPairMatchRejectsReusedItems(t *testing.T) {
	sess := newTestSession(pairQuestion("p1"))
	p := player.NewProfile()

	_, err := sess.SubmitPair(p, sessionStart, "l1", "r1")
	assert.NoError(t, err)

	out, err := sess.SubmitPair(p, sessionStart, "l1", "r1")
	assert.NoError(t, err)
	assert.False(t, out.Matched, "an already-matched item cannot match again")

	out, err = sess.SubmitPair(p, sessionStart, "l2", "l2")
	assert.NoError(t, err)
	assert.False(t, out.Matched, "an item never matches itself")

	out, err = sess.SubmitPair(p, sessionStart, "l2", "ghost")
	assert.NoError(t, err)
	assert.False(t, out.Matched, "unknown ids never match")
}

func TestSessionSubmitPairOnOtherKind(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))
	p := player.NewProfile()

	_, err := sess.SubmitPair(p, sessionStart, "l1", "r1")

	assert.ErrorIs(t, err, ErrNotPairMatch)
}

func TestSessionQuit(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"), mcqQuestion("q2", "b"))
	p := player.NewProfile()

	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "q1-wrong"})
	assert.NoError(t, err)

	sess.Quit()

	assert.Equal(t, StateAbandoned, sess.State)
	assert.Equal(t, player.DefaultMaxHearts-1, p.Hearts, "spent hearts stay spent")

	_, err = sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSessionQuitAfterCompleteKeepsComplete(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"))
	p := player.NewProfile()

	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.NoError(t, err)

	sess.Quit()

	assert.Equal(t, StateComplete, sess.State)
}

func TestSessionEndingOnTheory(t *testing.T) {
	sess := newTestSession(mcqQuestion("q1", "a"), theoryQuestion("t1", "closures"))
	p := player.NewProfile()

	_, err := sess.Submit(p, sessionStart, Answer{OptionID: "a"})
	assert.NoError(t, err)
	assert.Equal(t, StateAwaitingTheory, sess.State)

	assert.NoError(t, sess.AdvanceTheory())
	assert.Equal(t, StateComplete, sess.State)
}
