package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{
			name: "theory with body",
			q:    Question{ID: "t1", Kind: KindTheory, TheoryBody: "Loops repeat work."},
			want: true,
		},
		{
			name: "theory with neither prompt nor body",
			q:    Question{ID: "t2", Kind: KindTheory},
			want: false,
		},
		{
			name: "multiple choice with a correct option",
			q: Question{ID: "m1", Kind: KindMultipleChoice, Prompt: "Pick one", Options: []Option{
				{ID: "a", Text: "yes", Correct: true},
				{ID: "b", Text: "no"},
			}},
			want: true,
		},
		{
			name: "multiple choice with no correct option",
			q: Question{ID: "m2", Kind: KindMultipleChoice, Prompt: "Pick one", Options: []Option{
				{ID: "a", Text: "yes"},
				{ID: "b", Text: "no"},
			}},
			want: false,
		},
		{
			name: "multiple choice with no options",
			q:    Question{ID: "m3", Kind: KindMultipleChoice, Prompt: "Pick one"},
			want: false,
		},
		{
			name: "fill in blank with answer",
			q:    Question{ID: "f1", Kind: KindFillInBlank, Prompt: "let x = __", CorrectAnswer: "5"},
			want: true,
		},
		{
			name: "fill in blank without answer",
			q:    Question{ID: "f2", Kind: KindFillInBlank, Prompt: "let x = __"},
			want: false,
		},
		{
			name: "drag and drop with segments",
			q:    Question{ID: "d1", Kind: KindDragAndDrop, Prompt: "Assemble", Segments: []string{"a", "b"}},
			want: true,
		},
		{
			name: "drag and drop without segments",
			q:    Question{ID: "d2", Kind: KindDragAndDrop, Prompt: "Assemble"},
			want: false,
		},
		{
			name: "pair match with two pairs",
			q: Question{ID: "p1", Kind: KindPairMatch, Prompt: "Match", Pairs: []PairItem{
				{ID: "l1", PairID: "r1"}, {ID: "r1", PairID: "l1"},
				{ID: "l2", PairID: "r2"}, {ID: "r2", PairID: "l2"},
			}},
			want: true,
		},
		{
			name: "pair match with odd item count",
			q: Question{ID: "p2", Kind: KindPairMatch, Prompt: "Match", Pairs: []PairItem{
				{ID: "l1", PairID: "r1"}, {ID: "r1", PairID: "l1"}, {ID: "l2", PairID: "r2"},
			}},
			want: false,
		},
		{
			name: "speaking needs only a prompt",
			q:    Question{ID: "s1", Kind: KindSpeaking, Prompt: "Say it"},
			want: true,
		},
		{
			name: "empty prompt on gradable kind",
			q:    Question{ID: "x1", Kind: KindSpeaking},
			want: false,
		},
		{
			name: "unknown kind",
			q:    Question{ID: "u1", Kind: "essay", Prompt: "Write"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Valid())
		})
	}
}

func TestFilterValidPreservesOrder(t *testing.T) {
	questions := []Question{
		{ID: "a", Kind: KindSpeaking, Prompt: "one"},
		{ID: "b", Kind: KindFillInBlank, Prompt: "broken"}, // no answer
		{ID: "c", Kind: KindSpeaking, Prompt: "two"},
	}

	valid := FilterValid(questions)

	assert.Len(t, valid, 2)
	assert.Equal(t, "a", valid[0].ID)
	assert.Equal(t, "c", valid[1].ID)
}
