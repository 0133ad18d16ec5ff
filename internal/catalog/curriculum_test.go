package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurriculumIsWellFormed(t *testing.T) {
	levels := Curriculum()
	assert.NotEmpty(t, levels)

	seenLevels := map[int]bool{}
	seenQuestions := map[string]bool{}
	for _, lvl := range levels {
		assert.False(t, seenLevels[lvl.ID], "duplicate level id %d", lvl.ID)
		seenLevels[lvl.ID] = true
		assert.False(t, IsSynthetic(lvl.ID), "curriculum must not use synthetic ids")
		assert.NotEmpty(t, lvl.Title)
		assert.NotEmpty(t, lvl.Teaches, "level %d teaches nothing", lvl.ID)
		assert.NotEmpty(t, lvl.Questions, "level %d has no questions", lvl.ID)

		for _, q := range lvl.Questions {
			assert.False(t, seenQuestions[q.ID], "duplicate question id %s", q.ID)
			seenQuestions[q.ID] = true
			assert.True(t, q.Valid(), "question %s is not gradable", q.ID)
		}
	}
}

func TestCurriculumPairItemsAreReciprocal(t *testing.T) {
	for _, lvl := range Curriculum() {
		for _, q := range lvl.Questions {
			if q.Kind != KindPairMatch {
				continue
			}
			byID := map[string]PairItem{}
			for _, item := range q.Pairs {
				byID[item.ID] = item
			}
			for _, item := range q.Pairs {
				partner, ok := byID[item.PairID]
				assert.True(t, ok, "question %s: %s points at missing %s", q.ID, item.ID, item.PairID)
				assert.Equal(t, item.ID, partner.PairID, "question %s: %s and %s are not reciprocal", q.ID, item.ID, partner.ID)
			}
		}
	}
}

func TestCurriculumCoversEveryKind(t *testing.T) {
	kinds := map[string]bool{}
	for _, lvl := range Curriculum() {
		for _, q := range lvl.Questions {
			kinds[q.Kind] = true
		}
	}

	for _, kind := range []string{
		KindTheory, KindMultipleChoice, KindCodeBuilder, KindTranslation,
		KindPairMatch, KindDragAndDrop, KindFillInBlank, KindListening, KindSpeaking,
	} {
		assert.True(t, kinds[kind], "curriculum never exercises %s", kind)
	}
}
