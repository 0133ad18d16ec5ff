package catalog

// Question kinds supported by the lesson engine.
const (
	KindTheory         = "theory"
	KindMultipleChoice = "multiple-choice"
	KindCodeBuilder    = "code-builder"
	KindTranslation    = "translation"
	KindPairMatch      = "pair-match"
	KindDragAndDrop    = "drag-and-drop"
	KindFillInBlank    = "fill-in-blank"
	KindListening      = "listening"
	KindSpeaking       = "speaking"
)

// Difficulty tiers.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Sentinel ids for synthetic levels assembled at runtime. They are played
// through the ordinary session flow but never enter completedLevels.
const (
	LevelIDWorkout         = 99999
	LevelIDConceptPractice = 88888
)

// IsSynthetic reports whether a level id belongs to a generated practice run.
func IsSynthetic(levelID int) bool {
	return levelID == LevelIDWorkout || levelID == LevelIDConceptPractice
}

// Option is a selectable answer for choice-bearing question kinds.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct,omitempty"` // server-side only
}

// PairItem is one half of a pair-match question. Two items match when their
// PairID fields reference each other.
type PairItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	PairID string `json:"pair_id"` // server-side only
}

// Question is an immutable catalog entry. The payload fields used depend on
// Kind; Valid reports whether enough payload is present to grade it.
type Question struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	Difficulty    string     `json:"difficulty"`
	Prompt        string     `json:"prompt"`
	TheoryBody    string     `json:"theory_body,omitempty"`
	Options       []Option   `json:"options,omitempty"`
	Segments      []string   `json:"segments,omitempty"`    // canonical order
	Distractors   []string   `json:"distractors,omitempty"` // must not be used
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	Pairs         []PairItem `json:"pairs,omitempty"`
	Concepts      []string   `json:"concepts,omitempty"`
	FeedbackRight string     `json:"feedback_right,omitempty"`
	FeedbackWrong string     `json:"feedback_wrong,omitempty"`
}

// HasOptions reports whether the kind is graded by selecting an option.
func (q Question) HasOptions() bool {
	switch q.Kind {
	case KindMultipleChoice, KindTranslation, KindCodeBuilder, KindListening:
		return true
	}
	return false
}

// CorrectOptionID returns the id of the option flagged correct, if any.
func (q Question) CorrectOptionID() (string, bool) {
	for _, opt := range q.Options {
		if opt.Correct {
			return opt.ID, true
		}
	}
	return "", false
}

// Level is an ordered catalog unit. Static; never mutated at runtime.
type Level struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	Teaches   []string   `json:"teaches"`
}

// Rand is the randomness contract for selection and shuffling. *math/rand.Rand
// satisfies it; tests supply deterministic implementations.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
