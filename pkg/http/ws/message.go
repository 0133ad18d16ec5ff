package ws

import "encoding/json"

// MessageType constants for the lesson WebSocket protocol.
const (
	// Client -> Server
	TypeStartLesson   = "start_lesson"
	TypeStartWorkout  = "start_workout"
	TypeStartPractice = "start_practice"
	TypeResumeSession = "resume_session"
	TypeSubmitAnswer  = "submit_answer"
	TypeSubmitPair    = "submit_pair"
	TypeUseSkip       = "use_skip"
	TypeTheoryDone    = "theory_done"
	TypeQuitSession   = "quit_session"

	// Server -> Client
	TypeSessionState    = "session_state"
	TypeAnswerResult    = "answer_result"
	TypePairResult      = "pair_result"
	TypeSessionComplete = "session_complete"
	TypeError           = "error"
	TypePing            = "ping"
	TypePong            = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	RequestID string          `json:"request_id,omitempty"`
}

// Client Messages (incoming)

type StartLessonPayload struct {
	LevelID int `json:"level_id"`
}

type StartPracticePayload struct {
	Concept string `json:"concept"`
}

type SubmitAnswerPayload struct {
	OptionID string   `json:"option_id,omitempty"`
	Text     string   `json:"text,omitempty"`
	Segments []string `json:"segments,omitempty"`
}

type SubmitPairPayload struct {
	LeftID  string `json:"left_id"`
	RightID string `json:"right_id"`
}

// Server Messages (outgoing)

// QuestionView is the client-safe projection of a question: answer keys and
// pair references are stripped, distractors are mixed into the segment pool.
type QuestionView struct {
	ID         string       `json:"id"`
	Kind       string       `json:"kind"`
	Prompt     string       `json:"prompt"`
	TheoryBody string       `json:"theory_body,omitempty"`
	Options    []OptionView `json:"options,omitempty"`
	Segments   []string     `json:"segments,omitempty"`
	Pairs      []PairView   `json:"pairs,omitempty"`
}

type OptionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type PairView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type SessionStatePayload struct {
	LevelID   int           `json:"level_id"`
	Title     string        `json:"title"`
	Synthetic bool          `json:"synthetic"`
	State     string        `json:"state"`
	Index     int           `json:"index"`
	Total     int           `json:"total"`
	Combo     int           `json:"combo"`
	Hearts    int           `json:"hearts"`
	Question  *QuestionView `json:"question,omitempty"`
}

type AnswerResultPayload struct {
	Correct  bool   `json:"correct"`
	Skipped  bool   `json:"skipped,omitempty"`
	Retry    bool   `json:"retry,omitempty"`
	Feedback string `json:"feedback,omitempty"`
	Combo    int    `json:"combo"`
	Hearts   int    `json:"hearts"`
}

type PairResultPayload struct {
	Matched    bool `json:"matched"`
	AllMatched bool `json:"all_matched"`
	Hearts     int  `json:"hearts"`
}

type SessionCompletePayload struct {
	LevelID      int  `json:"level_id"`
	Synthetic    bool `json:"synthetic"`
	BaseXP       int  `json:"base_xp"`
	ComboBonus   int  `json:"combo_bonus"`
	PerfectBonus int  `json:"perfect_bonus"`
	TotalXP      int  `json:"total_xp"`
	Gems         int  `json:"gems"`
	Perfect      bool `json:"perfect"`
	PlayerLevel  int  `json:"player_level"`
	PlayerXP     int  `json:"player_xp"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
