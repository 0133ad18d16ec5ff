package player

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/auth"
	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/quest"
	httperrors "github.com/codelingo/backend/pkg/http/errors"
)

// AccountStore flips account-level flags that live outside the hot profile.
type AccountStore interface {
	SetPremium(ctx context.Context, id uuid.UUID, premium bool) error
}

// HTTPHandlers provides REST endpoints for profile, quests and the shop.
type HTTPHandlers struct {
	svc      *Service
	accounts AccountStore
	logger   zerolog.Logger
}

// NewHTTPHandlers creates profile HTTP handlers. accounts may be nil when no
// account backend is attached.
func NewHTTPHandlers(svc *Service, accounts AccountStore, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{svc: svc, accounts: accounts, logger: logger}
}

// profileResponse is the full client-facing profile projection.
type profileResponse struct {
	Hearts            int            `json:"hearts"`
	Gems              int            `json:"gems"`
	TotalXP           int            `json:"total_xp"`
	Level             int            `json:"level"`
	NextLevelXP       int            `json:"next_level_xp"`
	CompletedLevels   []int          `json:"completed_levels"`
	LessonsCompleted  int            `json:"lessons_completed"`
	PerfectLessons    int            `json:"perfect_lessons"`
	QuestionsAnswered int            `json:"questions_answered"`
	SkipTokens        int            `json:"skip_tokens"`
	IsPremium         bool           `json:"is_premium"`
	Streak            int            `json:"streak"`
	Mastery           map[string]int `json:"mastery"`
	WeakConcepts      []string       `json:"weak_concepts"`
	Quests            []quest.Quest  `json:"quests"`
	Achievements      []string       `json:"achievements"`
}

func (h *HTTPHandlers) toResponse(p *Profile) profileResponse {
	level := scoring.LevelForXP(p.TotalXP)
	completed := p.CompletedLevels
	if completed == nil {
		completed = []int{}
	}
	achievements := p.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return profileResponse{
		Hearts:            p.Hearts,
		Gems:              p.Gems,
		TotalXP:           p.TotalXP,
		Level:             level,
		NextLevelXP:       scoring.XPForNextLevel(level),
		CompletedLevels:   completed,
		LessonsCompleted:  p.LessonsCompleted,
		PerfectLessons:    p.PerfectLessons,
		QuestionsAnswered: p.QuestionsAnswered,
		SkipTokens:        p.SkipTokens,
		IsPremium:         p.IsPremium,
		Streak:            p.Streak,
		Mastery:           p.Mastery,
		WeakConcepts:      p.Mastery.WeakConcepts(),
		Quests:            p.Quests.Active,
		Achievements:      achievements,
	}
}

// GetProfile handles GET /v1/profile (requires auth).
func (h *HTTPHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), playerID)
	if err != nil {
		h.logger.Error().Err(err).Msg("profile load failed")
		httperrors.RespondInternalError(w, "Failed to load profile")
		return
	}
	h.respondJSON(w, http.StatusOK, h.toResponse(p))
}

// ClaimQuest handles POST /v1/quests/claim.
func (h *HTTPHandlers) ClaimQuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	var req struct {
		QuestID string `json:"quest_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestID == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "quest_id required", "quest_id")
		return
	}

	p, reward, err := h.svc.ClaimQuest(r.Context(), playerID, req.QuestID)
	if err != nil {
		h.respondQuestError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"reward":  reward,
		"profile": h.toResponse(p),
	})
}

// ResetQuest handles POST /v1/quests/reset.
func (h *HTTPHandlers) ResetQuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	var req struct {
		QuestID string `json:"quest_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestID == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "quest_id required", "quest_id")
		return
	}

	p, err := h.svc.ResetQuest(r.Context(), playerID, req.QuestID)
	if err != nil {
		h.respondQuestError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": h.toResponse(p),
	})
}

// BuyHearts handles POST /v1/shop/hearts.
func (h *HTTPHandlers) BuyHearts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.BuyHeartRefill(r.Context(), playerID)
	if err != nil {
		h.respondShopError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": h.toResponse(p),
	})
}

// BuySkipToken handles POST /v1/shop/skip-tokens.
func (h *HTTPHandlers) BuySkipToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.BuySkipToken(r.Context(), playerID)
	if err != nil {
		h.respondShopError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": h.toResponse(p),
	})
}

// SetPremium handles POST /v1/shop/premium. The flag is written to the
// account row and the hot profile; turning premium on also refills hearts.
func (h *HTTPHandlers) SetPremium(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	var req struct {
		Premium bool `json:"premium"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	if h.accounts != nil {
		if err := h.accounts.SetPremium(r.Context(), playerID, req.Premium); err != nil {
			h.logger.Error().Err(err).Msg("account premium update failed")
			httperrors.RespondInternalError(w, "Failed to update premium status")
			return
		}
	}

	p, err := h.svc.SetPremium(r.Context(), playerID, req.Premium)
	if err != nil {
		h.logger.Error().Err(err).Msg("profile premium update failed")
		httperrors.RespondInternalError(w, "Failed to update premium status")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": h.toResponse(p),
	})
}

func (h *HTTPHandlers) respondQuestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quest.ErrQuestNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuestNotFound, err.Error())
	case errors.Is(err, quest.ErrNotClaimable):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeQuestNotClaimable, err.Error())
	case errors.Is(err, quest.ErrQuestCompleted):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeQuestCompleted, err.Error())
	case errors.Is(err, quest.ErrNoReplacement):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeNoReplacementQuest, err.Error())
	case errors.Is(err, ErrInsufficientGems):
		httperrors.RespondPaymentRequired(w, httperrors.ErrCodeInsufficientGems, err.Error())
	default:
		httperrors.RespondInternalError(w, err.Error())
	}
}

func (h *HTTPHandlers) respondShopError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInsufficientGems):
		httperrors.RespondPaymentRequired(w, httperrors.ErrCodeInsufficientGems, err.Error())
	case errors.Is(err, ErrHeartsFull):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeHeartsFull, err.Error())
	default:
		httperrors.RespondInternalError(w, err.Error())
	}
}

func (h *HTTPHandlers) playerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
