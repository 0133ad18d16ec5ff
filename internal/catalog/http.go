package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// HTTPHandler serves the read-only level listing used by the map screen.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler creates a catalog HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

type levelSummary struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Teaches       []string `json:"teaches"`
	QuestionCount int      `json:"question_count"`
}

// ListLevels handles GET /v1/levels. Question payloads stay server-side;
// only summaries leave.
func (h *HTTPHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	levels := h.svc.AllLevels(r.Context())
	summaries := make([]levelSummary, 0, len(levels))
	for _, lvl := range levels {
		summaries = append(summaries, levelSummary{
			ID:            lvl.ID,
			Title:         lvl.Title,
			Teaches:       lvl.Teaches,
			QuestionCount: len(FilterValid(lvl.Questions)),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"levels": summaries}); err != nil {
		h.logger.Warn().Err(err).Msg("encode level listing failed")
	}
}
