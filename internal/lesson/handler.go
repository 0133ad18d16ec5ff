package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/player"
	httperrors "github.com/codelingo/backend/pkg/http/errors"
	ws "github.com/codelingo/backend/pkg/http/ws"
)

// Handler manages WebSocket connections and routes lesson play messages.
type Handler struct {
	service *Service
	hub     *ws.Hub
	logger  zerolog.Logger
}

// NewHandler creates a lesson WebSocket handler.
func NewHandler(service *Service, hub *ws.Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		logger:  logger,
	}
}

// HandleConnection processes a new WebSocket connection. The token must be
// validated before calling this (playerID comes from JWT claims).
func (h *Handler) HandleConnection(conn *websocket.Conn, playerID uuid.UUID) {
	wsConn := ws.NewConnection(conn, h.logger)
	h.hub.Register(playerID, wsConn)

	go wsConn.WritePump()

	wsConn.ReadPump(func(msg ws.Message) error {
		return h.handleMessage(context.Background(), playerID, msg)
	})

	h.hub.Unregister(playerID, wsConn)
}

// handleMessage routes incoming WebSocket messages.
func (h *Handler) handleMessage(ctx context.Context, playerID uuid.UUID, msg ws.Message) error {
	switch msg.Type {
	case ws.TypeStartLesson:
		return h.handleStartLesson(ctx, playerID, msg.Payload)
	case ws.TypeStartWorkout:
		return h.handleStartWorkout(ctx, playerID)
	case ws.TypeStartPractice:
		return h.handleStartPractice(ctx, playerID, msg.Payload)
	case ws.TypeResumeSession:
		return h.handleResume(ctx, playerID)
	case ws.TypeSubmitAnswer:
		return h.handleSubmitAnswer(ctx, playerID, msg.Payload)
	case ws.TypeSubmitPair:
		return h.handleSubmitPair(ctx, playerID, msg.Payload)
	case ws.TypeUseSkip:
		return h.handleSkip(ctx, playerID)
	case ws.TypeTheoryDone:
		return h.handleTheoryDone(ctx, playerID)
	case ws.TypeQuitSession:
		return h.handleQuit(ctx, playerID)
	case ws.TypePing:
		return h.hub.Send(playerID, ws.Message{Type: ws.TypePong})
	default:
		return h.sendError(playerID, httperrors.ErrCodeUnknownMessageType, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

func (h *Handler) handleStartLesson(ctx context.Context, playerID uuid.UUID, payload json.RawMessage) error {
	var req ws.StartLessonPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(playerID, httperrors.ErrCodeInvalidPayload, "Invalid start_lesson payload")
	}

	sess, p, err := h.service.StartLesson(ctx, playerID, req.LevelID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendState(playerID, sess, p)
}

func (h *Handler) handleStartWorkout(ctx context.Context, playerID uuid.UUID) error {
	sess, p, err := h.service.StartWorkout(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendState(playerID, sess, p)
}

func (h *Handler) handleStartPractice(ctx context.Context, playerID uuid.UUID, payload json.RawMessage) error {
	var req ws.StartPracticePayload
	if err := json.Unmarshal(payload, &req); err != nil || req.Concept == "" {
		return h.sendError(playerID, httperrors.ErrCodeInvalidPayload, "Invalid start_practice payload")
	}

	sess, p, err := h.service.StartConceptPractice(ctx, playerID, req.Concept)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendState(playerID, sess, p)
}

func (h *Handler) handleResume(ctx context.Context, playerID uuid.UUID) error {
	sess, err := h.service.ActiveSession(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	p, err := h.service.loadProfile(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendState(playerID, sess, p)
}

func (h *Handler) handleSubmitAnswer(ctx context.Context, playerID uuid.UUID, payload json.RawMessage) error {
	var req ws.SubmitAnswerPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(playerID, httperrors.ErrCodeInvalidPayload, "Invalid submit_answer payload")
	}

	sess, out, result, err := h.service.Submit(ctx, playerID, Answer{
		OptionID: req.OptionID,
		Text:     req.Text,
		Segments: req.Segments,
	})
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendAnswerResult(ctx, playerID, sess, out, result)
}

func (h *Handler) handleSubmitPair(ctx context.Context, playerID uuid.UUID, payload json.RawMessage) error {
	var req ws.SubmitPairPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(playerID, httperrors.ErrCodeInvalidPayload, "Invalid submit_pair payload")
	}

	sess, out, result, err := h.service.SubmitPair(ctx, playerID, req.LeftID, req.RightID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}

	p, perr := h.service.loadProfile(ctx, playerID)
	if perr != nil {
		return h.sendDomainError(playerID, perr)
	}

	pairMsg := ws.Message{Type: ws.TypePairResult}
	pairMsg.Payload, _ = json.Marshal(ws.PairResultPayload{
		Matched:    out.Matched,
		AllMatched: out.AllMatched,
		Hearts:     p.Hearts,
	})
	if err := h.hub.Send(playerID, pairMsg); err != nil {
		return err
	}
	return h.finishOrContinue(playerID, sess, p, result)
}

func (h *Handler) handleSkip(ctx context.Context, playerID uuid.UUID) error {
	sess, out, result, err := h.service.Skip(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	return h.sendAnswerResult(ctx, playerID, sess, out, result)
}

func (h *Handler) handleTheoryDone(ctx context.Context, playerID uuid.UUID) error {
	sess, _, result, err := h.service.AcknowledgeTheory(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}
	p, perr := h.service.loadProfile(ctx, playerID)
	if perr != nil {
		return h.sendDomainError(playerID, perr)
	}
	return h.finishOrContinue(playerID, sess, p, result)
}

func (h *Handler) handleQuit(ctx context.Context, playerID uuid.UUID) error {
	if err := h.service.Quit(ctx, playerID); err != nil {
		return h.sendDomainError(playerID, err)
	}
	return nil
}

func (h *Handler) sendAnswerResult(ctx context.Context, playerID uuid.UUID, sess *Session, out Outcome, result *scoring.SessionResult) error {
	p, err := h.service.loadProfile(ctx, playerID)
	if err != nil {
		return h.sendDomainError(playerID, err)
	}

	msg := ws.Message{Type: ws.TypeAnswerResult}
	msg.Payload, _ = json.Marshal(ws.AnswerResultPayload{
		Correct:  out.Correct,
		Skipped:  out.Skipped,
		Retry:    out.Retry,
		Feedback: out.Feedback,
		Combo:    sess.Combo,
		Hearts:   p.Hearts,
	})
	if err := h.hub.Send(playerID, msg); err != nil {
		return err
	}
	return h.finishOrContinue(playerID, sess, p, result)
}

// finishOrContinue sends the completion summary when the session settled, or
// the next session snapshot when play continues.
func (h *Handler) finishOrContinue(playerID uuid.UUID, sess *Session, p *player.Profile, result *scoring.SessionResult) error {
	if result == nil {
		return h.sendState(playerID, sess, p)
	}

	msg := ws.Message{Type: ws.TypeSessionComplete}
	msg.Payload, _ = json.Marshal(ws.SessionCompletePayload{
		LevelID:      result.LevelID,
		Synthetic:    result.Synthetic,
		BaseXP:       result.BaseXP,
		ComboBonus:   result.ComboBonus,
		PerfectBonus: result.PerfectBonus,
		TotalXP:      result.TotalXP,
		Gems:         result.Gems,
		Perfect:      result.Perfect(),
		PlayerLevel:  scoring.LevelForXP(p.TotalXP),
		PlayerXP:     p.TotalXP,
	})
	return h.hub.Send(playerID, msg)
}

func (h *Handler) sendState(playerID uuid.UUID, sess *Session, p *player.Profile) error {
	view := SessionView(sess, p, rand.New(rand.NewSource(time.Now().UnixNano())))
	msg := ws.Message{Type: ws.TypeSessionState}
	msg.Payload, _ = json.Marshal(view)
	return h.hub.Send(playerID, msg)
}

func (h *Handler) sendDomainError(playerID uuid.UUID, err error) error {
	code := httperrors.ErrCodeInternalError
	switch {
	case err == player.ErrOutOfHearts:
		code = httperrors.ErrCodeOutOfHearts
	case err == player.ErrNoSkipTokens:
		code = httperrors.ErrCodeNoSkipTokens
	case err == ErrLevelNotFound:
		code = httperrors.ErrCodeLevelNotFound
	case err == ErrNoActiveSession:
		code = httperrors.ErrCodeNoActiveSession
	case err == ErrNothingToPractice:
		code = httperrors.ErrCodeNothingToPractice
	case err == ErrSessionFinished:
		code = httperrors.ErrCodeSessionFinished
	case err == ErrAwaitingTheory, err == ErrNotTheory, err == ErrPairSubmission, err == ErrNotPairMatch:
		code = httperrors.ErrCodeInvalidRequest
	}
	return h.sendError(playerID, code, err.Error())
}

func (h *Handler) sendError(playerID uuid.UUID, code, message string) error {
	msg := ws.Message{Type: ws.TypeError}
	msg.Payload, _ = json.Marshal(ws.ErrorPayload{Code: code, Message: message})
	return h.hub.Send(playerID, msg)
}
