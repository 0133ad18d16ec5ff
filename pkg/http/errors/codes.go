package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"

	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"

	// Account errors
	ErrCodeRegistrationFailed = "registration_failed"
	ErrCodeLoginFailed        = "login_failed"
	ErrCodeRefreshFailed      = "refresh_failed"

	// Lesson errors
	ErrCodeLevelNotFound     = "level_not_found"
	ErrCodeOutOfHearts       = "out_of_hearts"
	ErrCodeNoActiveSession   = "no_active_session"
	ErrCodeNothingToPractice = "nothing_to_practice"
	ErrCodeNoSkipTokens      = "no_skip_tokens"
	ErrCodeSessionFinished   = "session_finished"

	// Economy errors
	ErrCodeInsufficientGems = "insufficient_gems"
	ErrCodeHeartsFull       = "hearts_full"

	// Quest errors
	ErrCodeQuestNotFound      = "quest_not_found"
	ErrCodeQuestNotClaimable  = "quest_not_claimable"
	ErrCodeQuestCompleted     = "quest_already_completed"
	ErrCodeNoReplacementQuest = "no_replacement_quest"

	// WebSocket errors
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeUnknownMessageType = "unknown_message_type"

	// OAuth errors
	ErrCodeOAuthNotConfigured  = "oauth_not_configured"
	ErrCodeOAuthStartFailed    = "oauth_start_failed"
	ErrCodeOAuthCallbackFailed = "oauth_callback_failed"
	ErrCodeOAuthMissingCode    = "missing_code"
	ErrCodeOAuthInvalidState   = "invalid_state"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
