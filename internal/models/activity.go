package models

import "time"

// Activity types recorded for gateway actions.
const (
	ActivityLogin            = "LOGIN"
	ActivityLoginFailed      = "LOGIN_FAILED"
	ActivityRegister         = "REGISTER"
	ActivityRegisterFailed   = "REGISTER_FAILED"
	ActivityLogout           = "LOGOUT"
	ActivityDiaryWrite       = "DIARY_WRITE"
	ActivityDiaryWriteFailed = "DIARY_WRITE_FAILED"
	ActivityValidate         = "VALIDATE"
	ActivityValidateFailed   = "VALIDATE_FAILED"
)

// Activity is a single entry of the gateway activity log.
type Activity struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Username    string    `json:"username,omitempty"`
	Type        string    `json:"type"`        // LOGIN | LOGOUT | DIARY_WRITE | VALIDATE | ...
	Description string    `json:"description"` // human-readable
	RequestID   string    `json:"request_id,omitempty"`
	Metadata    any       `json:"metadata,omitempty"`
}
