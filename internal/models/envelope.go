package models

import "encoding/json"

// Envelope statuses used by the backend and by synthesized responses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Envelope is the uniform {status, message?, ...} JSON shape.
//
// When Raw is set the envelope was relayed from the backend and marshals to
// exactly those bytes; otherwise only Status and Message are emitted.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// ErrorEnvelope builds a synthesized error envelope.
func ErrorEnvelope(msg string) Envelope {
	return Envelope{Status: StatusError, Message: msg}
}

// IsSuccess reports whether the envelope carries status "success".
func (e Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	type plain Envelope
	return json.Marshal(plain(e))
}
