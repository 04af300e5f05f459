package models

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// AuthCheckResponse is returned by GET /auth/check. User is omitted for
// anonymous callers.
type AuthCheckResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserSummary `json:"user,omitempty"`
}

// DebugSessionResponse describes the caller's session state without
// revealing the session token.
type DebugSessionResponse struct {
	SessionExists bool         `json:"sessionExists"`
	HasUser       bool         `json:"hasUser"`
	UserData      *UserSummary `json:"userData"`
}

// ContactRequest is the body of POST /contact/submit.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a contact form submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
