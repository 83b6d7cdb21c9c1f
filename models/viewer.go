package models

// Viewer identifies the authenticated caller of a request. It is built by
// the auth middleware and passed explicitly into service calls; nothing in
// the codebase holds a process-wide current user.
type Viewer struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
