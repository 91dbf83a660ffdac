package model

// Scope carries the identity of the authenticated operator for a request.
type Scope struct {
	UserID   string
	Username string
	Role     string
}
