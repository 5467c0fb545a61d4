package model

// Role classifies a user principal for authorization decisions.
type Role string

const (
	// RoleAdmin grants access to the /admin endpoints.
	RoleAdmin Role = "admin"
	// RoleUser is the default role for created users.
	RoleUser Role = "user"
)
