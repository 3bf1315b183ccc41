package domain

import "errors"

// Terminal client errors surfaced by the services. Handlers map these to
// status codes and the store layer never returns them for transient faults.
var (
	ErrWorkspaceExists    = errors.New("workspace already exists")
	ErrInvalidCredentials = errors.New("invalid workspace name or password")
	ErrWorkspaceMissing   = errors.New("workspace does not exist")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrNoUpdateFields     = errors.New("no valid update data provided")
)
