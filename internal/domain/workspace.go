package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace represents a named, password-protected todo partition
type Workspace struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	PasswordHash []byte             `bson:"password"`
}

// WorkspacePublic is the outward-facing projection of a workspace.
// It has no hash field, so the credential can never leak through serialization.
type WorkspacePublic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Public returns the serializable view of the workspace
func (w *Workspace) Public() WorkspacePublic {
	return WorkspacePublic{
		ID:   w.ID.Hex(),
		Name: w.Name,
	}
}

// WorkspaceCredentials is the request body shared by workspace creation and
// login. Password is a pointer so a missing key (or explicit null) is
// distinguishable from a supplied-but-short password: required fires only on
// nil, min on any present value, the empty string included.
type WorkspaceCredentials struct {
	Name     string  `json:"name" validate:"required"`
	Password *string `json:"password" validate:"required,min=5"`
}

// PasswordValue returns the supplied password, or "" when absent
func (c WorkspaceCredentials) PasswordValue() string {
	if c.Password == nil {
		return ""
	}
	return *c.Password
}
