package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriorityDefault is applied when a todo is created without a priority
const PriorityDefault = "medium"

// Todo represents a task record scoped to one workspace by name
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description" json:"description"`
	Completed   bool               `bson:"completed" json:"completed"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	DueDate     *time.Time         `bson:"due_date" json:"due_date"`
	Priority    string             `bson:"priority" json:"priority"`
	Workspace   string             `bson:"workspace" json:"workspace"`
}

// TodoCreate is the request body for creating a todo.
// Omitted optional fields pick up documented defaults.
type TodoCreate struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	CreatedAt   *time.Time `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Workspace   string     `json:"workspace" validate:"required"`
}

// TodoUpdate is the request body for a partial update. A nil pointer means
// "leave unchanged"; an explicit JSON null decodes to nil and is treated
// identically. Priority and workspace are immutable once created.
type TodoUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
}

// Fields returns the effective changes as a field->value map, which doubles
// as the $set document for the store. Empty means nothing to apply.
func (u TodoUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Completed != nil {
		fields["completed"] = *u.Completed
	}
	if u.DueDate != nil {
		fields["due_date"] = *u.DueDate
	}
	return fields
}
