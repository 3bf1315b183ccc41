package handler

import (
	"errors"
	"net/http"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/response"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// TodoHandler handles todo endpoints
type TodoHandler struct {
	todoService *service.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// List returns every todo in a workspace; an unknown workspace just yields
// an empty array
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	workspace := chi.URLParam(r, "workspace")

	todos, err := h.todoService.ListByWorkspace(r.Context(), workspace)
	if err != nil {
		response.InternalError(w, "failed to list todos")
		return
	}

	response.OK(w, todos)
}

// Create handles todo creation. The workspace must already exist.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.TodoCreate
	if fieldErrs := decodeBody(r, &input); fieldErrs != nil {
		response.UnprocessableEntity(w, fieldErrs)
		return
	}

	if err := validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.UnprocessableEntity(w, shapeErrors(validationErrs))
			return
		}
		response.BadRequest(w, "invalid request body")
		return
	}

	todo, err := h.todoService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceMissing) {
			response.BadRequest(w, "Workspace does not exist")
			return
		}
		response.InternalError(w, "failed to create todo")
		return
	}

	response.OK(w, todo)
}

// Update applies a partial update to one todo
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input domain.TodoUpdate
	if fieldErrs := decodeBody(r, &input); fieldErrs != nil {
		response.UnprocessableEntity(w, fieldErrs)
		return
	}

	todo, err := h.todoService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpdateFields):
			response.BadRequest(w, "No valid update data provided")
		case errors.Is(err, domain.ErrTodoNotFound):
			response.NotFound(w, "Todo not found")
		default:
			response.InternalError(w, "failed to update todo")
		}
		return
	}

	response.OK(w, todo)
}

// Delete removes one todo
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.todoService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			response.NotFound(w, "Todo not found")
			return
		}
		response.InternalError(w, "failed to delete todo")
		return
	}

	response.Message(w, "Todo deleted successfully")
}

// DeleteAll clears every todo across all workspaces
func (h *TodoHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.todoService.DeleteAll(r.Context()); err != nil {
		response.InternalError(w, "failed to delete todos")
		return
	}

	response.Message(w, "All todos deleted successfully")
}
