package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/handler"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeWorkspaceRepo is an in-memory WorkspaceRepository
type fakeWorkspaceRepo struct {
	workspaces map[string]*domain.Workspace
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{workspaces: make(map[string]*domain.Workspace)}
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, workspace *domain.Workspace) error {
	if _, ok := f.workspaces[workspace.Name]; ok {
		return domain.ErrWorkspaceExists
	}
	workspace.ID = primitive.NewObjectID()
	f.workspaces[workspace.Name] = workspace
	return nil
}

func (f *fakeWorkspaceRepo) GetByName(_ context.Context, name string) (*domain.Workspace, error) {
	return f.workspaces[name], nil
}

// fakeTodoRepo is an in-memory TodoRepository preserving insertion order
type fakeTodoRepo struct {
	todos []*domain.Todo
}

func (f *fakeTodoRepo) Create(_ context.Context, todo *domain.Todo) error {
	todo.ID = primitive.NewObjectID()
	f.todos = append(f.todos, todo)
	return nil
}

func (f *fakeTodoRepo) ListByWorkspace(_ context.Context, workspace string) ([]domain.Todo, error) {
	out := []domain.Todo{}
	for _, todo := range f.todos {
		if todo.Workspace == workspace {
			out = append(out, *todo)
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, id string, fields map[string]any) (*domain.Todo, error) {
	for _, todo := range f.todos {
		if todo.ID.Hex() != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "title":
				todo.Title = value.(string)
			case "description":
				desc := value.(string)
				todo.Description = &desc
			case "completed":
				todo.Completed = value.(bool)
			case "due_date":
				due := value.(time.Time)
				todo.DueDate = &due
			}
		}
		updated := *todo
		return &updated, nil
	}
	return nil, domain.ErrTodoNotFound
}

func (f *fakeTodoRepo) Delete(_ context.Context, id string) error {
	for i, todo := range f.todos {
		if todo.ID.Hex() == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

func (f *fakeTodoRepo) DeleteAll(_ context.Context) error {
	f.todos = nil
	return nil
}

// newTestRouter wires the real handlers and services over the fakes, with
// the same route table the server mounts
func newTestRouter() http.Handler {
	workspaceRepo := newFakeWorkspaceRepo()
	todoRepo := &fakeTodoRepo{}

	workspaceHandler := handler.NewWorkspaceHandler(service.NewWorkspaceService(workspaceRepo))
	todoHandler := handler.NewTodoHandler(service.NewTodoService(todoRepo, workspaceRepo))

	r := chi.NewRouter()
	r.Route("/workspaces", func(r chi.Router) {
		r.Post("/", workspaceHandler.Create)
		r.Post("/login", workspaceHandler.Login)
	})
	r.Route("/todos", func(r chi.Router) {
		r.Post("/", todoHandler.Create)
		r.Delete("/", todoHandler.DeleteAll)
		r.Get("/{workspace}", todoHandler.List)
		r.Put("/{id}", todoHandler.Update)
		r.Delete("/{id}", todoHandler.Delete)
	})
	return r
}

func makeJSONRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, makeJSONRequest(method, path, body))

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func TestWorkspaceAndTodoFlow(t *testing.T) {
	router := newTestRouter()

	// Create workspace
	status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
		"name":     "personal",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "personal", body["name"])
	assert.NotEmpty(t, body["id"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword, "password must never be serialized")

	// Duplicate name, different password
	status, body = doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
		"name":     "personal",
		"password": "other-password",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Workspace already exists", body["detail"])

	// Login with wrong password
	status, body = doRequest(t, router, http.MethodPost, "/workspaces/login", map[string]any{
		"name":     "personal",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid workspace name or password", body["detail"])

	// Login against a workspace that does not exist: same message
	status, body = doRequest(t, router, http.MethodPost, "/workspaces/login", map[string]any{
		"name":     "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid workspace name or password", body["detail"])

	// Correct login
	status, body = doRequest(t, router, http.MethodPost, "/workspaces/login", map[string]any{
		"name":     "personal",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "personal", body["name"])

	// Create todo with defaults
	status, body = doRequest(t, router, http.MethodPost, "/todos/", map[string]any{
		"title":     "Buy groceries",
		"workspace": "personal",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["completed"])
	assert.Equal(t, "medium", body["priority"])
	assert.NotEmpty(t, body["created_at"])
	todoID := body["id"].(string)

	// Round-trip: listing the workspace includes the todo
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, makeJSONRequest(http.MethodGet, "/todos/personal", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var todos []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, todoID, todos[0]["id"])
	assert.Equal(t, "Buy groceries", todos[0]["title"])

	// Partial update: only completed changes
	status, body = doRequest(t, router, http.MethodPut, "/todos/"+todoID, map[string]any{
		"completed": true,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, "Buy groceries", body["title"])

	// Empty update body
	status, body = doRequest(t, router, http.MethodPut, "/todos/"+todoID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No valid update data provided", body["detail"])

	// Explicit nulls count as absent
	status, body = doRequest(t, router, http.MethodPut, "/todos/"+todoID, map[string]any{
		"title": nil, "completed": nil,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No valid update data provided", body["detail"])

	// Delete, then the list excludes it
	status, body = doRequest(t, router, http.MethodDelete, "/todos/"+todoID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Todo deleted successfully", body["message"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, makeJSONRequest(http.MethodGet, "/todos/personal", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Empty(t, todos)

	// Deleting it again is a 404
	status, body = doRequest(t, router, http.MethodDelete, "/todos/"+todoID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Todo not found", body["detail"])

	// Delete-all always succeeds
	status, body = doRequest(t, router, http.MethodDelete, "/todos/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "All todos deleted successfully", body["message"])
}

func TestWorkspaceHandler_Validation(t *testing.T) {
	router := newTestRouter()

	t.Run("short password gets the dedicated message", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
			"name":     "personal",
			"password": "abc",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Password must be at least 5 characters long", body["detail"])
	})

	t.Run("empty password counts as too short, not missing", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
			"name":     "personal",
			"password": "",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Password must be at least 5 characters long", body["detail"])
	})

	t.Run("null password is a missing field", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
			"name":     "personal",
			"password": nil,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems, ok := body["detail"].([]any)
		require.True(t, ok)
		require.Len(t, problems, 1)
		first := problems[0].(map[string]any)
		assert.Contains(t, first["loc"], "password")
		assert.Equal(t, "field is required", first["msg"])
	})

	t.Run("missing fields are a 422 list", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems, ok := body["detail"].([]any)
		require.True(t, ok)
		assert.Len(t, problems, 2) // name and password
	})

	t.Run("wrong primitive type", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
			"name":     42,
			"password": "password123",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems, ok := body["detail"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, problems)
		first := problems[0].(map[string]any)
		assert.Contains(t, first["loc"], "name")
	})

	t.Run("every mistyped field is reported at once", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
			"name":     42,
			"password": 123,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems, ok := body["detail"].([]any)
		require.True(t, ok)
		require.Len(t, problems, 2)

		locs := []any{}
		for _, p := range problems {
			locs = append(locs, p.(map[string]any)["loc"].([]any)[1])
		}
		assert.ElementsMatch(t, []any{"name", "password"}, locs)
	})
}

func TestTodoHandler_Validation(t *testing.T) {
	router := newTestRouter()

	// A workspace to attach valid todos to
	status, _ := doRequest(t, router, http.MethodPost, "/workspaces/", map[string]any{
		"name":     "personal",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)

	t.Run("missing title and workspace", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/todos/", map[string]any{
			"description": "no title here",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems, ok := body["detail"].([]any)
		require.True(t, ok)
		assert.Len(t, problems, 2)
	})

	t.Run("mistyped completed", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/todos/", map[string]any{
			"title":     "Buy groceries",
			"workspace": "personal",
			"completed": "yes",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		problems := body["detail"].([]any)
		first := problems[0].(map[string]any)
		assert.Contains(t, first["loc"], "completed")
	})

	t.Run("unknown workspace rejected before persisting", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/todos/", map[string]any{
			"title":     "Buy groceries",
			"workspace": "ghost",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Workspace does not exist", body["detail"])

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, makeJSONRequest(http.MethodGet, "/todos/ghost", nil))
		var todos []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
		assert.Empty(t, todos)
	})

	t.Run("update of nonexistent id", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPut, "/todos/"+primitive.NewObjectID().Hex(), map[string]any{
			"completed": true,
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Todo not found", body["detail"])
	})
}
