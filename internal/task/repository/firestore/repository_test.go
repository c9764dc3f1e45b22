package firestore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"taskdesk/internal/model"
	"taskdesk/internal/task"
	"taskdesk/internal/task/repository"
	taskFirestore "taskdesk/internal/task/repository/firestore"
	"taskdesk/internal/task/usecase"
	pkgFirestore "taskdesk/pkg/firestore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

const parent = "/projects/test-project/databases/(default)/documents"

// stubStore is an in-memory Firestore backing one collection, serving the
// REST surface the Client uses.
type stubStore struct {
	collection string
	docs       map[string]map[string]pkgFirestore.Value
	lastQuery  map[string]any
}

func newStubStore(collection string) *stubStore {
	return &stubStore{
		collection: collection,
		docs:       map[string]map[string]pkgFirestore.Value{},
	}
}

func (s *stubStore) docName(id string) string {
	return strings.TrimPrefix(parent, "/") + "/" + s.collection + "/" + id
}

func (s *stubStore) writeStatus(w http.ResponseWriter, httpCode int, status string) {
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": httpCode, "status": status, "message": status},
	})
}

func (s *stubStore) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(parent+"/"+s.collection, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("documentId")
		if _, ok := s.docs[id]; ok {
			s.writeStatus(w, http.StatusConflict, "ALREADY_EXISTS")
			return
		}
		var body pkgFirestore.Document
		json.NewDecoder(r.Body).Decode(&body)
		s.docs[id] = body.Fields
		json.NewEncoder(w).Encode(pkgFirestore.Document{Name: s.docName(id), Fields: body.Fields})
	})

	mux.HandleFunc(parent+"/"+s.collection+"/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, parent+"/"+s.collection+"/")
		fields, ok := s.docs[id]

		switch r.Method {
		case http.MethodGet:
			if !ok {
				s.writeStatus(w, http.StatusNotFound, "NOT_FOUND")
				return
			}
			json.NewEncoder(w).Encode(pkgFirestore.Document{Name: s.docName(id), Fields: fields})
		case http.MethodPatch:
			if !ok {
				s.writeStatus(w, http.StatusNotFound, "NOT_FOUND")
				return
			}
			var body pkgFirestore.Document
			json.NewDecoder(r.Body).Decode(&body)
			for _, path := range r.URL.Query()["updateMask.fieldPaths"] {
				fields[path] = body.Fields[path]
			}
			json.NewEncoder(w).Encode(pkgFirestore.Document{Name: s.docName(id), Fields: fields})
		case http.MethodDelete:
			delete(s.docs, id)
			w.Write([]byte("{}"))
		}
	})

	mux.HandleFunc(parent+":runQuery", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&s.lastQuery)

		owner := s.queryOwnerFilter()
		var ids []string
		for id, fields := range s.docs {
			if owner == "" || fields["ownerId"].AsString() == owner {
				ids = append(ids, id)
			}
		}
		// Newest first, matching the orderBy the client is expected to send.
		sort.Slice(ids, func(i, j int) bool {
			return s.docs[ids[i]]["createdAtUtc"].AsString() > s.docs[ids[j]]["createdAtUtc"].AsString()
		})

		var results []map[string]any
		for _, id := range ids {
			results = append(results, map[string]any{
				"document": pkgFirestore.Document{Name: s.docName(id), Fields: s.docs[id]},
			})
		}
		json.NewEncoder(w).Encode(results)
	})

	return mux
}

// queryOwnerFilter digs the ownerId equality value out of the captured query.
func (s *stubStore) queryOwnerFilter() string {
	sq, _ := s.lastQuery["structuredQuery"].(map[string]any)
	where, _ := sq["where"].(map[string]any)
	ff, _ := where["fieldFilter"].(map[string]any)
	value, _ := ff["value"].(map[string]any)
	owner, _ := value["stringValue"].(string)
	return owner
}

func newTestRepo(t *testing.T, store *stubStore) repository.Repository {
	t.Helper()
	server := httptest.NewServer(store.handler())
	t.Cleanup(server.Close)

	client, err := pkgFirestore.NewClient(context.Background(), pkgFirestore.Config{
		ProjectID:  "test-project",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return taskFirestore.New(client, &mockLogger{})
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	store := newStubStore("tasks")
	repo := newTestRepo(t, store)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:     "uid42",
		Name:        "Buy milk",
		Description: "Two liters.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("minted id passes full validation", func(t *testing.T) {
		if violations := created.Validate(true); !violations.Valid() {
			t.Fatalf("stored task does not re-validate: %s", violations)
		}
	})

	t.Run("store assigns a parseable creation time", func(t *testing.T) {
		if _, err := time.Parse(time.RFC3339, created.CreatedAtUtc); err != nil {
			t.Fatalf("CreatedAtUtc = %q: %v", created.CreatedAtUtc, err)
		}
	})

	t.Run("id is the document key, not a stored field", func(t *testing.T) {
		fields, ok := store.docs[created.ID]
		if !ok {
			t.Fatalf("no document stored under %q", created.ID)
		}
		if _, ok := fields["id"]; ok {
			t.Fatal("id must not be a stored field")
		}
		if fields["ownerId"].AsString() != "uid42" || fields["name"].AsString() != "Buy milk" {
			t.Fatalf("stored fields = %v", fields)
		}
	})
}

func TestTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, newStubStore("tasks"))

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:     "uid42",
		Name:        "Buy milk",
		Description: "Two liters.",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != created {
		t.Fatalf("round trip changed the record:\n got %+v\nwant %+v", got, created)
	}
}

func TestGetTaskAbsent(t *testing.T) {
	repo := newTestRepo(t, newStubStore("tasks"))

	got, err := repo.GetTask(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (model.Task{}) {
		t.Fatalf("got = %+v, want zero task", got)
	}
}

func TestListTasksByOwner(t *testing.T) {
	ctx := context.Background()
	store := newStubStore("tasks")
	repo := newTestRepo(t, store)

	older, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "uid42", Name: "Older", Description: "d"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	// Force distinct timestamps regardless of clock resolution.
	store.docs[older.ID]["createdAtUtc"] = pkgFirestore.String("2026-08-27T09:00:00Z")

	newer, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "uid42", Name: "Newer", Description: "d"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	store.docs[newer.ID]["createdAtUtc"] = pkgFirestore.String("2026-08-28T09:00:00Z")

	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "someoneelse", Name: "Foreign", Description: "d"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, err := repo.ListTasksByOwner(ctx, "uid42")
	if err != nil {
		t.Fatalf("ListTasksByOwner: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[0].ID != newer.ID || tasks[1].ID != older.ID {
		t.Fatalf("order = %s, %s, want newest first", tasks[0].ID, tasks[1].ID)
	}

	t.Run("query carries the owner filter and ordering", func(t *testing.T) {
		sq, _ := store.lastQuery["structuredQuery"].(map[string]any)
		if sq == nil {
			t.Fatal("no structuredQuery captured")
		}
		if store.queryOwnerFilter() != "uid42" {
			t.Fatalf("owner filter = %q", store.queryOwnerFilter())
		}
		orderBy, _ := sq["orderBy"].([]any)
		if len(orderBy) != 1 {
			t.Fatalf("orderBy = %v", orderBy)
		}
		clause, _ := orderBy[0].(map[string]any)
		field, _ := clause["field"].(map[string]any)
		if field["fieldPath"] != "createdAtUtc" || clause["direction"] != "DESCENDING" {
			t.Fatalf("orderBy clause = %v", clause)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	store := newStubStore("tasks")
	repo := newTestRepo(t, store)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "uid42", Name: "Old", Description: "Old."})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: created.ID, Name: "New", Description: "New."})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Name != "New" || updated.Description != "New." {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.OwnerID != created.OwnerID || updated.CreatedAtUtc != created.CreatedAtUtc {
		t.Fatalf("owner and creation time must not change: %+v", updated)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, newStubStore("tasks"))

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "uid42", Name: "Doomed", Description: "d"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != (model.Task{}) {
		t.Fatalf("task still present: %+v", got)
	}
}

// TestUpdateStoredTask drives the update usecase over the real repository:
// a task the repository itself created must update cleanly, so the minted
// document key has to satisfy the id schema rule.
func TestUpdateStoredTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, newStubStore("tasks"))
	uc := usecase.New(repo, &mockLogger{})

	created, err := uc.Create(ctx, task.CreateTaskInput{
		OwnerID:     "uid42",
		Name:        "Buy milk",
		Description: "Two liters.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := uc.Update(ctx, task.UpdateTaskInput{
		CallerID:    "uid42",
		TaskID:      created.Task.ID,
		Name:        "Buy oat milk",
		Description: "One liter.",
	})
	if err != nil {
		t.Fatalf("Update of a repository-created task failed: %v", err)
	}
	if out.Task.Name != "Buy oat milk" {
		t.Fatalf("Task = %+v", out.Task)
	}
}
