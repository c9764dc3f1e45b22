package firestore_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskdesk/pkg/firestore"
)

const parent = "/projects/test-project/databases/(default)/documents"

func newTestClient(t *testing.T, handler http.Handler) *firestore.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := firestore.NewClient(context.Background(), firestore.Config{
		ProjectID:  "test-project",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func writeStatus(w http.ResponseWriter, httpCode int, status string) {
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": httpCode, "status": status, "message": status},
	})
}

func TestGetDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(parent+"/tasks/t1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		json.NewEncoder(w).Encode(firestore.Document{
			Name: "projects/test-project/databases/(default)/documents/tasks/t1",
			Fields: map[string]firestore.Value{
				"name": firestore.String("Buy milk"),
			},
		})
	})
	mux.HandleFunc(parent+"/tasks/missing", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, "NOT_FOUND")
	})

	client := newTestClient(t, mux)

	t.Run("existing document", func(t *testing.T) {
		doc, err := client.GetDocument(context.Background(), "tasks", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.ID() != "t1" {
			t.Fatalf("ID = %q, want t1", doc.ID())
		}
		if doc.GetString("name") != "Buy milk" {
			t.Fatalf("name = %q", doc.GetString("name"))
		}
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := client.GetDocument(context.Background(), "tasks", "missing")
		if !errors.Is(err, firestore.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(parent+"/users/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected path %s", r.URL.Path)
	})
	mux.HandleFunc(parent+"/users", func(w http.ResponseWriter, r *http.Request) {
		docID := r.URL.Query().Get("documentId")
		if docID == "taken" {
			writeStatus(w, http.StatusConflict, "ALREADY_EXISTS")
			return
		}

		var body firestore.Document
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(firestore.Document{
			Name:   "projects/test-project/databases/(default)/documents/users/" + docID,
			Fields: body.Fields,
		})
	})

	client := newTestClient(t, mux)
	fields := map[string]firestore.Value{"email": firestore.String("ada@example.com")}

	t.Run("fresh key", func(t *testing.T) {
		doc, err := client.CreateDocument(context.Background(), "users", "uid42", fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.ID() != "uid42" {
			t.Fatalf("ID = %q", doc.ID())
		}
	})

	t.Run("occupied key", func(t *testing.T) {
		_, err := client.CreateDocument(context.Background(), "users", "taken", fields)
		if !errors.Is(err, firestore.ErrAlreadyExists) {
			t.Fatalf("error = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestPatchDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(parent+"/tasks/t1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query()["updateMask.fieldPaths"]; len(got) != 2 {
			t.Errorf("updateMask = %v, want two paths", got)
		}
		if r.URL.Query().Get("currentDocument.exists") != "true" {
			t.Error("patch must be conditional on existence")
		}

		var body firestore.Document
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(firestore.Document{
			Name:   "projects/test-project/databases/(default)/documents/tasks/t1",
			Fields: body.Fields,
		})
	})

	client := newTestClient(t, mux)

	doc, err := client.PatchDocument(context.Background(), "tasks", "t1",
		map[string]firestore.Value{
			"name":        firestore.String("New"),
			"description": firestore.String("Newer"),
		},
		[]string{"name", "description"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GetString("name") != "New" {
		t.Fatalf("name = %q", doc.GetString("name"))
	}
}

func TestRunQuery(t *testing.T) {
	var gotQuery map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc(parent+":runQuery", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotQuery)

		docs := []map[string]any{
			{"document": firestore.Document{Name: "a/b/tasks/t2"}},
			{"readTime": "2026-08-28T10:00:00Z"}, // result with no document
			{"document": firestore.Document{Name: "a/b/tasks/t1"}},
		}
		json.NewEncoder(w).Encode(docs)
	})

	client := newTestClient(t, mux)

	docs, err := client.RunQuery(context.Background(), firestore.Query{
		Collection: "tasks",
		Where:      []firestore.FieldFilter{{Field: "ownerId", Value: firestore.String("uid42")}},
		OrderBy:    []firestore.Order{{Field: "createdAtUtc", Descending: true}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2 (document-less results skipped)", len(docs))
	}
	if docs[0].ID() != "t2" || docs[1].ID() != "t1" {
		t.Fatalf("order = %s, %s", docs[0].ID(), docs[1].ID())
	}

	sq, _ := gotQuery["structuredQuery"].(map[string]any)
	if sq == nil {
		t.Fatal("request carried no structuredQuery")
	}
	if _, ok := sq["where"]; !ok {
		t.Fatal("request carried no where clause")
	}
	if _, ok := sq["orderBy"]; !ok {
		t.Fatal("request carried no orderBy clause")
	}
}

func TestDeleteDocument(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc(parent+"/tasks/t1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		deleted = true
		w.Write([]byte("{}"))
	})

	client := newTestClient(t, mux)

	if err := client.DeleteDocument(context.Background(), "tasks", "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("delete never reached the API")
	}
}
