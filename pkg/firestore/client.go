// Package firestore is a small Firestore REST v1 client covering the document
// operations this service needs: point reads, create-if-absent, masked
// updates, deletes and single-collection queries.
package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	defaultBaseURL = "https://firestore.googleapis.com/v1"
	scope          = "https://www.googleapis.com/auth/datastore"
)

// Sentinel errors callers can test with errors.Is.
var (
	ErrNotFound      = errors.New("firestore: document not found")
	ErrAlreadyExists = errors.New("firestore: document already exists")
)

// Config configures a Client.
type Config struct {
	ProjectID  string
	DatabaseID string // "(default)" when empty

	// CredentialsFile is a service-account JSON key. When empty, Application
	// Default Credentials are used.
	CredentialsFile string

	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string

	// HTTPClient overrides the authenticated client, used by tests.
	HTTPClient *http.Client
}

// Client is the Firestore REST client.
type Client struct {
	baseURL    string
	parent     string // projects/{p}/databases/{db}/documents
	httpClient *http.Client
}

// NewClient builds an authenticated client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("firestore: project id is required")
	}
	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = "(default)"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		var err error
		httpClient, err = newAuthenticatedClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		baseURL:    baseURL,
		parent:     fmt.Sprintf("projects/%s/databases/%s/documents", cfg.ProjectID, databaseID),
		httpClient: httpClient,
	}, nil
}

func newAuthenticatedClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials: %w", err)
		}
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}
	client, err := google.DefaultClient(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to build default credentials client: %w", err)
	}
	return client, nil
}

// GetDocument fetches one document by collection and key. Returns ErrNotFound
// when the document does not exist.
func (c *Client) GetDocument(ctx context.Context, collection, docID string) (*Document, error) {
	u := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.parent, collection, url.PathEscape(docID))

	var doc Document
	if err := c.do(ctx, http.MethodGet, u, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDocument creates a document with an explicit key. The write is an
// atomic check-and-create: if a document already exists under the key the
// call fails with ErrAlreadyExists.
func (c *Client) CreateDocument(ctx context.Context, collection, docID string, fields map[string]Value) (*Document, error) {
	u := fmt.Sprintf("%s/%s/%s?documentId=%s", c.baseURL, c.parent, collection, url.QueryEscape(docID))

	var doc Document
	if err := c.do(ctx, http.MethodPost, u, Document{Fields: fields}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// PatchDocument updates the masked fields of an existing document. The write
// is unconditional, last-writer-wins. Returns ErrNotFound when the document
// does not exist.
func (c *Client) PatchDocument(ctx context.Context, collection, docID string, fields map[string]Value, mask []string) (*Document, error) {
	q := url.Values{}
	for _, path := range mask {
		q.Add("updateMask.fieldPaths", path)
	}
	q.Set("currentDocument.exists", "true")
	u := fmt.Sprintf("%s/%s/%s/%s?%s", c.baseURL, c.parent, collection, url.PathEscape(docID), q.Encode())

	var doc Document
	if err := c.do(ctx, http.MethodPatch, u, Document{Fields: fields}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document. Deleting an absent document is not an
// error.
func (c *Client) DeleteDocument(ctx context.Context, collection, docID string) error {
	u := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.parent, collection, url.PathEscape(docID))
	return c.do(ctx, http.MethodDelete, u, nil, nil)
}

// RunQuery executes an equality query over a single collection and returns
// the matching documents in query order.
func (c *Client) RunQuery(ctx context.Context, query Query) ([]Document, error) {
	u := fmt.Sprintf("%s/%s:runQuery", c.baseURL, c.parent)

	sq := structuredQuery{
		From:  []collectionSelector{{CollectionID: query.Collection}},
		Limit: query.Limit,
	}
	switch len(query.Where) {
	case 0:
	case 1:
		sq.Where = &filter{FieldFilter: &fieldFilter{
			Field: fieldReference{FieldPath: query.Where[0].Field},
			Op:    "EQUAL",
			Value: query.Where[0].Value,
		}}
	default:
		composite := &compositeFilter{Op: "AND"}
		for _, ff := range query.Where {
			composite.Filters = append(composite.Filters, filter{FieldFilter: &fieldFilter{
				Field: fieldReference{FieldPath: ff.Field},
				Op:    "EQUAL",
				Value: ff.Value,
			}})
		}
		sq.Where = &filter{CompositeFilter: composite}
	}
	for _, o := range query.OrderBy {
		direction := "ASCENDING"
		if o.Descending {
			direction = "DESCENDING"
		}
		sq.OrderBy = append(sq.OrderBy, order{
			Field:     fieldReference{FieldPath: o.Field},
			Direction: direction,
		})
	}

	var results []runQueryResult
	if err := c.do(ctx, http.MethodPost, u, runQueryRequest{StructuredQuery: sq}, &results); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(results))
	for _, r := range results {
		if r.Document != nil {
			docs = append(docs, *r.Document)
		}
	}
	return docs, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call firestore API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	}

	var status statusBody
	if err := json.Unmarshal(data, &status); err == nil && status.Error.Status != "" {
		if status.Error.Status == "ALREADY_EXISTS" {
			return ErrAlreadyExists
		}
		if status.Error.Status == "NOT_FOUND" {
			return ErrNotFound
		}
		return fmt.Errorf("firestore API error: %d %s: %s", resp.StatusCode, status.Error.Status, status.Error.Message)
	}
	return fmt.Errorf("firestore API error: %d", resp.StatusCode)
}
