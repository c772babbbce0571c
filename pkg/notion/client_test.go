package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-backend/internal/domain"
)

// rewriteTransport sends every request to the test server instead of api.notion.com.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	httpClient := &http.Client{Transport: rewriteTransport{target: target}}
	return NewClient("secret_test", notionapi.WithHTTPClient(httpClient))
}

func TestCreateRecord(t *testing.T) {
	var captured map[string]json.RawMessage

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/pages"))
		assert.Equal(t, "Bearer secret_test", r.Header.Get("Authorization"))

		var body struct {
			Parent     map[string]any             `json:"parent"`
			Properties map[string]json.RawMessage `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "db-123", body.Parent["database_id"])
		captured = body.Properties

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "page",
			"id": "page-1",
			"created_time": "2024-05-01T10:00:00.000Z",
			"url": "https://www.notion.so/page-1",
			"properties": {}
		}`))
	})

	record := domain.GuestRecord{
		Name:               "Grace",
		Day:                "Friday",
		GuestType:          domain.GuestTypeFriend,
		PrimaryContactName: "Ada",
	}
	created, err := client.CreateRecord(context.Background(), "db-123", record)
	require.NoError(t, err)

	assert.Equal(t, "page-1", created.ID)
	assert.Equal(t, "https://www.notion.so/page-1", created.URL)
	assert.Equal(t, record, created.Record)
	assert.Equal(t, 2024, created.CreatedTime.Year())

	assert.Contains(t, captured, PropertyName)
	assert.Contains(t, captured, PropertyDay)
	assert.Contains(t, captured, PropertyGuestType)
	assert.Contains(t, captured, PropertyPrimaryContact)
	assert.NotContains(t, captured, PropertyEmail)
	assert.NotContains(t, captured, PropertyPhone)
	assert.NotContains(t, captured, PropertyAbout)
}

func TestCreateRecordAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"object":"error","status":400,"code":"validation_error","message":"Day is not a property that exists."}`))
	})

	_, err := client.CreateRecord(context.Background(), "db-123", domain.GuestRecord{Name: "Ada", Day: "Friday", GuestType: domain.GuestTypePrimary})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Day is not a property that exists.")
}

func TestRetrieveDatabase(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/databases/db-123"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "database",
			"id": "db-123",
			"url": "https://www.notion.so/db-123",
			"title": [{"type": "text", "text": {"content": "RSVPs"}, "plain_text": "RSVPs"}],
			"properties": {}
		}`))
	})

	db, err := client.RetrieveDatabase(context.Background(), "db-123")
	require.NoError(t, err)
	assert.Equal(t, "db-123", db.ID)
	assert.Equal(t, "RSVPs", db.Title)
}

func TestUnconfiguredClientMakesNoCalls(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient("").RetrieveDatabase(ctx, "db-123")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewClient("secret").CreateRecord(ctx, "", domain.GuestRecord{})
	assert.ErrorIs(t, err, ErrMissingDatabaseID)
}
