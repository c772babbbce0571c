package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"rsvp-backend/internal/domain"
)

var (
	ErrMissingToken      = errors.New("notion: API key is not configured")
	ErrMissingDatabaseID = errors.New("notion: database ID is not configured")
)

// Client is the record store backed by a Notion database.
type Client struct {
	api        *notionapi.Client
	configured bool
}

// NewClient creates a Notion client authenticated with apiKey. Calls fail
// without touching the network while apiKey is empty.
func NewClient(apiKey string, opts ...notionapi.ClientOption) *Client {
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(apiKey), opts...),
		configured: apiKey != "",
	}
}

// RetrieveDatabase reads the database metadata; used as a reachability probe.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*domain.DatabaseDescriptor, error) {
	if err := c.check(databaseID); err != nil {
		return nil, err
	}

	db, err := c.api.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return nil, fmt.Errorf("retrieve database %s: %w", databaseID, err)
	}

	return &domain.DatabaseDescriptor{
		ID:    db.ID.String(),
		Title: plainText(db.Title),
		URL:   db.URL,
	}, nil
}

// CreateRecord creates one page (row) in the database for the given guest.
func (c *Client) CreateRecord(ctx context.Context, databaseID string, record domain.GuestRecord) (*domain.CreatedRecord, error) {
	if err := c.check(databaseID); err != nil {
		return nil, err
	}

	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: BuildProperties(record),
	})
	if err != nil {
		return nil, err
	}

	return &domain.CreatedRecord{
		ID:          page.ID.String(),
		URL:         page.URL,
		CreatedTime: page.CreatedTime,
		Record:      record,
	}, nil
}

func (c *Client) check(databaseID string) error {
	if !c.configured {
		return ErrMissingToken
	}
	if databaseID == "" {
		return ErrMissingDatabaseID
	}
	return nil
}

func plainText(rich []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range rich {
		if rt.PlainText != "" {
			b.WriteString(rt.PlainText)
		} else if rt.Text != nil {
			b.WriteString(rt.Text.Content)
		}
	}
	return b.String()
}
