package domain

import (
	"context"
	"time"
)

// GuestType is the "Guest Type" select value stored for every guest row.
type GuestType string

const (
	GuestTypePrimary GuestType = "Primary"
	GuestTypeFriend  GuestType = "Friend"
)

// UnknownGuestName is used for friends submitted without a name.
const UnknownGuestName = "Unknown"

// Contact is one entry of a submission's formData list.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	About string `json:"about"`
}

// Submission is a parsed RSVP form. The first FormData entry is the primary contact.
type Submission struct {
	Day      string    `json:"day"`
	FormData []Contact `json:"formData"`
}

// Primary returns the submitting contact.
func (s *Submission) Primary() Contact {
	return s.FormData[0]
}

// Friends returns every entry after the primary contact.
func (s *Submission) Friends() []Contact {
	return s.FormData[1:]
}

// GuestRecord is a contact mapped to the record store's schema, ready to be created.
type GuestRecord struct {
	Name               string    `json:"name"`
	Day                string    `json:"day" validate:"required,capitalized"`
	GuestType          GuestType `json:"guestType" validate:"oneof=Primary Friend"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	About              string    `json:"about,omitempty"`
	PrimaryContactName string    `json:"primaryContactName,omitempty"`
	GuestNames         []string  `json:"guestNames,omitempty"`
}

// CreatedRecord is what the record store returns for a newly created row.
type CreatedRecord struct {
	ID          string      `json:"id"`
	URL         string      `json:"url,omitempty"`
	CreatedTime time.Time   `json:"createdTime"`
	Record      GuestRecord `json:"record"`
}

// DatabaseDescriptor describes the target database as reported by the record store.
type DatabaseDescriptor struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// RSVPResult holds every row created for one submission.
type RSVPResult struct {
	Primary CreatedRecord   `json:"primary"`
	Friends []CreatedRecord `json:"friends"`
}

// RecordStore is the hosted database that keeps one row per guest.
type RecordStore interface {
	RetrieveDatabase(ctx context.Context, databaseID string) (*DatabaseDescriptor, error)
	CreateRecord(ctx context.Context, databaseID string, record GuestRecord) (*CreatedRecord, error)
}

// RSVPUsecase validates a raw submission body and persists its guests.
type RSVPUsecase interface {
	Submit(ctx context.Context, body []byte) (*RSVPResult, error)
}
