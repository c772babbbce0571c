package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"rsvp-backend/config"
	"rsvp-backend/internal/domain"
	"rsvp-backend/pkg/apperror"
	"rsvp-backend/pkg/metrics"
	"rsvp-backend/pkg/validation"
)

var (
	requiredSubmissionFields = []string{"day", "formData"}
	requiredPrimaryFields    = []string{"name", "email", "phone", "about"}
)

type rsvpUsecase struct {
	cfg      *config.Config
	store    domain.RecordStore
	validate *validator.Validate
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewRSVPUsecase wires the RSVP flow. validate should come from validation.New;
// the guest record rules are registered on it here.
func NewRSVPUsecase(cfg *config.Config, store domain.RecordStore, validate *validator.Validate, m *metrics.Metrics, log *slog.Logger) domain.RSVPUsecase {
	validate.RegisterStructValidation(guestRecordRules, domain.GuestRecord{})
	return &rsvpUsecase{
		cfg:      cfg,
		store:    store,
		validate: validate,
		metrics:  m,
		log:      log,
	}
}

// Submit validates the body, creates the primary guest row and then each friend
// row in order. Creation stops at the first failure; rows already created stay
// in the store.
func (uc *rsvpUsecase) Submit(ctx context.Context, body []byte) (*domain.RSVPResult, error) {
	uc.log.DebugContext(ctx, "Received RSVP request", "shape", payloadShape(body))

	submission, err := ParseSubmission(body)
	if err != nil {
		uc.log.WarnContext(ctx, "Validation error", "error", err, "shape", payloadShape(body))
		uc.metrics.ObserveSubmission(metrics.OutcomeValidationError)
		return nil, err
	}

	primary, friends := BuildGuestRecords(submission)
	for _, record := range append([]domain.GuestRecord{primary}, friends...) {
		if err := uc.validate.Struct(record); err != nil {
			msg := strings.Join(validation.FormatValidationErrors(err), "; ")
			uc.log.ErrorContext(ctx, "Guest record failed validation", "error", msg, "record", record)
			uc.metrics.ObserveSubmission(metrics.OutcomeInternalError)
			return nil, apperror.Internal(fmt.Errorf("invalid guest record: %s", msg))
		}
	}

	createdPrimary, err := uc.create(ctx, primary)
	if err != nil {
		return nil, err
	}

	createdFriends := make([]domain.CreatedRecord, 0, len(friends))
	for _, friend := range friends {
		created, err := uc.create(ctx, friend)
		if err != nil {
			uc.log.ErrorContext(ctx, "RSVP partially stored",
				"primary", primary.Name,
				"friends_created", len(createdFriends),
				"friends_total", len(friends),
			)
			return nil, err
		}
		createdFriends = append(createdFriends, *created)
	}

	uc.log.InfoContext(ctx, "Successfully processed RSVP", "primary", primary.Name, "friends", len(createdFriends))
	uc.metrics.ObserveSubmission(metrics.OutcomeSuccess)

	return &domain.RSVPResult{
		Primary: *createdPrimary,
		Friends: createdFriends,
	}, nil
}

func (uc *rsvpUsecase) create(ctx context.Context, record domain.GuestRecord) (*domain.CreatedRecord, error) {
	created, err := uc.store.CreateRecord(ctx, uc.cfg.NotionDatabaseID, record)
	if err != nil {
		uc.log.ErrorContext(ctx, "Failed to create Notion page", "error", err, "record", record)
		uc.metrics.ObserveSubmission(metrics.OutcomeStoreError)
		return nil, apperror.ExternalStore(fmt.Sprintf("Failed to create Notion page: %v", err), err)
	}

	uc.log.InfoContext(ctx, "Successfully created Notion page", "name", record.Name, "guest_type", record.GuestType)
	uc.metrics.ObserveRecordCreated(string(record.GuestType))
	return created, nil
}

// ParseSubmission checks the raw body and decodes it. Key presence is checked
// separately from value emptiness: the primary contact must carry all four
// contact keys, but their values may be empty strings.
func ParseSubmission(body []byte) (*domain.Submission, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, apperror.Validation("No data provided")
	}

	if missing := missingKeys(fields, requiredSubmissionFields); len(missing) > 0 {
		return nil, apperror.Validation("Missing required fields: " + formatFieldList(missing))
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(fields["formData"], &entries); err != nil || len(entries) == 0 {
		return nil, apperror.Validation("formData must be a non-empty array")
	}

	var day *string
	if err := json.Unmarshal(fields["day"], &day); err != nil || day == nil || *day == "" {
		return nil, apperror.Validation("day must be a non-empty string")
	}

	submission := &domain.Submission{
		Day:      *day,
		FormData: make([]domain.Contact, 0, len(entries)),
	}

	for i, raw := range entries {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entry); err != nil || entry == nil {
			return nil, apperror.Validation(fmt.Sprintf("formData[%d] must be an object", i))
		}

		if i == 0 {
			if missing := missingKeys(entry, requiredPrimaryFields); len(missing) > 0 {
				return nil, apperror.Validation("Missing required fields for primary contact: " + formatFieldList(missing))
			}
		}

		contact, err := decodeContact(i, entry)
		if err != nil {
			return nil, err
		}
		submission.FormData = append(submission.FormData, contact)
	}

	return submission, nil
}

// BuildGuestRecords maps a submission to one primary record and one record per friend.
func BuildGuestRecords(s *domain.Submission) (domain.GuestRecord, []domain.GuestRecord) {
	day := validation.Capitalize(s.Day)
	primaryContact := s.Primary()

	friends := make([]domain.GuestRecord, 0, len(s.Friends()))
	guestNames := make([]string, 0, len(s.Friends()))
	for _, c := range s.Friends() {
		name := c.Name
		if name == "" {
			name = domain.UnknownGuestName
		}
		guestNames = append(guestNames, name)
		friends = append(friends, domain.GuestRecord{
			Name:               name,
			Day:                day,
			GuestType:          domain.GuestTypeFriend,
			Email:              c.Email,
			Phone:              c.Phone,
			About:              c.About,
			PrimaryContactName: primaryContact.Name,
		})
	}

	primary := domain.GuestRecord{
		Name:       primaryContact.Name,
		Day:        day,
		GuestType:  domain.GuestTypePrimary,
		Email:      primaryContact.Email,
		Phone:      primaryContact.Phone,
		About:      primaryContact.About,
		GuestNames: guestNames,
	}

	return primary, friends
}

func decodeContact(index int, entry map[string]json.RawMessage) (domain.Contact, error) {
	var c domain.Contact
	targets := map[string]*string{
		"name":  &c.Name,
		"email": &c.Email,
		"phone": &c.Phone,
		"about": &c.About,
	}

	for _, key := range requiredPrimaryFields {
		raw, ok := entry[key]
		if !ok {
			continue
		}
		// null is treated like an absent value
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			return c, apperror.Validation(fmt.Sprintf("formData[%d].%s must be a string", index, key))
		}
		if value != nil {
			*targets[key] = *value
		}
	}

	return c, nil
}

func missingKeys(fields map[string]json.RawMessage, required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// formatFieldList renders keys as ['day', 'formData'].
func formatFieldList(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = "'" + f + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// payloadShape summarizes a body for logs without echoing contact details.
func payloadShape(body []byte) map[string]any {
	shape := map[string]any{"bytes": len(body)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		shape["json"] = false
		return shape
	}

	shape["keys"] = slices.Sorted(maps.Keys(fields))

	var entries []json.RawMessage
	if err := json.Unmarshal(fields["formData"], &entries); err == nil {
		shape["formData"] = len(entries)
	}
	return shape
}

func guestRecordRules(sl validator.StructLevel) {
	record := sl.Current().Interface().(domain.GuestRecord)

	switch record.GuestType {
	case domain.GuestTypePrimary:
		if record.PrimaryContactName != "" {
			sl.ReportError(record.PrimaryContactName, "PrimaryContactName", "primaryContactName", "excluded_for_primary", "")
		}
	case domain.GuestTypeFriend:
		if len(record.GuestNames) > 0 {
			sl.ReportError(record.GuestNames, "GuestNames", "guestNames", "excluded_for_friend", "")
		}
	}
}
