package notion

import (
	"strings"

	"github.com/jomei/notionapi"

	"rsvp-backend/internal/domain"
)

// Database column names.
const (
	PropertyName           = "Name"
	PropertyDay            = "Day"
	PropertyGuestType      = "Guest Type"
	PropertyEmail          = "Email"
	PropertyPhone          = "Phone"
	PropertyAbout          = "About"
	PropertyPrimaryContact = "Primary Contact"
	PropertyGuests         = "Guests"
)

// UnnamedGuestTitle is stored as the row title when a guest has an empty name.
const UnnamedGuestTitle = "Unnamed Guest"

// BuildProperties maps a guest record onto the database schema. Optional
// columns are left out entirely when their value is empty so that Notion
// keeps them unset rather than storing an empty value.
func BuildProperties(record domain.GuestRecord) notionapi.Properties {
	title := record.Name
	if title == "" {
		title = UnnamedGuestTitle
	}

	props := notionapi.Properties{
		PropertyName: notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: richText(title),
		},
		PropertyDay: notionapi.SelectProperty{
			Type:   notionapi.PropertyTypeSelect,
			Select: notionapi.Option{Name: record.Day},
		},
		PropertyGuestType: notionapi.SelectProperty{
			Type:   notionapi.PropertyTypeSelect,
			Select: notionapi.Option{Name: string(record.GuestType)},
		},
	}

	if record.Email != "" {
		props[PropertyEmail] = notionapi.EmailProperty{
			Type:  notionapi.PropertyTypeEmail,
			Email: record.Email,
		}
	}
	if record.Phone != "" {
		props[PropertyPhone] = notionapi.PhoneNumberProperty{
			Type:        notionapi.PropertyTypePhoneNumber,
			PhoneNumber: record.Phone,
		}
	}
	if record.About != "" {
		props[PropertyAbout] = notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(record.About),
		}
	}
	if record.PrimaryContactName != "" {
		props[PropertyPrimaryContact] = notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(record.PrimaryContactName),
		}
	}
	if len(record.GuestNames) > 0 {
		props[PropertyGuests] = notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(strings.Join(record.GuestNames, ", ")),
		}
	}

	return props
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}}
}
