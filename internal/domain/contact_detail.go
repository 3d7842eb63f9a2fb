package domain

import "encoding/json"

// ContactInformation is the value block of a contact-detail document.
type ContactInformation struct {
	ContactType     string          `json:"contactType"`
	SubType         string          `json:"subType"`
	Value           string          `json:"value"`
	Description     string          `json:"description"`
	AddressExtended json.RawMessage `json:"addressExtended"`
}

// SourceServiceArea tags the service area a contact detail came from.
type SourceServiceArea struct {
	Area      string `json:"area"`
	IsDefault bool   `json:"isDefault"`
}

// CreatedBy is the audit stamp on a contact-detail document.
type CreatedBy struct {
	CreatedAt    string `json:"createdAt"`
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
}

// ContactDetail is a phone number owned by a person. TargetID is the
// owning person's id.
type ContactDetail struct {
	ID                 string             `json:"id"`
	TargetID           string             `json:"targetId"`
	TargetType         string             `json:"targetType"`
	ContactInformation ContactInformation `json:"contactInformation"`
	SourceServiceArea  SourceServiceArea  `json:"sourceServiceArea"`
	RecordValidUntil   *string            `json:"recordValidUntil"`
	IsActive           bool               `json:"isActive"`
	CreatedBy          CreatedBy          `json:"createdBy"`
	LastModified       string             `json:"lastModified"`
}
