// Package domain defines the target entity documents written to the
// housing platform store. Field names and json tags follow the platform
// API schemas; documents round-trip through the store as JSON.
package domain

// PersonTenure is one tenure held by a person, embedded in the person
// document. A person accumulates tenures over time; memberships are
// appended, never replaced.
type PersonTenure struct {
	ID                string  `json:"id"`
	PaymentReference  string  `json:"paymentReference"`
	Type              string  `json:"type"`
	StartDate         string  `json:"startDate"`
	EndDate           *string `json:"endDate"`
	AssetFullAddress  string  `json:"assetFullAddress"`
	UPRN              string  `json:"uprn"`
	PropertyReference string  `json:"propertyReference"`
	AssetID           string  `json:"assetId"`
}

// Person is the person document. The id is a pure function of
// lower-cased surname + lower-cased first name + date of birth, so the
// same human named on several tabs collapses to one record.
type Person struct {
	ID                  string         `json:"id"`
	PreferredTitle      string         `json:"preferredTitle"`
	Title               string         `json:"title"`
	PreferredFirstName  string         `json:"preferredFirstName"`
	FirstName           string         `json:"firstName"`
	PreferredMiddleName string         `json:"preferredMiddleName"`
	MiddleName          string         `json:"middleName"`
	PreferredSurname    string         `json:"preferredSurname"`
	Surname             string         `json:"surname"`
	PlaceOfBirth        string         `json:"placeOfBirth"`
	DateOfBirth         string         `json:"dateOfBirth"`
	PersonTypes         []string       `json:"personTypes"`
	Tenures             []PersonTenure `json:"tenures"`
	LastModified        string         `json:"lastModified"`
}
