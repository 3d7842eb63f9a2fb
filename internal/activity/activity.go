// Package activity builds the audit events written alongside every
// migrated entity. Event ids derive from the action and its targets, so
// replaying a migration rewrites the same events rather than duplicating
// them.
package activity

import (
	"encoding/json"
	"time"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
)

// importAuthor marks records created by migration rather than by a user.
var importAuthor = domain.AuthorDetails{FullName: "Import"}

var now = time.Now

func createdAt() string {
	return now().Format("2006-01-02T15:04:05")
}

// PersonMigrated returns the event recording a person create or merge.
func PersonMigrated(person domain.Person) domain.Activity {
	return domain.Activity{
		ID:            hashid.Hash("migrate" + "person" + person.ID),
		Type:          "migrate",
		TargetType:    "person",
		TargetID:      person.ID,
		CreatedAt:     createdAt(),
		AuthorDetails: importAuthor,
	}
}

// TenureMigrated returns the event recording a tenure create.
func TenureMigrated(tenure domain.Tenure) domain.Activity {
	return domain.Activity{
		ID:            hashid.Hash("migrate" + "tenure" + tenure.ID),
		Type:          "migrate",
		TargetType:    "tenure",
		TargetID:      tenure.ID,
		CreatedAt:     createdAt(),
		AuthorDetails: importAuthor,
	}
}

// contactDetailsNewData is the payload attached to a contact-detail
// event; the event targets the person, so the detail id rides along.
type contactDetailsNewData struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// ContactDetailsMigrated returns the event recording a phone create.
func ContactDetailsMigrated(detail domain.ContactDetail) domain.Activity {
	newData, _ := json.Marshal(contactDetailsNewData{
		ID:    detail.ID,
		Value: detail.ContactInformation.Value,
	})
	return domain.Activity{
		ID:            hashid.Hash("migrate" + "contactDetails" + detail.ID + detail.TargetID),
		Type:          "migrate",
		TargetType:    "contactDetails",
		TargetID:      detail.TargetID,
		CreatedAt:     createdAt(),
		NewData:       newData,
		AuthorDetails: importAuthor,
	}
}
