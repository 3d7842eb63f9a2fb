package domain

import "encoding/json"

// AuthorDetails identifies who caused an activity-history event.
// Migration writes use the fixed "Import" author, which is how migrated
// records are told apart from normal user actions.
type AuthorDetails struct {
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
}

// Activity is an immutable activity-history event. Ids are derived from
// the action and its targets, so re-running the migration produces the
// same event ids and the writes stay idempotent.
type Activity struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	TargetType          string          `json:"targetType"`
	TargetID            string          `json:"targetId"`
	CreatedAt           string          `json:"createdAt"`
	TimeToLiveForRecord int             `json:"timeToLiveForRecord"`
	OldData             json.RawMessage `json:"oldData"`
	NewData             json.RawMessage `json:"newData"`
	AuthorDetails       AuthorDetails   `json:"authorDetails"`
}
