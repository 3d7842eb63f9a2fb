package transform

import "github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"

// MergePersonTenures adds the interim person's tenure membership to a
// person already in the store. The membership is appended only when its
// id is new; existing memberships are never mutated or removed, so the
// merge is idempotent.
func MergePersonTenures(stored domain.Person, interim domain.Person) domain.Person {
	if len(interim.Tenures) == 0 {
		return stored
	}
	incoming := interim.Tenures[0]
	for _, tenure := range stored.Tenures {
		if tenure.ID == incoming.ID {
			return stored
		}
	}
	merged := stored
	merged.Tenures = make([]domain.PersonTenure, 0, len(stored.Tenures)+1)
	merged.Tenures = append(merged.Tenures, stored.Tenures...)
	merged.Tenures = append(merged.Tenures, incoming)
	return merged
}
