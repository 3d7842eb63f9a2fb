// Package service orchestrates the sync run: pulling rows from the
// interim sheets, transforming them, and writing whatever the store does
// not already hold.
package service

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/activity"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/cleanse"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/repository"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/transform"
)

// Migrator runs the per-row create/merge/skip decisions against the
// entity store.
type Migrator struct {
	entities    *repository.Entities
	transformer *transform.TenureTransformer
	logger      *zap.Logger
}

func NewMigrator(entities *repository.Entities, transformer *transform.TenureTransformer, logger *zap.Logger) *Migrator {
	return &Migrator{entities: entities, transformer: transformer, logger: logger}
}

// isNewReference reports whether the UH reference column marks the row
// as one the migration owns. A real UH reference means the tenure was
// migrated through the main extract and must not be touched here.
func isNewReference(uhRef string) bool {
	switch strings.TrimSpace(uhRef) {
	case "", "New Assignment", "New Build", "New RTB":
		return true
	}
	return false
}

// tenureIDForRow prefers the UH reference as the identity key and falls
// back to the payment reference, matching how the main extract keyed the
// tenures it created.
func tenureIDForRow(row source.Row) string {
	if strings.TrimSpace(row["UH Ref"]) != "" {
		return hashid.Hash(row["UH Ref"])
	}
	return hashid.Hash(row["Payment Ref"])
}

// ProcessTenureRows migrates each new-tenancy row: create the people it
// names (or merge the membership into people already migrated), create
// the tenure, keep the asset's current-tenure summary up to date, and
// attach the phone numbers.
func (m *Migrator) ProcessTenureRows(ctx context.Context, rows []source.Row, assets []source.AssetSummary) error {
	for _, row := range rows {
		m.logger.Info("processing tenure",
			zap.String("paymentRef", strings.TrimSpace(row["Payment Ref"])))
		if !isNewReference(row["UH Ref"]) {
			continue
		}

		people, phones, tenure, err := m.transformer.Transform(row, assets)
		if err != nil {
			return err
		}
		if tenure == nil {
			continue
		}

		existing, err := m.entities.GetTenure(ctx, tenure.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			m.logger.Info("tenure already migrated", zap.String("tenureId", tenure.ID))
			continue
		}

		for _, person := range people {
			stored, err := m.entities.GetPerson(ctx, person.ID)
			if err != nil {
				return err
			}
			if stored != nil {
				m.logger.Info("person found, merging tenure",
					zap.String("personId", person.ID))
				if err := m.entities.PutPerson(ctx, transform.MergePersonTenures(*stored, person)); err != nil {
					return err
				}
			} else {
				m.logger.Info("person not found, creating",
					zap.String("personId", person.ID))
				if err := m.entities.PutPerson(ctx, person); err != nil {
					return err
				}
			}
			if err := m.entities.PutActivity(ctx, activity.PersonMigrated(person)); err != nil {
				return err
			}
		}

		if err := m.updateAssetTenure(ctx, tenure); err != nil {
			return err
		}
		if err := m.entities.PutTenure(ctx, *tenure); err != nil {
			return err
		}
		if err := m.entities.PutActivity(ctx, activity.TenureMigrated(*tenure)); err != nil {
			return err
		}

		for _, phone := range phones {
			owner, err := m.entities.GetPerson(ctx, phone.TargetID)
			if err != nil {
				return err
			}
			if owner == nil {
				// Tolerated: the row otherwise migrated fine.
				m.logger.Warn("phone owner not in store, skipping contact detail",
					zap.String("personId", phone.TargetID))
				continue
			}
			if err := m.entities.PutContactDetail(ctx, phone); err != nil {
				return err
			}
			if err := m.entities.PutActivity(ctx, activity.ContactDetailsMigrated(phone)); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateAssetTenure records the tenure as the asset's current tenure,
// but only when the asset has none yet or this tenure starts strictly
// later. Rows arrive in no particular order, so the latest start date
// wins regardless of processing order.
func (m *Migrator) updateAssetTenure(ctx context.Context, tenure *domain.Tenure) error {
	asset, err := m.entities.GetAsset(ctx, tenure.TenuredAsset.ID)
	if err != nil {
		return err
	}
	if asset == nil {
		return nil
	}
	if !asset.Tenure.IsZero() && tenure.StartOfTenureDate <= asset.Tenure.StartOfTenureDate {
		return nil
	}
	asset.Tenure = domain.AssetTenure{
		ID:                tenure.ID,
		PaymentReference:  tenure.PaymentReference,
		Type:              tenure.TenureType.Description,
		StartOfTenureDate: tenure.StartOfTenureDate,
		EndOfTenureDate:   tenure.EndOfTenureDate,
	}
	return m.entities.PutAsset(ctx, *asset)
}

// alphabetic guards against placeholder words ("Unknown", "Pre Cyber
// Attack?") in the void-date column.
var alphabetic = regexp.MustCompile(`[a-zA-Z]`)

// CloseFormerTenures sets the end-of-tenure date on tenures listed in a
// former-tenants tab and propagates it to every household member's
// membership record, and to the asset while it still points at this
// tenure.
func (m *Migrator) CloseFormerTenures(ctx context.Context, rows []source.Row) error {
	for _, row := range rows {
		tenureID := tenureIDForRow(row)
		tenure, err := m.entities.GetTenure(ctx, tenureID)
		if err != nil {
			return err
		}
		if tenure == nil || alphabetic.MatchString(row["Void Date"]) {
			continue
		}

		endDate, err := cleanse.FormatDate(row["Void Date"])
		if err != nil {
			return err
		}
		m.logger.Info("closing tenure",
			zap.String("tenureId", tenureID),
			zap.String("endDate", endDate))
		tenure.EndOfTenureDate = &endDate
		if err := m.entities.PutTenure(ctx, *tenure); err != nil {
			return err
		}
		if err := m.updateHouseholdEndDates(ctx, tenure.HouseholdMembers, tenureID, endDate); err != nil {
			return err
		}

		asset, err := m.entities.GetAsset(ctx, tenure.TenuredAsset.ID)
		if err != nil {
			return err
		}
		if asset != nil && asset.Tenure.ID == tenure.ID {
			asset.Tenure.EndOfTenureDate = tenure.EndOfTenureDate
			if err := m.entities.PutAsset(ctx, *asset); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateHouseholdEndDates stamps the end date on the matching tenure
// membership of each household member's person record.
func (m *Migrator) updateHouseholdEndDates(ctx context.Context, members []domain.HouseholdMember, tenureID, endDate string) error {
	for _, member := range members {
		person, err := m.entities.GetPerson(ctx, member.ID)
		if err != nil {
			return err
		}
		if person == nil {
			continue
		}
		for i := range person.Tenures {
			if person.Tenures[i].ID == tenureID {
				person.Tenures[i].EndDate = &endDate
			}
		}
		if err := m.entities.PutPerson(ctx, *person); err != nil {
			return err
		}
	}
	return nil
}
