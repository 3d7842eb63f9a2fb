package transform

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/cleanse"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
)

// timestampLayout is second-resolution local time, matching the
// lastModified stamps on records migrated so far.
const timestampLayout = "2006-01-02T15:04:05"

// TenureTransformer turns one tenancy row into the people, phone
// contact details and tenure entity it describes.
type TenureTransformer struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTenureTransformer(logger *zap.Logger) *TenureTransformer {
	return &TenureTransformer{logger: logger, now: time.Now}
}

// Transform cleanses and maps a tenancy row. The returned tenure is nil
// when the row names no qualifying people (companies and placeholders
// are filtered out); such rows must not produce any write.
func (t *TenureTransformer) Transform(row source.Row, assets []source.AssetSummary) ([]domain.Person, []domain.ContactDetail, *domain.Tenure, error) {
	details, found := ResolveAsset(assets, row["Property Ref"])
	if !found {
		t.logger.Debug("asset not found for tenure",
			zap.String("paymentRef", row["Payment Ref"]),
			zap.String("propertyRef", row["Property Ref"]))
	}

	dob, err := cleanse.FormatDate(row["Date of Birth"])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("date of birth for %q: %w", row["Payment Ref"], err)
	}
	startDate, err := cleanse.FormatDate(row["Tenancy Start Date"])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tenancy start date for %q: %w", row["Payment Ref"], err)
	}
	tenancyType := strings.TrimSpace(row["Tenancy Type"])
	typeCode, err := cleanse.TenureTypeCode(tenancyType)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tenancy type for %q: %w", row["Payment Ref"], err)
	}

	tenureID := hashid.Hash(row["Payment Ref"])
	now := t.now().Format(timestampLayout)

	var people []domain.Person
	var members []domain.HouseholdMember
	var phones []domain.ContactDetail
	for _, name := range cleanse.SplitTenants(row["Tenant"]) {
		if cleanse.IsNonPerson(name) {
			continue
		}
		title, firstname, surname := cleanse.DecomposeName(name)
		personID := hashid.Hash(
			strings.TrimSpace(strings.ToLower(surname)) +
				strings.TrimSpace(strings.ToLower(firstname)) + dob)

		people = append(people, domain.Person{
			ID:                 personID,
			PreferredTitle:     title,
			Title:              title,
			PreferredFirstName: firstname,
			FirstName:          firstname,
			PreferredSurname:   surname,
			Surname:            surname,
			DateOfBirth:        dob,
			PersonTypes:        []string{"Tenant"},
			Tenures: []domain.PersonTenure{{
				ID:                tenureID,
				PaymentReference:  row["Payment Ref"],
				Type:              tenancyType,
				StartDate:         startDate,
				EndDate:           nil,
				AssetFullAddress:  details.FullAddress,
				UPRN:              details.UPRN,
				PropertyReference: details.PropertyRef,
				AssetID:           details.AssetID,
			}},
			LastModified: now,
		})
		members = append(members, domain.HouseholdMember{
			ID:               personID,
			Type:             "person",
			FullName:         firstname + " " + surname,
			IsResponsible:    true,
			DateOfBirth:      dob,
			PersonTenureType: cleanse.PersonTenureType(tenancyType),
		})

		numbers := append(strings.Split(row["Home Tel"], "/"), strings.Split(row["Mobile"], "/")...)
		for _, number := range numbers {
			value := strings.TrimSpace(number)
			if value == "" {
				continue
			}
			subType := "landline"
			if strings.HasPrefix(value, "07") {
				subType = "mobile"
			}
			phones = append(phones, domain.ContactDetail{
				ID:         hashid.Hash(number),
				TargetID:   personID,
				TargetType: "person",
				ContactInformation: domain.ContactInformation{
					ContactType: "phone",
					SubType:     subType,
					Value:       value,
				},
				SourceServiceArea: domain.SourceServiceArea{
					Area:      "Housing",
					IsDefault: true,
				},
				IsActive: true,
				CreatedBy: domain.CreatedBy{
					CreatedAt: now,
					FullName:  "Import",
				},
				LastModified: now,
			})
		}
	}

	if len(members) == 0 {
		return people, phones, nil, nil
	}

	tenure := &domain.Tenure{
		ID:               tenureID,
		PaymentReference: row["Payment Ref"],
		HouseholdMembers: members,
		TenuredAsset: domain.TenuredAsset{
			ID:          details.AssetID,
			FullAddress: details.FullAddress,
			UPRN:        details.UPRN,
			Type:        details.AssetType,
		},
		StartOfTenureDate: startDate,
		EndOfTenureDate:   nil,
		TenureType: domain.TenureType{
			Code:        typeCode,
			Description: tenancyType,
		},
		Terminated:       domain.Terminated{},
		SuccessionDate:   cleanse.DateSentinel,
		EvictionDate:     cleanse.DateSentinel,
		PotentialEndDate: cleanse.DateSentinel,
		Notices: []domain.Notice{{
			ServedDate:    cleanse.DateSentinel,
			ExpiryDate:    cleanse.DateSentinel,
			EffectiveDate: cleanse.DateSentinel,
		}},
		LegacyReferences: []domain.LegacyReference{
			{Name: "uh_tag_ref"},
			{Name: "u_saff_tenancy"},
		},
		SubletEndDate: cleanse.DateSentinel,
	}
	return people, phones, tenure, nil
}
