package domain

import "encoding/json"

// HouseholdMember is a person summary embedded in the tenure document.
type HouseholdMember struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	FullName         string `json:"fullName"`
	IsResponsible    bool   `json:"isResponsible"`
	DateOfBirth      string `json:"dateOfBirth"`
	PersonTenureType string `json:"personTenureType"`
}

// TenuredAsset is the asset summary embedded in the tenure document.
type TenuredAsset struct {
	ID          string `json:"id"`
	FullAddress string `json:"fullAddress"`
	UPRN        string `json:"uprn"`
	Type        string `json:"type"`
}

// TenureType carries the short code plus the source wording.
type TenureType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Terminated is the termination placeholder block; migration always
// writes it un-terminated.
type Terminated struct {
	IsTerminated         bool   `json:"isTerminated"`
	ReasonForTermination string `json:"reasonForTermination"`
}

// Notice is a served-notice placeholder entry.
type Notice struct {
	Type          string  `json:"type"`
	ServedDate    string  `json:"servedDate"`
	ExpiryDate    string  `json:"expiryDate"`
	EffectiveDate string  `json:"effectiveDate"`
	EndDate       *string `json:"endDate"`
}

// LegacyReference links the tenure back to a legacy system key.
type LegacyReference struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tenure is the tenure document. Its id derives from the payment
// reference, which is the business key joining the interim sheets to the
// rent system.
type Tenure struct {
	ID                              string            `json:"id"`
	PaymentReference                string            `json:"paymentReference"`
	HouseholdMembers                []HouseholdMember `json:"householdMembers"`
	TenuredAsset                    TenuredAsset      `json:"tenuredAsset"`
	Charges                         json.RawMessage   `json:"charges"`
	StartOfTenureDate               string            `json:"startOfTenureDate"`
	EndOfTenureDate                 *string           `json:"endOfTenureDate"`
	TenureType                      TenureType        `json:"tenureType"`
	Terminated                      Terminated        `json:"terminated"`
	SuccessionDate                  string            `json:"successionDate"`
	EvictionDate                    string            `json:"evictionDate"`
	PotentialEndDate                string            `json:"potentialEndDate"`
	Notices                         []Notice          `json:"notices"`
	LegacyReferences                []LegacyReference `json:"legacyReferences"`
	IsMutualExchange                bool              `json:"isMutualExchange"`
	InformHousingBenefitsForChanges bool              `json:"informHousingBenefitsForChanges"`
	IsSublet                        bool              `json:"isSublet"`
	SubletEndDate                   string            `json:"subletEndDate"`
}
