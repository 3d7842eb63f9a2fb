package domain

import "encoding/json"

// AssetTenure is the denormalized summary of whichever tenure currently
// occupies the asset. A zero ID means no tenure has been recorded yet;
// the document keeps the empty block rather than null for parity with
// records already in the store.
type AssetTenure struct {
	ID                string  `json:"id,omitempty"`
	PaymentReference  string  `json:"paymentReference,omitempty"`
	Type              string  `json:"type,omitempty"`
	StartOfTenureDate string  `json:"startOfTenureDate,omitempty"`
	EndOfTenureDate   *string `json:"endOfTenureDate,omitempty"`
}

// IsZero reports whether no current tenure has been recorded.
func (t AssetTenure) IsZero() bool { return t.ID == "" }

// AssetAddress is the address block of the asset document.
type AssetAddress struct {
	UPRN         string `json:"uprn"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	AddressLine4 string `json:"addressLine4"`
	PostCode     string `json:"postCode"`
	PostPreamble string `json:"postPreamble"`
}

// Asset is the asset document. The id derives from the property
// reference zero-padded to 8 characters, matching the legacy asset ids.
type Asset struct {
	ID                   string          `json:"id"`
	AssetID              string          `json:"assetId"`
	AssetType            string          `json:"assetType"`
	AssetLocation        json.RawMessage `json:"assetLocation"`
	AssetAddress         AssetAddress    `json:"assetAddress"`
	AssetManagement      json.RawMessage `json:"assetManagement"`
	AssetCharacteristics json.RawMessage `json:"assetCharacteristics"`
	Tenure               AssetTenure     `json:"tenure"`
	RootAsset            string          `json:"rootAsset"`
	ParentAssetIds       string          `json:"parentAssetIds"`
}
