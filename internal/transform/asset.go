package transform

import (
	"strings"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
)

// Asset maps a new-build asset row to the asset document. The property
// reference is zero-padded to 8 characters before hashing so the id
// lines up with assets already migrated from the legacy extract.
func Asset(row source.Row, tenure domain.AssetTenure) domain.Asset {
	assetType := row["Type"]
	if assetType == "" {
		assetType = "Dwelling"
	}

	propRef := zeroPad(row["Property Ref"], 8)
	return domain.Asset{
		ID:        hashid.HashRaw(propRef),
		AssetID:   strings.TrimSpace(propRef),
		AssetType: assetType,
		AssetAddress: domain.AssetAddress{
			UPRN:         row["uprn"],
			AddressLine1: row["Address Line 1"],
			AddressLine2: row["Address Line 2"],
			AddressLine3: row["Address Line 3"],
			PostCode:     row["Post Code"],
		},
		Tenure:         tenure,
		RootAsset:      "ROOT",
		ParentAssetIds: "ROOT",
	}
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
