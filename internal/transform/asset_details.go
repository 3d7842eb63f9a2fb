// Package transform reshapes interim spreadsheet rows into the target
// person, tenure, asset and contact-detail entities.
package transform

import (
	"strings"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
)

// zeroUUID is the asset id written when a tenure's property reference
// matches nothing, so the stored document stays well-formed.
const zeroUUID = "00000000-0000-0000-0000-000000000000"

// AssetDetails is the resolved view of a tenure's asset.
type AssetDetails struct {
	AssetID     string
	UPRN        string
	PropertyRef string
	FullAddress string
	AssetType   string
}

// emptyAssetDetails is the sentinel for an unresolved property reference.
func emptyAssetDetails() AssetDetails {
	return AssetDetails{AssetID: zeroUUID}
}

// ResolveAsset returns the first asset whose trimmed property reference
// matches the target, or the empty sentinel when nothing matches. A miss
// is a normal outcome; the tenure is still migrated with blank asset
// fields.
func ResolveAsset(assets []source.AssetSummary, propertyRef string) (AssetDetails, bool) {
	target := strings.TrimSpace(propertyRef)
	for _, asset := range assets {
		if strings.TrimSpace(asset.PropRef) != target {
			continue
		}
		if asset.PropRef == "" {
			break
		}
		return AssetDetails{
			AssetID:     hashid.HashRaw(asset.PropRef),
			UPRN:        strings.TrimSpace(asset.UPRN),
			PropertyRef: strings.TrimSpace(asset.PropRef),
			FullAddress: strings.TrimSpace(asset.FullAddress),
			AssetType:   asset.AssetType,
		}, true
	}
	return emptyAssetDetails(), false
}
