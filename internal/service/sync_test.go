package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/config"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/repository"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/store"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/transform"
)

// fakeSheets serves canned rows keyed by range spec.
type fakeSheets struct {
	rows map[string][]source.Row
}

func (f *fakeSheets) ReadRange(ctx context.Context, spreadsheetID, rangeSpec string) ([]source.Row, error) {
	return f.rows[rangeSpec], nil
}

func newTestSyncService(sheets source.RowSource) (*SyncService, *repository.Entities) {
	logger := zap.NewNop()
	entities := repository.NewEntities(store.NewMemoryKV())
	return &SyncService{
		cfg:      config.Load(),
		logger:   logger,
		entities: entities,
		sheets:   sheets,
		migrator: NewMigrator(entities, transform.NewTenureTransformer(logger), logger),
	}, entities
}

func TestAliasLeaseholdRow(t *testing.T) {
	row := source.Row{
		"Property No":           "90269",
		"Tenancy":               "Leasehold (RTB)",
		"Assignment / RTB Date": "01/04/2022",
		"UH Rent Acct":          "New RTB",
		"Date of Birth":         "should be cleared",
		"Mobile":                "07123456789",
	}
	aliasLeaseholdRow(row, "Assignment / RTB Date")

	assert.Equal(t, "90269", row["Property Ref"])
	assert.Equal(t, "Leasehold (RTB)", row["Tenancy Type"])
	assert.Equal(t, "01/04/2022", row["Tenancy Start Date"])
	assert.Equal(t, "New RTB", row["UH Ref"])
	assert.Equal(t, "", row["Date of Birth"])
	assert.Equal(t, "", row["Mobile"])
}

func TestAliasLeaseholdRowMissingStartColumn(t *testing.T) {
	row := source.Row{"Property No": "90269", "Tenancy": "Secure", "UH Rent Acct": ""}
	aliasLeaseholdRow(row, "Date of New Build")
	assert.Equal(t, "", row["Tenancy Start Date"])
}

func TestProcessTenureChangesNewLet(t *testing.T) {
	sheets := &fakeSheets{rows: map[string][]source.Row{
		changesRange: {{
			"Payment Ref":        "777",
			"UH Ref":             "",
			"Type of change":     " New Let ",
			"Tenant":             "Ms Ada Lovelace",
			"Tenancy Type":       "IT",
			"Tenancy Start Date": "05/05/2022",
			"Property Ref":       "00090269",
			"Void Date":          "",
		}},
	}}
	svc, entities := newTestSyncService(sheets)
	ctx := context.Background()

	require.NoError(t, svc.processTenureChanges(ctx, testAssets))

	tenure, err := entities.GetTenure(ctx, hashid.Hash("777"))
	require.NoError(t, err)
	require.NotNil(t, tenure)
	assert.Equal(t, "Introductory", tenure.TenureType.Description)
	assert.Equal(t, "INT", tenure.TenureType.Code)
}

func TestProcessTenureChangesNewLetSkipsExisting(t *testing.T) {
	sheets := &fakeSheets{rows: map[string][]source.Row{
		changesRange: {{
			"Payment Ref":    "777",
			"UH Ref":         "",
			"Type of change": "new let",
			"Tenant":         "Ms Ada Lovelace",
			"Tenancy Type":   "Secure",
		}},
	}}
	svc, entities := newTestSyncService(sheets)
	ctx := context.Background()
	require.NoError(t, entities.PutTenure(ctx, tenureWithID(hashid.Hash("777"))))

	require.NoError(t, svc.processTenureChanges(ctx, testAssets))

	tenure, err := entities.GetTenure(ctx, hashid.Hash("777"))
	require.NoError(t, err)
	assert.Empty(t, tenure.HouseholdMembers, "existing tenure must not be recreated")
}

func TestProcessTenureChangesNewVoid(t *testing.T) {
	sheets := &fakeSheets{rows: map[string][]source.Row{
		changesRange: {
			{
				"Payment Ref":    "888",
				"UH Ref":         "",
				"Type of change": "New Void",
				"Void Date":      "02/02/2023",
			},
			{
				"Payment Ref":    "999",
				"UH Ref":         "",
				"Type of change": "New Void",
				"Void Date":      "Pre Cyber Attack?",
			},
		},
	}}
	svc, entities := newTestSyncService(sheets)
	ctx := context.Background()
	require.NoError(t, entities.PutTenure(ctx, tenureWithID(hashid.Hash("888"))))
	require.NoError(t, entities.PutTenure(ctx, tenureWithID(hashid.Hash("999"))))

	require.NoError(t, svc.processTenureChanges(ctx, testAssets))

	closed, err := entities.GetTenure(ctx, hashid.Hash("888"))
	require.NoError(t, err)
	require.NotNil(t, closed.EndOfTenureDate)
	assert.Equal(t, "2023-02-02", *closed.EndOfTenureDate)

	open, err := entities.GetTenure(ctx, hashid.Hash("999"))
	require.NoError(t, err)
	assert.Nil(t, open.EndOfTenureDate, "placeholder void date must not close the tenure")
}

func TestProcessTenureChangesAppliesUHRefFix(t *testing.T) {
	// 1939208402 maps to an empty UH ref, forcing the payment reference
	// to key the tenure.
	sheets := &fakeSheets{rows: map[string][]source.Row{
		changesRange: {{
			"Payment Ref":    "1939208402",
			"UH Ref":         "garbage",
			"Type of change": "new void",
			"Void Date":      "03/03/2023",
		}},
	}}
	svc, entities := newTestSyncService(sheets)
	ctx := context.Background()
	require.NoError(t, entities.PutTenure(ctx, tenureWithID(hashid.Hash("1939208402"))))

	require.NoError(t, svc.processTenureChanges(ctx, testAssets))

	tenure, err := entities.GetTenure(ctx, hashid.Hash("1939208402"))
	require.NoError(t, err)
	require.NotNil(t, tenure.EndOfTenureDate)
	assert.Equal(t, "2023-03-03", *tenure.EndOfTenureDate)
}
