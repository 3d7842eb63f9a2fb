package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/repository"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/store"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/transform"
)

func newTestMigrator() (*Migrator, *store.MemoryKV, *repository.Entities) {
	kv := store.NewMemoryKV()
	entities := repository.NewEntities(kv)
	logger := zap.NewNop()
	return NewMigrator(entities, transform.NewTenureTransformer(logger), logger), kv, entities
}

func tenureWithID(id string) domain.Tenure {
	return domain.Tenure{ID: id}
}

func tenancyRow() source.Row {
	return source.Row{
		"Payment Ref":        "123",
		"UH Ref":             "",
		"Tenant":             "Mr John Smith",
		"Date of Birth":      "01.01.1980",
		"Tenancy Type":       "Secure",
		"Tenancy Start Date": "01/04/2021",
		"Property Ref":       "00090269",
		"Home Tel":           "",
		"Mobile":             "07123456789",
	}
}

var testAssets = []source.AssetSummary{
	{PropRef: "00090269", UPRN: "100021045", FullAddress: "1 High St, E8 1AA", AssetType: "Dwelling"},
}

func TestProcessTenureRowsCreatesEverything(t *testing.T) {
	migrator, kv, entities := newTestMigrator()
	ctx := context.Background()

	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))

	person, err := entities.GetPerson(ctx, "e17357dc-4ffc-2de0-f869-fdfc6938c51c")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "Smith", person.Surname)
	assert.Equal(t, "Mr", person.Title)

	tenure, err := entities.GetTenure(ctx, hashid.Hash("123"))
	require.NoError(t, err)
	require.NotNil(t, tenure)
	assert.Equal(t, "SEC", tenure.TenureType.Code)
	require.Len(t, tenure.HouseholdMembers, 1)

	// One person, one tenure, one contact detail and three activity
	// events: nothing else should have been written.
	assert.Equal(t, 6, kv.Len())
}

func TestProcessTenureRowsSkipsRealUHReference(t *testing.T) {
	migrator, kv, _ := newTestMigrator()
	row := tenancyRow()
	row["UH Ref"] = "0123376/01"

	require.NoError(t, migrator.ProcessTenureRows(context.Background(), []source.Row{row}, testAssets))
	assert.Zero(t, kv.Len())
}

func TestProcessTenureRowsSkipsMigratedTenure(t *testing.T) {
	migrator, kv, entities := newTestMigrator()
	ctx := context.Background()
	require.NoError(t, entities.PutTenure(ctx, domain.Tenure{ID: hashid.Hash("123")}))
	before := kv.Len()

	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))
	assert.Equal(t, before, kv.Len())
}

func TestProcessTenureRowsMergesKnownPerson(t *testing.T) {
	migrator, _, entities := newTestMigrator()
	ctx := context.Background()
	require.NoError(t, entities.PutPerson(ctx, domain.Person{
		ID:      "e17357dc-4ffc-2de0-f869-fdfc6938c51c",
		Surname: "Smith",
		Tenures: []domain.PersonTenure{{ID: "earlier-tenure", PaymentReference: "999"}},
	}))

	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))

	person, err := entities.GetPerson(ctx, "e17357dc-4ffc-2de0-f869-fdfc6938c51c")
	require.NoError(t, err)
	require.NotNil(t, person)
	require.Len(t, person.Tenures, 2)
	assert.Equal(t, "earlier-tenure", person.Tenures[0].ID)
	assert.Equal(t, hashid.Hash("123"), person.Tenures[1].ID)
}

func TestAssetCurrentTenureLastMoverWins(t *testing.T) {
	migrator, _, entities := newTestMigrator()
	ctx := context.Background()
	assetID := hashid.HashRaw("00090269")
	require.NoError(t, entities.PutAsset(ctx, domain.Asset{
		ID:      assetID,
		AssetID: "00090269",
		Tenure:  domain.AssetTenure{ID: "current", StartOfTenureDate: "2020-01-01"},
	}))

	earlier := tenancyRow()
	earlier["Payment Ref"] = "111"
	earlier["Tenancy Start Date"] = "01/06/2019"
	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{earlier}, testAssets))

	asset, err := entities.GetAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, "current", asset.Tenure.ID, "earlier tenure must not displace the current one")

	later := tenancyRow()
	later["Payment Ref"] = "222"
	later["Tenancy Start Date"] = "01/01/2021"
	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{later}, testAssets))

	asset, err = entities.GetAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, hashid.Hash("222"), asset.Tenure.ID)
	assert.Equal(t, "2021-01-01", asset.Tenure.StartOfTenureDate)
}

func TestCloseFormerTenuresPropagatesEndDate(t *testing.T) {
	migrator, _, entities := newTestMigrator()
	ctx := context.Background()
	assetID := hashid.HashRaw("00090269")
	require.NoError(t, entities.PutAsset(ctx, domain.Asset{ID: assetID, AssetID: "00090269"}))
	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))

	require.NoError(t, migrator.CloseFormerTenures(ctx, []source.Row{{
		"UH Ref":      "",
		"Payment Ref": "123",
		"Void Date":   "01/03/2023",
	}}))

	tenure, err := entities.GetTenure(ctx, hashid.Hash("123"))
	require.NoError(t, err)
	require.NotNil(t, tenure.EndOfTenureDate)
	assert.Equal(t, "2023-03-01", *tenure.EndOfTenureDate)

	person, err := entities.GetPerson(ctx, "e17357dc-4ffc-2de0-f869-fdfc6938c51c")
	require.NoError(t, err)
	require.Len(t, person.Tenures, 1)
	require.NotNil(t, person.Tenures[0].EndDate)
	assert.Equal(t, "2023-03-01", *person.Tenures[0].EndDate)

	asset, err := entities.GetAsset(ctx, assetID)
	require.NoError(t, err)
	require.NotNil(t, asset.Tenure.EndOfTenureDate)
	assert.Equal(t, "2023-03-01", *asset.Tenure.EndOfTenureDate)
}

func TestCloseFormerTenuresLeavesForeignAssetTenure(t *testing.T) {
	migrator, _, entities := newTestMigrator()
	ctx := context.Background()
	assetID := hashid.HashRaw("00090269")
	require.NoError(t, entities.PutAsset(ctx, domain.Asset{
		ID:      assetID,
		AssetID: "00090269",
		Tenure:  domain.AssetTenure{ID: "someone-else", StartOfTenureDate: "2030-01-01"},
	}))
	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))

	require.NoError(t, migrator.CloseFormerTenures(ctx, []source.Row{{
		"Payment Ref": "123",
		"Void Date":   "01/03/2023",
	}}))

	asset, err := entities.GetAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, "someone-else", asset.Tenure.ID)
	assert.Nil(t, asset.Tenure.EndOfTenureDate)
}

func TestCloseFormerTenuresIgnoresPlaceholderDates(t *testing.T) {
	migrator, _, entities := newTestMigrator()
	ctx := context.Background()
	require.NoError(t, migrator.ProcessTenureRows(ctx, []source.Row{tenancyRow()}, testAssets))

	require.NoError(t, migrator.CloseFormerTenures(ctx, []source.Row{{
		"Payment Ref": "123",
		"Void Date":   "Unknown",
	}}))

	tenure, err := entities.GetTenure(ctx, hashid.Hash("123"))
	require.NoError(t, err)
	assert.Nil(t, tenure.EndOfTenureDate)
}

func TestDryRunWritesNothingAndToleratesDanglingPhones(t *testing.T) {
	kv := store.NewMemoryKV()
	logger := zap.NewNop()
	entities := repository.NewEntities(store.NewDryRunKV(kv, logger))
	migrator := NewMigrator(entities, transform.NewTenureTransformer(logger), logger)

	// In a dry run the person write is skipped, so the phone's owner
	// lookup misses; the row must still complete without error.
	require.NoError(t, migrator.ProcessTenureRows(context.Background(), []source.Row{tenancyRow()}, testAssets))
	assert.Zero(t, kv.Len())
}

func TestIsNewReference(t *testing.T) {
	assert.True(t, isNewReference(""))
	assert.True(t, isNewReference("  "))
	assert.True(t, isNewReference("New Assignment"))
	assert.True(t, isNewReference("New Build"))
	assert.True(t, isNewReference("New RTB"))
	assert.False(t, isNewReference("0123376/01"))
}
