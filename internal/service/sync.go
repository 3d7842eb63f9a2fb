package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/config"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/hashid"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/notify"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/repository"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/source"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/store"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/transform"
)

// Tab ranges of the interim spreadsheets. Row counts are generous upper
// bounds; short tabs just return fewer rows.
const (
	newBuildAssetsRange = "New Build properties!A1:L300"
	tenanciesRange      = "Weekly Payments!A1:BY22000"
	formerTenantsRange  = "Former Tenants!A1:BU1000"
	leaseholdsRange     = "New Assignment / RTB!A1:P1000"
	newBuildsRange      = "New Build!A1:Q200"
	changesRange        = "Sheet1!A1:M1500"
	missingTenuresRange = "New Build!A1:G200"
)

// SyncService owns the external collaborators of one run.
type SyncService struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *sql.DB
	redisClient *redis.Client
	entities    *repository.Entities
	sheets      source.RowSource
	notifier    *notify.IndexerClient
	migrator    *Migrator
}

func NewSyncService(cfg *config.Config, logger *zap.Logger) (*SyncService, error) {
	db, err := source.OpenDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to UH database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to entity store: %w", err)
	}

	var kv store.KV = store.NewRedisKV(redisClient)
	if cfg.DryRun {
		logger.Info("dry run enabled, store writes will be logged only")
		kv = store.NewDryRunKV(kv, logger)
	}
	entities := repository.NewEntities(kv)

	var sheets source.RowSource
	if cfg.Sheets.Mode == "workbook" {
		sheets = source.NewWorkbook(cfg.Sheets.WorkbookDir, logger)
	} else {
		sheets = source.NewSheetsClient(cfg.Sheets.BaseURL, cfg.Sheets.APIToken, logger)
	}

	return &SyncService{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
		entities:    entities,
		sheets:      sheets,
		notifier:    notify.NewIndexerClient(cfg.Indexer.BaseURL, cfg.Indexer.IndexNodeHost, logger),
		migrator:    NewMigrator(entities, transform.NewTenureTransformer(logger), logger),
	}, nil
}

// Close releases the database and store connections.
func (s *SyncService) Close() {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("error closing entity store client", zap.Error(err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("error closing database connection", zap.Error(err))
		}
	}
}

// Run executes the whole migration sequentially. Any external failure
// aborts the run; re-running is safe because every write is keyed by a
// content-derived id and guarded by a read.
func (s *SyncService) Run(ctx context.Context) error {
	assets, err := source.LoadAssets(ctx, s.db)
	if err != nil {
		return err
	}
	s.logger.Info("loaded asset extract", zap.Int("assets", len(assets)))

	s.logger.Info("processing new build assets")
	newBuildAssets, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.AssetsID, newBuildAssetsRange)
	if err != nil {
		return err
	}
	for _, row := range newBuildAssets {
		asset, err := s.syncNewBuildAsset(ctx, row)
		if err != nil {
			return err
		}
		// New builds are absent from the legacy extract; add them so
		// tenancy rows pointing at them resolve.
		assets = append(assets, source.AssetSummary{
			PropRef:     asset.AssetID,
			FullAddress: asset.AssetAddress.AddressLine1 + ", " + asset.AssetAddress.PostCode,
			AssetType:   asset.AssetType,
		})
	}

	s.logger.Info("processing weekly payments tenancies")
	tenancies, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.TenanciesID, tenanciesRange)
	if err != nil {
		return err
	}
	if err := s.migrator.ProcessTenureRows(ctx, tenancies, assets); err != nil {
		return err
	}

	s.logger.Info("processing former tenancies")
	former, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.TenanciesID, formerTenantsRange)
	if err != nil {
		return err
	}
	if err := s.migrator.CloseFormerTenures(ctx, former); err != nil {
		return err
	}

	s.logger.Info("processing new leaseholds")
	leaseholds, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.LeaseholdsID, leaseholdsRange)
	if err != nil {
		return err
	}
	for _, row := range leaseholds {
		aliasLeaseholdRow(row, "Assignment / RTB Date")
	}
	if err := s.migrator.ProcessTenureRows(ctx, leaseholds, assets); err != nil {
		return err
	}

	s.logger.Info("processing new build leaseholds")
	newBuilds, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.LeaseholdsID, newBuildsRange)
	if err != nil {
		return err
	}
	var keptNewBuilds []source.Row
	for _, row := range newBuilds {
		tenant := strings.TrimSpace(row["Tenant"])
		if tenant == "" || tenant == "Countryside Partnerships" {
			continue
		}
		if fix, ok := newBuildPropertyRefFix[row["Payment Ref"]]; ok {
			row["Property No"] = fix
		}
		aliasLeaseholdRow(row, "Date of New Build")
		keptNewBuilds = append(keptNewBuilds, row)
	}
	if err := s.migrator.ProcessTenureRows(ctx, keptNewBuilds, assets); err != nil {
		return err
	}

	s.logger.Info("processing tenure changes")
	if err := s.processTenureChanges(ctx, assets); err != nil {
		return err
	}

	s.logger.Info("processing missing tenures")
	missing, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.MissingTenuresID, missingTenuresRange)
	if err != nil {
		return err
	}
	for _, row := range missing {
		aliasLeaseholdRow(row, "Date of New Build")
	}
	if err := s.migrator.ProcessTenureRows(ctx, missing, assets); err != nil {
		return err
	}

	// Second pass over the new-build assets: tenures created above are
	// now in the store, so the embedded tenure summaries pick them up.
	s.logger.Info("reprocessing new build assets")
	for _, row := range newBuildAssets {
		if _, err := s.syncNewBuildAsset(ctx, row); err != nil {
			return err
		}
	}

	s.notifier.Reindex(ctx, repository.TablePersons, "persons")
	s.notifier.Reindex(ctx, repository.TableTenures, "tenures")
	s.notifier.Reindex(ctx, repository.TableAssets, "assets")
	return nil
}

// syncNewBuildAsset writes one asset row, embedding the current tenure
// summary when the tenure keyed by the row's payment reference has
// already been migrated.
func (s *SyncService) syncNewBuildAsset(ctx context.Context, row source.Row) (domain.Asset, error) {
	var summary domain.AssetTenure
	tenure, err := s.entities.GetTenure(ctx, hashid.Hash(row["Payment Ref"]))
	if err != nil {
		return domain.Asset{}, err
	}
	if tenure != nil {
		summary = domain.AssetTenure{
			ID:                tenure.ID,
			PaymentReference:  tenure.PaymentReference,
			Type:              tenure.TenureType.Description,
			StartOfTenureDate: tenure.StartOfTenureDate,
			EndOfTenureDate:   tenure.EndOfTenureDate,
		}
	}
	asset := transform.Asset(row, summary)
	if err := s.entities.PutAsset(ctx, asset); err != nil {
		return domain.Asset{}, err
	}
	return asset, nil
}

// processTenureChanges applies the income team's change log: "new let"
// rows create tenures the main tabs missed, "new void"/"rtb" rows close
// tenures that have ended since the extract.
func (s *SyncService) processTenureChanges(ctx context.Context, assets []source.AssetSummary) error {
	changes, err := s.sheets.ReadRange(ctx, s.cfg.Sheets.ChangesID, changesRange)
	if err != nil {
		return err
	}
	for _, row := range changes {
		if fix, ok := changesUHRefFix[row["Payment Ref"]]; ok {
			row["UH Ref"] = fix
		}
		tenureID := tenureIDForRow(row)

		switch strings.ToLower(strings.TrimSpace(row["Type of change"])) {
		case "new let", "let & void after cyber attack":
			tenure, err := s.entities.GetTenure(ctx, tenureID)
			if err != nil {
				return err
			}
			if tenure != nil {
				continue
			}
			row["Date of Birth"] = ""
			row["Home Tel"] = ""
			row["Mobile"] = ""
			switch row["Tenancy Type"] {
			case "IT":
				row["Tenancy Type"] = "Introductory"
			case "Decant Rent Free Lic":
				row["Tenancy Type"] = "Temp Decant"
			}
			if err := s.migrator.ProcessTenureRows(ctx, []source.Row{row}, assets); err != nil {
				return err
			}
		case "new void", "rtb":
			tenure, err := s.entities.GetTenure(ctx, tenureID)
			if err != nil {
				return err
			}
			if tenure == nil {
				s.logger.Warn("tenure not found for void change",
					zap.String("paymentRef", row["Payment Ref"]))
				continue
			}
			if tenure.EndOfTenureDate != nil {
				continue
			}
			switch row["Void Date"] {
			case "Pre Cyber Attack?", "Non-Possessed":
				continue
			}
			if err := s.migrator.CloseFormerTenures(ctx, []source.Row{row}); err != nil {
				return err
			}
		}
	}
	return nil
}

// aliasLeaseholdRow maps the leasehold tab column names onto the ones
// the tenure transformer reads. Leasehold tabs carry no date of birth or
// phone columns, so those are forced blank.
func aliasLeaseholdRow(row source.Row, startDateColumn string) {
	row["Date of Birth"] = ""
	row["Home Tel"] = ""
	row["Mobile"] = ""
	row["Property Ref"] = row["Property No"]
	row["Tenancy Type"] = row["Tenancy"]
	row["Tenancy Start Date"] = row[startDateColumn]
	row["UH Ref"] = row["UH Rent Acct"]
}
