// Package notify signals the search-indexing service that a table has
// changed and should be reindexed.
package notify

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// IndexerClient sends fire-and-forget reindex requests. A failed signal
// is logged and forgotten: the run's data is already committed and the
// indexer catches up on its own schedule anyway.
type IndexerClient struct {
	httpClient    *resty.Client
	indexNodeHost string
	logger        *zap.Logger
}

func NewIndexerClient(baseURL, indexNodeHost string, logger *zap.Logger) *IndexerClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &IndexerClient{
		httpClient:    client,
		indexNodeHost: indexNodeHost,
		logger:        logger,
	}
}

type reindexRequest struct {
	Table         string `json:"dynamoTable"`
	IndexNodeHost string `json:"indexNodeHost"`
	IndexName     string `json:"indexName"`
}

// Reindex asks the indexing service to rebuild indexName from table.
func (c *IndexerClient) Reindex(ctx context.Context, table, indexName string) {
	if c.httpClient.BaseURL == "" {
		c.logger.Info("indexer not configured, skipping reindex signal",
			zap.String("table", table))
		return
	}
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reindexRequest{
			Table:         table,
			IndexNodeHost: c.indexNodeHost,
			IndexName:     indexName,
		}).
		Post("/reindex")
	if err != nil {
		c.logger.Warn("reindex signal failed", zap.String("table", table), zap.Error(err))
		return
	}
	if resp.IsError() {
		c.logger.Warn("reindex signal rejected",
			zap.String("table", table),
			zap.String("status", resp.Status()))
		return
	}
	c.logger.Info("reindex signalled",
		zap.String("table", table),
		zap.String("index", indexName))
}
