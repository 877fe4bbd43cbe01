package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"dashboard-hub/internal/models"
)

// SheetClient reads the events and items tabs of one spreadsheet via
// its CSV export endpoint.
type SheetClient struct {
	*BaseClient
	baseURL   string
	eventsGID string
	itemsGID  string
}

func NewSheetClient(baseURL, eventsGID, itemsGID string, config ClientConfig, logger *zap.Logger) *SheetClient {
	return &SheetClient{
		BaseClient: NewBaseClient("sheets", config, logger),
		baseURL:    baseURL,
		eventsGID:  eventsGID,
		itemsGID:   itemsGID,
	}
}

func (c *SheetClient) FetchEvents(ctx context.Context) (models.Table, error) {
	return c.fetchTable(ctx, c.eventsGID)
}

func (c *SheetClient) FetchItems(ctx context.Context) (models.Table, error) {
	return c.fetchTable(ctx, c.itemsGID)
}

func (c *SheetClient) fetchTable(ctx context.Context, gid string) (models.Table, error) {
	reqURL := fmt.Sprintf("%s/export?format=csv&gid=%s", c.baseURL, gid)

	data, err := c.GetWithRetry(ctx, reqURL)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to fetch sheet gid=%s: %w", gid, err)
	}

	table, err := parseCSVTable(data)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to parse sheet gid=%s: %w", gid, err)
	}

	c.logger.Debug("sheet fetched",
		zap.String("gid", gid),
		zap.Int("rows", len(table.Rows)))

	return table, nil
}

// parseCSVTable turns a CSV export into a Table. Header cells are
// whitespace-trimmed; short rows are padded with empty strings.
func parseCSVTable(data []byte) (models.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, err
	}
	if len(records) == 0 {
		return models.Table{}, fmt.Errorf("sheet has no header row")
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = strings.TrimSpace(h)
	}

	rows := make([]models.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return models.Table{Columns: columns, Rows: rows}, nil
}
