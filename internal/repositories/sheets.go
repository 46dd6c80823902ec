package repositories

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type sheetsSource struct {
	svc       *sheets.Service
	sheetID   string
	readRange string
}

// NewSheetsSource builds a RowSource over one spreadsheet range. When apiKey
// is empty the client falls back to application default credentials.
func NewSheetsSource(ctx context.Context, sheetID, readRange, apiKey string) (RowSource, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheet id is required")
	}

	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &sheetsSource{
		svc:       svc,
		sheetID:   sheetID,
		readRange: readRange,
	}, nil
}

// GetRange implements RowSource.
func (s *sheetsSource) GetRange(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet range %s: %w", s.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}

	return rows, nil
}
