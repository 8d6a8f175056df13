// Package ledger provides access to the spreadsheet where orders are
// recorded, one row per order.
package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Ledger is the order book. Append adds exactly one positional row after the
// last row of the range; Rows returns every row of the range.
type Ledger interface {
	Append(ctx context.Context, row []any) error
	Rows(ctx context.Context) ([][]any, error)
}

// SheetsLedger implements Ledger against the Google Sheets API with a
// service-account credential. Nothing is cached between calls: the client is
// rebuilt on every invocation, so a bad credential surfaces as that call's
// error.
type SheetsLedger struct {
	credentials   []byte
	spreadsheetID string
	plage         string
}

// NewSheetsLedger takes the raw service-account JSON, the spreadsheet id and
// the range in notation A1, e.g. "Commandes!A:J".
func NewSheetsLedger(credentials []byte, spreadsheetID, plage string) *SheetsLedger {
	return &SheetsLedger{
		credentials:   credentials,
		spreadsheetID: spreadsheetID,
		plage:         plage,
	}
}

func (l *SheetsLedger) service(ctx context.Context) (*sheets.Service, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(l.credentials),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("authentification auprès de Google Sheets: %w", err)
	}
	return srv, nil
}

// Append writes row after the last non-empty row of the range. USER_ENTERED
// keeps the sheet's own coercion rules: numbers and dates land typed, as if
// typed in the UI.
func (l *SheetsLedger) Append(ctx context.Context, row []any) error {
	srv, err := l.service(ctx)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	if _, err := srv.Spreadsheets.Values.Append(l.spreadsheetID, l.plage, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("ajout au registre: %w", err)
	}
	return nil
}

func (l *SheetsLedger) Rows(ctx context.Context) ([][]any, error) {
	srv, err := l.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Spreadsheets.Values.Get(l.spreadsheetID, l.plage).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("lecture du registre: %w", err)
	}
	return resp.Values, nil
}
