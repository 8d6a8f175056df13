package commande

import (
	"encoding/json"
	"fmt"
	"time"
)

// RowWidth is the column count of the ledger schema. Rows are always emitted
// at exactly this width; the blank columns belong to downstream back-office
// steps and are never filled here.
const RowWidth = 10

// horodatageLayout matches Date#toISOString from the web clients: UTC,
// millisecond precision, literal Z suffix.
const horodatageLayout = "2006-01-02T15:04:05.000Z"

// Horodatage formats t the way the timestamp column expects.
func Horodatage(t time.Time) string {
	return t.UTC().Format(horodatageLayout)
}

// ParseHorodatage reads a timestamp cell back. Rows written by this service
// carry the toISOString form; RFC 3339 is accepted for rows edited by hand.
func ParseHorodatage(cell string) (time.Time, error) {
	if t, err := time.Parse(horodatageLayout, cell); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, cell)
}

// LedgerRow encodes one submission as the positional record appended to the
// ledger. Absent fields travel as blank cells; produits is serialized to a
// JSON string so arbitrary product structures survive the flat schema.
func LedgerRow(s Submission, now time.Time) ([]any, error) {
	var produits any
	if s.Produits != nil {
		b, err := json.Marshal(s.Produits)
		if err != nil {
			return nil, fmt.Errorf("sérialisation des produits: %w", err)
		}
		produits = string(b)
	}
	return []any{
		"", // n° de commande, attribué hors du service
		s.Email,
		produits,
		s.Montant,
		StatusEnAttente,
		s.IDTransaction,
		s.ModePaiement,
		Horodatage(now),
		"", // réservé
		"", // réservé
	}, nil
}
