package commande

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestLedgerRow_MappingComplet(t *testing.T) {
	t.Parallel()

	// Le corps arrive toujours via encoding/json, comme dans le handler.
	body := `{"email":"a@b.com","produits":[{"qte":2,"sku":"THE-VERT"}],"montant":10,"idTransaction":"T1","modePaiement":"card"}`
	var sub Submission
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	now := time.Date(2026, 3, 1, 10, 4, 5, 120e6, time.UTC)
	row, err := LedgerRow(sub, now)
	if err != nil {
		t.Fatalf("LedgerRow: %v", err)
	}
	if len(row) != RowWidth {
		t.Fatalf("largeur=%d, attendu %d", len(row), RowWidth)
	}

	want := []any{
		"",
		"a@b.com",
		`[{"qte":2,"sku":"THE-VERT"}]`,
		float64(10),
		StatusEnAttente,
		"T1",
		"card",
		"2026-03-01T10:04:05.120Z",
		"",
		"",
	}
	for i := range want {
		if !reflect.DeepEqual(row[i], want[i]) {
			t.Fatalf("colonne %d = %#v, attendu %#v", i, row[i], want[i])
		}
	}
}

func TestLedgerRow_ChampsAbsents(t *testing.T) {
	t.Parallel()

	// Un corps vide passe: les champs manquants deviennent des cellules vides.
	row, err := LedgerRow(Submission{}, time.Now())
	if err != nil {
		t.Fatalf("LedgerRow: %v", err)
	}
	if len(row) != RowWidth {
		t.Fatalf("largeur=%d, attendu %d", len(row), RowWidth)
	}
	for _, i := range []int{1, 2, 3, 5, 6} {
		if row[i] != nil {
			t.Fatalf("colonne %d = %#v, attendu nil", i, row[i])
		}
	}
	for _, i := range []int{0, 8, 9} {
		if row[i] != "" {
			t.Fatalf("colonne %d = %#v, attendu chaîne vide", i, row[i])
		}
	}
	if row[4] != StatusEnAttente {
		t.Fatalf("statut=%#v, attendu %q", row[4], StatusEnAttente)
	}
}

func TestLedgerRow_ProduitsSerialisation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		produits any
		want     any
	}{
		{"tableau", []any{map[string]any{"sku": "A"}}, `[{"sku":"A"}]`},
		{"objet", map[string]any{"sku": "A", "qte": float64(1)}, `{"qte":1,"sku":"A"}`},
		{"chaine", "trois savons", `"trois savons"`},
		{"nombre", float64(3), "3"},
		{"absent", nil, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			row, err := LedgerRow(Submission{Produits: tc.produits}, time.Now())
			if err != nil {
				t.Fatalf("LedgerRow: %v", err)
			}
			if !reflect.DeepEqual(row[2], tc.want) {
				t.Fatalf("produits=%#v, attendu %#v", row[2], tc.want)
			}
		})
	}
}

func TestLedgerRow_ProduitsNonSerialisables(t *testing.T) {
	t.Parallel()

	// Une valeur impossible à encoder doit remonter en erreur, pas en panique.
	if _, err := LedgerRow(Submission{Produits: make(chan int)}, time.Now()); err == nil {
		t.Fatalf("attendait une erreur de sérialisation")
	}
}

func TestHorodatage_FormatUTC(t *testing.T) {
	t.Parallel()

	// L'heure locale est convertie en UTC avant formatage.
	cet := time.FixedZone("CET", 3600)
	got := Horodatage(time.Date(2026, 3, 1, 10, 4, 5, 120e6, cet))
	if got != "2026-03-01T09:04:05.120Z" {
		t.Fatalf("horodatage=%q", got)
	}
}

func TestParseHorodatage(t *testing.T) {
	t.Parallel()

	ts, err := ParseHorodatage("2026-03-01T09:04:05.120Z")
	if err != nil {
		t.Fatalf("ParseHorodatage: %v", err)
	}
	if Horodatage(ts) != "2026-03-01T09:04:05.120Z" {
		t.Fatalf("aller-retour raté: %v", ts)
	}

	// RFC 3339 sans millisecondes passe aussi (lignes saisies à la main).
	if _, err := ParseHorodatage("2026-03-01T09:04:05Z"); err != nil {
		t.Fatalf("RFC3339: %v", err)
	}

	if _, err := ParseHorodatage("hier"); err == nil {
		t.Fatalf("attendait une erreur pour un horodatage invalide")
	}
}
