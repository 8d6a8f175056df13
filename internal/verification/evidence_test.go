package verification

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMontants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		texte string
		want  []float64
	}{
		{"fcfa", "50 FCFA", []float64{50}},
		{"virgule", "Montant: 50,00", []float64{50}},
		{"point", "total 50.00", []float64{50}},
		{"groupement", "1 000", []float64{1000}},
		{"groupement et decimales", "Paiement de 1 000,50 FCFA", []float64{1000.50}},
		{"plusieurs", "acompte 20 puis solde 30", []float64{20, 30}},
		{"rien", "aucun montant ici", nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseMontants(tc.texte)
			if len(got) != len(tc.want) {
				t.Fatalf("montants=%v, attendu %v", got, tc.want)
			}
			for i := range tc.want {
				if !got[i].Equal(decimal.NewFromFloat(tc.want[i])) {
					t.Fatalf("montant[%d]=%s, attendu %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		texte string
		want  []string
	}{
		{"simple", "ref TX12345678 merci", []string{"TX12345678"}},
		{"doublons", "TX12345678 et encore TX12345678", []string{"TX12345678"}},
		{"plusieurs", "ref: ABC123 puis XYZ789", []string{"ABC123", "XYZ789"}},
		// les mots sans chiffre ne sont pas des références
		{"mots", "Paiement sans reference explicite", nil},
		{"trop court", "code A1 fourni", nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseIDs(tc.texte); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ids=%v, attendu %v", got, tc.want)
			}
		})
	}
}

func TestParseChoix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		texte string
		want  string
	}{
		{"Merci de VALIDER la commande", ChoixValider},
		{"paiement à refuser", ChoixRefuser},
		{"valider ou refuser, je valide", ChoixValider},
		{"je valide", ""},
	}
	for _, tc := range cases {
		if got := ParseChoix(tc.texte); got != tc.want {
			t.Fatalf("choix(%q)=%q, attendu %q", tc.texte, got, tc.want)
		}
	}
}

func TestExtractEvidence(t *testing.T) {
	t.Parallel()

	ev := ExtractEvidence("Paiement de 1 000,50 FCFA ref TX12345678 merci de valider")
	if ev.Montant == nil || !ev.Montant.Equal(decimal.NewFromFloat(1000.50)) {
		t.Fatalf("montant=%v, attendu 1000.50", ev.Montant)
	}
	if ev.IDTransaction != "TX12345678" {
		t.Fatalf("idTransaction=%q, attendu TX12345678", ev.IDTransaction)
	}
	if ev.Choix != ChoixValider {
		t.Fatalf("choix=%q, attendu %q", ev.Choix, ChoixValider)
	}
	if ev.Indice != "" {
		t.Fatalf("indice=%q, attendu vide", ev.Indice)
	}
}

func TestExtractEvidence_Indice(t *testing.T) {
	t.Parallel()

	if ev := ExtractEvidence("utilisateur: jdupont a payé"); ev.Indice != "jdupont" {
		t.Fatalf("indice=%q, attendu jdupont", ev.Indice)
	}
	if ev := ExtractEvidence("user - marcel24"); ev.Indice != "marcel24" {
		t.Fatalf("indice=%q, attendu marcel24", ev.Indice)
	}
}

func TestExtractEvidence_Vide(t *testing.T) {
	t.Parallel()

	ev := ExtractEvidence("bonjour, rien d'utile")
	if ev.Montant != nil || ev.IDTransaction != "" || ev.Choix != "" || ev.Indice != "" {
		t.Fatalf("ExtractEvidence aurait dû rester vide: %+v", ev)
	}
}
