// Package verification decides whether a claimed payment matches an order
// already recorded in the ledger. It only ever reads the ledger.
package verification

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Choix explicites reconnus dans le texte d'une preuve.
const (
	ChoixValider = "valider"
	ChoixRefuser = "refuser"
)

// Evidence is what a payer or an operator claims about a payment. Zero
// values mean "not provided"; any single field is enough to attempt a match.
type Evidence struct {
	Indice        string           // fragment identifiant l'acheteur, en général un email
	Montant       *decimal.Decimal // montant déclaré
	IDTransaction string           // référence de paiement déclarée
	Choix         string           // "valider" ou "refuser" si le texte tranche déjà
	Texte         string           // texte brut d'origine
}

var (
	// Capture "50 FCFA", "50.00", "50,00", "1 000", etc.
	montantRe = regexp.MustCompile(`(?i)(?:^|[^\d])(\d{1,3}(?:[\s.,]\d{3})*(?:[.,]\d{1,2})?)(?:\s*(?:FCFA|XOF))?`)
	// Références: 6 à 20 caractères alphanumériques.
	idRe      = regexp.MustCompile(`(?i)\b([A-Z0-9]{6,20})\b`)
	validerRe = regexp.MustCompile(`(?i)\bvalider\b`)
	refuserRe = regexp.MustCompile(`(?i)\brefuser\b`)
	// Heuristique: mot après "user"/"utilisateur"/"id".
	indiceRe = regexp.MustCompile(`(?i)(?:user|utilisateur|id)[:\s-]+(\S{2,})`)
)

// ParseMontants collects every amount-looking token of texte, in order of
// appearance. French digit grouping and comma decimals are understood, the
// FCFA/XOF suffix is optional.
func ParseMontants(texte string) []decimal.Decimal {
	clean := strings.ReplaceAll(texte, " ", " ")
	var montants []decimal.Decimal
	for _, m := range montantRe.FindAllStringSubmatch(clean, -1) {
		token := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(m[1])
		d, err := decimal.NewFromString(token)
		if err != nil {
			continue
		}
		montants = append(montants, d)
	}
	return montants
}

// ParseIDs returns candidate transaction references, deduplicated in order
// of appearance. Candidates must hold at least one digit: sans chiffre,
// n'importe quel mot de six lettres passerait.
func ParseIDs(texte string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, id := range idRe.FindAllString(texte, -1) {
		if !strings.ContainsAny(id, "0123456789") {
			continue
		}
		key := strings.ToUpper(id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ParseChoix reports an explicit valider/refuser instruction found in texte,
// valider winning when both appear.
func ParseChoix(texte string) string {
	if validerRe.MatchString(texte) {
		return ChoixValider
	}
	if refuserRe.MatchString(texte) {
		return ChoixRefuser
	}
	return ""
}

// ExtractEvidence pulls a best-effort Evidence out of free text: first
// amount, first reference, buyer hint and explicit choice.
func ExtractEvidence(texte string) Evidence {
	ev := Evidence{Texte: texte, Choix: ParseChoix(texte)}
	if montants := ParseMontants(texte); len(montants) > 0 {
		ev.Montant = &montants[0]
	}
	if ids := ParseIDs(texte); len(ids) > 0 {
		ev.IDTransaction = ids[0]
	}
	if m := indiceRe.FindStringSubmatch(texte); m != nil {
		ev.Indice = m[1]
	}
	return ev
}
