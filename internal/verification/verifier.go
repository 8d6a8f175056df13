package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"commandes-ledger/internal/commande"
	"commandes-ledger/internal/ledger"
)

// Décisions rendues par le vérificateur.
const (
	DecisionValider = "VALIDER"
	DecisionRefuser = "REFUSER"
)

// Colonnes du registre consultées ici (indices à partir de zéro).
const (
	colEmail         = 1
	colMontant       = 3
	colIDTransaction = 5
	colHorodatage    = 7
)

// Result is the verdict returned to the caller.
// swagger:model
type Result struct {
	Decision       string `json:"decision" example:"VALIDER"`
	Reason         string `json:"reason" example:"Correspondance trouvée dans le registre"`
	MatchedRow     int    `json:"matched_row,omitempty"`
	MatchedSnippet string `json:"matched_snippet,omitempty"`
}

// Verifier matches payment evidence against the rows of the ledger.
type Verifier struct {
	registre  ledger.Ledger
	tolerance decimal.Decimal // écart admis sur le montant, en pourcent
	fenetre   time.Duration   // profondeur de la recherche dans le registre
	now       func() time.Time
}

func NewVerifier(registre ledger.Ledger, tolerancePct float64, fenetre time.Duration) *Verifier {
	return &Verifier{
		registre:  registre,
		tolerance: decimal.NewFromFloat(tolerancePct),
		fenetre:   fenetre,
		now:       time.Now,
	}
}

// Verify scans the ledger for a row supporting ev. Rows without a readable
// timestamp or older than the window are skipped, so headers never match.
// The first matching row wins; row numbers are 1-based like the sheet UI.
func (v *Verifier) Verify(ctx context.Context, ev Evidence) (Result, error) {
	rows, err := v.registre.Rows(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("lecture du registre: %w", err)
	}
	limite := v.now().Add(-v.fenetre)
	for i, row := range rows {
		ts, err := commande.ParseHorodatage(cellString(row, colHorodatage))
		if err != nil || ts.Before(limite) {
			continue
		}
		if v.rowMatches(row, ev) {
			return Result{
				Decision:       DecisionValider,
				Reason:         "Correspondance trouvée dans le registre",
				MatchedRow:     i + 1,
				MatchedSnippet: snippet(row),
			}, nil
		}
	}
	return Result{
		Decision: DecisionRefuser,
		Reason:   "Aucune commande correspondante dans la fenêtre temporelle",
	}, nil
}

// rowMatches tries the strongest signal first: la référence de transaction,
// puis le montant, puis l'indice acheteur.
func (v *Verifier) rowMatches(row []any, ev Evidence) bool {
	contenu := strings.ToLower(rowContent(row))
	if ev.IDTransaction != "" && strings.Contains(contenu, strings.ToLower(ev.IDTransaction)) {
		return true
	}
	if ev.Montant != nil {
		if m, ok := cellMontant(row, colMontant); ok && v.withinTolerance(m, *ev.Montant) {
			return true
		}
	}
	if ev.Indice != "" && strings.Contains(contenu, strings.ToLower(ev.Indice)) {
		return true
	}
	return false
}

// withinTolerance: |a-b| <= tolerance% × max(a, b).
func (v *Verifier) withinTolerance(a, b decimal.Decimal) bool {
	tol := v.tolerance.Div(decimal.NewFromInt(100))
	ref := decimal.Max(a, b)
	return a.Sub(b).Abs().LessThanOrEqual(tol.Mul(ref))
}

func cellString(row []any, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return fmt.Sprint(row[idx])
}

// cellMontant reads an amount cell. Sheets renvoie des valeurs formatées,
// donc les groupements à la française et la virgule décimale passent; les
// nombres nus des tests passent aussi.
func cellMontant(row []any, idx int) (decimal.Decimal, bool) {
	if idx >= len(row) || row[idx] == nil {
		return decimal.Decimal{}, false
	}
	switch c := row[idx].(type) {
	case float64:
		return decimal.NewFromFloat(c), true
	case int:
		return decimal.NewFromInt(int64(c)), true
	case string:
		token := strings.NewReplacer(" ", "", " ", "", " ", "", ",", ".").Replace(c)
		d, err := decimal.NewFromString(token)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}

func rowContent(row []any) string {
	parts := make([]string, 0, len(row))
	for i := range row {
		if s := cellString(row, i); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// snippet renders the cells a human needs to recognize the order.
func snippet(row []any) string {
	parts := make([]string, 0, 4)
	for _, idx := range []int{colEmail, colMontant, colIDTransaction, colHorodatage} {
		if s := cellString(row, idx); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}
