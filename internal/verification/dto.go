package verification

import "github.com/shopspring/decimal"

// Request payload de vérification. Les champs explicites priment sur ce que
// le texte libre laisse extraire.
// swagger:model VerificationRequest
type Request struct {
	Montant       *float64 `json:"montant" example:"5000"`
	IDTransaction string   `json:"idTransaction" example:"TX12345678"`
	Indice        string   `json:"indice" example:"client@example.com"`
	Texte         string   `json:"texte" example:"Paiement de 5 000 FCFA ref TX12345678 merci de valider"`
}

// ToEvidence merges the explicit fields with whatever Texte yields.
func (r Request) ToEvidence() Evidence {
	ev := ExtractEvidence(r.Texte)
	if r.Montant != nil {
		m := decimal.NewFromFloat(*r.Montant)
		ev.Montant = &m
	}
	if r.IDTransaction != "" {
		ev.IDTransaction = r.IDTransaction
	}
	if r.Indice != "" {
		ev.Indice = r.Indice
	}
	return ev
}
