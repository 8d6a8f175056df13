// Package commande maps order submissions from the storefront onto the
// fixed row schema of the spreadsheet ledger.
package commande

// StatusEnAttente is written in the status column of every new row. Orders
// leave this state through the back office, never through this service.
const StatusEnAttente = "En attente"

// Textes renvoyés à la boutique. Le front les affiche tels quels.
const (
	MessageSucces = "Commande enregistrée avec succès"
	MessageEchec  = "Erreur lors de l'enregistrement de la commande"
)

// Submission is the inbound order payload. The historical form clients omit
// fields freely, so every field is optional and untyped: whatever arrives
// must reach the ledger unchanged, absent values included.
// swagger:model Submission
type Submission struct {
	Email         any `json:"email"`
	Produits      any `json:"produits"`
	Montant       any `json:"montant"`
	IDTransaction any `json:"idTransaction"`
	ModePaiement  any `json:"modePaiement"`
}

// SubmitResponse acknowledges a recorded order.
// swagger:model
type SubmitResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Commande enregistrée avec succès"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Method not allowed
	Error string `json:"error"`
	// Raw cause, present on 500 responses only
	Details string `json:"details,omitempty"`
}
