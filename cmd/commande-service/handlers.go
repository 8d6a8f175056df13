package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"commandes-ledger/internal/commande"
	"commandes-ledger/internal/ledger"
	"commandes-ledger/internal/verification"
)

// commandeHandler godoc
// @Summary      Enregistre une commande
// @Description  Ajoute la commande comme nouvelle ligne du registre, statut "En attente". Les champs absents deviennent des cellules vides.
// @Accept       json
// @Produce      json
// @Param        commande  body      commande.Submission  true  "Commande soumise par la boutique"
// @Success      200  {object}  commande.SubmitResponse
// @Failure      405  {object}  commande.HTTPError
// @Failure      500  {object}  commande.HTTPError
// @Router       /commande [post]
func commandeHandler(registre ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, commande.HTTPError{Error: "Method not allowed"})
			return
		}
		if err := enregistrer(c, registre); err != nil {
			log.Printf("[commande] échec de l'enregistrement: %v", err)
			c.JSON(http.StatusInternalServerError, commande.HTTPError{
				Error:   commande.MessageEchec,
				Details: err.Error(),
			})
			return
		}
		// En-têtes CORS sur le succès uniquement: le front historique les
		// attend là et seulement là.
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.JSON(http.StatusOK, commande.SubmitResponse{
			Success: true,
			Message: commande.MessageSucces,
		})
	}
}

// enregistrer regroupe les étapes faillibles (lecture, analyse, construction
// de la ligne, ajout) derrière une frontière d'erreur unique: pas de reprise,
// pas de succès partiel.
func enregistrer(c *gin.Context, registre ledger.Ledger) error {
	corps, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("lecture du corps: %w", err)
	}
	var sub commande.Submission
	if err := json.Unmarshal(corps, &sub); err != nil {
		return fmt.Errorf("analyse du corps JSON: %w", err)
	}
	ligne, err := commande.LedgerRow(sub, time.Now())
	if err != nil {
		return err
	}
	return registre.Append(c.Request.Context(), ligne)
}

// healthzHandler godoc
// @Summary  Sonde de vie
// @Produce  plain
// @Success  200  {string}  string  "ok"
// @Router   /healthz [get]
func healthzHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// verificationHandler godoc
// @Summary      Vérifie un paiement déclaré contre le registre
// @Description  Croise la preuve fournie (référence, montant, indice ou texte libre) avec les lignes récentes du registre et rend VALIDER ou REFUSER. Ne modifie jamais le registre.
// @Accept       json
// @Produce      json
// @Param        preuve  body      verification.Request  true  "Éléments déclarés par le payeur"
// @Success      200  {object}  verification.Result
// @Failure      400  {object}  commande.HTTPError
// @Failure      405  {object}  commande.HTTPError
// @Failure      500  {object}  commande.HTTPError
// @Router       /verification [post]
func verificationHandler(verificateur *verification.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, commande.HTTPError{Error: "Method not allowed"})
			return
		}
		var req verification.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, commande.HTTPError{Error: "Corps JSON invalide"})
			return
		}
		res, err := verificateur.Verify(c.Request.Context(), req.ToEvidence())
		if err != nil {
			log.Printf("[verification] échec: %v", err)
			c.JSON(http.StatusInternalServerError, commande.HTTPError{
				Error:   "Erreur lors de la vérification du paiement",
				Details: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
