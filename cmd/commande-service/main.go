package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "commandes-ledger/docs"
	"commandes-ledger/internal/config"
	"commandes-ledger/internal/httpx"
	"commandes-ledger/internal/ledger"
	"commandes-ledger/internal/verification"
)

// @title        Commandes Ledger API
// @version      1.0
// @description  Réception des commandes de la boutique dans le registre Google Sheets et vérification des paiements déclarés.
// @BasePath     /
func main() {
	cfg := config.Load()

	registre := ledger.NewSheetsLedger([]byte(cfg.CredentialsJSON), cfg.SpreadsheetID, cfg.SheetsRange)
	verificateur := verification.NewVerifier(registre, cfg.TolerancePct, time.Duration(cfg.WindowHours)*time.Hour)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	// Toutes les méthodes atteignent les handlers; le contrat 405 est le leur.
	r.Any("/commande", commandeHandler(registre))
	r.Any("/verification", verificationHandler(verificateur))
	r.GET("/healthz", healthzHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("[commande-service] écoute sur %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("[commande-service] arrêt du serveur: %v", err)
	}
}
