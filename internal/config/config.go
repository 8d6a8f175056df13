package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs. Handlers receive values from
// here and never read the environment themselves.
type Config struct {
	Addr            string
	CredentialsJSON string // service-account JSON, brut
	SpreadsheetID   string
	SheetsRange     string
	TolerancePct    float64
	WindowHours     int
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s=%q invalide, valeur par défaut %v", k, v, def)
		return def
	}
	return f
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q invalide, valeur par défaut %d", k, v, def)
		return def
	}
	return n
}

func Load() Config {
	_ = godotenv.Load() // charge .env s'il existe
	cfg := Config{
		Addr:            getenv("COMMANDE_SVC_ADDR", ":8080"),
		CredentialsJSON: os.Getenv("SHEETS_CREDENTIALS_JSON"),
		SpreadsheetID:   getenv("SHEETS_SPREADSHEET_ID", ""),
		SheetsRange:     getenv("SHEETS_RANGE", "Commandes!A:J"),
		TolerancePct:    getenvFloat("VERIF_TOLERANCE_PCT", 1.0),
		WindowHours:     getenvInt("VERIF_WINDOW_HOURS", 168),
	}
	log.Printf("[config] COMMANDE_SVC_ADDR=%s", cfg.Addr)
	log.Printf("[config] SHEETS_SPREADSHEET_ID=%s", cfg.SpreadsheetID)
	log.Printf("[config] SHEETS_RANGE=%s", cfg.SheetsRange)
	// le credential n'est jamais écrit dans les logs
	log.Printf("[config] SHEETS_CREDENTIALS_JSON présent=%t", cfg.CredentialsJSON != "")
	log.Printf("[config] VERIF_TOLERANCE_PCT=%v VERIF_WINDOW_HOURS=%d", cfg.TolerancePct, cfg.WindowHours)
	return cfg
}
