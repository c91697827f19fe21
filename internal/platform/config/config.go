package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultIndexBaseURL is the hosted social index endpoint.
const DefaultIndexBaseURL = "https://api.socialindex.dev"

// Config captures everything the oracle needs at process start. Required
// upstream credentials are validated here so a misconfigured deployment
// refuses to start instead of failing per-request.
type Config struct {
	Addr string

	IndexAPIKey  string
	IndexBaseURL string

	LedgerRPCURL    string
	ContractAddress string

	AttestorKey string

	ScanMaxPages int

	// AuditBrokers empty means the Kafka trail is disabled and terminal
	// decisions are only logged.
	AuditBrokers []string
	AuditTopic   string
}

// FromEnv builds the config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:         envOr("ORACLE_ADDR", ":8080"),
		IndexAPIKey:  os.Getenv("INDEX_API_KEY"),
		IndexBaseURL: envOr("INDEX_BASE_URL", DefaultIndexBaseURL),

		LedgerRPCURL:    os.Getenv("LEDGER_RPC_URL"),
		ContractAddress: os.Getenv("OFFER_CONTRACT_ADDRESS"),

		AttestorKey: os.Getenv("ATTESTOR_PRIVATE_KEY"),

		ScanMaxPages: 100,
		AuditTopic:   envOr("AUDIT_TOPIC", "boost-decisions"),
	}

	if raw := os.Getenv("SCAN_MAX_PAGES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("SCAN_MAX_PAGES must be a positive integer, got %q", raw)
		}
		cfg.ScanMaxPages = n
	}

	if raw := os.Getenv("AUDIT_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.AuditBrokers = append(cfg.AuditBrokers, b)
			}
		}
	}

	var missing []string
	for _, req := range []struct{ name, val string }{
		{"INDEX_API_KEY", cfg.IndexAPIKey},
		{"LEDGER_RPC_URL", cfg.LedgerRPCURL},
		{"OFFER_CONTRACT_ADDRESS", cfg.ContractAddress},
		{"ATTESTOR_PRIVATE_KEY", cfg.AttestorKey},
	} {
		if req.val == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
