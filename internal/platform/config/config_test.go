package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("INDEX_API_KEY", "key")
	t.Setenv("LEDGER_RPC_URL", "http://localhost:8545")
	t.Setenv("OFFER_CONTRACT_ADDRESS", "0x3333333333333333333333333333333333333333")
	t.Setenv("ATTESTOR_PRIVATE_KEY", "deadbeef")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultIndexBaseURL, cfg.IndexBaseURL)
	assert.Equal(t, 100, cfg.ScanMaxPages)
	assert.Empty(t, cfg.AuditBrokers)
	assert.Equal(t, "boost-decisions", cfg.AuditTopic)
}

func TestFromEnvFailsFastOnMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("ATTESTOR_PRIVATE_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATTESTOR_PRIVATE_KEY")
}

func TestFromEnvParsesOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ORACLE_ADDR", ":9999")
	t.Setenv("SCAN_MAX_PAGES", "7")
	t.Setenv("AUDIT_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 7, cfg.ScanMaxPages)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.AuditBrokers)
}

func TestFromEnvRejectsBadScanMaxPages(t *testing.T) {
	setRequired(t)
	for _, raw := range []string{"zero", "-3", "0"} {
		t.Setenv("SCAN_MAX_PAGES", raw)
		_, err := FromEnv()
		assert.Error(t, err, "SCAN_MAX_PAGES=%s", raw)
	}
}
