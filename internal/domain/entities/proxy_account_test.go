package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyAccount_MaskedKey(t *testing.T) {
	t.Run("只保留末4位", func(t *testing.T) {
		account := &ProxyAccount{APIKey: "sk-abcdef1234"}
		assert.Equal(t, "****1234", account.MaskedKey())
	})

	t.Run("短凭证只返回掩码", func(t *testing.T) {
		assert.Equal(t, "****", (&ProxyAccount{APIKey: "abcd"}).MaskedKey())
		assert.Equal(t, "****", (&ProxyAccount{APIKey: "ab"}).MaskedKey())
		assert.Equal(t, "****", (&ProxyAccount{APIKey: ""}).MaskedKey())
	})

	t.Run("凭证前后空白不参与掩码", func(t *testing.T) {
		account := &ProxyAccount{APIKey: "  sk-abcdef1234  "}
		assert.Equal(t, "****1234", account.MaskedKey())
	})
}

func TestProxyAccount_JSONNeverExposesAPIKey(t *testing.T) {
	account := &ProxyAccount{
		ID:       1,
		Name:     "primary",
		Provider: Provider302AI,
		APIKey:   "sk-secret-credential",
		Status:   ProxyAccountStatusActive,
	}

	raw, err := json.Marshal(account)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sk-secret-credential")
	assert.NotContains(t, string(raw), "api_key")
}
