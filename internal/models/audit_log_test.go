package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_Metadata(t *testing.T) {
	log := &AuditLog{Action: AuditActionFailedLogin}

	assert.Equal(t, "none", log.GetMetadata("reason", "none"))

	log.SetMetadata("reason", "invalid credentials")
	log.SetMetadata("attempt", 2)

	assert.Equal(t, "invalid credentials", log.GetMetadata("reason", ""))
	assert.Equal(t, 2, log.GetMetadata("attempt", 0))
	assert.Equal(t, "fallback", log.GetMetadata("missing", "fallback"))
}

func TestAuditLog_String(t *testing.T) {
	clientID := uint32(7)
	withClient := &AuditLog{
		ClientID:  &clientID,
		Action:    AuditActionLogin,
		SessionID: "sess-1",
		Remote:    "10.0.0.1",
	}
	anonymous := &AuditLog{Action: AuditActionProtocolViolation, SessionID: "sess-2"}

	str := withClient.String()
	assert.Contains(t, str, "Client: 7")
	assert.Contains(t, str, "login")
	assert.Contains(t, str, "10.0.0.1")
	assert.Contains(t, anonymous.String(), "anonymous")
	assert.NotContains(t, anonymous.String(), "Reason")

	anonymous.SetMetadata("reason", "idle_timeout")
	assert.Contains(t, anonymous.String(), "Reason: idle_timeout")
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	m := JSONBMap{"opcode": float64(4), "state": "authenticated"}

	v, err := m.Value()
	require.NoError(t, err)
	require.IsType(t, "", v)

	var decoded JSONBMap
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, m, decoded)

	require.NoError(t, decoded.Scan([]byte(`{"opcode":1}`)))
	assert.Equal(t, float64(1), decoded["opcode"])

	assert.Error(t, decoded.Scan(42))

	empty, err := JSONBMap(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, empty)
}
