package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadString_TruncatesLargeBodies(t *testing.T) {
	payload := map[string]string{
		"logoUrl": "data:image/png;base64," + strings.Repeat("A", 4*maxLoggedPayload),
	}

	s := payloadString(payload)
	require.Less(t, len(s), maxLoggedPayload+64)
	require.Contains(t, s, "bytes)")
}

func TestPayloadString_SmallBodiesIntact(t *testing.T) {
	require.Equal(t, `{"slot":"logo"}`, payloadString(map[string]string{"slot": "logo"}))
	require.Equal(t, "<nil>", payloadString(nil))
}

func TestSessionID_NilRequest(t *testing.T) {
	require.Empty(t, sessionID(nil))
}
