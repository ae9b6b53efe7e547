package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testInnerPacket builds the minimal 12-byte header plus payload shape
// that sessions protect.
func testInnerPacket(sequenceNumber uint16, payload []byte) []byte {
	ohb := OHB{
		PayloadType:    96,
		SequenceNumber: sequenceNumber,
		Timestamp:      0xAABBCCDD,
		SSRC:           0x01020304,
	}
	packet := make([]byte, 1+LEN_OHB+len(payload))
	packet[0] = VERSION_BYTE
	ohb.marshalTo(packet[1:])
	copy(packet[1+LEN_OHB:], payload)
	return packet
}

func TestSRTPEngineRejectsBadSessions(t *testing.T) {
	engine := NewSRTPEngine()

	_, err := engine.NewSession(CipherSuite(99), DirectionOutbound, make([]byte, 30))
	require.ErrorIs(t, err, ErrUnsupportedCipherSuite)

	_, err = engine.NewSession(AES128CMHMACSHA1_80, DirectionOutbound, make([]byte, 29))
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = engine.NewSession(AEADAES256GCM, DirectionInbound, make([]byte, 30))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestSRTPEngineRoundTrip(t *testing.T) {
	suites := []CipherSuite{
		AES128CMHMACSHA1_80,
		AES128CMHMACSHA1_32,
		AEADAES128GCM,
		AEADAES256GCM,
	}
	for _, suite := range suites {
		t.Run(suite.String(), func(t *testing.T) {
			engine := NewSRTPEngine()
			outbound, err := engine.NewSession(suite, DirectionOutbound, testKey(suite).Material)
			require.NoError(t, err)
			inbound, err := engine.NewSession(suite, DirectionInbound, testKey(suite).Material)
			require.NoError(t, err)

			packet := testInnerPacket(1, []byte("some media"))
			protected, err := outbound.ProtectRTP(packet)
			require.NoError(t, err)
			require.Len(t, protected, len(packet)+suite.RTPAuthTagLen())

			cleartext, err := inbound.UnprotectRTP(protected)
			require.NoError(t, err)
			require.Equal(t, packet, cleartext)
		})
	}
}

func TestSRTPEngineDetectsTampering(t *testing.T) {
	engine := NewSRTPEngine()
	outbound, err := engine.NewSession(AES128CMHMACSHA1_80, DirectionOutbound, testKey(AES128CMHMACSHA1_80).Material)
	require.NoError(t, err)
	inbound, err := engine.NewSession(AES128CMHMACSHA1_80, DirectionInbound, testKey(AES128CMHMACSHA1_80).Material)
	require.NoError(t, err)

	protected, err := outbound.ProtectRTP(testInnerPacket(1, []byte("some media")))
	require.NoError(t, err)
	protected[len(protected)-1] ^= 0x01

	_, err = inbound.UnprotectRTP(protected)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSRTPEngineDetectsReplay(t *testing.T) {
	engine := NewSRTPEngine()
	outbound, err := engine.NewSession(AES128CMHMACSHA1_80, DirectionOutbound, testKey(AES128CMHMACSHA1_80).Material)
	require.NoError(t, err)
	inbound, err := engine.NewSession(AES128CMHMACSHA1_80, DirectionInbound, testKey(AES128CMHMACSHA1_80).Material)
	require.NoError(t, err)

	protected, err := outbound.ProtectRTP(testInnerPacket(42, []byte("some media")))
	require.NoError(t, err)

	_, err = inbound.UnprotectRTP(protected)
	require.NoError(t, err)

	_, err = inbound.UnprotectRTP(protected)
	require.ErrorIs(t, err, ErrReplayDetected)
	require.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSRTPEngineToleratesRepeatedProtect(t *testing.T) {
	// Retransmissions re-protect the same sequence number; the
	// outbound side must not refuse them.
	engine := NewSRTPEngine()
	outbound, err := engine.NewSession(AES128CMHMACSHA1_80, DirectionOutbound, testKey(AES128CMHMACSHA1_80).Material)
	require.NoError(t, err)

	packet := testInnerPacket(7, []byte("retransmit me"))
	first, err := outbound.ProtectRTP(packet)
	require.NoError(t, err)
	second, err := outbound.ProtectRTP(packet)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
