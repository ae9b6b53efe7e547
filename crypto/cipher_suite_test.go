package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCipherSuiteLengths(t *testing.T) {
	cases := []struct {
		suite      CipherSuite
		name       string
		keySaltLen int
		rtpTagLen  int
		rtcpTagLen int
	}{
		{AES128CMHMACSHA1_80, "AES_CM_128_HMAC_SHA1_80", 30, 10, 10},
		{AES128CMHMACSHA1_32, "AES_CM_128_HMAC_SHA1_32", 30, 4, 10},
		{AEADAES128GCM, "AEAD_AES_128_GCM", 28, 16, 16},
		{AEADAES256GCM, "AEAD_AES_256_GCM", 44, 16, 16},
	}
	for _, c := range cases {
		require.Equal(t, c.name, c.suite.String())
		require.Equal(t, c.keySaltLen, c.suite.KeySaltLen(), c.name)
		require.Equal(t, c.rtpTagLen, c.suite.RTPAuthTagLen(), c.name)
		require.Equal(t, c.rtcpTagLen, c.suite.RTCPAuthTagLen(), c.name)
	}
}

func TestCipherSuiteUnknown(t *testing.T) {
	unknown := CipherSuite(0)
	require.Equal(t, "unknown", unknown.String())
	require.Zero(t, unknown.KeySaltLen())
	require.Zero(t, unknown.RTPAuthTagLen())
	require.Zero(t, unknown.RTCPAuthTagLen())
}

func TestKeyValidate(t *testing.T) {
	require.NoError(t, testKey(AES128CMHMACSHA1_80).validate())

	badSuite := Key{Suite: CipherSuite(99), Material: make([]byte, 30)}
	require.ErrorIs(t, badSuite.validate(), ErrUnsupportedCipherSuite)

	shortKey := Key{Suite: AEADAES256GCM, Material: make([]byte, 28)}
	require.ErrorIs(t, shortKey.validate(), ErrInvalidKeyLength)
}
