package crypto

// CipherSuite names one of the supported SRTP protection suites. Key,
// salt and tag lengths are fixed per suite.
type CipherSuite int

const (
	AES128CMHMACSHA1_80 CipherSuite = iota + 1
	AES128CMHMACSHA1_32
	AEADAES128GCM
	AEADAES256GCM
)

func (cs CipherSuite) String() string {
	switch cs {
	case AES128CMHMACSHA1_80:
		return "AES_CM_128_HMAC_SHA1_80"
	case AES128CMHMACSHA1_32:
		return "AES_CM_128_HMAC_SHA1_32"
	case AEADAES128GCM:
		return "AEAD_AES_128_GCM"
	case AEADAES256GCM:
		return "AEAD_AES_256_GCM"
	default:
		return "unknown"
	}
}

func (cs CipherSuite) valid() bool {
	switch cs {
	case AES128CMHMACSHA1_80, AES128CMHMACSHA1_32, AEADAES128GCM, AEADAES256GCM:
		return true
	default:
		return false
	}
}

// KeySaltLen is the required length of the concatenated master key
// and master salt.
func (cs CipherSuite) KeySaltLen() int {
	switch cs {
	case AES128CMHMACSHA1_80, AES128CMHMACSHA1_32:
		return 16 + 14
	case AEADAES128GCM:
		return 16 + 12
	case AEADAES256GCM:
		return 32 + 12
	default:
		return 0
	}
}

// RTPAuthTagLen is the per-packet authentication tag length on RTP.
func (cs CipherSuite) RTPAuthTagLen() int {
	switch cs {
	case AES128CMHMACSHA1_80:
		return 10
	case AES128CMHMACSHA1_32:
		return 4
	case AEADAES128GCM, AEADAES256GCM:
		return 16
	default:
		return 0
	}
}

// RTCPAuthTagLen is the authentication tag length on RTCP. The HMAC is
// shortened to 32 bits only on RTP; RTCP always keeps 80 bits.
func (cs CipherSuite) RTCPAuthTagLen() int {
	switch cs {
	case AES128CMHMACSHA1_80, AES128CMHMACSHA1_32:
		return 10
	case AEADAES128GCM, AEADAES256GCM:
		return 16
	default:
		return 0
	}
}

// Key is end-to-end keying material for one direction of one stream:
// a cipher suite and the concatenated master key and salt.
type Key struct {
	Suite    CipherSuite
	Material []byte
}

func (k Key) validate() error {
	if !k.Suite.valid() {
		return ErrUnsupportedCipherSuite
	}
	if len(k.Material) != k.Suite.KeySaltLen() {
		return ErrInvalidKeyLength
	}
	return nil
}
