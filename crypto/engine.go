package crypto

// Direction binds a session to one half of a stream. Outbound
// sessions protect, inbound sessions unprotect; a session is never
// used for both.
type Direction int

const (
	DirectionOutbound Direction = iota
	DirectionInbound
)

func (d Direction) String() string {
	if d == DirectionInbound {
		return "inbound"
	}
	return "outbound"
}

// Replay window depth for inbound sessions.
const REPLAY_WINDOW_SIZE = 1024

// Session is one keyed SRTP context. Buffers passed in hold a full
// RTP packet (header plus payload); both calls return a new slice and
// leave the input untouched.
//
// A Session advances internal replay state on every successful
// UnprotectRTP, so callers must serialize all calls against a single
// session. Outbound and inbound sessions are independent and may run
// concurrently with each other.
type Session interface {
	ProtectRTP(packet []byte) ([]byte, error)
	// UnprotectRTP reports ErrReplayDetected for replay-window
	// rejects and ErrAuthenticationFailed for any other
	// authentication failure.
	UnprotectRTP(packet []byte) ([]byte, error)
	Close() error
}

// Engine creates keyed sessions. It is the injected crypto capability:
// MediaCrypto owns the packet wrapping and delegates confidentiality
// and integrity here, so the wrapping logic can be tested against a
// fake engine.
type Engine interface {
	NewSession(suite CipherSuite, direction Direction, keySalt []byte) (Session, error)
}
