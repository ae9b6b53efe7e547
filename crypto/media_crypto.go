// Package crypto implements PERC-style end-to-end protection of RTP
// payloads. MediaCrypto wraps a packet's payload in an Original
// Header Block, protects it through an injected SRTP engine, and puts
// the protected bytes back in the payload slot. A relay between the
// endpoints may rewrite the outer header; the receiver recovers the
// original fields from the OHB after unprotecting.
//
// A MediaCrypto instance serves exactly one direction of one stream
// and is not internally synchronized: callers confine it to the
// goroutine that owns that direction of the packet pipeline.
package crypto

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/RealKeyboardWarrior/percrtp/rtp"
)

type MediaCrypto struct {
	engine  Engine
	session Session

	rtpAuthTagLen  int
	rtcpAuthTagLen int

	log *logrus.Entry
}

func NewMediaCrypto(engine Engine) *MediaCrypto {
	return &MediaCrypto{
		engine: engine,
		log:    logrus.WithField("component", "media_crypto"),
	}
}

// SetOutboundKey keys the session for Encrypt. A MediaCrypto is keyed
// at most once; a second key-set fails and leaves the existing session
// untouched.
func (m *MediaCrypto) SetOutboundKey(key Key) error {
	return m.setKey(DirectionOutbound, key)
}

// SetInboundKey keys the session for Decrypt.
func (m *MediaCrypto) SetInboundKey(key Key) error {
	return m.setKey(DirectionInbound, key)
}

func (m *MediaCrypto) setKey(direction Direction, key Key) error {
	if m.session != nil {
		m.log.Error("failed to key media crypto session: already keyed")
		return ErrAlreadyKeyed
	}
	if err := key.validate(); err != nil {
		m.log.WithFields(logrus.Fields{
			"suite":   key.Suite.String(),
			"key_len": len(key.Material),
		}).WithError(err).Error("failed to key media crypto session")
		return err
	}

	session, err := m.engine.NewSession(key.Suite, direction, key.Material)
	if err != nil {
		m.log.WithField("suite", key.Suite.String()).WithError(err).Error(
			"failed to create engine session")
		return err
	}

	m.session = session
	m.rtpAuthTagLen = key.Suite.RTPAuthTagLen()
	m.rtcpAuthTagLen = key.Suite.RTCPAuthTagLen()
	m.log.WithFields(logrus.Fields{
		"suite":     key.Suite.String(),
		"direction": direction.String(),
	}).Info("end to end media encryption key set")
	return nil
}

// Keyed reports whether a key has been set.
func (m *MediaCrypto) Keyed() bool {
	return m.session != nil
}

// Overhead returns the bytes Encrypt adds to a payload: OHB plus the
// suite's authentication tag. Zero before keying. Callers use it for
// capacity planning before encoding a packet.
func (m *MediaCrypto) Overhead() int {
	if m.session == nil {
		return 0
	}
	return LEN_OHB + m.rtpAuthTagLen
}

// Encrypt protects the packet's payload end to end. On success the
// payload is replaced by OHB-prefixed protected bytes; on any failure
// the packet is left unmodified.
func (m *MediaCrypto) Encrypt(packet rtp.PacketView) error {
	if m.session == nil {
		return ErrNotKeyed
	}

	payload := packet.Payload()
	encryptedPayloadSize := LEN_OHB + len(payload) + m.rtpAuthTagLen
	if encryptedPayloadSize > packet.MaxPayloadSize() {
		m.log.WithFields(logrus.Fields{
			"needed": encryptedPayloadSize,
			"max":    packet.MaxPayloadSize(),
		}).Warn("failed to encrypt media packet: exceeds max payload size")
		return ErrCapacityExceeded
	}

	// Synthesize the inner packet: minimal RTP header (version byte
	// plus OHB copied from the outer header) followed by the payload.
	inner := make([]byte, 1+LEN_OHB+len(payload))
	inner[0] = VERSION_BYTE
	ohb := OHB{
		Marker:         packet.Marker(),
		PayloadType:    packet.PayloadType(),
		SequenceNumber: packet.SequenceNumber(),
		Timestamp:      packet.Timestamp(),
		SSRC:           packet.SSRC(),
	}
	ohb.marshalTo(inner[1:])
	copy(inner[1+LEN_OHB:], payload)

	protected, err := m.session.ProtectRTP(inner)
	if err != nil {
		m.log.WithError(err).Warn("failed to end to end encrypt media packet")
		return err
	}

	// The version byte is not carried on the wire; the receiver
	// reconstructs it.
	buffer, ok := packet.AllocatePayload(len(protected) - 1)
	if !ok {
		m.log.Warn("failed to encrypt media packet: could not allocate payload")
		return ErrCapacityExceeded
	}
	copy(buffer, protected[1:])
	return nil
}

// Decrypt unprotects an OHB-wrapped payload in place and returns the
// recovered cleartext length. On any failure the buffer is left
// unmodified.
func (m *MediaCrypto) Decrypt(payload []byte) (int, error) {
	if m.session == nil {
		return 0, ErrNotKeyed
	}
	if len(payload) < LEN_OHB+m.rtpAuthTagLen {
		m.log.WithField("len", len(payload)).Warn(
			"failed to decrypt media packet: shorter than OHB plus auth tag")
		return 0, ErrPayloadTooShort
	}

	inner := make([]byte, 1+len(payload))
	inner[0] = VERSION_BYTE
	copy(inner[1:], payload)

	cleartext, err := m.session.UnprotectRTP(inner)
	if err != nil {
		if errors.Is(err, ErrReplayDetected) {
			m.log.WithError(err).Warn("replay failed")
		} else {
			m.log.WithError(err).Warn("failed to end to end decrypt media packet")
		}
		return 0, err
	}

	return copy(payload, cleartext[1+LEN_OHB:]), nil
}

// Close releases the engine session, if any.
func (m *MediaCrypto) Close() error {
	if m.session == nil {
		return nil
	}
	err := m.session.Close()
	m.session = nil
	return err
}
