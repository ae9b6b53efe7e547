package crypto

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/RealKeyboardWarrior/percrtp/rtp"
	"github.com/RealKeyboardWarrior/percrtp/rtp/byteio"
)

// DoublePERC is the first-generation packet wrapping scheme, kept for
// interop with peers that never migrated. Its OHB omits the SSRC:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|M|     PT      |       sequence number         |  timestamp    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  timestamp                    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The scheme also keys directions the opposite way around from
// MediaCrypto: SetOutboundKey creates an inbound-direction engine
// session and vice versa. Both quirks are load-bearing for interop,
// which is why this type shares no wrapping code with MediaCrypto.
// The two formats are wire-incompatible; never mix them on one
// stream.
const LEN_OHB_DOUBLE = 7

type DoublePERC struct {
	engine  Engine
	session Session

	rtpAuthTagLen  int
	rtcpAuthTagLen int

	log *logrus.Entry
}

func NewDoublePERC(engine Engine) *DoublePERC {
	return &DoublePERC{
		engine: engine,
		log:    logrus.WithField("component", "double_perc"),
	}
}

func (d *DoublePERC) SetOutboundKey(key Key) error {
	return d.setKey(DirectionInbound, key)
}

func (d *DoublePERC) SetInboundKey(key Key) error {
	return d.setKey(DirectionOutbound, key)
}

func (d *DoublePERC) setKey(direction Direction, key Key) error {
	if d.session != nil {
		d.log.Error("failed to key double perc session: already keyed")
		return ErrAlreadyKeyed
	}
	if err := key.validate(); err != nil {
		d.log.WithField("suite", key.Suite.String()).WithError(err).Error(
			"failed to key double perc session")
		return err
	}
	session, err := d.engine.NewSession(key.Suite, direction, key.Material)
	if err != nil {
		d.log.WithField("suite", key.Suite.String()).WithError(err).Error(
			"failed to create engine session")
		return err
	}
	d.session = session
	d.rtpAuthTagLen = key.Suite.RTPAuthTagLen()
	d.rtcpAuthTagLen = key.Suite.RTCPAuthTagLen()
	return nil
}

func (d *DoublePERC) Keyed() bool {
	return d.session != nil
}

func (d *DoublePERC) Overhead() int {
	if d.session == nil {
		return 0
	}
	return LEN_OHB_DOUBLE + d.rtpAuthTagLen
}

// Encrypt wraps and protects the packet's payload. On any failure the
// packet is left unmodified.
func (d *DoublePERC) Encrypt(packet rtp.PacketView) error {
	if d.session == nil {
		return ErrNotKeyed
	}

	payload := packet.Payload()
	encryptedPayloadSize := LEN_OHB_DOUBLE + len(payload) + d.rtpAuthTagLen
	if encryptedPayloadSize > packet.MaxPayloadSize() {
		d.log.WithFields(logrus.Fields{
			"needed": encryptedPayloadSize,
			"max":    packet.MaxPayloadSize(),
		}).Warn("failed to perform double perc: exceeds max payload size")
		return ErrCapacityExceeded
	}

	inner := make([]byte, 1+LEN_OHB_DOUBLE+len(payload))
	inner[0] = VERSION_BYTE
	inner[1] = packet.PayloadType()
	if packet.Marker() {
		inner[1] |= 0x80
	}
	byteio.PutUint16(inner[2:], packet.SequenceNumber())
	byteio.PutUint32(inner[4:], packet.Timestamp())
	copy(inner[1+LEN_OHB_DOUBLE:], payload)

	protected, err := d.session.ProtectRTP(inner)
	if err != nil {
		d.log.WithError(err).Warn("failed to encrypt double packet")
		return err
	}

	buffer, ok := packet.AllocatePayload(len(protected) - 1)
	if !ok {
		d.log.Warn("failed to perform double perc: could not allocate payload")
		return ErrCapacityExceeded
	}
	copy(buffer, protected[1:])
	return nil
}

// Decrypt unprotects an OHB-wrapped payload in place and returns the
// recovered cleartext length. On any failure the buffer is left
// unmodified.
func (d *DoublePERC) Decrypt(payload []byte) (int, error) {
	if d.session == nil {
		return 0, ErrNotKeyed
	}
	if len(payload) < LEN_OHB_DOUBLE+d.rtpAuthTagLen {
		d.log.WithField("len", len(payload)).Warn(
			"failed to perform double perc: payload smaller than the minimum")
		return 0, ErrPayloadTooShort
	}

	inner := make([]byte, 1+len(payload))
	inner[0] = VERSION_BYTE
	copy(inner[1:], payload)

	cleartext, err := d.session.UnprotectRTP(inner)
	if err != nil {
		if errors.Is(err, ErrReplayDetected) {
			d.log.WithError(err).Warn("replay failed")
		} else {
			d.log.WithError(err).Warn("failed to unprotect double packet")
		}
		return 0, err
	}

	return copy(payload, cleartext[1+LEN_OHB_DOUBLE:]), nil
}

func (d *DoublePERC) Close() error {
	if d.session == nil {
		return nil
	}
	err := d.session.Close()
	d.session = nil
	return err
}
