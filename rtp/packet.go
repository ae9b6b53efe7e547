// Package rtp exposes the narrow view of an RTP packet that the
// payload encryption layer consumes: the five header fields carried in
// the Original Header Block, the payload bytes, and a bounded payload
// resize. The encryption layer never reads or writes any other outer
// header field through this view.
package rtp

import (
	"github.com/pion/rtp"
)

// PacketView is the packet capability consumed by crypto.MediaCrypto.
// Implementations are not required to be safe for concurrent use.
type PacketView interface {
	Marker() bool
	PayloadType() uint8
	SequenceNumber() uint16
	Timestamp() uint32
	SSRC() uint32

	Payload() []byte
	MaxPayloadSize() int
	// AllocatePayload resizes the payload region to size bytes and
	// returns the new payload buffer for the caller to fill. It
	// reports false, leaving the packet untouched, when size exceeds
	// MaxPayloadSize.
	AllocatePayload(size int) ([]byte, bool)
}

// Packet adapts a pion rtp.Packet to the PacketView capability with a
// fixed payload capacity, typically MTU minus the outer header size.
type Packet struct {
	packet         *rtp.Packet
	maxPayloadSize int
}

func NewPacket(packet *rtp.Packet, maxPayloadSize int) *Packet {
	return &Packet{packet: packet, maxPayloadSize: maxPayloadSize}
}

func (p *Packet) Marker() bool { return p.packet.Marker }

func (p *Packet) PayloadType() uint8 { return p.packet.PayloadType }

func (p *Packet) SequenceNumber() uint16 { return p.packet.SequenceNumber }

func (p *Packet) Timestamp() uint32 { return p.packet.Timestamp }

func (p *Packet) SSRC() uint32 { return p.packet.SSRC }

func (p *Packet) Payload() []byte { return p.packet.Payload }

func (p *Packet) MaxPayloadSize() int { return p.maxPayloadSize }

func (p *Packet) AllocatePayload(size int) ([]byte, bool) {
	if size > p.maxPayloadSize {
		return nil, false
	}
	if cap(p.packet.Payload) >= size {
		p.packet.Payload = p.packet.Payload[:size]
	} else {
		p.packet.Payload = make([]byte, size)
	}
	return p.packet.Payload, true
}
