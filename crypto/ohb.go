package crypto

import (
	"github.com/RealKeyboardWarrior/percrtp/rtp/byteio"
)

// Original Header Block: a copy of the outer header fields a relay is
// allowed to rewrite, carried inside the encrypted payload so the
// receiver can still recover them.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|M|     PT      |       sequence number         |  timestamp    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  timestamp                    |  SSRC         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  SSRC(cont                    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_OHB = 11

// Prepending this byte in front of an OHB yields a minimal RTP header:
// version 2, no padding, no extension, no CSRCs.
const VERSION_BYTE = 0x80

type OHB struct {
	Marker         bool
	PayloadType    uint8
	SequenceNumber uint16
	Timestamp      uint32
	SSRC           uint32
}

func (o OHB) marshalTo(data []byte) {
	data[0] = o.PayloadType
	if o.Marker {
		data[0] |= 0x80
	}
	byteio.PutUint16(data[1:], o.SequenceNumber)
	byteio.PutUint32(data[3:], o.Timestamp)
	byteio.PutUint32(data[7:], o.SSRC)
}

func (o OHB) Marshal() ([]byte, error) {
	data := make([]byte, LEN_OHB)
	o.marshalTo(data)
	return data, nil
}

func (o *OHB) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_OHB {
		return ErrInvalidSize
	}
	o.Marker = data[0]&0x80 != 0
	o.PayloadType = data[0] & 0x7F
	o.SequenceNumber = byteio.Uint16(data[1:])
	o.Timestamp = byteio.Uint32(data[3:])
	o.SSRC = byteio.Uint32(data[7:])
	return nil
}
