package ext

import "github.com/RealKeyboardWarrior/percrtp/rtp/byteio"

// Transmission Time Offsets in RTP Streams, RFC 5450.
//
// The payload is a 24-bit signed integer. When added to the RTP
// timestamp of the packet, it represents the "effective" RTP
// transmission time of the packet, on the RTP timescale.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | len=2 |              transmission offset              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_TRANSMISSION_OFFSET = 3

type TransmissionOffset struct {
	Offset int32
}

func (t *TransmissionOffset) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_TRANSMISSION_OFFSET {
		return ErrInvalidSize
	}
	t.Offset = byteio.Int24(data)
	return nil
}

func (t TransmissionOffset) Marshal() ([]byte, error) {
	data := make([]byte, LEN_TRANSMISSION_OFFSET)
	byteio.PutInt24(data, t.Offset)
	return data, nil
}
