package ext

import "github.com/RealKeyboardWarrior/percrtp/rtp/byteio"

// Transport-wide sequence number.
//
//	 0                   1                   2
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | L=1   |transport wide sequence number |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_TRANSPORT_SEQUENCE_NUMBER = 2

type TransportSequenceNumber struct {
	SequenceNumber uint16
}

func (t *TransportSequenceNumber) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_TRANSPORT_SEQUENCE_NUMBER {
		return ErrInvalidSize
	}
	t.SequenceNumber = byteio.Uint16(data)
	return nil
}

func (t TransportSequenceNumber) Marshal() ([]byte, error) {
	data := make([]byte, LEN_TRANSPORT_SEQUENCE_NUMBER)
	byteio.PutUint16(data, t.SequenceNumber)
	return data, nil
}
