package ext

import "github.com/RealKeyboardWarrior/percrtp/rtp/byteio"

// Playout delay limits.
//
// Both delays are in milliseconds, quantized to 10 ms on the wire and
// packed as two 12-bit fields.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | len=2 |   MIN delay           |   MAX delay           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const (
	LEN_PLAYOUT_DELAY = 3

	PLAYOUT_DELAY_GRANULARITY_MS = 10
	// 12 bits per delay value.
	PLAYOUT_DELAY_MAX_MS = 0xFFF * PLAYOUT_DELAY_GRANULARITY_MS
)

type PlayoutDelay struct {
	MinMs uint16
	MaxMs uint16
}

func (p *PlayoutDelay) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_PLAYOUT_DELAY {
		return ErrInvalidSize
	}
	raw := byteio.Uint24(data)
	minRaw := uint16(raw >> 12)
	maxRaw := uint16(raw & 0xFFF)
	if minRaw > maxRaw {
		return ErrInvalidValue
	}
	p.MinMs = minRaw * PLAYOUT_DELAY_GRANULARITY_MS
	p.MaxMs = maxRaw * PLAYOUT_DELAY_GRANULARITY_MS
	return nil
}

func (p PlayoutDelay) Marshal() ([]byte, error) {
	if p.MinMs > p.MaxMs || p.MaxMs > PLAYOUT_DELAY_MAX_MS {
		return nil, ErrInvalidValue
	}
	minRaw := uint32(p.MinMs / PLAYOUT_DELAY_GRANULARITY_MS)
	maxRaw := uint32(p.MaxMs / PLAYOUT_DELAY_GRANULARITY_MS)
	data := make([]byte, LEN_PLAYOUT_DELAY)
	byteio.PutUint24(data, minRaw<<12|maxRaw)
	return data, nil
}
