package ext

import (
	"time"

	"github.com/RealKeyboardWarrior/percrtp/rtp/byteio"
)

// Absolute send time in RTP streams.
//
// The payload is a 24-bit unsigned integer containing the sender's
// current time in seconds as a fixed point number with 18 bits
// fractional part.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | len=2 |              absolute send time               |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_ABS_SEND_TIME = 3

type AbsSendTime struct {
	// Timestamp holds the 6.18 fixed point seconds value in its low
	// 24 bits.
	Timestamp uint32
}

func (a *AbsSendTime) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_ABS_SEND_TIME {
		return ErrInvalidSize
	}
	a.Timestamp = byteio.Uint24(data)
	return nil
}

func (a AbsSendTime) Marshal() ([]byte, error) {
	data := make([]byte, LEN_ABS_SEND_TIME)
	byteio.PutUint24(data, a.Timestamp&0x00FFFFFF)
	return data, nil
}

// AbsSendTimeFromDuration converts a wall-clock offset to the 24-bit
// 6.18 fixed point representation, rounding to the nearest value.
func AbsSendTimeFromDuration(d time.Duration) AbsSendTime {
	ms := uint64(d.Milliseconds())
	return AbsSendTime{Timestamp: uint32(((ms << 18) + 500) / 1000 & 0x00FFFFFF)}
}
