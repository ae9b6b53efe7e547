package ext

import "github.com/RealKeyboardWarrior/percrtp/rtp/byteio"

// Video timing deltas, all in milliseconds relative to the capture
// time carried in the RTP timestamp. Six 16-bit fields:
//
//	offset 0  encode start
//	offset 2  encode finish
//	offset 4  packetization complete
//	offset 6  last packet left the pacer
//	offset 8  reserved for network
//	offset 10 reserved for network
const LEN_VIDEO_TIMING = 12

type VideoTiming struct {
	EncodeStartDeltaMs         uint16
	EncodeFinishDeltaMs        uint16
	PacketizationFinishDeltaMs uint16
	PacerExitDeltaMs           uint16
	NetworkTimestampDeltaMs    uint16
	Network2TimestampDeltaMs   uint16
}

func (v *VideoTiming) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_VIDEO_TIMING {
		return ErrInvalidSize
	}
	v.EncodeStartDeltaMs = byteio.Uint16(data[0:])
	v.EncodeFinishDeltaMs = byteio.Uint16(data[2:])
	v.PacketizationFinishDeltaMs = byteio.Uint16(data[4:])
	v.PacerExitDeltaMs = byteio.Uint16(data[6:])
	v.NetworkTimestampDeltaMs = byteio.Uint16(data[8:])
	v.Network2TimestampDeltaMs = byteio.Uint16(data[10:])
	return nil
}

func (v VideoTiming) Marshal() ([]byte, error) {
	data := make([]byte, LEN_VIDEO_TIMING)
	byteio.PutUint16(data[0:], v.EncodeStartDeltaMs)
	byteio.PutUint16(data[2:], v.EncodeFinishDeltaMs)
	byteio.PutUint16(data[4:], v.PacketizationFinishDeltaMs)
	byteio.PutUint16(data[6:], v.PacerExitDeltaMs)
	byteio.PutUint16(data[8:], v.NetworkTimestampDeltaMs)
	byteio.PutUint16(data[10:], v.Network2TimestampDeltaMs)
	return data, nil
}
