package ext

// Frame Marking RTP header extension.
//
// https://tools.ietf.org/html/draft-ietf-avtext-framemarking-04
// Carries frame-level metadata outside the encrypted media payload so
// an RTP switch can do codec-agnostic selective forwarding without
// decrypting the payload.
//
// Non-scalable streams:
//
//	 0                   1
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID=? |  L=0  |S|E|I|D|0 0 0 0|
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// Scalable streams:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID=? |  L=2  |S|E|I|D|B| TID |   LID         |    TL0PICIDX  |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const (
	LEN_FRAME_MARKING          = 1
	LEN_FRAME_MARKING_SCALABLE = 3
)

// Sentinels meaning "field not in use". A field carrying its sentinel
// does not make the value scalable.
const (
	NO_TEMPORAL_LAYER_ID uint8 = 0xFF
	NO_LAYER_ID          uint8 = 0xFF
	NO_TL0_PIC_IDX       uint8 = 0xFF
)

type FrameMarking struct {
	StartOfFrame bool
	EndOfFrame   bool
	Independent  bool
	Discardable  bool

	// Scalable-only fields.
	BaseLayerSync   bool
	TemporalLayerID uint8
	LayerID         uint8
	TL0PicIdx       uint8
}

func (f *FrameMarking) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	switch len(data) {
	case LEN_FRAME_MARKING:
		f.BaseLayerSync = false
		f.TemporalLayerID = 0
		f.LayerID = 0
		f.TL0PicIdx = 0
	case LEN_FRAME_MARKING_SCALABLE:
		f.BaseLayerSync = data[0]&0x08 != 0
		f.TemporalLayerID = data[0] & 0x07
		f.LayerID = data[1]
		f.TL0PicIdx = data[2]
	default:
		return ErrInvalidSize
	}
	f.StartOfFrame = data[0]&0x80 != 0
	f.EndOfFrame = data[0]&0x40 != 0
	f.Independent = data[0]&0x20 != 0
	f.Discardable = data[0]&0x10 != 0
	return nil
}

func (f FrameMarking) scalable() bool {
	return f.BaseLayerSync ||
		(f.TemporalLayerID != 0 && f.TemporalLayerID != NO_TEMPORAL_LAYER_ID) ||
		(f.LayerID != 0 && f.LayerID != NO_LAYER_ID) ||
		(f.TL0PicIdx != 0 && f.TL0PicIdx != NO_TL0_PIC_IDX)
}

// ValueSize reports the encoded size: 3 bytes when any scalable field
// is in use, 1 byte otherwise.
func (f FrameMarking) ValueSize() int {
	if f.scalable() {
		return LEN_FRAME_MARKING_SCALABLE
	}
	return LEN_FRAME_MARKING
}

func (f FrameMarking) Marshal() ([]byte, error) {
	data := make([]byte, f.ValueSize())
	if f.StartOfFrame {
		data[0] |= 0x80
	}
	if f.EndOfFrame {
		data[0] |= 0x40
	}
	if f.Independent {
		data[0] |= 0x20
	}
	if f.Discardable {
		data[0] |= 0x10
	}
	if f.scalable() {
		if f.BaseLayerSync {
			data[0] |= 0x08
		}
		data[0] |= f.TemporalLayerID & 0x07
		data[1] = f.LayerID
		data[2] = f.TL0PicIdx
	}
	return data, nil
}

// VP9LayerID packs a VP9 layer descriptor into the frame marking LID
// byte, mirroring the layer byte of the VP9 payload descriptor:
// temporal up-switch in bit 4, spatial index in bits 1-3,
// inter-picture predicted in bit 0. A sentinel spatial index packs as
// layer 0.
func VP9LayerID(spatialIdx uint8, temporalUpSwitch, interPicPredicted bool) uint8 {
	var lid uint8
	if spatialIdx != NO_LAYER_ID {
		lid = (spatialIdx & 0x07) << 1
	}
	if temporalUpSwitch {
		lid |= 0x10
	}
	if interPicPredicted {
		lid |= 0x01
	}
	return lid
}
