package ext

import (
	"testing"

	"github.com/pion/rtp"
)

func TestURI(t *testing.T) {
	if got := URI(TypeAbsSendTime); got != RTP_EXTENSION_URI_ABS_SEND_TIME {
		t.Errorf("got %q", got)
	}
	if got := URI(TypeNone); got != "" {
		t.Errorf("unknown type got %q", got)
	}
}

func TestEncodeDecodeAll(t *testing.T) {
	ids := map[Type]uint8{
		TypeAbsSendTime:  1,
		TypeAudioLevel:   2,
		TypeMid:          3,
		TypeFrameMarking: 4,
	}

	mid, err := NewStreamID([]byte("a0"))
	if err != nil {
		t.Fatal(err)
	}
	in := HeaderExtensions{
		HasAbsSendTime: true,
		AbsSendTime:    AbsSendTime{Timestamp: 0x123456},
		HasAudioLevel:  true,
		AudioLevel:     AudioLevel{VoiceActivity: true, Level: 42},
		Mid:            mid,
		// FrameMarking deliberately not flagged: it must not be
		// written to the packet.
		FrameMarking: FrameMarking{StartOfFrame: true},
	}

	var pkt rtp.Packet
	pkt.Header.Version = 2
	if err := EncodeAll(&pkt, &in, ids); err != nil {
		t.Fatal(err)
	}
	if pkt.GetExtension(4) != nil {
		t.Error("unset extension was written")
	}

	byID := map[uint8]Type{}
	for typ, id := range ids {
		byID[id] = typ
	}
	out, skipped := DecodeAll(&pkt, byID)
	if len(skipped) != 0 {
		t.Fatalf("skipped %v", skipped)
	}
	if !out.HasAbsSendTime || out.AbsSendTime.Timestamp != 0x123456 {
		t.Errorf("abs-send-time: %+v", out.AbsSendTime)
	}
	if !out.HasAudioLevel || out.AudioLevel != (AudioLevel{VoiceActivity: true, Level: 42}) {
		t.Errorf("audio level: %+v", out.AudioLevel)
	}
	if out.Mid.String() != "a0" {
		t.Errorf("mid: %q", out.Mid.String())
	}
	if out.HasFrameMarking {
		t.Error("frame marking decoded but was never written")
	}
}

func TestDecodeAllSkipsMalformed(t *testing.T) {
	var pkt rtp.Packet
	pkt.Header.Version = 2
	if err := pkt.Header.SetExtension(1, []byte{0x12, 0x34, 0x56}); err != nil {
		t.Fatal(err)
	}
	// min_raw above max_raw, rejected by the playout delay codec.
	if err := pkt.Header.SetExtension(2, []byte{0x00, 0x20, 0x01}); err != nil {
		t.Fatal(err)
	}

	out, skipped := DecodeAll(&pkt, map[uint8]Type{
		1: TypeAbsSendTime,
		2: TypePlayoutDelay,
	})
	if len(skipped) != 1 || skipped[0] != 2 {
		t.Fatalf("skipped %v", skipped)
	}
	if !out.HasAbsSendTime || out.AbsSendTime.Timestamp != 0x123456 {
		t.Errorf("healthy extension lost: %+v", out.AbsSendTime)
	}
	if out.HasPlayoutDelay {
		t.Error("malformed extension decoded")
	}
}

func TestDecodeAllIgnoresUnmappedIDs(t *testing.T) {
	var pkt rtp.Packet
	pkt.Header.Version = 2
	if err := pkt.Header.SetExtension(7, []byte{0xAA}); err != nil {
		t.Fatal(err)
	}
	out, skipped := DecodeAll(&pkt, map[uint8]Type{1: TypeAudioLevel})
	if len(skipped) != 0 {
		t.Errorf("skipped %v", skipped)
	}
	if out != (HeaderExtensions{}) {
		t.Errorf("decoded from an unmapped ID: %+v", out)
	}
}

func TestEncodeAllPropagatesCodecErrors(t *testing.T) {
	in := HeaderExtensions{
		HasAudioLevel: true,
		AudioLevel:    AudioLevel{Level: 200},
	}
	var pkt rtp.Packet
	pkt.Header.Version = 2
	if err := EncodeAll(&pkt, &in, map[Type]uint8{TypeAudioLevel: 1}); err == nil {
		t.Fatal("expected error for out-of-range audio level")
	}
}
