package ext

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestAbsSendTimeRoundTrip(t *testing.T) {
	in := AbsSendTime{Timestamp: 0x123456}
	payload, err := in.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(payload, []byte{0x12, 0x34, 0x56}) {
		t.Errorf("payload did not match expected, got %v", payload)
	}
	if len(payload) != LEN_ABS_SEND_TIME {
		t.Error("size law violated")
	}

	var out AbsSendTime
	if err := out.Unmarshal(payload); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip failed, got %+v", out)
	}
}

func TestAbsSendTimeRejectsBadSizes(t *testing.T) {
	var a AbsSendTime
	if err := a.Unmarshal(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("nil input got %v", err)
	}
	for _, size := range []int{0, 1, 2, 4, 16} {
		if err := a.Unmarshal(make([]byte, size)); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d got %v", size, err)
		}
	}
	if a.Timestamp != 0 {
		t.Error("failed Unmarshal mutated the receiver")
	}
}

func TestAbsSendTimeFromDuration(t *testing.T) {
	// 1 second is 1<<18 in 6.18 fixed point.
	if got := AbsSendTimeFromDuration(time.Second); got.Timestamp != 1<<18 {
		t.Errorf("1s converted to %#x", got.Timestamp)
	}
	// The 24-bit value wraps every 64 seconds.
	if got := AbsSendTimeFromDuration(64 * time.Second); got.Timestamp != 0 {
		t.Errorf("64s converted to %#x", got.Timestamp)
	}
}

func FuzzAbsSendTimeUnmarshal(f *testing.F) {
	f.Add([]byte{0x12, 0x34, 0x56})
	f.Add([]byte{0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		var a AbsSendTime
		a.Unmarshal(data)
	})
}
