package ext

// Client-to-Mixer Audio Level Indication.
//
// https://datatracker.ietf.org/doc/draft-lennox-avt-rtp-audio-level-exthdr/
//
//	 0                   1
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | len=0 |V|   level     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_AUDIO_LEVEL = 1

const maxAudioLevel = 0x7F

type AudioLevel struct {
	VoiceActivity bool
	// Level is the negated dBov value, 0..127.
	Level uint8
}

func (a *AudioLevel) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_AUDIO_LEVEL {
		return ErrInvalidSize
	}
	a.VoiceActivity = data[0]&0x80 != 0
	a.Level = data[0] & maxAudioLevel
	return nil
}

// Marshal fails when Level exceeds 127. That is a caller bug, not a
// wire condition, so the error is reported rather than masked.
func (a AudioLevel) Marshal() ([]byte, error) {
	if a.Level > maxAudioLevel {
		return nil, ErrInvalidValue
	}
	b := a.Level
	if a.VoiceActivity {
		b |= 0x80
	}
	return []byte{b}, nil
}
