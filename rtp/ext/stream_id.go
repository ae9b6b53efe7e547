package ext

// Bounded string header extensions: RtpStreamId, RepairedRtpStreamId
// and Mid. One-byte extension headers cap the value at 16 bytes. The
// value carries its own length; it is not null-terminated, but an
// embedded NUL acts as an end-of-string marker when the value is read
// as text. An empty value means the extension is unset, which is why a
// leading zero byte is rejected on the wire.
const MAX_STREAM_ID_SIZE = 16

type StreamID struct {
	data [MAX_STREAM_ID_SIZE]byte
	size int
}

// RepairedStreamID identifies the stream an RTX/FEC stream repairs.
// Same wire format as StreamID.
type RepairedStreamID = StreamID

// Mid identifies the media section used to interpret a packet. Same
// wire format as StreamID.
type Mid = StreamID

func NewStreamID(value []byte) (StreamID, error) {
	var s StreamID
	if err := s.Set(value); err != nil {
		return StreamID{}, err
	}
	return s, nil
}

// Set copies value into the StreamID. Values must be 1..16 bytes with
// a non-zero first byte.
func (s *StreamID) Set(value []byte) error {
	if len(value) == 0 || len(value) > MAX_STREAM_ID_SIZE {
		return ErrInvalidSize
	}
	if value[0] == 0 {
		return ErrInvalidValue
	}
	s.size = copy(s.data[:], value)
	return nil
}

func (s *StreamID) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	return s.Set(data)
}

func (s StreamID) Marshal() ([]byte, error) {
	if s.size == 0 {
		return nil, ErrInvalidValue
	}
	out := make([]byte, s.size)
	copy(out, s.data[:s.size])
	return out, nil
}

func (s StreamID) ValueSize() int {
	return s.size
}

func (s StreamID) Empty() bool {
	return s.size == 0
}

// Bytes returns the raw value including anything after an embedded
// terminator.
func (s StreamID) Bytes() []byte {
	return s.data[:s.size]
}

// String interprets the value as text, stopping at an embedded NUL.
func (s StreamID) String() string {
	for i := 0; i < s.size; i++ {
		if s.data[i] == 0 {
			return string(s.data[:i])
		}
	}
	return string(s.data[:s.size])
}
