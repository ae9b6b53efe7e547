// Package ext implements the wire codecs for RTP header extensions:
// one codec per extension type, a registry keyed by an enumerated type
// tag, and helpers that decode or encode a whole packet's extensions
// through pion/rtp. Codecs are pure and stateless; they are safe for
// unrestricted concurrent use.
//
// Which extension ID maps to which type is a negotiation concern and
// stays outside this package: callers pass the active ID mapping in.
package ext

import (
	"github.com/pion/rtp"
)

// Type tags one supported header-extension wire format.
type Type uint8

const (
	TypeNone Type = iota
	TypeTransmissionOffset
	TypeAudioLevel
	TypeAbsSendTime
	TypeVideoOrientation
	TypeTransportSequenceNumber
	TypePlayoutDelay
	TypeVideoContentType
	TypeVideoTiming
	TypeStreamID
	TypeRepairedStreamID
	TypeMid
	TypeFrameMarking
)

// Registration URIs, as signaled in SDP extmap attributes.
const (
	RTP_EXTENSION_URI_TRANSMISSION_OFFSET       = "urn:ietf:params:rtp-hdrext:toffset"
	RTP_EXTENSION_URI_AUDIO_LEVEL               = "urn:ietf:params:rtp-hdrext:ssrc-audio-level"
	RTP_EXTENSION_URI_ABS_SEND_TIME             = "http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time"
	RTP_EXTENSION_URI_VIDEO_ORIENTATION         = "urn:3gpp:video-orientation"
	RTP_EXTENSION_URI_TRANSPORT_SEQUENCE_NUMBER = "http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01"
	RTP_EXTENSION_URI_PLAYOUT_DELAY             = "http://www.webrtc.org/experiments/rtp-hdrext/playout-delay"
	RTP_EXTENSION_URI_VIDEO_CONTENT_TYPE        = "http://www.webrtc.org/experiments/rtp-hdrext/video-content-type"
	RTP_EXTENSION_URI_VIDEO_TIMING              = "http://www.webrtc.org/experiments/rtp-hdrext/video-timing"
	RTP_EXTENSION_URI_STREAM_ID                 = "urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id"
	RTP_EXTENSION_URI_REPAIRED_STREAM_ID        = "urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id"
	RTP_EXTENSION_URI_MID                       = "urn:ietf:params:rtp-hdrext:sdes:mid"
	RTP_EXTENSION_URI_FRAME_MARKING             = "http://tools.ietf.org/html/draft-ietf-avtext-framemarking-04"
)

// HeaderExtensions collects the decoded extension values of a single
// packet. Has* flags report presence; StreamID-shaped values report it
// through Empty.
type HeaderExtensions struct {
	HasTransmissionOffset bool
	TransmissionOffset    TransmissionOffset

	HasAudioLevel bool
	AudioLevel    AudioLevel

	HasAbsSendTime bool
	AbsSendTime    AbsSendTime

	HasVideoOrientation bool
	VideoOrientation    VideoOrientation

	HasTransportSequenceNumber bool
	TransportSequenceNumber    TransportSequenceNumber

	HasPlayoutDelay bool
	PlayoutDelay    PlayoutDelay

	HasVideoContentType bool
	VideoContentType    VideoContentType

	HasVideoTiming bool
	VideoTiming    VideoTiming

	StreamID         StreamID
	RepairedStreamID RepairedStreamID
	Mid              Mid

	HasFrameMarking bool
	FrameMarking    FrameMarking
}

type codec struct {
	uri    string
	decode func(h *HeaderExtensions, data []byte) error
	encode func(h *HeaderExtensions) ([]byte, bool, error)
}

// registry is the single place a new extension type gets wired in.
var registry = map[Type]codec{
	TypeTransmissionOffset: {
		uri: RTP_EXTENSION_URI_TRANSMISSION_OFFSET,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.TransmissionOffset.Unmarshal(data); err != nil {
				return err
			}
			h.HasTransmissionOffset = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasTransmissionOffset {
				return nil, false, nil
			}
			data, err := h.TransmissionOffset.Marshal()
			return data, true, err
		},
	},
	TypeAudioLevel: {
		uri: RTP_EXTENSION_URI_AUDIO_LEVEL,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.AudioLevel.Unmarshal(data); err != nil {
				return err
			}
			h.HasAudioLevel = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasAudioLevel {
				return nil, false, nil
			}
			data, err := h.AudioLevel.Marshal()
			return data, true, err
		},
	},
	TypeAbsSendTime: {
		uri: RTP_EXTENSION_URI_ABS_SEND_TIME,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.AbsSendTime.Unmarshal(data); err != nil {
				return err
			}
			h.HasAbsSendTime = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasAbsSendTime {
				return nil, false, nil
			}
			data, err := h.AbsSendTime.Marshal()
			return data, true, err
		},
	},
	TypeVideoOrientation: {
		uri: RTP_EXTENSION_URI_VIDEO_ORIENTATION,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.VideoOrientation.Unmarshal(data); err != nil {
				return err
			}
			h.HasVideoOrientation = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasVideoOrientation {
				return nil, false, nil
			}
			data, err := h.VideoOrientation.Marshal()
			return data, true, err
		},
	},
	TypeTransportSequenceNumber: {
		uri: RTP_EXTENSION_URI_TRANSPORT_SEQUENCE_NUMBER,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.TransportSequenceNumber.Unmarshal(data); err != nil {
				return err
			}
			h.HasTransportSequenceNumber = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasTransportSequenceNumber {
				return nil, false, nil
			}
			data, err := h.TransportSequenceNumber.Marshal()
			return data, true, err
		},
	},
	TypePlayoutDelay: {
		uri: RTP_EXTENSION_URI_PLAYOUT_DELAY,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.PlayoutDelay.Unmarshal(data); err != nil {
				return err
			}
			h.HasPlayoutDelay = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasPlayoutDelay {
				return nil, false, nil
			}
			data, err := h.PlayoutDelay.Marshal()
			return data, true, err
		},
	},
	TypeVideoContentType: {
		uri: RTP_EXTENSION_URI_VIDEO_CONTENT_TYPE,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.VideoContentType.Unmarshal(data); err != nil {
				return err
			}
			h.HasVideoContentType = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasVideoContentType {
				return nil, false, nil
			}
			data, err := h.VideoContentType.Marshal()
			return data, true, err
		},
	},
	TypeVideoTiming: {
		uri: RTP_EXTENSION_URI_VIDEO_TIMING,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.VideoTiming.Unmarshal(data); err != nil {
				return err
			}
			h.HasVideoTiming = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasVideoTiming {
				return nil, false, nil
			}
			data, err := h.VideoTiming.Marshal()
			return data, true, err
		},
	},
	TypeStreamID: {
		uri: RTP_EXTENSION_URI_STREAM_ID,
		decode: func(h *HeaderExtensions, data []byte) error {
			return h.StreamID.Unmarshal(data)
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if h.StreamID.Empty() {
				return nil, false, nil
			}
			data, err := h.StreamID.Marshal()
			return data, true, err
		},
	},
	TypeRepairedStreamID: {
		uri: RTP_EXTENSION_URI_REPAIRED_STREAM_ID,
		decode: func(h *HeaderExtensions, data []byte) error {
			return h.RepairedStreamID.Unmarshal(data)
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if h.RepairedStreamID.Empty() {
				return nil, false, nil
			}
			data, err := h.RepairedStreamID.Marshal()
			return data, true, err
		},
	},
	TypeMid: {
		uri: RTP_EXTENSION_URI_MID,
		decode: func(h *HeaderExtensions, data []byte) error {
			return h.Mid.Unmarshal(data)
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if h.Mid.Empty() {
				return nil, false, nil
			}
			data, err := h.Mid.Marshal()
			return data, true, err
		},
	},
	TypeFrameMarking: {
		uri: RTP_EXTENSION_URI_FRAME_MARKING,
		decode: func(h *HeaderExtensions, data []byte) error {
			if err := h.FrameMarking.Unmarshal(data); err != nil {
				return err
			}
			h.HasFrameMarking = true
			return nil
		},
		encode: func(h *HeaderExtensions) ([]byte, bool, error) {
			if !h.HasFrameMarking {
				return nil, false, nil
			}
			data, err := h.FrameMarking.Marshal()
			return data, true, err
		},
	},
}

// URI returns the registration URI for a type, or "" for unknown
// types.
func URI(t Type) string {
	return registry[t].uri
}

// DecodeAll decodes every extension present on the packet whose ID is
// mapped in ids. Malformed extensions are skipped and their IDs
// returned; a bad extension never fails the rest of the packet. IDs
// missing from the mapping are ignored.
func DecodeAll(pkt *rtp.Packet, ids map[uint8]Type) (HeaderExtensions, []uint8) {
	var decoded HeaderExtensions
	var skipped []uint8
	for _, id := range pkt.GetExtensionIDs() {
		t, ok := ids[id]
		if !ok {
			continue
		}
		c, ok := registry[t]
		if !ok {
			continue
		}
		if err := c.decode(&decoded, pkt.GetExtension(id)); err != nil {
			skipped = append(skipped, id)
		}
	}
	return decoded, skipped
}

// EncodeAll writes every extension set on h whose type is mapped in
// ids onto the packet header.
func EncodeAll(pkt *rtp.Packet, h *HeaderExtensions, ids map[Type]uint8) error {
	for t, id := range ids {
		c, ok := registry[t]
		if !ok {
			continue
		}
		data, present, err := c.encode(h)
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		if err := pkt.Header.SetExtension(id, data); err != nil {
			return err
		}
	}
	return nil
}
