package ext

// Video content type hint for the receive side.
//
// Single byte enum; anything at or past the defined count is rejected
// so unknown values never leak into the pipeline.
const LEN_VIDEO_CONTENT_TYPE = 1

type ContentType uint8

const (
	ContentTypeUnspecified ContentType = iota
	ContentTypeScreenshare

	contentTypeTotal
)

func (c ContentType) String() string {
	switch c {
	case ContentTypeUnspecified:
		return "unspecified"
	case ContentTypeScreenshare:
		return "screenshare"
	default:
		return "unknown"
	}
}

type VideoContentType struct {
	Content ContentType
}

func (v *VideoContentType) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_VIDEO_CONTENT_TYPE {
		return ErrInvalidSize
	}
	if ContentType(data[0]) >= contentTypeTotal {
		return ErrInvalidValue
	}
	v.Content = ContentType(data[0])
	return nil
}

func (v VideoContentType) Marshal() ([]byte, error) {
	if v.Content >= contentTypeTotal {
		return nil, ErrInvalidValue
	}
	return []byte{byte(v.Content)}, nil
}
