package ext

// Coordination of Video Orientation in RTP streams (3GPP TS 26.114).
//
// Signals the current orientation of the image captured on the sender
// side to the receiver for appropriate rendering and displaying.
//
//	 0                   1
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  ID   | len=0 |0 0 0 0 C F R R|
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const LEN_VIDEO_ORIENTATION = 1

// VideoRotation is the clockwise rotation, in degrees, needed to
// render the captured frame upright.
type VideoRotation int

const (
	Rotation0   VideoRotation = 0
	Rotation90  VideoRotation = 90
	Rotation180 VideoRotation = 180
	Rotation270 VideoRotation = 270
)

// VideoOrientation carries the raw CVO bitfield so values from other
// devices pass through unchanged, with camera and flip bits intact.
type VideoOrientation struct {
	CVO byte
}

func (v *VideoOrientation) Unmarshal(data []byte) error {
	if data == nil {
		return ErrNoData
	}
	if len(data) != LEN_VIDEO_ORIENTATION {
		return ErrInvalidSize
	}
	v.CVO = data[0]
	return nil
}

func (v VideoOrientation) Marshal() ([]byte, error) {
	return []byte{v.CVO}, nil
}

func (v VideoOrientation) Rotation() VideoRotation {
	return ConvertCVOByteToVideoRotation(v.CVO)
}

func VideoOrientationFromRotation(rotation VideoRotation) VideoOrientation {
	return VideoOrientation{CVO: ConvertVideoRotationToCVOByte(rotation)}
}

// ConvertCVOByteToVideoRotation maps the two rotation bits of a CVO
// byte to a rotation. Camera and flip bits are ignored.
func ConvertCVOByteToVideoRotation(cvo byte) VideoRotation {
	switch cvo & 0x03 {
	case 0:
		return Rotation0
	case 1:
		return Rotation90
	case 2:
		return Rotation180
	default:
		return Rotation270
	}
}

// ConvertVideoRotationToCVOByte maps a rotation to a CVO byte with the
// camera and flip bits cleared. Rotations that are not a multiple of
// 90 degrees encode as 0.
func ConvertVideoRotationToCVOByte(rotation VideoRotation) byte {
	switch rotation {
	case Rotation90:
		return 1
	case Rotation180:
		return 2
	case Rotation270:
		return 3
	default:
		return 0
	}
}
