package crypto

import (
	"bytes"
	"fmt"
)

// fakeEngine hands out fakeSessions and records how it was asked for
// them, so the packet wrapping logic can be checked without real
// crypto.
type fakeEngine struct {
	suite     CipherSuite
	direction Direction
	keySalt   []byte
	sessions  int

	newSessionErr error
}

func (e *fakeEngine) NewSession(suite CipherSuite, direction Direction, keySalt []byte) (Session, error) {
	if e.newSessionErr != nil {
		return nil, e.newSessionErr
	}
	e.suite = suite
	e.direction = direction
	e.keySalt = append([]byte(nil), keySalt...)
	e.sessions++
	return &fakeSession{tagLen: suite.RTPAuthTagLen()}, nil
}

// fakeSession appends a constant tag on protect and strips it on
// unprotect, leaving the wrapped bytes readable for assertions.
type fakeSession struct {
	tagLen     int
	lastInner  []byte
	protectErr error
	closed     bool
}

const fakeTagByte = 0xFA

func (s *fakeSession) ProtectRTP(packet []byte) ([]byte, error) {
	if s.protectErr != nil {
		return nil, s.protectErr
	}
	s.lastInner = append([]byte(nil), packet...)
	out := append([]byte(nil), packet...)
	for i := 0; i < s.tagLen; i++ {
		out = append(out, fakeTagByte)
	}
	return out, nil
}

func (s *fakeSession) UnprotectRTP(packet []byte) ([]byte, error) {
	if len(packet) < s.tagLen {
		return nil, fmt.Errorf("%w: shorter than tag", ErrAuthenticationFailed)
	}
	body, tag := packet[:len(packet)-s.tagLen], packet[len(packet)-s.tagLen:]
	if !bytes.Equal(tag, bytes.Repeat([]byte{fakeTagByte}, s.tagLen)) {
		return nil, fmt.Errorf("%w: bad tag", ErrAuthenticationFailed)
	}
	return append([]byte(nil), body...), nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func testKey(suite CipherSuite) Key {
	material := make([]byte, suite.KeySaltLen())
	for i := range material {
		material[i] = byte(i)
	}
	return Key{Suite: suite, Material: material}
}
