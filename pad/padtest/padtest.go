/*
NAME
  padtest.go

DESCRIPTION
  padtest provides test-vector builders for pad's own tests (exported,
  so other packages' tests may import them): CI bytes, Dynamic Label
  segment frames, and CRC-appended Data Group payloads.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package padtest provides test-vector builders for the pad package
// and its CLI, kept separate so it can be imported by external_test
// packages without pulling test-only code into the pad binary.
package padtest

import "encoding/binary"

// CIByte builds a variable X-PAD CI byte from a length table index
// (0..7) and a CI type (0..31).
func CIByte(lenIdx, typ int) byte {
	return byte((lenIdx&0x07)<<5) | byte(typ&0x1F)
}

// WithCRC appends the big-endian CRC-16-CCITT of data to a copy of
// data, as carried by a Data Group payload.
func WithCRC(data []byte, calc func([]byte) uint16) []byte {
	out := make([]byte, len(data)+2)
	copy(out, data)
	binary.BigEndian.PutUint16(out[len(data):], calc(data))
	return out
}

// DLSegmentFrame builds the prefix+payload (without CRC) of a Dynamic
// Label segment Data Group: toggle/first/last flags, the segment
// number or charset nibble, and the character payload.
func DLSegmentFrame(toggle, first, last bool, segNumOrCharset int, chars string) []byte {
	b0 := byte(len(chars)-1) & 0x0F
	if toggle {
		b0 |= 0x80
	}
	if first {
		b0 |= 0x40
	}
	if last {
		b0 |= 0x20
	}
	b1 := byte(segNumOrCharset&0x0F) << 4
	out := make([]byte, 2+len(chars))
	out[0] = b0
	out[1] = b1
	copy(out[2:], chars)
	return out
}

// RemoveLabelFrame builds the 2-byte header of a Dynamic Label
// "remove label" command, without CRC.
func RemoveLabelFrame() []byte {
	return []byte{0x10 | 0x01, 0x00}
}

// DGLIFrame builds the 2-byte header of a DGLI Data Group, without
// CRC, announcing the given next-Data-Group length.
func DGLIFrame(length int) []byte {
	return []byte{byte((length >> 8) & 0x3F), byte(length)}
}

// DumbLogger is a no-op logging.Logger, for tests that need a Logger
// but don't care about its output.
type DumbLogger struct{}

func (DumbLogger) Log(lvl int8, msg string, args ...interface{}) {}
func (DumbLogger) SetLevel(lvl int8)                             {}
func (DumbLogger) Debug(msg string, args ...interface{})         {}
func (DumbLogger) Info(msg string, args ...interface{})          {}
func (DumbLogger) Warning(msg string, args ...interface{})       {}
func (DumbLogger) Error(msg string, args ...interface{})         {}
func (DumbLogger) Fatal(msg string, args ...interface{})         {}

// RecordingObserver records every PADChangeDynamicLabel notification
// it receives, for assertions in tests.
type RecordingObserver struct {
	Calls int
}

func (o *RecordingObserver) PADChangeDynamicLabel() { o.Calls++ }

