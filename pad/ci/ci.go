/*
NAME
  ci.go

DESCRIPTION
  ci provides the X-PAD Content Indicator type and the CI-list parsing
  shared by short and variable size X-PAD.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ci provides the X-PAD Content Indicator type, its fixed
// length table, and the CI-list parsing rules shared by short and
// variable size X-PAD.
package ci

// NoType is the distinguished "absent" CI type.
const NoType = -1

// Data Subfield application types dispatched by a PAD decoder.
const (
	TypeDGLI          = 1  // Data Group Length Indicator.
	TypeDLSegStart    = 2  // Dynamic Label segment, Data Group start.
	TypeDLSegContinue = 3  // Dynamic Label segment, Data Group continuation.
	TypeMOTStart      = 12 // MOT X-PAD Data Group start.
	TypeMOTContinue   = 13 // MOT X-PAD Data Group continuation.
)

// Lens is the X-PAD CI length table, indexed by the 3-bit length code
// occupying the top 3 bits of a CI byte.
var Lens = [8]int{4, 6, 8, 12, 16, 24, 32, 48}

// MaxVariableCIs is the maximum number of Content Indicators carried
// by a variable size X-PAD CI list.
const MaxVariableCIs = 4

// CI describes one Content Indicator: the length in bytes of the
// Data Subfield it introduces, and the application type dispatched
// to. A CI with Type == NoType is inert.
type CI struct {
	Len  int
	Type int
}

// FromByte parses a variable X-PAD CI byte into its length and type.
// A byte whose low 5 bits are zero is the CI-list end marker; isEnd
// reports that case so the caller can stop without adding the CI.
func FromByte(b byte) (c CI, isEnd bool) {
	t := int(b & 0x1F)
	if t == 0 {
		return CI{}, true
	}
	return CI{Len: Lens[(b>>5)&0x07], Type: t}, false
}

// List is an ordered sequence of Content Indicators for one frame, at
// most MaxVariableCIs long for variable X-PAD or 1 long for short
// X-PAD.
type List []CI

// Continued returns the application type that a CI of type t becomes
// when the following frame continues it without a CI list, per the
// X-PAD CI continuation table. NoType is returned for any type that
// does not continue.
func Continued(t int) int {
	switch t {
	case TypeDGLI:
		return TypeDGLI
	case TypeDLSegStart, TypeDLSegContinue:
		return TypeDLSegContinue
	case TypeMOTStart, TypeMOTContinue:
		return TypeMOTContinue
	default:
		return NoType
	}
}

// ParseShort builds the single-entry CI list carried by short X-PAD
// when a CI list is present: the whole first byte is one CI with a
// fixed length of 3 (the short X-PAD region is 4 bytes; 1 for the CI
// byte plus 3 for the subfield).
func ParseShort(b byte) List {
	return List{{Len: 3, Type: int(b & 0x1F)}}
}

// ParseVariable builds the CI list carried by variable size X-PAD when
// a CI list is present, reading up to MaxVariableCIs bytes from data.
// It returns the list and the number of CI-list bytes consumed,
// including the end marker byte if one was seen.
func ParseVariable(data []byte) (List, int) {
	var list List
	n := len(data)
	if n > MaxVariableCIs {
		n = MaxVariableCIs
	}
	for i := 0; i < n; i++ {
		c, isEnd := FromByte(data[i])
		if isEnd {
			return list, i + 1
		}
		list = append(list, c)
	}
	return list, n
}
