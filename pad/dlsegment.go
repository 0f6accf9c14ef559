/*
NAME
  dlsegment.go

DESCRIPTION
  dlsegment.go provides the Dynamic Label segment type and the
  reassembler that combines segments sharing a toggle generation into
  a complete label.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pad

// maxDLSegments is the number of segment slots a Dynamic Label spans
// (segment numbers 0 through 7).
const maxDLSegments = 8

// maxDLSegmentChars is the maximum payload length of a single segment.
const maxDLSegmentChars = 16

// DLSegment is one parsed Dynamic Label segment: the two raw header
// bytes plus the character payload. Toggle, First, Last, SegNum and
// Charset are pure functions of the header bytes.
type DLSegment struct {
	prefix [2]byte
	chars  []byte
}

// Toggle reports the segment's toggle bit: a flip signals a new label.
func (s DLSegment) Toggle() bool { return s.prefix[0]&0x80 != 0 }

// First reports whether this is the first segment of the label.
func (s DLSegment) First() bool { return s.prefix[0]&0x40 != 0 }

// Last reports whether this is the last segment of the label.
func (s DLSegment) Last() bool { return s.prefix[0]&0x20 != 0 }

// SegNum returns the segment's index within the label, 0 through 7.
// The first segment is always index 0.
func (s DLSegment) SegNum() int {
	if s.First() {
		return 0
	}
	return int(s.prefix[1]>>4) & 0x07
}

// Charset returns the segment's character-set nibble. Only
// meaningful on segment 0.
func (s DLSegment) Charset() byte { return s.prefix[1] >> 4 }

// Chars returns the segment's character payload.
func (s DLSegment) Chars() []byte { return s.chars }

// newDLSegment builds a DLSegment from a 2-byte header and its
// accompanying payload. chars is copied so the segment is safe to
// retain past the lifetime of the decoding buffer it was read from.
func newDLSegment(prefix [2]byte, chars []byte) DLSegment {
	c := make([]byte, len(chars))
	copy(c, chars)
	return DLSegment{prefix: prefix, chars: c}
}

// dlReassembler buffers the segments of one in-flight label. All
// cached segments share a common toggle; a toggle mismatch clears the
// cache before the new segment is inserted, since it signals a new
// label generation beginning.
type dlReassembler struct {
	segs     map[int]DLSegment
	labelRaw []byte // Populated only once complete.
}

func newDLReassembler() *dlReassembler {
	return &dlReassembler{segs: make(map[int]DLSegment, maxDLSegments)}
}

// reset clears the reassembler, discarding any partial label.
func (r *dlReassembler) reset() {
	for k := range r.segs {
		delete(r.segs, k)
	}
	r.labelRaw = nil
}

// addSegment inserts seg into the cache, discarding a stale partial on
// toggle flip and dropping duplicate segment numbers silently. It
// returns true once the insertion completes the label.
func (r *dlReassembler) addSegment(seg DLSegment) bool {
	for _, s := range r.segs {
		if s.Toggle() != seg.Toggle() {
			r.reset()
		}
		break
	}

	if _, ok := r.segs[seg.SegNum()]; ok {
		return false
	}
	r.segs[seg.SegNum()] = seg

	return r.checkForCompleteLabel()
}

// checkForCompleteLabel scans segment indices 0..7 in order. It
// requires every index up to and including the one flagged Last to be
// present, and fails if index 7 is reached without a Last flag.
func (r *dlReassembler) checkForCompleteLabel() bool {
	last := -1
	for i := 0; i < maxDLSegments; i++ {
		s, ok := r.segs[i]
		if !ok {
			return false
		}
		if s.Last() {
			last = i
			break
		}
		if i == maxDLSegments-1 {
			return false
		}
	}

	raw := make([]byte, 0, maxDLSegments*maxDLSegmentChars)
	for i := 0; i <= last; i++ {
		raw = append(raw, r.segs[i].Chars()...)
	}
	r.labelRaw = raw
	return true
}
