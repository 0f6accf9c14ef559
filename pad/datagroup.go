/*
NAME
  datagroup.go

DESCRIPTION
  datagroup.go provides the growable, capped accumulator shared by the
  DGLI and Dynamic Label Data Group decoders.

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

// decoder is implemented by each Data Group specialization; it is
// called once enough bytes have accumulated to make progress.
type decoder interface {
	decodeDataGroup() bool
}

// dataGroup is a fixed-capacity byte accumulator that consumes
// successive Data Subfields (a start, or a continuation of one
// already in progress), and invokes a decoder once a requested size
// is reached. It is embedded by DGLIDecoder and DynamicLabelDecoder,
// which supply the decoder and interpret raw once full.
type dataGroup struct {
	raw  []byte // Fixed capacity, sized by the embedding decoder.
	size int    // Current fill.

	// sizeNeeded is the size at which decodeDataGroup is next called;
	// zero means unset (no size has been requested yet).
	sizeNeeded int

	dec decoder
}

// newDataGroup returns a dataGroup with the given fixed capacity.
func newDataGroup(capacity int, dec decoder) dataGroup {
	return dataGroup{raw: make([]byte, capacity), dec: dec}
}

// reset clears the accumulator. It is called on every start, on
// successful decode and on CRC failure so the next start is never
// required to arrive mid-parse.
func (d *dataGroup) reset() {
	d.size = 0
	d.sizeNeeded = 0
}

// processDataSubfield feeds one Data Subfield into the accumulator. If
// start is true the accumulator is reset first; otherwise a
// continuation arriving with nothing buffered is dropped. Once enough
// bytes have accumulated to satisfy the last requested size, the
// decoder is invoked and its result returned.
func (d *dataGroup) processDataSubfield(start bool, data []byte) bool {
	if start {
		d.reset()
	} else if d.size == 0 {
		return false
	}

	if d.sizeNeeded != 0 && d.size >= d.sizeNeeded {
		return false
	}
	if d.size == len(d.raw) {
		return false
	}

	n := len(d.raw) - d.size
	if len(data) < n {
		n = len(data)
	}
	copy(d.raw[d.size:], data[:n])
	d.size += n

	if d.size < d.sizeNeeded {
		return false
	}
	return d.dec.decodeDataGroup()
}

// ensureSize declares that the decoder needs n bytes before it can
// make progress. It returns true once that many bytes are buffered,
// and otherwise records n so processDataSubfield knows when to call
// back in.
func (d *dataGroup) ensureSize(n int) bool {
	if d.size < n {
		d.sizeNeeded = n
		return false
	}
	return true
}

// checkCRC validates the CRC-16-CCITT trailing raw[:n] against the
// big-endian 16-bit value stored at raw[n:n+2]. It requires at least
// n+2 bytes to be buffered.
func (d *dataGroup) checkCRC(n int) bool {
	if d.size < n+2 {
		return false
	}
	stored := uint16(d.raw[n])<<8 | uint16(d.raw[n+1])
	return stored == CRC16CCITT.Calc(d.raw[:n])
}
