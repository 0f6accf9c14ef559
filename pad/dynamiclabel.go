/*
NAME
  dynamiclabel.go

DESCRIPTION
  dynamiclabel.go decodes the Dynamic Label Data Group: either a
  segment carrying part of the scrolling label, or a control command.

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

import "github.com/ausocean/utils/logging"

// dlCapacity covers a 2-byte prefix, up to 16 payload chars, and a
// trailing 2-byte CRC.
const dlCapacity = 2 + maxDLSegmentChars + 2

// dlCmdRemoveLabel is the only supported Dynamic Label control command.
const dlCmdRemoveLabel = 1

// Label is a snapshot of the published Dynamic Label: its raw bytes
// (in the broadcaster character set) and the charset nibble from
// segment 0.
type Label struct {
	Raw     []byte
	Charset byte
}

// DynamicLabelDecoder decodes Dynamic Label Data Groups, feeding
// completed segments to an internal reassembler and publishing the
// label once it completes.
type DynamicLabelDecoder struct {
	dg    dataGroup
	rsm   *dlReassembler
	label Label
	log   logging.Logger
}

// NewDynamicLabelDecoder returns a reset DynamicLabelDecoder that logs
// through log.
func NewDynamicLabelDecoder(log logging.Logger) *DynamicLabelDecoder {
	d := &DynamicLabelDecoder{rsm: newDLReassembler(), log: log}
	d.dg = newDataGroup(dlCapacity, d)
	return d
}

// Reset clears any in-progress Data Group, the reassembler and the
// published label.
func (d *DynamicLabelDecoder) Reset() {
	d.dg.reset()
	d.rsm.reset()
	d.label = Label{}
}

// ProcessDataSubfield feeds one Data Subfield of the Dynamic Label
// Data Group into the decoder. It returns true once a new label has
// been published (available via Label).
func (d *DynamicLabelDecoder) ProcessDataSubfield(start bool, data []byte) bool {
	return d.dg.processDataSubfield(start, data)
}

// decodeDataGroup implements decoder.
func (d *DynamicLabelDecoder) decodeDataGroup() bool {
	if !d.dg.ensureSize(2 + 2) {
		return false
	}

	raw := d.dg.raw
	command := raw[0]&0x10 != 0

	var fieldLen int
	removeLabel := false
	if command {
		switch raw[0] & 0x0F {
		case dlCmdRemoveLabel:
			removeLabel = true
		default:
			d.dg.reset()
			return false
		}
	} else {
		fieldLen = int(raw[0]&0x0F) + 1
	}

	realLen := 2 + fieldLen
	if !d.dg.ensureSize(realLen + 2) {
		return false
	}
	if !d.dg.checkCRC(realLen) {
		d.log.Log(logging.Warning, pkg+"Dynamic Label CRC check failed, dropping")
		d.dg.reset()
		return false
	}

	if removeLabel {
		d.label = Label{Raw: nil, Charset: 0}
		d.dg.reset()
		return true
	}

	var prefix [2]byte
	copy(prefix[:], raw[:2])
	seg := newDLSegment(prefix, raw[2:2+fieldLen])
	d.dg.reset()

	if !d.rsm.addSegment(seg) {
		return false
	}

	first, ok := d.rsm.segs[0]
	if !ok {
		return false
	}
	d.label = Label{Raw: d.rsm.labelRaw, Charset: first.Charset()}
	return true
}

// Label returns the most recently published Dynamic Label.
func (d *DynamicLabelDecoder) Label() Label { return d.label }
