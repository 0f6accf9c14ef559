/*
NAME
  dgli.go

DESCRIPTION
  dgli.go decodes the Data Group Length Indicator, the 2-byte header
  that announces the size of the next MOT X-PAD Data Group.

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

// dgliCapacity is 2 header bytes plus a 2 byte CRC.
const dgliCapacity = 4

// DGLIDecoder decodes the Data Group Length Indicator Data Group. It
// does not itself reassemble the MOT Data Group that follows; it only
// exposes the announced length to an external MOT collaborator via
// DGLILen.
type DGLIDecoder struct {
	dg  dataGroup
	len int // Last decoded length, cleared by DGLILen.
	log logging.Logger
}

// NewDGLIDecoder returns a reset DGLIDecoder that logs through log.
func NewDGLIDecoder(log logging.Logger) *DGLIDecoder {
	d := &DGLIDecoder{log: log}
	d.dg = newDataGroup(dgliCapacity, d)
	return d
}

// Reset clears any in-progress Data Group and the last decoded length.
func (d *DGLIDecoder) Reset() {
	d.dg.reset()
	d.len = 0
}

// ProcessDataSubfield feeds one Data Subfield of the DGLI Data Group
// into the decoder. It returns true once a new length has been
// decoded (available via DGLILen).
func (d *DGLIDecoder) ProcessDataSubfield(start bool, data []byte) bool {
	return d.dg.processDataSubfield(start, data)
}

// decodeDataGroup implements decoder.
func (d *DGLIDecoder) decodeDataGroup() bool {
	if !d.dg.ensureSize(2 + 2) {
		return false
	}
	if !d.dg.checkCRC(2) {
		d.log.Log(logging.Warning, pkg+"DGLI CRC check failed, dropping")
		d.dg.reset()
		return false
	}

	d.len = int(d.dg.raw[0]&0x3F)<<8 | int(d.dg.raw[1])
	d.dg.reset()
	return true
}

// DGLILen returns the last decoded DGLI length and clears it; it is a
// one-shot accessor, consumed by the external MOT collaborator once
// per decode.
func (d *DGLIDecoder) DGLILen() int {
	n := d.len
	d.len = 0
	return n
}
