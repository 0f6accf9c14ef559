/*
NAME
  crc.go

DESCRIPTION
  crc.go provides the bit-serial CRC calculator the Data Group decoders
  depend on to validate their trailing checksum.

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

// CRC is a bit-serial CRC calculator parameterised by initial value,
// generator polynomial and whether the result is inverted before
// being returned. It reproduces the broadcaster's XOR-on-shift,
// XOR-on-input framing bit for bit, rather than relying on a
// table-driven form, so that it interoperates with CRCs computed by
// the DAB encoder side against the same bitstream.
type CRC struct {
	Init        uint16
	Polynomial  uint16
	FinalInvert bool
}

// CRC16CCITT is the CRC used to protect DGLI and Dynamic Label Data
// Groups: init 0xFFFF, poly 0x1021 (16,12,5,0), no final invert. Its
// check value for "123456789" is 0x29B1.
var CRC16CCITT = CRC{Init: 0xFFFF, Polynomial: 0x1021, FinalInvert: false}

// FireCode is the CRC used by MOT Data Groups (outside this core's
// dispatch, kept here so a downstream MOT collaborator can reuse the
// same calculator): init 0x0000, poly 0x782F, no final invert.
var FireCode = CRC{Init: 0x0000, Polynomial: 0x782F, FinalInvert: false}

// Calc computes the CRC over data.
func (c CRC) Calc(data []byte) uint16 {
	crc := c.Init
	for _, b := range data {
		for mask := byte(1 << 7); mask != 0; mask >>= 1 {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ c.Polynomial
			} else {
				crc <<= 1
			}
			if b&mask != 0 {
				crc ^= c.Polynomial
			}
		}
	}
	if c.FinalInvert {
		crc ^= 0xFFFF
	}
	return crc
}
