/*
NAME
  framereader.go

DESCRIPTION
  framereader.go reads the binary frame log format replayed by paddump:
  a sequence of records, each an F-PAD word, an X-PAD length, and the
  X-PAD bytes themselves.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// frame is one record of a captured PAD frame log: the F-PAD word for
// the frame and the X-PAD bytes that accompanied it.
type frame struct {
	fpad uint16
	xpad []byte
}

// frameReader reads successive frame records from a frame log.
//
// Record layout, all big-endian:
//
//	fpad     uint16
//	xpadLen  uint8
//	xpad     [xpadLen]byte
type frameReader struct {
	r io.Reader
}

// newFrameReader returns a frameReader over r.
func newFrameReader(r io.Reader) *frameReader {
	return &frameReader{r: r}
}

// next reads and returns the next frame record. It returns io.EOF once
// the log is exhausted at a record boundary; any other error indicates
// a truncated or malformed record.
func (fr *frameReader) next() (frame, error) {
	var hdr [3]byte
	if _, err := io.ReadFull(fr.r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return frame{}, errors.Wrap(err, "truncated frame log header")
		}
		return frame{}, err
	}

	f := frame{fpad: binary.BigEndian.Uint16(hdr[:2])}
	xpadLen := int(hdr[2])
	if xpadLen == 0 {
		return f, nil
	}

	f.xpad = make([]byte, xpadLen)
	if _, err := io.ReadFull(fr.r, f.xpad); err != nil {
		return frame{}, errors.Wrap(err, "truncated frame log X-PAD payload")
	}
	return f, nil
}
