/*
NAME
  framereader_test.go

DESCRIPTION
  framereader_test.go tests frameReader's record parsing and its
  truncation handling.

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
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameReaderSingleRecord(t *testing.T) {
	buf := []byte{0x20, 0x02, 0x03, 0xAA, 0xBB, 0xCC}
	r := newFrameReader(bytes.NewReader(buf))

	got, err := r.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	want := frame{fpad: 0x2002, xpad: []byte{0xAA, 0xBB, 0xCC}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(frame{})); diff != "" {
		t.Errorf("next() mismatch (-want +got):\n%s", diff)
	}

	if _, err := r.next(); err != io.EOF {
		t.Errorf("next() at end of log = %v, want io.EOF", err)
	}
}

func TestFrameReaderZeroLengthXPAD(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00}
	r := newFrameReader(bytes.NewReader(buf))

	got, err := r.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if len(got.xpad) != 0 {
		t.Errorf("xpad = %v, want empty", got.xpad)
	}
}

func TestFrameReaderTruncatedHeader(t *testing.T) {
	buf := []byte{0x00, 0x00}
	r := newFrameReader(bytes.NewReader(buf))

	if _, err := r.next(); err == nil {
		t.Fatal("expected an error on a truncated header, got nil")
	}
}

func TestFrameReaderTruncatedPayload(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x05, 0xAA, 0xBB}
	r := newFrameReader(bytes.NewReader(buf))

	if _, err := r.next(); err == nil {
		t.Fatal("expected an error on a truncated X-PAD payload, got nil")
	}
}

func TestFrameReaderMultipleRecords(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x01, 0x11,
		0x10, 0x02, 0x02, 0x22, 0x33,
	}
	r := newFrameReader(bytes.NewReader(buf))

	first, err := r.next()
	if err != nil {
		t.Fatalf("first next() returned error: %v", err)
	}
	if first.fpad != 0x0000 || !bytes.Equal(first.xpad, []byte{0x11}) {
		t.Errorf("first = %+v, want fpad=0x0000 xpad=[0x11]", first)
	}

	second, err := r.next()
	if err != nil {
		t.Fatalf("second next() returned error: %v", err)
	}
	if second.fpad != 0x1002 || !bytes.Equal(second.xpad, []byte{0x22, 0x33}) {
		t.Errorf("second = %+v, want fpad=0x1002 xpad=[0x22 0x33]", second)
	}

	if _, err := r.next(); err != io.EOF {
		t.Errorf("next() at end of log = %v, want io.EOF", err)
	}
}
