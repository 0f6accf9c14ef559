/*
NAME
  main.go

DESCRIPTION
  Paddump is a program that replays a captured DAB/DAB+ PAD frame log
  through a pad.Decoder and logs each Dynamic Label change.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package paddump is a bare bones program for replaying a captured PAD
// frame log and printing Dynamic Label changes as they are decoded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/dabpad/pad"
)

// Logging related constants.
const (
	logPath      = "/var/log/paddump/paddump.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

func main() {
	pathPtr := flag.String("path", "", "Path to a captured PAD frame log.")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *pathPtr == "" {
		l.Fatal("no frame log path given, use -path")
	}

	f, err := os.Open(*pathPtr)
	if err != nil {
		l.Fatal("could not open frame log", "error", err)
	}
	defer f.Close()

	obs := &labelPrinter{log: l}
	dec := pad.NewDecoder(obs, l)
	obs.dec = dec

	r := newFrameReader(f)
	var numFrames int
	for {
		fr, err := r.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Error("frame log read failed, stopping", "error", err, "numFrames", numFrames)
			break
		}
		dec.Process(fr.xpad, len(fr.xpad), fr.fpad)
		numFrames++
	}
	l.Debug("finished replaying frame log", "numFrames", numFrames)
}

// labelPrinter is a pad.Observer that prints the raw bytes of every
// Dynamic Label change to standard output.
type labelPrinter struct {
	log logging.Logger
	dec *pad.Decoder
}

func (p *labelPrinter) PADChangeDynamicLabel() {
	label := p.dec.GetDynamicLabel()
	fmt.Printf("%s\n", label.Raw)
}
