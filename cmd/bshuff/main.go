// Command bshuff inspects and builds Ballistica game packets.
//
//	bshuff decode "24 7c 87 f5 66 47 ed 0e c6 f0 00 8b 0c fe 01"
//	bshuff encode -client 0x7c 110d0047050007000c0000803f0600000000
//	bshuff table
//
// Each argument of decode and encode is one packet in hex, with or without
// spaces between bytes. Every argument is processed; failures are reported
// together at the end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage: bshuff [-v] [-freqs file.cbor] <command> [args]

commands:
  decode <hex...>                 decompress a captured packet
  encode [-client id] <hex...>    compress a scene packet into a client packet
  table                           print the code table
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bshuff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	verbose := fs.Bool("v", false, "debug logging")
	freqsPath := fs.String("freqs", "", "CBOR file with 256 byte frequencies")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log := newLogger(*verbose, stderr)
	defer func() { _ = log.Sync() }()

	codec, err := loadCodec(*freqsPath)
	if err != nil {
		log.Errorw("building codec", "freqs", *freqsPath, "error", err)
		return 1
	}
	log.Debugw("codec ready", "freqs", *freqsPath)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "decode":
		err = runDecode(log, codec, stdout, rest)
	case "encode":
		err = runEncode(log, codec, stdout, stderr, rest)
	case "table":
		err = printTable(codec, stdout)
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		log.Errorw(cmd+" failed", "error", err)
		return 1
	}
	return 0
}

// newLogger logs JSON at info level, or human-readable debug output when
// verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Sugar().Named("bshuff")
}
