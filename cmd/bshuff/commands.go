package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/axiomhq/bshuff"
	"github.com/axiomhq/bshuff/packet"
)

// loadCodec returns the default codec, or one built from the CBOR array of
// 256 frequencies at path.
func loadCodec(path string) (*bshuff.Codec, error) {
	if path == "" {
		return bshuff.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	freqs, err := decodeFrequencies(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bshuff.New(freqs), nil
}

func decodeFrequencies(data []byte) (bshuff.FrequencyTable, error) {
	var (
		raw   []uint32
		freqs bshuff.FrequencyTable
	)
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return freqs, err
	}
	if len(raw) != len(freqs) {
		return freqs, fmt.Errorf("want %d frequencies, got %d", len(freqs), len(raw))
	}
	copy(freqs[:], raw)
	return freqs, nil
}

func parseHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}

func formatHex(b []byte) string { return fmt.Sprintf("% x", b) }

func ratio(compressed, plain int) float64 {
	if plain == 0 {
		return 0
	}
	return float64(compressed) / float64(plain) * 100
}

func runDecode(log *zap.SugaredLogger, c *bshuff.Codec, w io.Writer, args []string) error {
	var errs error
	for i, arg := range args {
		if err := decodeOne(log, c, w, arg); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("packet %d: %w", i, err))
		}
	}
	return errs
}

func decodeOne(log *zap.SugaredLogger, c *bshuff.Codec, w io.Writer, arg string) error {
	raw, err := parseHex(arg)
	if err != nil {
		return err
	}
	// Any packet type is decompressed so that other captured kinds can be
	// inspected too; only game packets get a scene breakdown.
	h, payload, err := packet.Parse(raw)
	if err != nil {
		return err
	}
	scene, err := c.Decompress(payload)
	if err != nil {
		return err
	}
	body := len(payload)
	log.Debugw("decoded", "type", h.Type, "client", h.ClientID, "in", body, "out", len(scene), "game", h.Type.IsGamePacket())

	fmt.Fprintf(w, "Raw packet (%d bytes): %s\n", len(raw), formatHex(raw))
	fmt.Fprintf(w, "Packet type: 0x%02x (%s)\n", byte(h.Type), h.Type)
	fmt.Fprintf(w, "Client ID: 0x%02x\n", h.ClientID)
	fmt.Fprintf(w, "Decompressed (%d bytes): %s\n", len(scene), formatHex(scene))
	fmt.Fprintf(w, "Compression ratio: %d/%d = %.1f%%\n", body, len(scene), ratio(body, len(scene)))

	if !h.Type.IsGamePacket() {
		return nil
	}
	info := packet.Describe(scene)
	if len(scene) > 0 {
		fmt.Fprintf(w, "Scene packet type: 0x%02x (%s)\n", byte(info.Type), info.Type)
	}
	if info.HasMessage {
		fmt.Fprintf(w, "Message type: 0x%02x (%s)\n", byte(info.Message), info.Message)
		fmt.Fprintf(w, "Message data: %s\n", formatHex(info.Body))
	}
	return nil
}

func runEncode(log *zap.SugaredLogger, c *bshuff.Codec, w, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	client := fs.String("client", fmt.Sprintf("0x%02x", packet.DefaultClientID), "client id byte")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := strconv.ParseUint(*client, 0, 8)
	if err != nil {
		return fmt.Errorf("client id %q: %w", *client, err)
	}

	var errs error
	for i, arg := range fs.Args() {
		scene, err := parseHex(arg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("packet %d: %w", i, err))
			continue
		}
		full, err := packet.EncodeClient(c, byte(id), scene)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("packet %d: %w", i, err))
			continue
		}
		body := len(full) - packet.HeaderLen
		log.Debugw("encoded", "client", id, "in", len(scene), "out", body)

		fmt.Fprintf(w, "Scene packet (%d bytes): %s\n", len(scene), formatHex(scene))
		fmt.Fprintf(w, "Full packet (%d bytes): %s\n", len(full), formatHex(full))
		fmt.Fprintf(w, "Compression ratio: %d/%d = %.1f%%\n", body, len(scene), ratio(body, len(scene)))
	}
	return errs
}

func printTable(c *bshuff.Codec, w io.Writer) error {
	for i := range 256 {
		bits, n, escaped := c.Code(byte(i))
		kind := "huffman"
		if escaped {
			kind = "raw"
		}
		// Emission order, first transmitted bit on the left.
		var sb strings.Builder
		for j := range n {
			sb.WriteByte('0' + byte(bits>>j&1))
		}
		if _, err := fmt.Fprintf(w, "0x%02x %d %-9s %s\n", i, n, sb.String(), kind); err != nil {
			return err
		}
	}
	return nil
}
