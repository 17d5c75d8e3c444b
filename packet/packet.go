// Package packet frames bshuff payloads into Ballistica UDP packets.
//
// A compressed game packet is
//
//	[type][client id][compressed scene packet]
//
// where type is TypeClientGamePacketCompressed from a client and
// TypeHostGamePacketCompressed from a host. The identifier catalogs here are
// lookup data for inspection; they carry no codec logic.
package packet

import (
	"errors"
	"fmt"

	"github.com/axiomhq/bshuff"
)

// HeaderLen is the size of the outer packet header.
const HeaderLen = 2

// DefaultClientID is the client id seen in captured client traffic.
const DefaultClientID byte = 0x7c

var (
	// ErrShortPacket is returned when raw cannot hold the outer header.
	ErrShortPacket = errors.New("packet: shorter than the outer header")
	// ErrNotGamePacket is returned by DecodeGame for types other than 36 and 37.
	ErrNotGamePacket = errors.New("packet: not a compressed game packet")
)

// Header is the outer packet header.
type Header struct {
	Type     Type
	ClientID byte
}

// EncodeClient compresses scene with c and prefixes the client game packet
// header.
func EncodeClient(c *bshuff.Codec, clientID byte, scene []byte) ([]byte, error) {
	body, err := c.Compress(scene)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, HeaderLen+len(body))
	out = append(out, byte(TypeClientGamePacketCompressed), clientID)
	return append(out, body...), nil
}

// Parse splits raw into its header and body. The body aliases raw.
func Parse(raw []byte) (Header, []byte, error) {
	if len(raw) < HeaderLen {
		return Header{}, nil, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(raw))
	}
	return Header{Type: Type(raw[0]), ClientID: raw[1]}, raw[HeaderLen:], nil
}

// IsGamePacket reports whether t carries a compressed scene packet.
func (t Type) IsGamePacket() bool {
	return t == TypeClientGamePacketCompressed || t == TypeHostGamePacketCompressed
}

// DecodeGame parses raw and decompresses its scene packet.
func DecodeGame(c *bshuff.Codec, raw []byte) (Header, []byte, error) {
	h, body, err := Parse(raw)
	if err != nil {
		return Header{}, nil, err
	}
	if !h.Type.IsGamePacket() {
		return Header{}, nil, fmt.Errorf("%w: %s", ErrNotGamePacket, h.Type)
	}
	scene, err := c.Decompress(body)
	if err != nil {
		return Header{}, nil, err
	}
	return h, scene, nil
}

// Offsets of the message type inside scene message packets.
const (
	messageTypeOffset           = 6
	unreliableMessageTypeOffset = 8
)

// SceneInfo describes a decompressed scene packet.
type SceneInfo struct {
	Type SceneType

	// HasMessage is set for message packets long enough to hold a message
	// type; Message and Body are only valid then.
	HasMessage bool
	Message    MessageType
	Body       []byte
}

// Describe classifies scene. Body aliases scene.
func Describe(scene []byte) SceneInfo {
	if len(scene) == 0 {
		return SceneInfo{}
	}
	info := SceneInfo{Type: SceneType(scene[0])}

	off := -1
	switch info.Type {
	case SceneMessage:
		off = messageTypeOffset
	case SceneMessageUnreliable:
		off = unreliableMessageTypeOffset
	}
	if off < 0 || len(scene) <= off {
		return info
	}
	info.HasMessage = true
	info.Message = MessageType(scene[off])
	info.Body = scene[off+1:]
	return info
}
