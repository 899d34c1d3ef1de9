package messages

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compression selects how serialized messages are framed on the wire.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
)

// ParseCompression parses a compression name.
// Valid values are: none, zstd.
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case CompressionNone, CompressionZstd:
		return Compression(s), nil
	default:
		return "", fmt.Errorf("unknown compression: %s", s)
	}
}

// Codec serializes messages to and from their wire form.
// A Codec is safe for concurrent use.
type Codec struct {
	compression Compression
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

// NewCodec creates a codec for the given compression.
// The caller should call Close when done with a zstd codec.
func NewCodec(compression Compression) (*Codec, error) {
	c := &Codec{compression: compression}
	switch compression {
	case CompressionNone:
	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %v", err)
		}
		decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MessageBufferSize*16))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %v", err)
		}
		c.encoder = encoder
		c.decoder = decoder
	default:
		return nil, fmt.Errorf("unknown compression: %s", compression)
	}
	return c, nil
}

func (c *Codec) Compression() Compression {
	return c.compression
}

func (c *Codec) SerializeMessage(m *Message) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}
	if c.encoder == nil {
		return b, nil
	}
	return c.encoder.EncodeAll(b, make([]byte, 0, len(b))), nil
}

func (c *Codec) DeserializeMessage(data []byte) (*Message, error) {
	b := data
	if c.decoder != nil {
		decompressed, err := c.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress message: %v", err)
		}
		b = decompressed
	}

	message := &Message{}
	if err := json.Unmarshal(b, message); err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}
	if message.Type == "" {
		return nil, fmt.Errorf("message has no type")
	}
	return message, nil
}

// Close releases the zstd resources held by the codec.
func (c *Codec) Close() {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
}
