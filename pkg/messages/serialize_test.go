package messages

import (
	"testing"

	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_SerializeDeserializeMessage(t *testing.T) {
	tests := []struct {
		name        string
		compression Compression
	}{
		{name: "zstd", compression: CompressionZstd},
		{name: "none", compression: CompressionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewCodec(tt.compression)
			require.NoError(t, err)
			defer codec.Close()

			msg, err := NewMessage(MessageTypeServerGameUpdate, &ServerGameUpdate{
				Solution:      map[string]types.Category{"cat": types.CategoryRed},
				Board:         map[string]types.Category{},
				StartingColor: types.CategoryRed,
				GameID:        "g1",
			})
			require.NoError(t, err)

			b, err := codec.SerializeMessage(msg)
			require.NoError(t, err)

			got, err := codec.DeserializeMessage(b)
			require.NoError(t, err)
			assert.Equal(t, msg.Type, got.Type)
			assert.JSONEq(t, string(msg.Payload), string(got.Payload))
		})
	}
}

func TestCodec_DeserializeRejectsGarbage(t *testing.T) {
	codec, err := NewCodec(CompressionZstd)
	require.NoError(t, err)
	defer codec.Close()

	_, err = codec.DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)

	plain, err := NewCodec(CompressionNone)
	require.NoError(t, err)
	_, err = plain.DeserializeMessage([]byte(`{"payload":{}}`))
	assert.Error(t, err, "a message without a type is rejected")
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("zstd")
	assert.NoError(t, err)
	assert.Equal(t, CompressionZstd, c)

	_, err = ParseCompression("gzip")
	assert.Error(t, err)

	_, err = NewCodec(Compression("gzip"))
	assert.Error(t, err)
}
