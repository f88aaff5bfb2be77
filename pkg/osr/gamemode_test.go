package osr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameMode(t *testing.T) {
	tests := []struct {
		code uint8
		want GameMode
		name string
	}{
		{0, Standard, "osu!"},
		{1, Taiko, "osu!taiko"},
		{2, Catch, "osu!catch"},
		{3, Mania, "osu!mania"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseGameMode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.name, mode.String())
		})
	}
}

func TestParseGameMode_Unknown(t *testing.T) {
	for _, code := range []uint8{4, 0x80, 0xff} {
		_, err := ParseGameMode(code)
		assert.ErrorIs(t, err, ErrUnknownGameMode, "code %d", code)
	}
	assert.Equal(t, "GameMode(7)", GameMode(7).String())
}
