package osr

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	want := sampleReplay()
	data := encodeReplay(t, want, compressLZMA(t, samplePlayData))

	got, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, want.GameMode, got.GameMode)
	assert.Equal(t, want.GameVersion, got.GameVersion)
	assert.Equal(t, want.BeatmapHash, got.BeatmapHash)
	assert.Equal(t, want.PlayerName, got.PlayerName)
	assert.Equal(t, want.ReplayHash, got.ReplayHash)
	assert.Equal(t, want.Count300, got.Count300)
	assert.Equal(t, want.Count100, got.Count100)
	assert.Equal(t, want.Count50, got.Count50)
	assert.Equal(t, want.CountGeki, got.CountGeki)
	assert.Equal(t, want.CountKatu, got.CountKatu)
	assert.Equal(t, want.CountMiss, got.CountMiss)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.MaxCombo, got.MaxCombo)
	assert.Equal(t, want.PerfectCombo, got.PerfectCombo)
	assert.Equal(t, want.Mods, got.Mods)
	assert.Equal(t, want.LifeBarGraph, got.LifeBarGraph)
	assert.Equal(t, want.Timestamp, got.Timestamp)

	assert.Equal(t, []ReplayEvent{
		{Time: 14, X: 100.5, Y: 200.25, Keys: 1},
		{Time: 31, X: 101, Y: 201, Keys: 5},
	}, got.PlayData)
}

func TestDecode_OtherModes(t *testing.T) {
	for _, mode := range []GameMode{Taiko, Catch, Mania} {
		t.Run(mode.String(), func(t *testing.T) {
			r := sampleReplay()
			r.GameMode = mode
			r.Mods = ModSet{NoMod}
			r.PerfectCombo = true

			got, err := Decode(encodeReplay(t, r, []byte("opaque payload")))
			require.NoError(t, err)
			assert.Equal(t, mode, got.GameMode)
			assert.Equal(t, ModSet{NoMod}, got.Mods)
			assert.True(t, got.PerfectCombo)
			assert.Nil(t, got.PlayData)
		})
	}
}

func TestDecode_AbsentStrings(t *testing.T) {
	var b replayBuilder
	b.u8(uint8(Mania)).i32(1)
	b.absent().absent().absent()
	b.i16(0).i16(0).i16(0).i16(0).i16(0).i16(0)
	b.i32(0).i16(0).boolean(false).u32(0)
	b.absent()
	b.i64(0).i32(0)

	got, err := Decode(b.bytes())
	require.NoError(t, err)
	assert.Empty(t, got.BeatmapHash)
	assert.Empty(t, got.PlayerName)
	assert.Empty(t, got.ReplayHash)
	assert.Empty(t, got.LifeBarGraph)
	assert.Equal(t, ModSet{NoMod}, got.Mods)
}

func TestDecode_Deterministic(t *testing.T) {
	data := encodeReplay(t, sampleReplay(), compressLZMA(t, samplePlayData))

	first, err := Decode(data)
	require.NoError(t, err)
	second, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestDecode_PayloadLengthPastEnd(t *testing.T) {
	var b replayBuilder
	b.writeHeader(sampleReplay()).i32(1000).raw([]byte{0x5d, 0x00, 0x00})

	got, err := Decode(b.bytes())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "play data", de.Section)
}

func TestDecode_EveryPrefixIsTruncated(t *testing.T) {
	data := encodeReplay(t, sampleReplay(), compressLZMA(t, samplePlayData))

	for n := 0; n < len(data); n++ {
		got, err := Decode(data[:n])
		assert.Nil(t, got, "prefix %d", n)
		assert.ErrorIs(t, err, ErrTruncatedInput, "prefix %d", n)
	}
}

func TestDecode_HeaderErrors(t *testing.T) {
	base := sampleReplay()

	tests := []struct {
		name        string
		data        func() []byte
		wantErr     error
		wantSection string
		wantOffset  int
	}{
		{
			name: "不明なゲームモード",
			data: func() []byte {
				var b replayBuilder
				b.u8(7).i32(1)
				return b.bytes()
			},
			wantErr:     ErrUnknownGameMode,
			wantSection: "game mode and version",
			wantOffset:  0,
		},
		{
			name: "プレイヤー名のタグが不正",
			data: func() []byte {
				var b replayBuilder
				b.u8(0).i32(1).str(base.BeatmapHash).u8(0x05)
				return b.bytes()
			},
			wantErr:     ErrInvalidFormat,
			wantSection: "player name",
			wantOffset:  1 + 4 + 1 + 1 + len(base.BeatmapHash),
		},
		{
			name: "リプレイハッシュが UTF-8 でない",
			data: func() []byte {
				var b replayBuilder
				b.u8(0).i32(1).absent().absent().u8(0x0b).u8(0x01).u8(0xff)
				return b.bytes()
			},
			wantErr:     ErrInvalidEncoding,
			wantSection: "replay hash",
			wantOffset:  1 + 4 + 1 + 1,
		},
		{
			name: "未定義の Mod ビット",
			data: func() []byte {
				var b replayBuilder
				b.u8(0).i32(1).absent().absent().absent()
				b.i16(0).i16(0).i16(0).i16(0).i16(0).i16(0)
				b.i32(0).i16(0).boolean(false).u32(1 << 31)
				return b.bytes()
			},
			wantErr:     ErrUnknownModifierBit,
			wantSection: "score stats",
			wantOffset:  1 + 4 + 1 + 1 + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantSection, de.Section)
			assert.Equal(t, tt.wantOffset, de.Offset)
			assert.Contains(t, de.Error(), tt.wantSection)
		})
	}
}

func TestReplay_CreatedAt(t *testing.T) {
	r := &Replay{Timestamp: unixEpochTicks + 60*10_000_000 + 5}
	assert.Equal(t, time.Unix(60, 500).UTC(), r.CreatedAt())

	r = &Replay{Timestamp: unixEpochTicks}
	assert.Equal(t, time.Unix(0, 0).UTC(), r.CreatedAt())
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.osr")
	data := encodeReplay(t, sampleReplay(), compressLZMA(t, samplePlayData))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "peppy", got.PlayerName)
	assert.Len(t, got.PlayData, 2)

	_, err = DecodeFile(filepath.Join(dir, "missing.osr"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
