package osr

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// replayBuilder はテスト用にリプレイのバイト列を組み立てます
type replayBuilder struct {
	buf bytes.Buffer
}

func (b *replayBuilder) u8(v uint8) *replayBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *replayBuilder) boolean(v bool) *replayBuilder {
	if v {
		return b.u8(1)
	}
	return b.u8(0)
}

func (b *replayBuilder) i16(v int16) *replayBuilder {
	b.buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(v)))
	return b
}

func (b *replayBuilder) i32(v int32) *replayBuilder {
	return b.u32(uint32(v))
}

func (b *replayBuilder) u32(v uint32) *replayBuilder {
	b.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
	return b
}

func (b *replayBuilder) i64(v int64) *replayBuilder {
	b.buf.Write(binary.LittleEndian.AppendUint64(nil, uint64(v)))
	return b
}

func (b *replayBuilder) str(s string) *replayBuilder {
	b.buf.WriteByte(stringPresent)
	b.buf.Write(encodeULEB128(uint64(len(s))))
	b.buf.WriteString(s)
	return b
}

func (b *replayBuilder) absent() *replayBuilder {
	return b.u8(stringAbsent)
}

func (b *replayBuilder) raw(p []byte) *replayBuilder {
	b.buf.Write(p)
	return b
}

func (b *replayBuilder) bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// encodeULEB128 は v を ULEB128 に符号化します
func encodeULEB128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

// writeHeader はヘッダー部分を書き込みます (プレイデータの長さは含まない)
func (b *replayBuilder) writeHeader(r *Replay) *replayBuilder {
	b.u8(uint8(r.GameMode)).i32(r.GameVersion)
	b.str(r.BeatmapHash).str(r.PlayerName).str(r.ReplayHash)
	b.i16(r.Count300).i16(r.Count100).i16(r.Count50)
	b.i16(r.CountGeki).i16(r.CountKatu).i16(r.CountMiss)
	b.i32(r.Score).i16(r.MaxCombo).boolean(r.PerfectCombo).u32(r.Mods.Mask())
	b.str(r.LifeBarGraph)
	b.i64(r.Timestamp)
	return b
}

// encodeReplay は r のヘッダーと payload を連結したリプレイを作成します
func encodeReplay(t *testing.T, r *Replay, payload []byte) []byte {
	t.Helper()
	var b replayBuilder
	b.writeHeader(r).i32(int32(len(payload))).raw(payload)
	return b.bytes()
}

// compressLZMA は text を LZMA (alone 形式) で圧縮します
func compressLZMA(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// compressXZ は text を xz 形式で圧縮します
func compressXZ(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// sampleReplay はテスト用の osu!standard リプレイです
func sampleReplay() *Replay {
	return &Replay{
		GameMode:     Standard,
		GameVersion:  20240123,
		BeatmapHash:  "d41d8cd98f00b204e9800998ecf8427e",
		PlayerName:   "peppy",
		ReplayHash:   "0123456789abcdef0123456789abcdef",
		Count300:     1234,
		Count100:     56,
		Count50:      7,
		CountGeki:    210,
		CountKatu:    31,
		CountMiss:    2,
		Score:        98765432,
		MaxCombo:     1500,
		PerfectCombo: false,
		Mods:         ModSet{Hidden, DoubleTime},
		LifeBarGraph: "0|1,5000|0.95,10000|1,",
		Timestamp:    638400000000000000,
	}
}

// samplePlayData は sampleReplay のプレイデータ (展開後) です
const samplePlayData = "-1|256|-500|0,-1|256|-500|0,16|100.5|200.25|1,17|101|201|5,-12345|0|0|1234567,"
