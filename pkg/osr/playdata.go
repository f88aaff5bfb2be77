package osr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

const (
	frameSeparator = ","
	fieldSeparator = "|"

	// 先頭から破棄するイベント数。最初の2件は常に無意味な値を持つ。
	warmupFrames = 2
)

// xz コンテナのマジックナンバー
var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// decodePlayData は length バイトのプレイデータを読み込みます。
// osu!standard 以外のモードではバイト列を読み飛ばし、nil を返します。
func decodePlayData(c *Cursor, mode GameMode, length int32) ([]ReplayEvent, error) {
	start := c.Offset()
	if length < 0 {
		return nil, newDecodeError("play data", start, fmt.Errorf("%w: negative payload length %d", ErrInvalidFormat, length))
	}

	raw, err := c.ReadRaw(int(length))
	if err != nil {
		return nil, newDecodeError("play data", start, err)
	}
	if mode != Standard {
		return nil, nil
	}

	text, err := decompressPlayData(raw)
	if err != nil {
		return nil, newDecodeError("play data", start, err)
	}
	// 末尾の区切り文字を1つ落とす
	if len(text) > 0 {
		text = text[:len(text)-1]
	}

	events, err := parseFrames(text)
	if err != nil {
		return nil, newDecodeError("play data", start, err)
	}
	return events, nil
}

// decompressPlayData は LZMA (または xz) で圧縮されたプレイデータを ASCII 文字列に展開します
func decompressPlayData(raw []byte) (string, error) {
	var r io.Reader
	var err error
	if bytes.HasPrefix(raw, xzMagic) {
		r, err = xz.NewReader(bytes.NewReader(raw))
	} else {
		r, err = lzma.NewReader(bytes.NewReader(raw))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPlayData, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPlayData, err)
	}

	for i, b := range data {
		if b >= 0x80 {
			return "", fmt.Errorf("%w: non-ASCII byte 0x%02x at %d", ErrCorruptPlayData, b, i)
		}
	}
	return string(data), nil
}

// parseFrames は "time|x|y|keys" をカンマで連結したテキストをイベント列に変換します。
// time は直前のフレームからの差分で、累積して絶対時刻にします。
// 3件目以降で差分が負のフレームは時刻だけ進めてイベントを出力しません。
// 出力したイベントのうち先頭の2件は破棄します。
func parseFrames(text string) ([]ReplayEvent, error) {
	frames := strings.Split(text, frameSeparator)
	events := make([]ReplayEvent, 0, len(frames))

	var timestamp int64
	for i, frame := range frames {
		fields := strings.Split(frame, fieldSeparator)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: frame %d has %d fields: %q", ErrCorruptPlayData, i, len(fields), frame)
		}

		delta, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d time: %w", ErrCorruptPlayData, i, err)
		}
		timestamp += delta
		if i >= warmupFrames && delta < 0 {
			continue
		}

		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d x: %w", ErrCorruptPlayData, i, err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d y: %w", ErrCorruptPlayData, i, err)
		}
		keys, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d keys: %w", ErrCorruptPlayData, i, err)
		}

		events = append(events, ReplayEvent{
			Time: timestamp,
			X:    x,
			Y:    y,
			Keys: Keys(keys),
		})
	}

	if len(events) <= warmupFrames {
		return []ReplayEvent{}, nil
	}
	return events[warmupFrames:], nil
}
