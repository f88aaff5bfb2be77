package osr

import (
	"fmt"
	"unicode/utf8"
)

// 文字列の有無を表すタグ
const (
	stringAbsent  = 0x00
	stringPresent = 0x0b
)

// ReadString はタグ付きの UTF-8 文字列を読み込みます。
// タグが 0x00 の場合は値なし (present=false) で、タグの1バイトだけを消費します。
func ReadString(c *Cursor) (s string, present bool, err error) {
	start := c.Offset()
	tag, err := c.ReadU8()
	if err != nil {
		return "", false, err
	}

	switch tag {
	case stringAbsent:
		return "", false, nil
	case stringPresent:
	default:
		c.off = start
		return "", false, fmt.Errorf("%w: string tag 0x%02x at offset %d", ErrInvalidFormat, tag, start)
	}

	length, err := c.ReadULEB128()
	if err != nil {
		c.off = start
		return "", false, err
	}
	if length > uint64(c.Remaining()) {
		c.off = start
		return "", false, fmt.Errorf("%w: string of %d bytes at offset %d, have %d", ErrTruncatedInput, length, start, c.Remaining())
	}

	b, err := c.ReadRaw(int(length))
	if err != nil {
		c.off = start
		return "", false, err
	}
	if !utf8.Valid(b) {
		c.off = start
		return "", false, fmt.Errorf("%w: at offset %d", ErrInvalidEncoding, start)
	}
	return string(b), true, nil
}
