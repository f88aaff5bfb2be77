package osr

import (
	"encoding/binary"
	"fmt"
)

// 可変長整数の最大バイト数 (64ビット / 7ビット)
const maxULEB128Len = 10

// Cursor は不変のバイト列を先頭から順に読み進めます。
// すべての読み込みは成功した場合のみ位置を進めます。
type Cursor struct {
	data []byte
	off  int
}

// NewCursor は data の先頭を指す Cursor を作成します
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset は現在の読み込み位置を返します
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining は未読のバイト数を返します
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// ReadRaw は次の n バイトを返します。戻り値は元のバッファを共有します。
func (c *Cursor) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidFormat, n)
	}
	if n > c.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedInput, n, c.off, c.Remaining())
	}
	b := c.data[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// ReadU8 は1バイト読み込みます
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadRaw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool は1バイト読み込み、0以外を true とします
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadI16 はリトルエンディアンの符号付き16ビット整数を読み込みます
func (c *Cursor) ReadI16() (int16, error) {
	b, err := c.ReadRaw(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// ReadI32 はリトルエンディアンの符号付き32ビット整数を読み込みます
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadU32 はリトルエンディアンの符号なし32ビット整数を読み込みます
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadRaw(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI64 はリトルエンディアンの符号付き64ビット整数を読み込みます
func (c *Cursor) ReadI64() (int64, error) {
	b, err := c.ReadRaw(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ReadULEB128 は ULEB128 形式の可変長整数を読み込みます。
// 下位7ビットずつ下位グループから並び、最上位ビットが0のバイトで終端します。
func (c *Cursor) ReadULEB128() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		if c.off+i >= len(c.data) {
			return 0, fmt.Errorf("%w: unterminated ULEB128 at offset %d", ErrTruncatedInput, c.off)
		}
		b := c.data[c.off+i]
		// 10バイト目に入るのは最上位の1ビットだけ
		if i == maxULEB128Len-1 && b > 1 {
			return 0, fmt.Errorf("%w: ULEB128 overflows 64 bits at offset %d", ErrInvalidFormat, c.off)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			c.off += i + 1
			return result, nil
		}
		shift += 7
	}
}
