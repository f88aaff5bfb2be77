package osr

import (
	"errors"
	"fmt"
)

// デコード失敗の種別。Decode が返すエラーは必ずこのいずれかを包みます。
var (
	// ErrTruncatedInput は固定長または可変長の読み込み途中でバッファが尽きた場合のエラー
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidFormat は文字列タグなどが想定外の値だった場合のエラー
	ErrInvalidFormat = errors.New("invalid replay format")

	// ErrInvalidEncoding は文字列が UTF-8 として不正な場合のエラー
	ErrInvalidEncoding = errors.New("invalid UTF-8 string")

	// ErrUnknownGameMode はゲームモードのコードが未定義の場合のエラー
	ErrUnknownGameMode = errors.New("unknown game mode")

	// ErrUnknownModifierBit は Mod のビットマスクに未定義のビットが立っている場合のエラー
	ErrUnknownModifierBit = errors.New("unknown modifier bit")

	// ErrCorruptPlayData はプレイデータの解凍・解析に失敗した場合のエラー
	ErrCorruptPlayData = errors.New("corrupt play data")
)

// DecodeError はデコード中に発生したエラーを、失敗したセクションと位置付きで表します
type DecodeError struct {
	Section string // 読み込み中だったセクション
	Offset  int    // セクション開始時のカーソル位置
	Err     error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *DecodeError) Error() string {
	return fmt.Sprintf("osr: %s at offset %d: %v", e.Section, e.Offset, e.Err)
}

// Unwrap は元のエラーを返します
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(section string, offset int, err error) *DecodeError {
	// 既に包まれている場合は内側の情報を優先する
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return &DecodeError{
		Section: section,
		Offset:  offset,
		Err:     err,
	}
}
