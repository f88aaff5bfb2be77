package app

import "errors"

var (
	// ErrNoReplayFiles はリプレイファイルが見つからない場合のエラー
	ErrNoReplayFiles = errors.New("リプレイファイル (.osr) が見つかりません")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrDecodeReplay はリプレイのデコードに失敗した場合のエラー
	ErrDecodeReplay = errors.New("リプレイのデコードに失敗しました")

	// ErrDecodeFailed はデコードに失敗したファイルがある場合のエラー
	ErrDecodeFailed = errors.New("デコードに失敗したファイルがあります")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
