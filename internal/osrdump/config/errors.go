package config

import "errors"

var (
	// ErrInvalidEnv は環境変数の値が不正な場合のエラー
	ErrInvalidEnv = errors.New("環境変数の値が不正です")

	// ErrUnknownEncoding は未対応の文字コードが指定された場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")

	// ErrUnknownLanguage は言語タグが解析できない場合のエラー
	ErrUnknownLanguage = errors.New("言語タグを解析できません")

	// ErrInvalidWorkers はワーカー数が不正な場合のエラー
	ErrInvalidWorkers = errors.New("ワーカー数は1以上を指定してください")

	// ErrInvalidEventLimit は表示件数が不正な場合のエラー
	ErrInvalidEventLimit = errors.New("入力イベントの表示件数は0以上を指定してください")
)
