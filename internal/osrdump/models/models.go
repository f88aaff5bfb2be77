// Package models はosrdumpコマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-osrparse/pkg/osr"

// DecodeResult はリプレイファイル1件のデコード結果を表します
type DecodeResult struct {
	Path   string
	Replay *osr.Replay
	Err    error
}

// DecodeJob は並列デコードの1件分の仕事を表します
type DecodeJob struct {
	Index int // 入力順での位置
	Path  string
}
