// Package interfaces はosrdumpコマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/shiroemons/go-osrparse/pkg/osr"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// ReplayDecoder はバイト列をリプレイにデコードするインターフェースです
type ReplayDecoder interface {
	Decode(data []byte) (*osr.Replay, error)
}

// ReplayFinder はリプレイファイルを検索するインターフェースです
type ReplayFinder interface {
	Find() ([]string, error)
}
