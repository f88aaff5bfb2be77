// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-osrparse/internal/osrdump/config"
	"github.com/shiroemons/go-osrparse/internal/osrdump/interfaces"
)

var (
	// ReplayFilePattern はリプレイファイル (*.osr) のパターン
	ReplayFilePattern = regexp.MustCompile(`(?i)^.+\.osr$`)

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// ToShiftJIS はUTF-8からShift-JISに変換します。
// Shift-JISで表せない文字は SUB (0x1A) に置き換えます。
func ToShiftJIS(str string) ([]byte, error) {
	encoder := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
	ret, _, err := transform.Bytes(encoder, []byte(str))
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// EncodeContent は指定された文字コードで content をバイト列にします。
// UTF-8 の場合は BOM を付けます。
func EncodeContent(content string, enc string) ([]byte, error) {
	switch enc {
	case config.EncodingUTF8:
		return append(append([]byte{}, utf8BOM...), content...), nil
	case config.EncodingShiftJIS:
		data, err := ToShiftJIS(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeContent, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownEncoding, enc)
}

// SaveToFile は content を指定された文字コードでファイルに保存します
func SaveToFile(fs interfaces.FileSystem, outputPath string, content string, enc string) error {
	data, err := EncodeContent(content, enc)
	if err != nil {
		return err
	}

	// 出力先ディレクトリを作成（存在しない場合）
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// GenerateOutputFilename は入力ファイル名から出力ファイル名を生成します
func GenerateOutputFilename(inputPath string) string {
	// ファイル名の部分だけを取得（拡張子なし）
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// osrdump_XXX.txt 形式の名前を生成
	return fmt.Sprintf("osrdump_%s.txt", baseName)
}

// ReplayFinder はカレントディレクトリからリプレイファイルを検索します
type ReplayFinder struct {
	fs interfaces.FileSystem
}

// NewReplayFinder は新しいReplayFinderを作成します
func NewReplayFinder(fs interfaces.FileSystem) *ReplayFinder {
	return &ReplayFinder{fs: fs}
}

// Find はカレントディレクトリにある .osr ファイルを名前順で返します
func (f *ReplayFinder) Find() ([]string, error) {
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
	}

	files, err := f.fs.ReadDir(currentDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, currentDir, err)
	}

	var replays []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if ReplayFilePattern.MatchString(file.Name()) {
			replays = append(replays, filepath.Join(currentDir, file.Name()))
		}
	}
	sort.Strings(replays)

	return replays, nil
}
