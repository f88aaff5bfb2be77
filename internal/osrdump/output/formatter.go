// Package output はリプレイの要約テキストを生成します
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-osrparse/pkg/osr"
)

// Formatter はリプレイを人が読める形式に整形します
type Formatter struct {
	printer    *message.Printer
	eventLimit int
}

// NewFormatter は新しいFormatterを作成します。
// 数値は tag の書式で桁区切りし、入力イベントは先頭 eventLimit 件まで表示します。
func NewFormatter(tag language.Tag, eventLimit int) *Formatter {
	return &Formatter{
		printer:    message.NewPrinter(tag),
		eventLimit: eventLimit,
	}
}

// Format はリプレイの要約を返します
func (f *Formatter) Format(path string, r *osr.Replay) string {
	var builder strings.Builder
	p := f.printer

	builder.WriteString(fmt.Sprintf("# %s\n", filepath.Base(path)))
	builder.WriteString(fmt.Sprintf("モード: %s\n", r.GameMode))
	builder.WriteString(fmt.Sprintf("バージョン: %d\n", r.GameVersion))
	builder.WriteString(fmt.Sprintf("プレイヤー: %s\n", orNone(r.PlayerName)))
	builder.WriteString(fmt.Sprintf("ビートマップ: %s\n", orNone(r.BeatmapHash)))
	builder.WriteString(fmt.Sprintf("リプレイ: %s\n", orNone(r.ReplayHash)))
	builder.WriteString(p.Sprintf("スコア: %d\n", r.Score))

	combo := p.Sprintf("最大コンボ: %d", r.MaxCombo)
	if r.PerfectCombo {
		combo += " (フルコンボ)"
	}
	builder.WriteString(combo + "\n")

	builder.WriteString(p.Sprintf("300: %d / 100: %d / 50: %d / 激: %d / 喝: %d / ミス: %d\n",
		r.Count300, r.Count100, r.Count50, r.CountGeki, r.CountKatu, r.CountMiss))
	builder.WriteString(fmt.Sprintf("Mod: %s\n", r.Mods))
	builder.WriteString(fmt.Sprintf("作成日時: %s\n", r.CreatedAt().Format(time.RFC3339)))

	if r.PlayData == nil {
		builder.WriteString("入力イベント: なし (osu!standard 以外)\n")
		return builder.String()
	}

	builder.WriteString(p.Sprintf("入力イベント: %d 件\n", len(r.PlayData)))
	for i, ev := range r.PlayData {
		if i >= f.eventLimit {
			break
		}
		builder.WriteString(fmt.Sprintf("  %dms (%.2f, %.2f) %s\n", ev.Time, ev.X, ev.Y, formatKeys(ev)))
	}

	return builder.String()
}

// formatKeys は押されているボタンを "L", "R", "LR", "-" のいずれかで返します
func formatKeys(ev osr.ReplayEvent) string {
	var keys string
	if ev.Left() {
		keys += "L"
	}
	if ev.Right() {
		keys += "R"
	}
	if keys == "" {
		return "-"
	}
	return keys
}

func orNone(s string) string {
	if s == "" {
		return "(なし)"
	}
	return s
}
