// Package osr は osu! のリプレイファイル (.osr) を読み込むためのパッケージです。
//
// リプレイはリトルエンディアンのバイナリで、以下の順に並んでいます:
//   - ゲームモード、クライアントのバージョン
//   - ビートマップのハッシュ、プレイヤー名、リプレイのハッシュ
//   - 判定数、スコア、最大コンボ、フルコンボか、Mod
//   - ライフバーのグラフ
//   - 作成日時、プレイデータの長さ
//   - LZMA で圧縮されたプレイデータ
//
// 基本的な使い方:
//
//	replay, err := osr.DecodeFile("replay.osr")
//	if err != nil {
//	    var de *osr.DecodeError
//	    if errors.As(err, &de) {
//	        // de.Section, de.Offset ...
//	    }
//	    return err
//	}
//	for _, ev := range replay.PlayData {
//	    // ev.Time, ev.X, ev.Y, ev.Left() ...
//	}
package osr

import (
	"fmt"
	"os"
	"time"
)

// .NET の DateTime.Ticks における Unix エポック
const unixEpochTicks = 621355968000000000

// Replay はデコードしたリプレイ1件です
type Replay struct {
	GameMode     GameMode
	GameVersion  int32
	BeatmapHash  string
	PlayerName   string
	ReplayHash   string
	Count300     int16
	Count100     int16
	Count50      int16
	CountGeki    int16
	CountKatu    int16
	CountMiss    int16
	Score        int32
	MaxCombo     int16
	PerfectCombo bool
	Mods         ModSet
	LifeBarGraph string // "時刻|HP" のカンマ区切り。解析はしない
	Timestamp    int64  // .NET の DateTime.Ticks (100ナノ秒単位)
	PlayData     []ReplayEvent
}

// CreatedAt はリプレイの作成日時を UTC で返します
func (r *Replay) CreatedAt() time.Time {
	ticks := r.Timestamp - unixEpochTicks
	return time.Unix(ticks/10_000_000, (ticks%10_000_000)*100).UTC()
}

// Decode はバイト列全体をリプレイとして読み込みます。
// 失敗した場合は nil と *DecodeError を返します。
func Decode(data []byte) (*Replay, error) {
	c := NewCursor(data)

	h, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	events, err := decodePlayData(c, h.replay.GameMode, h.payloadLength)
	if err != nil {
		return nil, err
	}

	replay := h.replay
	replay.PlayData = events
	return &replay, nil
}

// DecodeFile はファイルを読み込んでリプレイとしてデコードします
func DecodeFile(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay %s: %w", path, err)
	}
	return Decode(data)
}
