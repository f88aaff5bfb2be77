package osr

import "fmt"

// GameMode はリプレイのゲームモードです
type GameMode uint8

// ゲームモードの定義
const (
	Standard GameMode = 0
	Taiko    GameMode = 1
	Catch    GameMode = 2
	Mania    GameMode = 3
)

// ParseGameMode はモードのコードを GameMode に変換します
func ParseGameMode(code uint8) (GameMode, error) {
	switch GameMode(code) {
	case Standard, Taiko, Catch, Mania:
		return GameMode(code), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownGameMode, code)
}

// String はゲームモードの名前を返します
func (m GameMode) String() string {
	switch m {
	case Standard:
		return "osu!"
	case Taiko:
		return "osu!taiko"
	case Catch:
		return "osu!catch"
	case Mania:
		return "osu!mania"
	}
	return fmt.Sprintf("GameMode(%d)", uint8(m))
}
