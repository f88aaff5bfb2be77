package osr

// Keys は入力イベントの押下キーのビットマスクです
type Keys int64

// キーのビット。K1/K2 を押している間は M1/M2 も立ちます。
const (
	KeyM1    Keys = 1 << 0
	KeyM2    Keys = 1 << 1
	KeyK1    Keys = 1 << 2
	KeyK2    Keys = 1 << 3
	KeySmoke Keys = 1 << 4
)

// Has は bits のキーが全て押されているかを返します
func (k Keys) Has(bits Keys) bool {
	return k&bits == bits
}

// ReplayEvent はカーソルとキーの入力イベント1件です
type ReplayEvent struct {
	Time int64 // リプレイ開始からの経過時間 (ミリ秒)
	X    float64
	Y    float64
	Keys Keys
}

// Left は左ボタン (M1) が押されているかを返します
func (e ReplayEvent) Left() bool {
	return e.Keys&KeyM1 != 0
}

// Right は右ボタン (M2) が押されているかを返します
func (e ReplayEvent) Right() bool {
	return e.Keys&KeyM2 != 0
}
