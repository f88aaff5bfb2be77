package osr

import (
	"fmt"
	"strings"
)

// Mod はプレイに適用された Mod を表します。各値はビットマスクの1ビットに対応します。
type Mod uint32

// Mod の定義 (osu! stable)
const (
	NoMod          Mod = 0
	NoFail         Mod = 1 << 0
	Easy           Mod = 1 << 1
	TouchDevice    Mod = 1 << 2
	Hidden         Mod = 1 << 3
	HardRock       Mod = 1 << 4
	SuddenDeath    Mod = 1 << 5
	DoubleTime     Mod = 1 << 6
	Relax          Mod = 1 << 7
	HalfTime       Mod = 1 << 8
	Nightcore      Mod = 1 << 9
	Flashlight     Mod = 1 << 10
	Autoplay       Mod = 1 << 11
	SpunOut        Mod = 1 << 12
	Autopilot      Mod = 1 << 13
	Perfect        Mod = 1 << 14
	Key4           Mod = 1 << 15
	Key5           Mod = 1 << 16
	Key6           Mod = 1 << 17
	Key7           Mod = 1 << 18
	Key8           Mod = 1 << 19
	FadeIn         Mod = 1 << 20
	Random         Mod = 1 << 21
	Cinema         Mod = 1 << 22
	TargetPractice Mod = 1 << 23
	Key9           Mod = 1 << 24
	KeyCoop        Mod = 1 << 25
	Key1           Mod = 1 << 26
	Key3           Mod = 1 << 27
	Key2           Mod = 1 << 28
	ScoreV2        Mod = 1 << 29
	Mirror         Mod = 1 << 30
)

type modInfo struct {
	name    string
	acronym string
}

var modTable = map[Mod]modInfo{
	NoMod:          {"NoMod", "NM"},
	NoFail:         {"NoFail", "NF"},
	Easy:           {"Easy", "EZ"},
	TouchDevice:    {"TouchDevice", "TD"},
	Hidden:         {"Hidden", "HD"},
	HardRock:       {"HardRock", "HR"},
	SuddenDeath:    {"SuddenDeath", "SD"},
	DoubleTime:     {"DoubleTime", "DT"},
	Relax:          {"Relax", "RX"},
	HalfTime:       {"HalfTime", "HT"},
	Nightcore:      {"Nightcore", "NC"},
	Flashlight:     {"Flashlight", "FL"},
	Autoplay:       {"Autoplay", "AT"},
	SpunOut:        {"SpunOut", "SO"},
	Autopilot:      {"Autopilot", "AP"},
	Perfect:        {"Perfect", "PF"},
	Key4:           {"Key4", "4K"},
	Key5:           {"Key5", "5K"},
	Key6:           {"Key6", "6K"},
	Key7:           {"Key7", "7K"},
	Key8:           {"Key8", "8K"},
	FadeIn:         {"FadeIn", "FI"},
	Random:         {"Random", "RD"},
	Cinema:         {"Cinema", "CN"},
	TargetPractice: {"TargetPractice", "TP"},
	Key9:           {"Key9", "9K"},
	KeyCoop:        {"KeyCoop", "CO"},
	Key1:           {"Key1", "1K"},
	Key3:           {"Key3", "3K"},
	Key2:           {"Key2", "2K"},
	ScoreV2:        {"ScoreV2", "V2"},
	Mirror:         {"Mirror", "MR"},
}

// String は Mod の名前を返します
func (m Mod) String() string {
	if info, ok := modTable[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Mod(0x%08X)", uint32(m))
}

// Acronym は Mod の略称 (HD, DT など) を返します
func (m Mod) Acronym() string {
	if info, ok := modTable[m]; ok {
		return info.acronym
	}
	return fmt.Sprintf("%08X", uint32(m))
}

// ModSet はビットの昇順に並んだ Mod の集合です
type ModSet []Mod

// ExpandMods はビットマスクを Mod の集合に展開します。
// mask が0の場合は NoMod のみを含む集合を返します。
func ExpandMods(mask uint32) (ModSet, error) {
	if mask == 0 {
		return ModSet{NoMod}, nil
	}

	var set ModSet
	for mask != 0 {
		lowest := mask & -mask
		mod := Mod(lowest)
		if _, ok := modTable[mod]; !ok {
			return nil, fmt.Errorf("%w: 0x%08X", ErrUnknownModifierBit, lowest)
		}
		set = append(set, mod)
		mask ^= lowest
	}
	return set, nil
}

// Mask は集合をビットマスクに戻します
func (s ModSet) Mask() uint32 {
	var mask uint32
	for _, m := range s {
		mask |= uint32(m)
	}
	return mask
}

// Has は集合に m が含まれるかを返します
func (s ModSet) Has(m Mod) bool {
	for _, v := range s {
		if v == m {
			return true
		}
	}
	return false
}

// String は略称をカンマ区切りで返します (例: "HD,DT")
func (s ModSet) String() string {
	acronyms := make([]string, len(s))
	for i, m := range s {
		acronyms[i] = m.Acronym()
	}
	return strings.Join(acronyms, ",")
}
