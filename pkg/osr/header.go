package osr

// headerSection はヘッダーの1区画を読み込みます
type headerSection struct {
	name   string
	decode func(c *Cursor, h *header) error
}

// header はヘッダーの読み込み結果です
type header struct {
	replay        Replay
	payloadLength int32
}

// ヘッダーの区画。区画間に区切りがないため、この順序で読む必要があります。
var headerSections = []headerSection{
	{"game mode and version", decodeModeAndVersion},
	{"beatmap hash", func(c *Cursor, h *header) error { return decodeString(c, &h.replay.BeatmapHash) }},
	{"player name", func(c *Cursor, h *header) error { return decodeString(c, &h.replay.PlayerName) }},
	{"replay hash", func(c *Cursor, h *header) error { return decodeString(c, &h.replay.ReplayHash) }},
	{"score stats", decodeScoreStats},
	{"life bar graph", func(c *Cursor, h *header) error { return decodeString(c, &h.replay.LifeBarGraph) }},
	{"timestamp and payload length", decodeTimestampAndLength},
}

// decodeHeader はカーソルの現在位置からヘッダーを読み込みます
func decodeHeader(c *Cursor) (*header, error) {
	h := &header{}
	for _, section := range headerSections {
		start := c.Offset()
		if err := section.decode(c, h); err != nil {
			return nil, newDecodeError(section.name, start, err)
		}
	}
	return h, nil
}

func decodeModeAndVersion(c *Cursor, h *header) error {
	code, err := c.ReadU8()
	if err != nil {
		return err
	}
	mode, err := ParseGameMode(code)
	if err != nil {
		return err
	}
	version, err := c.ReadI32()
	if err != nil {
		return err
	}
	h.replay.GameMode = mode
	h.replay.GameVersion = version
	return nil
}

// decodeString は文字列を dst に読み込みます。値がない場合は空文字列になります。
func decodeString(c *Cursor, dst *string) error {
	s, _, err := ReadString(c)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func decodeScoreStats(c *Cursor, h *header) error {
	r := &h.replay
	counters := []*int16{&r.Count300, &r.Count100, &r.Count50, &r.CountGeki, &r.CountKatu, &r.CountMiss}
	for _, dst := range counters {
		v, err := c.ReadI16()
		if err != nil {
			return err
		}
		*dst = v
	}

	score, err := c.ReadI32()
	if err != nil {
		return err
	}
	maxCombo, err := c.ReadI16()
	if err != nil {
		return err
	}
	perfect, err := c.ReadBool()
	if err != nil {
		return err
	}
	mask, err := c.ReadU32()
	if err != nil {
		return err
	}
	mods, err := ExpandMods(mask)
	if err != nil {
		return err
	}

	r.Score = score
	r.MaxCombo = maxCombo
	r.PerfectCombo = perfect
	r.Mods = mods
	return nil
}

func decodeTimestampAndLength(c *Cursor, h *header) error {
	ts, err := c.ReadI64()
	if err != nil {
		return err
	}
	length, err := c.ReadI32()
	if err != nil {
		return err
	}
	h.replay.Timestamp = ts
	h.payloadLength = length
	return nil
}
