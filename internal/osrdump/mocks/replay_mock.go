package mocks

import (
	"errors"
	"sync"

	"github.com/shiroemons/go-osrparse/pkg/osr"
)

// MockReplayFinder はReplayFinderのモック実装です
type MockReplayFinder struct {
	FoundFiles []string
	Error      error
}

// Find はモック実装です
func (m *MockReplayFinder) Find() ([]string, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.FoundFiles, nil
}

// MockDecoder はReplayDecoderのモック実装です。
// 入力バイト列を文字列にしたキーで Replays を引きます。
type MockDecoder struct {
	mu      sync.Mutex
	Replays map[string]*osr.Replay
	Errors  map[string]error
	Calls   int
}

// NewMockDecoder は新しいMockDecoderを作成します
func NewMockDecoder() *MockDecoder {
	return &MockDecoder{
		Replays: make(map[string]*osr.Replay),
		Errors:  make(map[string]error),
	}
}

// Decode はモック実装です
func (m *MockDecoder) Decode(data []byte) (*osr.Replay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	key := string(data)
	if err, ok := m.Errors[key]; ok {
		return nil, err
	}
	if replay, ok := m.Replays[key]; ok {
		return replay, nil
	}
	return nil, errors.New("unexpected replay data")
}
