package mocks

import (
	"sync"

	"github.com/shiroemons/go-bwrep/pkg/screp"
)

// MockCodec はCodecのモック実装です。
// 入力バッファの内容 (文字列) をキーにして結果を返します。
type MockCodec struct {
	mu        sync.Mutex
	Headers   map[string]*screp.Header
	Errors    map[string]error
	Rewritten []byte
	Error     error
	CallCount int
}

// NewMockCodec は新しいMockCodecを作成します
func NewMockCodec() *MockCodec {
	return &MockCodec{
		Headers: make(map[string]*screp.Header),
		Errors:  make(map[string]error),
	}
}

// Parse はモック実装です
func (m *MockCodec) Parse(buf []byte) (*screp.Header, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	if err, ok := m.Errors[string(buf)]; ok {
		return nil, err
	}
	if h, ok := m.Headers[string(buf)]; ok {
		return h, nil
	}
	return nil, screp.ErrUnsupportedVersion
}

// RewriteColours はモック実装です
func (m *MockCodec) RewriteColours(buf []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Rewritten, nil
}
