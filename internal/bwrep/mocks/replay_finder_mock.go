package mocks

import (
	"context"

	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
)

// MockReplayFinder はReplayFinderのモック実装です
type MockReplayFinder struct {
	Folders []models.Folder
	Error   error
	Root    string
}

// Find はモック実装です
func (m *MockReplayFinder) Find(ctx context.Context, root string) ([]models.Folder, error) {
	m.Root = root
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Folders, nil
}
