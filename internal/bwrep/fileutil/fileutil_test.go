package fileutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shiroemons/go-bwrep/internal/bwrep/mocks"
	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
)

func TestIsReplayFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"game.rep", true},
		{"GAME.REP", true},
		{"game.Rep", true},
		{"game.rep.bak", false},
		{"rep", false},
		{"game.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReplayFile(tt.name); got != tt.want {
				t.Errorf("IsReplayFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"通常のファイル", "game.rep", "game_recoloured.rep"},
		{"ディレクトリ付き", filepath.Join("a", "b", "final.rep"), filepath.Join("a", "b", "final_recoloured.rep")},
		{"大文字の拡張子", "GAME.REP", "GAME_recoloured.REP"},
		{"拡張子なし", "game", "game_recoloured.rep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateOutputFilename(tt.input); got != tt.want {
				t.Errorf("GenerateOutputFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.rep")

	if err := WriteFileAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	// 一時ファイルが残っていないこと
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("ディレクトリのエントリ数 = %d, want 1", len(entries))
	}
}

func TestWriteFileAtomic_DirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteFileAtomic(filepath.Join(blocker, "out.rep"), []byte("data"), 0644)
	if !errors.Is(err, ErrCreateDirectory) {
		t.Errorf("error = %v, want %v", err, ErrCreateDirectory)
	}
}

func TestReplayFinderWithFS_Find(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockFileSystem)
		root      string
		want      []models.Folder
		wantError error
	}{
		{
			name: "ディレクトリごとに名前順",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.AddFile("/replays/b.rep", nil)
				fs.AddFile("/replays/a.REP", nil)
				fs.AddFile("/replays/notes.txt", nil)
				fs.AddFile("/replays/series1/g2.rep", nil)
				fs.AddFile("/replays/series1/g1.rep", nil)
				fs.AddFile("/replays/empty/readme.md", nil)
			},
			root: "/replays",
			want: []models.Folder{
				{Path: "/replays", Replays: []string{"/replays/a.REP", "/replays/b.rep"}},
				{Path: "/replays/series1", Replays: []string{"/replays/series1/g1.rep", "/replays/series1/g2.rep"}},
			},
		},
		{
			name: "リプレイが1つもない",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.AddFile("/replays/notes.txt", nil)
			},
			root: "/replays",
			want: nil,
		},
		{
			name:      "存在しないディレクトリ",
			setupMock: func(fs *mocks.MockFileSystem) {},
			root:      "/missing",
			wantError: ErrReadDirectory,
		},
		{
			name: "ファイルを指定",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.AddFile("/replays/a.rep", nil)
			},
			root:      "/replays/a.rep",
			wantError: ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystem()
			tt.setupMock(fs)

			got, err := NewReplayFinderWithFS(fs).Find(context.Background(), tt.root)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("Find() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReplayFinderWithFS_Find_Cancelled(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.AddFile("/replays/a.rep", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReplayFinderWithFS(fs).Find(ctx, "/replays")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Find() error = %v, want %v", err, context.Canceled)
	}
}
