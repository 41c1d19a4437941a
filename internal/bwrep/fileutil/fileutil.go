// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shiroemons/go-bwrep/internal/bwrep/interfaces"
	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
)

// ReplayExt はリプレイファイルの拡張子
const ReplayExt = ".rep"

// IsReplayFile はファイル名がリプレイファイルか判定します (大文字小文字は区別しない)
func IsReplayFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ReplayExt)
}

// GenerateOutputFilename は入力ファイル名から書き換え後のファイル名を生成します
func GenerateOutputFilename(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ReplayExt
	}
	return filepath.Join(dir, fmt.Sprintf("%s_recoloured%s", strings.TrimSuffix(base, ext), ext))
}

// WriteFileAtomic は同じディレクトリの一時ファイルに書き込んでからリネームします。
// 書き込みに失敗しても既存のファイルは変更されません。
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// ReplayFinderWithFS はディレクトリ以下のリプレイファイルを検索します（FileSystemを使用）
type ReplayFinderWithFS struct {
	fs interfaces.FileSystem
}

// NewReplayFinder はOSファイルシステムを使うReplayFinderWithFSを作成します
func NewReplayFinder() *ReplayFinderWithFS {
	return NewReplayFinderWithFS(NewOSFileSystem())
}

// NewReplayFinderWithFS は新しいReplayFinderWithFSを作成します
func NewReplayFinderWithFS(fs interfaces.FileSystem) *ReplayFinderWithFS {
	return &ReplayFinderWithFS{fs: fs}
}

// Find は root 以下を再帰的に検索し、リプレイを含むディレクトリを名前順に返します
func (f *ReplayFinderWithFS) Find(ctx context.Context, root string) ([]models.Folder, error) {
	info, err := f.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var folders []models.Folder
	if err := f.walk(ctx, root, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (f *ReplayFinderWithFS) walk(ctx context.Context, dir string, folders *[]models.Folder) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}
	slices.SortFunc(entries, func(a, b interfaces.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	folder := models.Folder{Path: dir}
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, name))
			continue
		}
		if IsReplayFile(name) {
			folder.Replays = append(folder.Replays, filepath.Join(dir, name))
		}
	}

	if len(folder.Replays) > 0 {
		*folders = append(*folders, folder)
	}

	for _, sub := range subdirs {
		if err := f.walk(ctx, sub, folders); err != nil {
			return err
		}
	}
	return nil
}
