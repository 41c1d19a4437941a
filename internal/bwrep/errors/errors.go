// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"

	"github.com/shiroemons/go-bwrep/pkg/screp"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrNoReplaysFound はリプレイファイルが1つも見つからない場合のエラー
	ErrNoReplaysFound = errors.New("リプレイファイルが見つかりません")
)

// ReplayError はリプレイファイル単位のエラー
type ReplayError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ReplayError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// NewReplayError は新しいReplayErrorを作成します
func NewReplayError(op, path string, err error) *ReplayError {
	return &ReplayError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsSkippable はバッチ処理でファイルをスキップして続行できるエラーかを判定します
func IsSkippable(err error) bool {
	return errors.Is(err, screp.ErrUnsupportedVersion) ||
		errors.Is(err, screp.ErrCorruptData) ||
		errors.Is(err, screp.ErrMalformedColourSection) ||
		errors.Is(err, screp.ErrCorruptColourSection) ||
		errors.Is(err, screp.ErrOutOfBounds)
}
