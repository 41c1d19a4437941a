// Package interfaces は bwrep コマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
	"github.com/shiroemons/go-bwrep/pkg/screp"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	Stat(name string) (FileInfo, error)
	ReadDir(dirname string) ([]DirEntry, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// Codec はリプレイのヘッダ解析とカラー書き換えのインターフェース
type Codec interface {
	Parse(buf []byte) (*screp.Header, error)
	RewriteColours(buf []byte) ([]byte, error)
}

// ReplayFinder はディレクトリ以下のリプレイファイルを検索するインターフェースです
type ReplayFinder interface {
	Find(ctx context.Context, root string) ([]models.Folder, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
	Warnf(format string, a ...any)
}
