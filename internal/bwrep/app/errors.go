package app

import "errors"

var (
	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrWriteFile はファイルの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("ファイルの書き込みに失敗しました")

	// ErrFindReplays はリプレイファイルの検索に失敗した場合のエラー
	ErrFindReplays = errors.New("リプレイファイルの検索に失敗しました")

	// ErrRender は結果の出力に失敗した場合のエラー
	ErrRender = errors.New("結果の出力に失敗しました")

	// ErrParseFailed は解析できなかったファイルがある場合のエラー
	ErrParseFailed = errors.New("解析できなかったファイルがあります")

	// ErrSameFile は入力と出力が同じファイルの場合のエラー
	ErrSameFile = errors.New("入力ファイルと出力ファイルが同じです")
)
