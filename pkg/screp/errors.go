package screp

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion はコンテナのバージョンが未対応の場合のエラー
	ErrUnsupportedVersion = errors.New("screp: unsupported replay version")

	// ErrCorruptData はヘッダの伸長に失敗したか、必要なフィールドが足りない場合のエラー
	ErrCorruptData = errors.New("screp: corrupt replay data")

	// ErrMalformedColourSection はカラーセクションのマーカーが無いか重複している場合のエラー
	ErrMalformedColourSection = errors.New("screp: malformed colour section")

	// ErrOutOfBounds は計算したオフセットがバッファの範囲外の場合のエラー
	ErrOutOfBounds = errors.New("screp: offset out of bounds")

	// ErrCorruptColourSection はカラーセクションの伸長・圧縮に失敗した場合のエラー
	ErrCorruptColourSection = errors.New("screp: corrupt colour section")
)

// FieldError は固定オフセットのフィールドを読み書きできなかった場合のエラー
type FieldError struct {
	Field  string // フィールド名
	Offset int    // 開始オフセット
	Length int    // フィールド長
	Size   int    // 対象バッファのサイズ
	Err    error  // 元のエラー (センチネル)
}

// Error はエラーメッセージを返します
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s [%d:%d] exceeds buffer of %d bytes",
		e.Err, e.Field, e.Offset, e.Offset+e.Length, e.Size)
}

// Unwrap は元のエラーを返します
func (e *FieldError) Unwrap() error {
	return e.Err
}
