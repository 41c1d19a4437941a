package app

import "github.com/shiroemons/go-bwrep/pkg/screp"

// ScrepCodec は screp パッケージを使う Codec の実装
type ScrepCodec struct{}

// Parse はリプレイのヘッダを解析します
func (ScrepCodec) Parse(buf []byte) (*screp.Header, error) {
	return screp.Parse(buf)
}

// RewriteColours はカラーセクションを書き換えたコピーを返します
func (ScrepCodec) RewriteColours(buf []byte) ([]byte, error) {
	return screp.RewriteColours(buf)
}
