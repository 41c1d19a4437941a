// Package deflate はリプレイコンテナが使う zlib (DEFLATE) ストリームの
// 伸長と圧縮を行います。
package deflate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// zlib ヘッダの1バイト目 (CMF: DEFLATE, 32K ウィンドウ)
const CMF = 0x78

// ErrNotCompressed は入力が zlib ヘッダで始まっていない場合のエラー
var ErrNotCompressed = errors.New("deflate: missing zlib header")

// knownFLG はエンコーダが出力する既知の FLG バイト
var knownFLG = map[byte]bool{
	0x9c: true, // デフォルト
	0x01: true, // 最速
	0x5e: true, // 低圧縮
	0xda: true, // 最高圧縮
}

// IsCompressed は data が zlib ストリームで始まっているかを判定します
func IsCompressed(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	return data[0] == CMF && knownFLG[data[1]&0xFF]
}

// Decompress は zlib ストリームを伸長します。
// ストリーム終端より後ろのバイトは無視されます。
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != CMF {
		return nil, ErrNotCompressed
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deflate: open stream: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate: inflate: %w", err)
	}
	return out, nil
}

// Compress は data をデフォルトの圧縮レベルで zlib 圧縮します
func Compress(data []byte) ([]byte, error) {
	return CompressLevel(data, zlib.DefaultCompression)
}

// CompressLevel は指定した圧縮レベルで zlib 圧縮します
func CompressLevel(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("deflate: level %d: %w", level, err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("deflate: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate: close: %w", err)
	}
	return buf.Bytes(), nil
}
