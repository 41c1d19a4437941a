package screp

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// 古いクライアントで作られたリプレイは UTF-8 ではなく CP949 か Windows-1252
var legacyEncodings = []encoding.Encoding{
	korean.EUCKR,
	charmap.Windows1252,
}

// decodeName は NUL 埋めされたプレイヤー名をデコードします
func decodeName(b []byte) string {
	return DecodeText(bytes.Trim(b, "\x00"))
}

// decodeMapName は空白と NUL で埋められたマップ名をデコードします
func decodeMapName(b []byte) string {
	return DecodeText(bytes.Trim(b, "\x00 \t\r\n\v\f"))
}

// DecodeText はリプレイ内の文字列を UTF-8 に変換します。
// UTF-8 として不正なバイト列はレガシーエンコーディングとして解釈します。
func DecodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	for _, enc := range legacyEncodings {
		out, _, err := transform.Bytes(enc.NewDecoder(), b)
		if err == nil && utf8.Valid(out) && !bytes.ContainsRune(out, utf8.RuneError) {
			return string(out)
		}
	}
	return string(bytes.ToValidUTF8(b, []byte("�")))
}
