// Package screp は StarCraft: Remastered 形式 (seRS) のリプレイファイルの
// ヘッダを読み込み、埋め込まれたプレイヤーカラーセクション (CCLR) を
// 書き換えるためのパッケージです。
//
// 全ての関数はメモリ上のバッファに対する純粋な関数で、引数のバッファを
// 変更しません。ファイルの読み書きは呼び出し側が行います。
//
// 基本的な使い方:
//
//	data, _ := os.ReadFile("game.rep")
//	header, err := screp.Parse(data)
//	if errors.Is(err, screp.ErrUnsupportedVersion) {
//	    // 古いリプレイはスキップ
//	}
//	fmt.Println(header.ElapsedFormatted, header.MapName)
//
//	rewritten, err := screp.RewriteColours(data)
package screp

import "time"

const (
	// Signature はサポートするコンテナ形式 (1.21 以降) の識別子
	Signature = "seRS"

	// FrameDuration は1フレームあたりの時間 (42ms 固定)
	FrameDuration = 42 * time.Millisecond

	// HeaderOffset はヘッダ領域の開始位置
	HeaderOffset = 32

	// CompressedHeaderSize は圧縮ヘッダとして伸長するバイト数
	CompressedHeaderSize = 633

	// SlotCount はプレイヤースロット数 (プレイヤー8 + 観戦者4)
	SlotCount = 12

	// SlotSize は1スロットのバイト数
	SlotSize = 36

	// ColourSlots はカラー情報を持つスロット数
	ColourSlots = 8

	// MinWindowSize はヘッダウィンドウに必要な最小サイズ
	MinWindowSize = 161 + SlotCount*SlotSize

	// TopVsBottom はカラー書き換えを行わないレイアウトの番兵値
	TopVsBottom = 15
)

// Parse はリプレイのヘッダを解析します。
// バージョンが異なる場合は ErrUnsupportedVersion を返し、それ以上は読み込みません。
func Parse(buf []byte) (*Header, error) {
	if err := CheckSignature(buf); err != nil {
		return nil, err
	}

	window, compressed, err := HeaderWindow(buf)
	if err != nil {
		return nil, err
	}

	header, err := DecodeHeader(window)
	if err != nil {
		return nil, err
	}
	header.Compressed = compressed

	if v, err := fieldRawHeaderLength.uint32(buf, ErrCorruptData); err == nil {
		header.RawHeaderLength = v
	}

	return header, nil
}
