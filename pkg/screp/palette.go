package screp

import (
	"encoding/binary"
	"math"
)

// パレット名
const (
	Red    = "red"
	Blue   = "blue"
	Teal   = "teal"
	Purple = "purple"
	Orange = "orange"
	Brown  = "brown"
	White  = "white"
	Yellow = "yellow"
)

// ColourRecordSize はカラーレコード1件 (float32 RGBA) のバイト数
const ColourRecordSize = 16

// Palette はパレット名から16バイトのカラーレコードへの対応表
var Palette = map[string][ColourRecordSize]byte{
	Red:    rgba(244, 4, 4),
	Blue:   rgba(12, 72, 204),
	Teal:   rgba(44, 180, 148),
	Purple: rgba(136, 64, 156),
	Orange: rgba(248, 140, 20),
	Brown:  rgba(112, 48, 20),
	White:  rgba(204, 224, 208),
	Yellow: rgba(252, 252, 56),
}

// 空きスロットと、プレイヤーの並び順の偶数・奇数に使う色
const (
	defaultColour = Yellow
	evenColour    = Blue
	oddColour     = Orange
)

// rgba は 0-255 の RGB を不透明な float32 RGBA レコードにします
func rgba(r, g, b uint8) [ColourRecordSize]byte {
	var rec [ColourRecordSize]byte
	for i, v := range []float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1} {
		binary.LittleEndian.PutUint32(rec[i*4:], math.Float32bits(v))
	}
	return rec
}

// ColourRGBA はカラーレコードを RGBA の float32 値に変換します
func ColourRGBA(rec []byte) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(rec[i*4:]))
	}
	return out
}
