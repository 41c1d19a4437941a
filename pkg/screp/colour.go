package screp

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/shiroemons/go-bwrep/pkg/deflate"
)

// ColourMarker はカラーセクションの識別子
const ColourMarker = "CCLR"

// ColourChunk は外側のバッファ内で見つけたカラーセクションの位置を表します。
// オフセットは全てバッファ先頭からの位置です。
type ColourChunk struct {
	MarkerOffset           int
	SectionLengthOffset    int
	ChecksumOffset         int
	CompressedLengthOffset int
	CompressedOffset       int

	SectionLength    uint32
	Checksum         uint32
	ChunkCount       uint32 // 常に1 (検証はしない)
	CompressedLength uint32
}

// LocateColourChunk はカラーセクションのマーカーを探し、各フィールドを読み込みます。
// マーカーはバッファ内にちょうど1つ存在する必要があります。
func LocateColourChunk(buf []byte) (*ColourChunk, error) {
	marker := []byte(ColourMarker)
	switch n := bytes.Count(buf, marker); n {
	case 0:
		return nil, fmt.Errorf("%w: marker %q not found", ErrMalformedColourSection, ColourMarker)
	case 1:
	default:
		return nil, fmt.Errorf("%w: marker %q found %d times", ErrMalformedColourSection, ColourMarker, n)
	}

	m := bytes.Index(buf, marker)
	c := &ColourChunk{
		MarkerOffset:           m,
		SectionLengthOffset:    m + fieldSectionLength.offset,
		ChecksumOffset:         m + fieldChecksum.offset,
		CompressedLengthOffset: m + fieldCompressedLength.offset,
		CompressedOffset:       m + colourPayloadOffset,
	}

	reads := []struct {
		field field
		dst   *uint32
	}{
		{fieldSectionLength, &c.SectionLength},
		{fieldChecksum, &c.Checksum},
		{fieldChunkCount, &c.ChunkCount},
		{fieldCompressedLength, &c.CompressedLength},
	}
	for _, r := range reads {
		v, err := r.field.at(m).uint32(buf, ErrOutOfBounds)
		if err != nil {
			return nil, err
		}
		*r.dst = v
	}

	if _, err := c.Payload(buf); err != nil {
		return nil, err
	}
	return c, nil
}

// Payload は圧縮されたカラーデータの範囲を返します
func (c *ColourChunk) Payload(buf []byte) ([]byte, error) {
	if uint64(c.CompressedLength) > math.MaxInt32 {
		return nil, &FieldError{
			Field:  "colour payload",
			Offset: c.CompressedOffset,
			Length: math.MaxInt32,
			Size:   len(buf),
			Err:    ErrOutOfBounds,
		}
	}
	f := field{name: "colour payload", offset: c.CompressedOffset, length: int(c.CompressedLength)}
	return f.slice(buf, ErrOutOfBounds)
}

// Colours はカラーデータを伸長して返します
func (c *ColourChunk) Colours(buf []byte) ([]byte, error) {
	payload, err := c.Payload(buf)
	if err != nil {
		return nil, err
	}
	colours, err := deflate.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptColourSection, err)
	}
	return colours, nil
}

// ColourChecksum は伸長済みカラーデータのチェックサムを計算します。
// 正しいチャンクでは CRC32(data) + checksum == 0xFFFFFFFF が成り立ちます。
func ColourChecksum(data []byte) uint32 {
	return math.MaxUint32 - crc32.ChecksumIEEE(data)
}

// RewriteColours はカラーセクションの全スロットの色を書き換えた新しいバッファを返します。
// プレイヤーは並び順の偶数番目が青、奇数番目がオレンジ、空きスロットは黄色になります。
// レイアウトの番兵値が TopVsBottom の場合は元と同じ内容のコピーを返します。
// 失敗した場合、引数のバッファは変更されず、部分的に書き換えたバッファも返しません。
func RewriteColours(buf []byte) ([]byte, error) {
	if err := CheckSignature(buf); err != nil {
		return nil, err
	}

	window, _, err := HeaderWindow(buf)
	if err != nil {
		return nil, err
	}
	header, err := DecodeHeader(window)
	if err != nil {
		return nil, err
	}

	// TODO: top vs bottom 用の書き換えは別の関数として実装する
	if header.LayoutSentinel == TopVsBottom {
		return bytes.Clone(buf), nil
	}

	chunk, err := LocateColourChunk(buf)
	if err != nil {
		return nil, err
	}

	colours, err := chunk.Colours(buf)
	if err != nil {
		return nil, err
	}
	if err := paintColours(colours, header.Players); err != nil {
		return nil, err
	}

	compressed, err := deflate.Compress(colours)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptColourSection, err)
	}

	delta := int64(len(compressed)) - int64(chunk.CompressedLength)
	sectionLength := int64(chunk.SectionLength) + delta
	if sectionLength < 0 || sectionLength > math.MaxUint32 {
		return nil, fmt.Errorf("%w: section length %d", ErrOutOfBounds, sectionLength)
	}

	out := splice(buf, chunk.CompressedOffset, int(chunk.CompressedLength), compressed)

	// パッチ対象は全て圧縮データより前にあるので、置き換え後もオフセットは変わらない
	patches := []struct {
		field field
		value uint32
	}{
		{fieldChecksum, ColourChecksum(colours)},
		{fieldCompressedLength, uint32(len(compressed))},
		{fieldSectionLength, uint32(sectionLength)},
	}
	for _, p := range patches {
		if err := p.field.at(chunk.MarkerOffset).putUint32(out, p.value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// paintColours は全スロットを既定色で埋め、プレイヤーのスロットを並び順に応じて塗ります
func paintColours(colours []byte, players []Player) error {
	size := SlotCount * ColourRecordSize
	if len(colours) < size {
		return fmt.Errorf("%w: colour data is %d bytes, want at least %d",
			ErrCorruptColourSection, len(colours), size)
	}

	def := Palette[defaultColour]
	for i := 0; i < SlotCount; i++ {
		copy(colours[i*ColourRecordSize:], def[:])
	}

	for pos, p := range players {
		name := evenColour
		if pos%2 == 1 {
			name = oddColour
		}
		rec := field{
			name:   fmt.Sprintf("colour record for slot %d", p.SlotID),
			offset: int(p.SlotID) * ColourRecordSize,
			length: ColourRecordSize,
		}
		dst, err := rec.slice(colours[:size], ErrOutOfBounds)
		if err != nil {
			return err
		}
		entry := Palette[name]
		copy(dst, entry[:])
	}
	return nil
}

// splice は buf の [offset, offset+n) を repl に置き換えた新しいバッファを返します
func splice(buf []byte, offset, n int, repl []byte) []byte {
	out := make([]byte, 0, len(buf)-n+len(repl))
	out = append(out, buf[:offset]...)
	out = append(out, repl...)
	out = append(out, buf[offset+n:]...)
	return out
}
