package screp

import "encoding/binary"

// field は固定レイアウト内の1フィールド (オフセットと長さ) を表します
type field struct {
	name   string
	offset int
	length int
}

// コンテナ先頭からのオフセット
var (
	fieldSignature       = field{"version signature", 12, 4}
	fieldRawHeaderLength = field{"raw header length", 28, 4}
)

// ヘッダウィンドウ内のオフセット
var (
	fieldFrames        = field{"frame count", 1, 4}
	fieldStartTime     = field{"start time", 8, 4}
	fieldLayout        = field{"layout sentinel", 60, 2}
	fieldMapName       = field{"map name", 97, 26}
	fieldSlots         = field{"player slots", 161, SlotCount * SlotSize}
	fieldPlayerColours = field{"player colours", 161 + SlotCount*SlotSize, ColourSlots * 4}
)

// スロット内のオフセット
var (
	fieldSlotID     = field{"slot id", 0, 2}
	fieldPlayerID   = field{"player id", 4, 1}
	fieldPlayerType = field{"player type", 8, 1}
	fieldRace       = field{"race", 9, 1}
	fieldTeam       = field{"team", 10, 1}
	fieldName       = field{"player name", 11, 25}
)

// カラーチャンクのマーカーからの相対オフセット
var (
	fieldSectionLength    = field{"section length", 4, 4}
	fieldChecksum         = field{"checksum", 8, 4}
	fieldChunkCount       = field{"chunk count", 12, 4}
	fieldCompressedLength = field{"compressed length", 16, 4}
)

// colourPayloadOffset はマーカーから圧縮データまでのオフセット
const colourPayloadOffset = 20

// at は base だけずらしたフィールドを返します
func (f field) at(base int) field {
	return field{name: f.name, offset: base + f.offset, length: f.length}
}

// slice はバッファからフィールドの範囲を切り出します。
// 範囲外の場合は sentinel をラップした *FieldError を返します。
func (f field) slice(buf []byte, sentinel error) ([]byte, error) {
	end := f.offset + f.length
	if f.offset < 0 || f.length < 0 || end > len(buf) {
		return nil, &FieldError{
			Field:  f.name,
			Offset: f.offset,
			Length: f.length,
			Size:   len(buf),
			Err:    sentinel,
		}
	}
	return buf[f.offset:end:end], nil
}

func (f field) uint32(buf []byte, sentinel error) (uint32, error) {
	b, err := f.slice(buf, sentinel)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (f field) uint16(buf []byte, sentinel error) (uint16, error) {
	b, err := f.slice(buf, sentinel)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (f field) putUint32(buf []byte, v uint32) error {
	b, err := f.slice(buf, ErrOutOfBounds)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

// headerDecoders はヘッダウィンドウのフィールドとデコーダの対応表
var headerDecoders = []struct {
	field  field
	decode func(h *Header, b []byte)
}{
	{fieldFrames, func(h *Header, b []byte) {
		h.Frames = binary.LittleEndian.Uint32(b)
		h.ElapsedSeconds = ElapsedSeconds(h.Frames)
		h.ElapsedFormatted = FormatElapsed(h.Frames)
	}},
	{fieldStartTime, func(h *Header, b []byte) {
		h.StartTime = unixLocal(binary.LittleEndian.Uint32(b))
	}},
	{fieldLayout, func(h *Header, b []byte) {
		h.LayoutSentinel = binary.LittleEndian.Uint16(b)
	}},
	{fieldMapName, func(h *Header, b []byte) {
		h.MapName = decodeMapName(b)
	}},
	{fieldSlots, func(h *Header, b []byte) {
		h.Players = DecodePlayers(b)
	}},
}

// slotDecoders はプレイヤースロットのフィールドとデコーダの対応表
var slotDecoders = []struct {
	field  field
	decode func(p *Player, b []byte)
}{
	{fieldSlotID, func(p *Player, b []byte) { p.SlotID = binary.LittleEndian.Uint16(b) }},
	{fieldPlayerID, func(p *Player, b []byte) { p.PlayerID = b[0] }},
	{fieldPlayerType, func(p *Player, b []byte) { p.Type = b[0] }},
	{fieldRace, func(p *Player, b []byte) { p.Race = b[0] }},
	{fieldTeam, func(p *Player, b []byte) { p.Team = b[0] }},
	{fieldName, func(p *Player, b []byte) { p.Name = decodeName(b) }},
}
