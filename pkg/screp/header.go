package screp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/shiroemons/go-bwrep/pkg/deflate"
)

// Header はリプレイヘッダの内容を表します
type Header struct {
	Frames           uint32    `json:"frames" yaml:"frames"`
	ElapsedSeconds   float64   `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	ElapsedFormatted string    `json:"elapsed" yaml:"elapsed"`
	StartTime        time.Time `json:"start_time" yaml:"start_time"`
	MapName          string    `json:"map_name" yaml:"map_name"`
	RawHeaderLength  uint32    `json:"raw_header_length" yaml:"raw_header_length"`
	Compressed       bool      `json:"compressed" yaml:"compressed"`
	LayoutSentinel   uint16    `json:"layout" yaml:"layout"`
	Players          []Player  `json:"players" yaml:"players"`
}

// PlayerNames はプレイヤー名をスロット順に返します
func (h *Header) PlayerNames() []string {
	names := make([]string, len(h.Players))
	for i, p := range h.Players {
		names[i] = p.Name
	}
	return names
}

// CheckSignature はバッファがサポートするバージョンか確認します
func CheckSignature(buf []byte) error {
	sig, err := fieldSignature.slice(buf, ErrUnsupportedVersion)
	if err != nil {
		return err
	}
	if !bytes.Equal(sig, []byte(Signature)) {
		return fmt.Errorf("%w: signature %q", ErrUnsupportedVersion, sig)
	}
	return nil
}

// HeaderWindow はヘッダ領域を取り出し、圧縮されていれば伸長します。
// compressed はヘッダ領域が zlib 圧縮されていたかを示します。
func HeaderWindow(buf []byte) (window []byte, compressed bool, err error) {
	if len(buf) < HeaderOffset {
		return nil, false, &FieldError{
			Field:  "header region",
			Offset: HeaderOffset,
			Size:   len(buf),
			Err:    ErrCorruptData,
		}
	}
	region := buf[HeaderOffset:]

	if !deflate.IsCompressed(region) {
		return region, false, nil
	}

	end := min(CompressedHeaderSize, len(region))
	window, err = deflate.Decompress(region[:end])
	if err != nil {
		return nil, true, fmt.Errorf("%w: header: %w", ErrCorruptData, err)
	}
	return window, true, nil
}

// DecodeHeader はヘッダウィンドウから各フィールドを読み込みます
func DecodeHeader(window []byte) (*Header, error) {
	if len(window) < MinWindowSize {
		return nil, &FieldError{
			Field:  "header window",
			Length: MinWindowSize,
			Size:   len(window),
			Err:    ErrCorruptData,
		}
	}

	h := &Header{}
	for _, d := range headerDecoders {
		b, err := d.field.slice(window, ErrCorruptData)
		if err != nil {
			return nil, err
		}
		d.decode(h, b)
	}

	// カラー ID はウィンドウに含まれている場合のみ
	if colours, err := fieldPlayerColours.slice(window, ErrCorruptData); err == nil {
		for i := range h.Players {
			p := &h.Players[i]
			if p.Index >= ColourSlots {
				continue
			}
			c := binary.LittleEndian.Uint32(colours[p.Index*4:])
			p.Colour = &c
		}
	}

	return h, nil
}

// ElapsedSeconds はフレーム数を経過秒数に変換します
func ElapsedSeconds(frames uint32) float64 {
	return float64(frames) * float64(FrameDuration/time.Millisecond) / 1000
}

// FormatElapsed はフレーム数を H:MM:SS 形式に変換します (秒未満は切り捨て)
func FormatElapsed(frames uint32) string {
	return FormatFrames(uint64(frames))
}

// FormatFrames は複数リプレイの合計フレーム数を H:MM:SS 形式に変換します
func FormatFrames(frames uint64) string {
	secs := int64(time.Duration(frames) * FrameDuration / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

func unixLocal(ts uint32) time.Time {
	return time.Unix(int64(ts), 0).Local()
}
