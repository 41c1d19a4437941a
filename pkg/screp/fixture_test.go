package screp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/shiroemons/go-bwrep/pkg/deflate"
)

// testWindowSize は実際のリプレイの伸長後ヘッダサイズ
const testWindowSize = 633

type testPlayer struct {
	index    int
	slotID   uint16
	playerID uint8
	typ      uint8
	race     uint8
	team     uint8
	name     []byte
}

// testReplay はテスト用のリプレイバッファを組み立てます
type testReplay struct {
	signature      string
	frames         uint32
	startTime      uint32
	mapName        []byte
	layout         uint16
	players        []testPlayer
	colourIDs      []uint32
	rawHeader      bool
	windowSize     int
	colours        []byte // 伸長済みカラーデータ (nil なら 12*16 バイトのゼロ)
	colourPayload  []byte // 圧縮済みデータを直接指定する場合
	noColourChunk  bool
	extraMarker    bool
	compressedSize uint32 // 0 以外ならチャンクの圧縮長フィールドを上書き
}

func (r testReplay) window() []byte {
	size := r.windowSize
	if size == 0 {
		size = testWindowSize
	}
	w := make([]byte, max(size, testWindowSize))

	binary.LittleEndian.PutUint32(w[1:], r.frames)
	binary.LittleEndian.PutUint32(w[8:], r.startTime)
	binary.LittleEndian.PutUint16(w[60:], r.layout)
	copy(w[97:97+26], r.mapName)

	for _, p := range r.players {
		slot := w[161+p.index*SlotSize:]
		binary.LittleEndian.PutUint16(slot[0:], p.slotID)
		slot[4] = p.playerID
		slot[8] = p.typ
		slot[9] = p.race
		slot[10] = p.team
		copy(slot[11:11+25], p.name)
	}
	for i, c := range r.colourIDs {
		binary.LittleEndian.PutUint32(w[593+i*4:], c)
	}

	return w[:size]
}

func (r testReplay) colourSection(t *testing.T) []byte {
	t.Helper()

	payload := r.colourPayload
	if payload == nil {
		colours := r.colours
		if colours == nil {
			colours = make([]byte, SlotCount*ColourRecordSize)
		}
		var err error
		payload, err = deflate.Compress(colours)
		if err != nil {
			t.Fatalf("compress colours: %v", err)
		}
	}

	clen := uint32(len(payload))
	if r.compressedSize != 0 {
		clen = r.compressedSize
	}

	var sec bytes.Buffer
	sec.WriteString(ColourMarker)
	binary.Write(&sec, binary.LittleEndian, uint32(12+len(payload)))
	binary.Write(&sec, binary.LittleEndian, uint32(0x12345678))
	binary.Write(&sec, binary.LittleEndian, uint32(1))
	binary.Write(&sec, binary.LittleEndian, clen)
	sec.Write(payload)
	return sec.Bytes()
}

func (r testReplay) build(t *testing.T) []byte {
	t.Helper()

	sig := r.signature
	if sig == "" {
		sig = Signature
	}

	window := r.window()
	region := window
	if !r.rawHeader {
		var err error
		region, err = deflate.Compress(window)
		if err != nil {
			t.Fatalf("compress header: %v", err)
		}
	}

	prefix := make([]byte, HeaderOffset)
	copy(prefix[12:16], sig)
	binary.LittleEndian.PutUint32(prefix[28:], uint32(len(region)))

	var buf bytes.Buffer
	buf.Write(prefix)
	buf.Write(region)
	if r.rawHeader {
		// 生のヘッダは末尾までがウィンドウになるのでカラーチャンクは付けない
		return buf.Bytes()
	}
	buf.Write(bytes.Repeat([]byte{0xAA}, 64))
	if !r.noColourChunk {
		buf.Write(r.colourSection(t))
	}
	buf.Write(bytes.Repeat([]byte{0xBB}, 16))
	if r.extraMarker {
		buf.WriteString(ColourMarker)
	}
	return buf.Bytes()
}
