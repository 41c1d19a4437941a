package screp

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiroemons/go-bwrep/pkg/deflate"
)

func colourReplay() testReplay {
	return testReplay{
		frames:  2381,
		mapName: []byte("Match Point"),
		layout:  2,
		players: []testPlayer{
			{index: 0, slotID: 0, name: []byte("Rain")},
			{index: 3, slotID: 3, name: []byte("Sea")},
		},
	}
}

func TestLocateColourChunk(t *testing.T) {
	r := colourReplay()
	buf := r.build(t)

	chunk, err := LocateColourChunk(buf)
	require.NoError(t, err)

	m := bytes.Index(buf, []byte(ColourMarker))
	assert.Equal(t, m, chunk.MarkerOffset)
	assert.Equal(t, m+4, chunk.SectionLengthOffset)
	assert.Equal(t, m+8, chunk.ChecksumOffset)
	assert.Equal(t, m+16, chunk.CompressedLengthOffset)
	assert.Equal(t, m+20, chunk.CompressedOffset)
	assert.Equal(t, uint32(1), chunk.ChunkCount)
	assert.Equal(t, uint32(0x12345678), chunk.Checksum)
	assert.Equal(t, chunk.CompressedLength+12, chunk.SectionLength)

	colours, err := chunk.Colours(buf)
	require.NoError(t, err)
	assert.Len(t, colours, SlotCount*ColourRecordSize)
}

func TestLocateColourChunk_Errors(t *testing.T) {
	tests := []struct {
		name    string
		replay  func() testReplay
		wantErr error
	}{
		{
			name: "マーカーなし",
			replay: func() testReplay {
				r := colourReplay()
				r.noColourChunk = true
				return r
			},
			wantErr: ErrMalformedColourSection,
		},
		{
			name: "マーカーが重複",
			replay: func() testReplay {
				r := colourReplay()
				r.extraMarker = true
				return r
			},
			wantErr: ErrMalformedColourSection,
		},
		{
			name: "圧縮長がバッファを超える",
			replay: func() testReplay {
				r := colourReplay()
				r.compressedSize = 1 << 20
				return r
			},
			wantErr: ErrOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.replay().build(t)

			_, err := LocateColourChunk(buf)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = RewriteColours(buf)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocateColourChunk_TruncatedFields(t *testing.T) {
	// マーカーの直後でバッファが終わっている
	buf := append(bytes.Repeat([]byte{0}, 10), ColourMarker...)
	buf = append(buf, 0x01, 0x00)

	_, err := LocateColourChunk(buf)
	require.ErrorIs(t, err, ErrOutOfBounds)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "section length", fe.Field)
}

func TestRewriteColours_Palette(t *testing.T) {
	buf := colourReplay().build(t)

	out, err := RewriteColours(buf)
	require.NoError(t, err)

	chunk, err := LocateColourChunk(out)
	require.NoError(t, err)
	colours, err := chunk.Colours(out)
	require.NoError(t, err)

	record := func(slot int) []byte {
		return colours[slot*ColourRecordSize : (slot+1)*ColourRecordSize]
	}
	blue, orange, yellow := Palette[Blue], Palette[Orange], Palette[Yellow]

	assert.Equal(t, blue[:], record(0))
	assert.Equal(t, orange[:], record(3))
	for slot := 0; slot < SlotCount; slot++ {
		if slot == 0 || slot == 3 {
			continue
		}
		assert.Equal(t, yellow[:], record(slot), "slot %d", slot)
	}
}

func TestRewriteColours_ChecksumInvariant(t *testing.T) {
	out, err := RewriteColours(colourReplay().build(t))
	require.NoError(t, err)

	chunk, err := LocateColourChunk(out)
	require.NoError(t, err)
	colours, err := chunk.Colours(out)
	require.NoError(t, err)

	sum := uint64(crc32.ChecksumIEEE(colours)) + uint64(chunk.Checksum)
	assert.Equal(t, uint64(math.MaxUint32), sum)
	assert.Equal(t, ColourChecksum(colours), chunk.Checksum)
}

func TestRewriteColours_LengthConsistency(t *testing.T) {
	tests := []struct {
		name    string
		payload func(t *testing.T) []byte
	}{
		{
			name: "圧縮率の低いペイロード",
			payload: func(t *testing.T) []byte {
				data := make([]byte, SlotCount*ColourRecordSize)
				for i := range data {
					data[i] = byte(i * 37)
				}
				p, err := deflate.CompressLevel(data, 0)
				require.NoError(t, err)
				return p
			},
		},
		{
			name: "デフォルトのペイロード",
			payload: func(t *testing.T) []byte {
				p, err := deflate.Compress(make([]byte, SlotCount*ColourRecordSize))
				require.NoError(t, err)
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := colourReplay()
			r.colourPayload = tt.payload(t)
			buf := r.build(t)

			before, err := LocateColourChunk(buf)
			require.NoError(t, err)

			out, err := RewriteColours(buf)
			require.NoError(t, err)

			after, err := LocateColourChunk(out)
			require.NoError(t, err)

			delta := int(after.CompressedLength) - int(before.CompressedLength)
			assert.Equal(t, int(before.SectionLength)+delta, int(after.SectionLength))
			assert.Equal(t, len(buf)+delta, len(out))
			assert.Equal(t, before.MarkerOffset, after.MarkerOffset)

			// 前後のバイトはそのまま
			assert.Equal(t, buf[:before.SectionLengthOffset], out[:after.SectionLengthOffset])
			tail := int(before.CompressedLength) + before.CompressedOffset
			assert.Equal(t, buf[tail:], out[after.CompressedOffset+int(after.CompressedLength):])
		})
	}
}

func TestRewriteColours_TopVsBottom(t *testing.T) {
	r := colourReplay()
	r.layout = TopVsBottom
	buf := r.build(t)

	out, err := RewriteColours(buf)
	require.NoError(t, err)
	assert.Equal(t, buf, out)

	// 返り値は別のバッファ
	out[0] ^= 0xFF
	assert.NotEqual(t, buf[0], out[0])
}

func TestRewriteColours_DoesNotModifyInput(t *testing.T) {
	buf := colourReplay().build(t)
	orig := bytes.Clone(buf)

	_, err := RewriteColours(buf)
	require.NoError(t, err)
	assert.Equal(t, orig, buf)
}

func TestRewriteColours_Failures(t *testing.T) {
	tests := []struct {
		name    string
		replay  func() testReplay
		wantErr error
	}{
		{
			name: "未対応バージョン",
			replay: func() testReplay {
				r := colourReplay()
				r.signature = "reRS"
				return r
			},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "壊れたカラーデータ",
			replay: func() testReplay {
				r := colourReplay()
				r.colourPayload = []byte{0x78, 0x9c, 0xFF, 0xFF, 0xFF, 0xFF}
				return r
			},
			wantErr: ErrCorruptColourSection,
		},
		{
			name: "zlib ヘッダなし",
			replay: func() testReplay {
				r := colourReplay()
				r.colourPayload = []byte{0x01, 0x02, 0x03}
				return r
			},
			wantErr: ErrCorruptColourSection,
		},
		{
			name: "カラーデータが12件に満たない",
			replay: func() testReplay {
				r := colourReplay()
				r.colours = make([]byte, 5*ColourRecordSize)
				return r
			},
			wantErr: ErrCorruptColourSection,
		},
		{
			name: "スロット ID が範囲外",
			replay: func() testReplay {
				r := colourReplay()
				r.players[1].slotID = SlotCount
				return r
			},
			wantErr: ErrOutOfBounds,
		},
		{
			name: "ヘッダウィンドウが短い",
			replay: func() testReplay {
				r := colourReplay()
				r.windowSize = MinWindowSize - 1
				return r
			},
			wantErr: ErrCorruptData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.replay().build(t)
			orig := bytes.Clone(buf)

			out, err := RewriteColours(buf)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
			assert.Equal(t, orig, buf)
		})
	}
}

func TestRewriteColours_ParityUsesOrderNotSlot(t *testing.T) {
	// スロット ID が偶数同士でも並び順で色が交互になる
	r := colourReplay()
	r.players = []testPlayer{
		{index: 0, slotID: 2, name: []byte("A")},
		{index: 1, slotID: 4, name: []byte("B")},
		{index: 2, slotID: 6, name: []byte("C")},
	}

	out, err := RewriteColours(r.build(t))
	require.NoError(t, err)

	chunk, err := LocateColourChunk(out)
	require.NoError(t, err)
	colours, err := chunk.Colours(out)
	require.NoError(t, err)

	blue, orange := Palette[Blue], Palette[Orange]
	assert.Equal(t, blue[:], colours[2*16:3*16])
	assert.Equal(t, orange[:], colours[4*16:5*16])
	assert.Equal(t, blue[:], colours[6*16:7*16])
}

func TestPalette(t *testing.T) {
	for name, rec := range Palette {
		c := ColourRGBA(rec[:])
		for i, v := range c {
			assert.True(t, v >= 0 && v <= 1, "%s channel %d = %v", name, i, v)
		}
		assert.Equal(t, float32(1), c[3], name)
	}

	blue := Palette[Blue]
	rgba := ColourRGBA(blue[:])
	assert.InDelta(t, 204.0/255, rgba[2], 1e-6)
	assert.Equal(t, math.Float32bits(rgba[0]), binary.LittleEndian.Uint32(blue[:4]))
}
