package screp

// Player は1スロット分のプレイヤー情報を表します
type Player struct {
	Index    int     `json:"index" yaml:"index"` // スロット位置 (0-11)
	SlotID   uint16  `json:"slot_id" yaml:"slot_id"`
	PlayerID uint8   `json:"player_id" yaml:"player_id"`
	Type     uint8   `json:"type" yaml:"type"`
	Race     uint8   `json:"race" yaml:"race"`
	Team     uint8   `json:"team" yaml:"team"`
	Name     string  `json:"name" yaml:"name"`
	Colour   *uint32 `json:"colour,omitempty" yaml:"colour,omitempty"`
}

// DecodePlayers はスロット配列をプレイヤーごとに分割します。
// 名前のバイトの合計が0のスロット (空き・観戦者) は含まれません。
func DecodePlayers(slots []byte) []Player {
	players := make([]Player, 0, SlotCount)

	for i := 0; i < SlotCount; i++ {
		start := i * SlotSize
		if start+SlotSize > len(slots) {
			break
		}
		slot := slots[start : start+SlotSize]

		name, _ := fieldName.slice(slot, ErrCorruptData)
		if byteSum(name) == 0 {
			continue
		}

		p := Player{Index: i}
		for _, d := range slotDecoders {
			b, err := d.field.slice(slot, ErrCorruptData)
			if err != nil {
				continue
			}
			d.decode(&p, b)
		}
		players = append(players, p)
	}

	return players
}

func byteSum(b []byte) int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum
}

var raceNames = map[uint8]string{
	0: "Zerg",
	1: "Terran",
	2: "Protoss",
	6: "Random",
}

// RaceName は種族 ID の表示名を返します
func RaceName(race uint8) string {
	if name, ok := raceNames[race]; ok {
		return name
	}
	return "Unknown"
}

var typeNames = map[uint8]string{
	0: "Inactive",
	1: "Computer",
	2: "Human",
	3: "Rescue Passive",
	5: "Computer Controlled",
	6: "Open",
	7: "Neutral",
	8: "Closed",
}

// TypeName はプレイヤー種別の表示名を返します
func TypeName(typ uint8) string {
	if name, ok := typeNames[typ]; ok {
		return name
	}
	return "Unknown"
}
