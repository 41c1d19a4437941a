package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shiroemons/go-bwrep/pkg/screp"
)

func TestReplayError(t *testing.T) {
	tests := []struct {
		name string
		err  *ReplayError
		want string
	}{
		{
			name: "パスあり",
			err:  NewReplayError("parse", "a/b.rep", screp.ErrCorruptData),
			want: "parse a/b.rep: screp: corrupt replay data",
		},
		{
			name: "パスなし",
			err:  NewReplayError("walk", "", ErrNoReplaysFound),
			want: "walk: リプレイファイルが見つかりません",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Error("Unwrap() should return the original error")
			}
		})
	}
}

func TestIsSkippable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"未対応バージョン", fmt.Errorf("wrap: %w", screp.ErrUnsupportedVersion), true},
		{"壊れたデータ", NewReplayError("parse", "x.rep", screp.ErrCorruptData), true},
		{"カラーセクション", screp.ErrMalformedColourSection, true},
		{"範囲外", screp.ErrOutOfBounds, true},
		{"その他", errors.New("permission denied"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSkippable(tt.err); got != tt.want {
				t.Errorf("IsSkippable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
