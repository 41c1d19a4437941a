// Package models は bwrep コマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-bwrep/pkg/screp"

// Folder はリプレイファイルを含むディレクトリを表します
type Folder struct {
	Path    string
	Replays []string // フルパス (名前順)
}

// FileResult は1ファイルの解析結果を表します
type FileResult struct {
	Path   string        `json:"path" yaml:"path"`
	Header *screp.Header `json:"header,omitempty" yaml:"header,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Skipped は解析できずにスキップされたかを返します
func (r FileResult) Skipped() bool {
	return r.Header == nil
}

// FolderSummary はフォルダ内のリプレイ (シリーズ) の集計です
type FolderSummary struct {
	Path         string   `json:"path" yaml:"path"`
	SeriesLength int      `json:"series_length" yaml:"series_length"`
	TotalFrames  uint64   `json:"total_frames" yaml:"total_frames"`
	Duration     string   `json:"duration" yaml:"duration"`
	Players      []string `json:"players" yaml:"players"`
}

// FolderReport はフォルダ単位の解析結果です
type FolderReport struct {
	Summary FolderSummary `json:"summary" yaml:"summary"`
	Files   []FileResult  `json:"files" yaml:"files"`
}

// Report はバッチ処理全体の結果です
type Report struct {
	Root    string         `json:"root" yaml:"root"`
	Folders []FolderReport `json:"folders" yaml:"folders"`
	Parsed  int            `json:"parsed" yaml:"parsed"`
	Skipped int            `json:"skipped" yaml:"skipped"`
}
