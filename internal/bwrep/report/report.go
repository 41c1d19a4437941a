// Package report はリプレイの解析結果を text / json / yaml で出力します
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
	"github.com/shiroemons/go-bwrep/pkg/screp"
)

// ErrUnknownFormat は未対応の出力形式が指定された場合のエラー
var ErrUnknownFormat = errors.New("未対応の出力形式です")

// Renderer は出力形式ごとの書き出しを行います
type Renderer struct {
	w      io.Writer
	format string
	all    bool
}

// New は新しいRendererを作成します。all が true の場合はフォルダの集計行も出力します
func New(w io.Writer, format string, all bool) *Renderer {
	return &Renderer{w: w, format: format, all: all}
}

// Batch はバッチ処理の結果を出力します
func (r *Renderer) Batch(rep *models.Report) error {
	switch r.format {
	case config.FormatText, "":
		return r.batchText(rep)
	case config.FormatJSON:
		return r.encodeJSON(rep)
	case config.FormatYAML:
		return r.encodeYAML(rep)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, r.format)
}

// Results は個別ファイルの解析結果を出力します
func (r *Renderer) Results(results []models.FileResult) error {
	switch r.format {
	case config.FormatText, "":
		return r.resultsText(results)
	case config.FormatJSON:
		return r.encodeJSON(results)
	case config.FormatYAML:
		return r.encodeYAML(results)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, r.format)
}

// Line はバッチ出力の1行 "path: H:MM:SS {A, B}" を返します
func Line(path string, h *screp.Header) string {
	return fmt.Sprintf("%s: %s {%s}", path, h.ElapsedFormatted, strings.Join(h.PlayerNames(), ", "))
}

// SummaryLine はフォルダ集計の1行を返します
func SummaryLine(s models.FolderSummary) string {
	return fmt.Sprintf("%s: %d games, %s {%s}", s.Path, s.SeriesLength, s.Duration, strings.Join(s.Players, ", "))
}

func (r *Renderer) batchText(rep *models.Report) error {
	for _, folder := range rep.Folders {
		for _, res := range folder.Files {
			if res.Skipped() {
				continue
			}
			if _, err := fmt.Fprintln(r.w, Line(res.Path, res.Header)); err != nil {
				return err
			}
		}
		if r.all && folder.Summary.SeriesLength > 0 {
			if _, err := fmt.Fprintln(r.w, SummaryLine(folder.Summary)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) resultsText(results []models.FileResult) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		if res.Skipped() {
			fmt.Fprintf(r.w, "%s: skipped (%s)\n", res.Path, res.Error)
			continue
		}
		if err := r.headerText(res.Path, res.Header); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) headerText(path string, h *screp.Header) error {
	fmt.Fprintf(r.w, "%s\n", path)
	fmt.Fprintf(r.w, "  Map:      %s\n", h.MapName)
	fmt.Fprintf(r.w, "  Duration: %s (%d frames)\n", h.ElapsedFormatted, h.Frames)
	fmt.Fprintf(r.w, "  Started:  %s\n", h.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.w, "  Players:\n")

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, p := range h.Players {
		fmt.Fprintf(tw, "    #%d\t%s\t%s\t%s\tteam %d\n", p.SlotID, p.Name, screp.RaceName(p.Race), screp.TypeName(p.Type), p.Team)
	}
	return tw.Flush()
}

func (r *Renderer) encodeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
