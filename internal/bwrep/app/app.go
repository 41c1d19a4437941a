// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
	bwerrors "github.com/shiroemons/go-bwrep/internal/bwrep/errors"
	"github.com/shiroemons/go-bwrep/internal/bwrep/fileutil"
	"github.com/shiroemons/go-bwrep/internal/bwrep/interfaces"
	"github.com/shiroemons/go-bwrep/internal/bwrep/models"
	"github.com/shiroemons/go-bwrep/internal/bwrep/report"
	"github.com/shiroemons/go-bwrep/pkg/screp"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
	codec  interfaces.Codec
	finder interfaces.ReplayFinder
	out    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem   interfaces.FileSystem
	Codec        interfaces.Codec
	ReplayFinder interfaces.ReplayFinder
	Logger       interfaces.Logger
	Output       io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewDebugLogger(cfg.DebugMode)
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var codec interfaces.Codec = ScrepCodec{}
	if opts.Codec != nil {
		codec = opts.Codec
	}

	var finder interfaces.ReplayFinder
	if opts.ReplayFinder != nil {
		finder = opts.ReplayFinder
	} else {
		finder = fileutil.NewReplayFinderWithFS(fs)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
		codec:  codec,
		finder: finder,
		out:    out,
	}
}

// Batch は config.Root 以下の全てのリプレイを解析し、フォルダごとに集計します。
// 解析できないファイルはスキップして件数に含めます。
func (a *App) Batch(ctx context.Context) (*models.Report, error) {
	folders, err := a.finder.Find(ctx, a.config.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFindReplays, err)
	}
	if len(folders) == 0 {
		a.logger.Warnf("%v: %s", bwerrors.ErrNoReplaysFound, a.config.Root)
	}

	rep := &models.Report{Root: a.config.Root}
	for _, folder := range folders {
		files, err := a.parseAll(ctx, folder.Replays)
		if err != nil {
			return nil, err
		}

		fr := models.FolderReport{
			Summary: Summarize(folder.Path, files),
			Files:   files,
		}
		rep.Parsed += fr.Summary.SeriesLength
		rep.Skipped += len(files) - fr.Summary.SeriesLength
		rep.Folders = append(rep.Folders, fr)
	}

	a.logger.Printf("%d 件を解析し、%d 件をスキップしました", rep.Parsed, rep.Skipped)
	return rep, nil
}

// RunBatch はバッチ処理を実行して結果を出力します
func (a *App) RunBatch(ctx context.Context) error {
	rep, err := a.Batch(ctx)
	if err != nil {
		return err
	}
	if err := report.New(a.out, a.config.Format, a.config.All).Batch(rep); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// Inspect は指定されたファイルを順に解析します
func (a *App) Inspect(ctx context.Context, paths []string) ([]models.FileResult, error) {
	results := make([]models.FileResult, 0, len(paths))
	for _, path := range paths {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		results = append(results, a.parseFile(path))
	}
	return results, nil
}

// RunInspect は指定されたファイルを解析して結果を出力します。
// 解析できなかったファイルがある場合は出力後に ErrParseFailed を返します
func (a *App) RunInspect(ctx context.Context, paths []string) error {
	results, err := a.Inspect(ctx, paths)
	if err != nil {
		return err
	}
	if err := report.New(a.out, a.config.Format, false).Results(results); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	failed := 0
	for _, r := range results {
		if r.Skipped() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d/%d", ErrParseFailed, failed, len(results))
	}
	return nil
}

// Recolour は in のカラーセクションを書き換えて out に保存し、保存先を返します。
// out が空の場合は入力と同じディレクトリに *_recoloured.rep を作成します
func (a *App) Recolour(ctx context.Context, in, out string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if out == "" {
		out = fileutil.GenerateOutputFilename(in)
	}
	if filepath.Clean(in) == filepath.Clean(out) {
		return "", bwerrors.NewReplayError("recolour", in, ErrSameFile)
	}

	data, err := a.fs.ReadFile(in)
	if err != nil {
		return "", bwerrors.NewReplayError("recolour", in, fmt.Errorf("%w: %w", ErrReadFile, err))
	}

	header, err := a.codec.Parse(data)
	if err != nil {
		return "", bwerrors.NewReplayError("recolour", in, err)
	}
	if header.LayoutSentinel == screp.TopVsBottom {
		a.logger.Warnf("%s: top vs bottom のためカラーは変更しません", in)
	}

	rewritten, err := a.codec.RewriteColours(data)
	if err != nil {
		return "", bwerrors.NewReplayError("recolour", in, err)
	}

	if a.config.DryRun {
		a.logger.Printf("dry-run: %s (%d bytes) は書き込みません", out, len(rewritten))
		return out, nil
	}

	if err := a.fs.WriteFile(out, rewritten, 0644); err != nil {
		return "", bwerrors.NewReplayError("recolour", out, fmt.Errorf("%w: %w", ErrWriteFile, err))
	}
	a.logger.Printf("カラーを書き換えたリプレイを %s に保存しました", out)
	return out, nil
}

// parseAll は paths を並列に解析し、入力と同じ順序で結果を返します
func (a *App) parseAll(ctx context.Context, paths []string) ([]models.FileResult, error) {
	results := make([]models.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.config.Workers, 1))
	for i, path := range paths {
		i, path := i, path // per-iteration copy; go.mod targets go 1.21
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = a.parseFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// parseFile は1ファイルを解析します。エラーは結果に記録され、処理は続行されます
func (a *App) parseFile(path string) models.FileResult {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		err = bwerrors.NewReplayError("read", path, fmt.Errorf("%w: %w", ErrReadFile, err))
		a.logger.Warnf("%v", err)
		return models.FileResult{Path: path, Error: err.Error()}
	}

	header, err := a.codec.Parse(data)
	if err != nil {
		err = bwerrors.NewReplayError("parse", path, err)
		if bwerrors.IsSkippable(err) {
			a.logger.Printf("スキップします: %v", err)
		} else {
			a.logger.Warnf("%v", err)
		}
		return models.FileResult{Path: path, Error: err.Error()}
	}

	a.logger.Printf("%s", report.Line(path, header))
	return models.FileResult{Path: path, Header: header}
}

// Summarize はフォルダ内の解析結果を集計します。
// プレイヤー名は最初に現れた順で重複を除きます
func Summarize(path string, files []models.FileResult) models.FolderSummary {
	s := models.FolderSummary{Path: path, Players: []string{}}
	seen := make(map[string]bool)
	for _, f := range files {
		if f.Skipped() {
			continue
		}
		s.SeriesLength++
		s.TotalFrames += uint64(f.Header.Frames)
		for _, name := range f.Header.PlayerNames() {
			if !seen[name] {
				seen[name] = true
				s.Players = append(s.Players, name)
			}
		}
	}
	s.Duration = screp.FormatFrames(s.TotalFrames)
	return s
}
