// Package config は bwrep コマンドの設定管理を行います
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrInvalidFormat は出力形式が不正な場合のエラー
	ErrInvalidFormat = errors.New("不正な出力形式です")

	// ErrInvalidWorkers はワーカー数が不正な場合のエラー
	ErrInvalidWorkers = errors.New("ワーカー数は1以上を指定してください")

	// ErrReadConfigFile は設定ファイルの読み込みに失敗した場合のエラー
	ErrReadConfigFile = errors.New("設定ファイルの読み込みに失敗しました")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	ConfigFile string `yaml:"-"`
	Root       string `yaml:"root"`
	All        bool   `yaml:"all"` // フォルダごとの集計も出力する
	Format     string `yaml:"format"`
	Workers    int    `yaml:"workers"`
	OutputPath string `yaml:"output"`
	DryRun     bool   `yaml:"dry_run"`
	DebugMode  bool   `yaml:"debug"`
}

// Default はデフォルト値の設定を返します
func Default() *Config {
	return &Config{
		Root:    ".",
		Format:  FormatText,
		Workers: 4,
	}
}

// BindGlobalFlags は全コマンド共通のフラグを登録します
func BindGlobalFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "path to a YAML config file")
	fs.BoolVarP(&cfg.DebugMode, "debug", "d", cfg.DebugMode, "enable debug output")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format (text, json, yaml)")
}

// BindBatchFlags は batch コマンドのフラグを登録します
func BindBatchFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.All, "all", "a", cfg.All, "also print a summary row per folder")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of replays parsed in parallel")
}

// BindRecolourFlags は recolour コマンドのフラグを登録します
func BindRecolourFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "output file (default: <name>_recoloured.rep)")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "rewrite in memory without writing the output file")
}

// ApplyFile は設定ファイルの値を読み込みます。
// コマンドラインで明示的に指定されたフラグは設定ファイルより優先されます。
func ApplyFile(cfg *Config, fs *pflag.FlagSet) error {
	if cfg.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	// フラグの値は cfg のフィールドを指しているので、上書き前に退避する
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadConfigFile, cfg.ConfigFile, err)
	}

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, c.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}
