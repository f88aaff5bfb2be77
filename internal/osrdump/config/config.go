// Package config はosrdumpコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const Version = "0.1.0"

// 出力ファイルの文字コード
const (
	EncodingUTF8     = "utf8"
	EncodingShiftJIS = "sjis"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	ReplayPaths []string
	OutputDir   string `env:"OSRDUMP_OUTPUT_DIR"`
	Encoding    string `env:"OSRDUMP_ENCODING" envDefault:"utf8"`
	Lang        string `env:"OSRDUMP_LANG" envDefault:"ja"`
	EventLimit  int    `env:"OSRDUMP_EVENTS" envDefault:"0"`
	Parallel    bool   `env:"OSRDUMP_PARALLEL"`
	Workers     int    `env:"OSRDUMP_WORKERS" envDefault:"4"`
	DebugMode   bool   `env:"OSRDUMP_DEBUG"`
	ShowVersion bool
}

// ParseFlags は環境変数とコマンドライン引数を解析して設定を返します。
// 環境変数の値がフラグのデフォルト値になります。
func ParseFlags() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s: [options] [replay.osr ...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput directory for the summary files (default: stdout only)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -e string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput file encoding: utf8 or sjis (default \"utf8\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  --lang string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tlanguage used to format numbers (default \"ja\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -n int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tnumber of input events to list per replay")
		fmt.Fprintln(flag.CommandLine.Output(), "  -p\tdecode replays in parallel")
		fmt.Fprintln(flag.CommandLine.Output(), "  -w int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tnumber of workers for parallel decoding (default 4)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 出力先
	flag.StringVar(&config.OutputDir, "o", config.OutputDir, "output directory for the summary files")
	flag.StringVar(&config.Encoding, "e", config.Encoding, "output file encoding: utf8 or sjis")
	flag.StringVar(&config.Lang, "lang", config.Lang, "language used to format numbers")

	// 入力イベントの表示件数
	flag.IntVar(&config.EventLimit, "n", config.EventLimit, "number of input events to list per replay")

	// 並列処理
	flag.BoolVar(&config.Parallel, "p", config.Parallel, "decode replays in parallel")
	flag.IntVar(&config.Workers, "w", config.Workers, "number of workers for parallel decoding")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", config.DebugMode, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", config.DebugMode, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()
	config.ReplayPaths = flag.Args()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	switch c.Encoding {
	case EncodingUTF8, EncodingShiftJIS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.EventLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEventLimit, c.EventLimit)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnknownLanguage, c.Lang, err)
	}
	return nil
}

// Language は数値の書式に使う言語タグを返します
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Japanese
	}
	return tag
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("osrdump version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	log *logrus.Logger
}

// NewDebugLogger は新しいDebugLoggerを作成します。
// enabled が false の場合、Printf の出力は捨てられ警告のみ表示します。
func NewDebugLogger(enabled bool) *DebugLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if enabled {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &DebugLogger{log: log}
}

// SetOutput は出力先を変更します
func (d *DebugLogger) SetOutput(w io.Writer) {
	d.log.SetOutput(w)
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	d.log.Debugf(format, a...)
}

// Warnf は警告を表示します
func (d *DebugLogger) Warnf(format string, a ...any) {
	d.log.Warnf(format, a...)
}

// WithField はフィールド付きのログエントリを返します
func (d *DebugLogger) WithField(key string, value any) *logrus.Entry {
	return d.log.WithField(key, value)
}
