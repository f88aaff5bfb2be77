// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/shiroemons/go-osrparse/internal/osrdump/config"
	"github.com/shiroemons/go-osrparse/internal/osrdump/fileutil"
	"github.com/shiroemons/go-osrparse/internal/osrdump/interfaces"
	"github.com/shiroemons/go-osrparse/internal/osrdump/models"
	"github.com/shiroemons/go-osrparse/internal/osrdump/output"
	"github.com/shiroemons/go-osrparse/pkg/osr"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config    *config.Config
	logger    *config.DebugLogger
	decoder   interfaces.ReplayDecoder
	finder    interfaces.ReplayFinder
	fs        interfaces.FileSystem
	formatter *output.Formatter
	stdout    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Decoder    interfaces.ReplayDecoder
	Finder     interfaces.ReplayFinder
	Logger     *config.DebugLogger
	Stdout     io.Writer
}

// osrDecoder は osr.Decode を呼ぶだけの ReplayDecoder です
type osrDecoder struct{}

func (osrDecoder) Decode(data []byte) (*osr.Replay, error) {
	return osr.Decode(data)
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

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var decoder interfaces.ReplayDecoder = osrDecoder{}
	if opts.Decoder != nil {
		decoder = opts.Decoder
	}

	var finder interfaces.ReplayFinder
	if opts.Finder != nil {
		finder = opts.Finder
	} else {
		finder = fileutil.NewReplayFinder(fs)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:    cfg,
		logger:    logger,
		decoder:   decoder,
		finder:    finder,
		fs:        fs,
		formatter: output.NewFormatter(cfg.Language(), cfg.EventLimit),
		stdout:    stdout,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	paths, err := a.resolvePaths(ctx)
	if err != nil {
		return err
	}

	var results []models.DecodeResult
	if a.config.Parallel {
		results, err = a.decodeParallel(ctx, paths)
	} else {
		results, err = a.decodeSequential(ctx, paths)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			a.logger.Warnf("%s のデコードに失敗しました: %v", result.Path, result.Err)
			continue
		}

		summary := a.formatter.Format(result.Path, result.Replay)
		if a.config.OutputDir != "" {
			outputPath := filepath.Join(a.config.OutputDir, fileutil.GenerateOutputFilename(result.Path))
			if err := fileutil.SaveToFile(a.fs, outputPath, summary, a.config.Encoding); err != nil {
				return fmt.Errorf("%w: %w", ErrSaveFile, err)
			}
			a.logger.Printf("要約を %s に保存しました", outputPath)
		}
		fmt.Fprintln(a.stdout, summary)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d/%d 件", ErrDecodeFailed, failed, len(results))
	}
	return nil
}

// resolvePaths はデコード対象のファイル一覧を決定します
func (a *App) resolvePaths(ctx context.Context) ([]string, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if len(a.config.ReplayPaths) > 0 {
		return a.config.ReplayPaths, nil
	}

	paths, err := a.finder.Find()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoReplayFiles
	}
	a.logger.Printf("%d 個のリプレイファイルを検出しました", len(paths))
	return paths, nil
}

// decodeFile はファイル1件を読み込んでデコードします
func (a *App) decodeFile(path string) models.DecodeResult {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return models.DecodeResult{Path: path, Err: fmt.Errorf("%w: %w", ErrReadFile, err)}
	}

	replay, err := a.decoder.Decode(data)
	if err != nil {
		return models.DecodeResult{Path: path, Err: fmt.Errorf("%w: %w", ErrDecodeReplay, err)}
	}

	a.logger.WithField("file", filepath.Base(path)).
		WithField("mode", replay.GameMode.String()).
		WithField("events", len(replay.PlayData)).
		Debug("デコードしました")
	return models.DecodeResult{Path: path, Replay: replay}
}

// decodeSequential は順番にデコードします
func (a *App) decodeSequential(ctx context.Context, paths []string) ([]models.DecodeResult, error) {
	results := make([]models.DecodeResult, 0, len(paths))
	for _, path := range paths {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		results = append(results, a.decodeFile(path))
	}
	return results, nil
}

// decodeParallel はワーカーを起動して並列にデコードします。結果は入力順に並びます。
func (a *App) decodeParallel(ctx context.Context, paths []string) ([]models.DecodeResult, error) {
	numWorkers := a.config.Workers
	if numWorkers <= 0 {
		numWorkers = 4 // デフォルトのワーカー数
	}

	jobs := make(chan models.DecodeJob, numWorkers*2)
	results := make([]models.DecodeResult, len(paths))
	var wg sync.WaitGroup

	// ワーカーを起動
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				// 各ワーカーは自分の担当する位置にだけ書き込む
				results[job.Index] = a.decodeFile(job.Path)
			}
		}()
	}

	// ジョブを投入
	var cancelErr error
feed:
	for i, path := range paths {
		// キャンセル済みなら送信より優先して止める
		if err := ctx.Err(); err != nil {
			cancelErr = err
			break
		}
		select {
		case <-ctx.Done():
			cancelErr = ctx.Err()
			break feed
		case jobs <- models.DecodeJob{Index: i, Path: path}:
		}
	}

	// 全てのジョブが投入されたらチャネルを閉じ、ワーカーの終了を待つ
	close(jobs)
	wg.Wait()

	if cancelErr != nil {
		return nil, cancelErr
	}
	return results, nil
}
