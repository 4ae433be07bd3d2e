package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/errors"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/optimizer"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/utils"
)

// StdinPath is the PATH argument that selects standard input
const StdinPath = "-"

// OutputMode selects what happens with an optimized file
type OutputMode int

const (
	// PrintMode writes the optimized text of a single file to the output
	PrintMode OutputMode = iota
	// InPlaceMode rewrites changed files
	InPlaceMode
	// DiffMode writes a diff of every changed file to the output
	DiffMode
	// CheckMode lists changed files and fails when there is any
	CheckMode
)

type ProcessorConfig struct {
	Rules      optimizer.Rules // optimization rules
	Extensions []string        // source file extensions searched in directories
	Mode       OutputMode      // what to do with optimized files
	Jobs       int             // parallel files, 0 means GOMAXPROCS
	NoColor    bool            // disable coloured output
	Out        io.Writer       // destination of printed files and diffs, defaults to stdout
	Logger     *log.Logger     // progress and diagnostics, discarded if nil
}

// Result is the outcome of optimizing one file
type Result struct {
	Path      string
	Original  string
	Optimized string
	Changed   bool
	Err       error
}

// processor drives the optimizer over files and directories
type processor struct {
	config    ProcessorConfig
	optimizer *optimizer.Optimizer
	logger    *log.Logger
	out       io.Writer

	removed *color.Color
	added   *color.Color
	header  *color.Color
}

// New creates a processor for the given configuration
func New(config ProcessorConfig) *processor {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	p := &processor{
		config: config,
		optimizer: optimizer.New(
			optimizer.WithRules(config.Rules),
			optimizer.WithLogger(logger.WithPrefix("optimizer")),
		),
		logger:  logger,
		out:     out,
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		header:  color.New(color.Bold),
	}
	if config.NoColor {
		p.removed.DisableColor()
		p.added.DisableColor()
		p.header.DisableColor()
	}
	return p
}

// OptimizeSource optimizes src and keeps its final newline
func (p *processor) OptimizeSource(src string) string {
	optimized := p.optimizer.Optimize(src)
	if optimized != src && optimized != "" && strings.HasSuffix(src, "\n") && !strings.HasSuffix(optimized, "\n") {
		optimized += "\n"
	}
	return optimized
}

// ProcessFile optimizes a single file, rewriting it in in-place mode
func (p *processor) ProcessFile(path string) Result {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToStatFile, err)
		return result
	}

	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return result
	}

	result.Original = string(src)
	result.Optimized = p.OptimizeSource(result.Original)
	result.Changed = result.Optimized != result.Original

	if p.config.Mode == InPlaceMode && result.Changed {
		if err := os.WriteFile(path, []byte(result.Optimized), info.Mode().Perm()); err != nil {
			result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		}
	}

	return result
}

// ProcessReader optimizes text read from r, reported under name
func (p *processor) ProcessReader(r io.Reader, name string) error {
	if p.config.Mode == InPlaceMode {
		return fmt.Errorf("%w: %s", errors.ErrInvalidOutput, errors.ErrMsgInPlaceRequiresFile)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadStdin, err)
	}

	result := Result{Path: name, Original: string(src)}
	result.Optimized = p.OptimizeSource(result.Original)
	result.Changed = result.Optimized != result.Original

	if err := p.report(result, true); err != nil {
		return err
	}
	if p.config.Mode == CheckMode && result.Changed {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesWouldChange, errors.ErrFilesChanged, 1)
	}
	return nil
}

// ProcessFiles optimizes files in parallel and reports the results in the given order
func (p *processor) ProcessFiles(ctx context.Context, paths []string) error {
	return p.processFiles(ctx, paths, len(paths) == 1)
}

// processFiles is ProcessFiles; single selects printing of the optimized text in print mode
func (p *processor) processFiles(ctx context.Context, paths []string, single bool) error {
	if len(paths) == 0 {
		return nil
	}

	jobs := p.config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns one index, no mutex needed
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = p.ProcessFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0
	changedCount := 0
	var rewritten uint64

	for _, result := range results {
		if result.Err != nil {
			p.logger.Error(errors.InfoMsgErrorProcessing, "file", result.Path, "err", result.Err)
			errorCount++
			continue
		}
		processedCount++
		if result.Changed {
			changedCount++
			rewritten += uint64(len(result.Optimized))
		}
		if err := p.report(result, single); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf(errors.InfoMsgProcessedCount, processedCount, humanize.Bytes(rewritten))
	if errorCount > 0 {
		summary += fmt.Sprintf(errors.InfoMsgErrorCount, errorCount)
	}
	p.logger.Info(summary)

	if errorCount > 0 {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesFailedToProcess, errors.ErrFilesFailed, errorCount)
	}
	if p.config.Mode == CheckMode && changedCount > 0 {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesWouldChange, errors.ErrFilesChanged, changedCount)
	}
	return nil
}

// ProcessPath processes a file, a directory or standard input
func (p *processor) ProcessPath(ctx context.Context, path string) error {
	if path == StdinPath {
		return p.ProcessReader(os.Stdin, "<stdin>")
	}

	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return p.processFiles(ctx, []string{path}, true)
	}

	// Printing every file of a directory is not useful, only report what would change
	if p.config.Mode == PrintMode {
		p.logger.Warn(errors.WarnMsgProcessingDirWithoutInPlace)
		p.logger.Info(errors.InfoMsgUseInPlaceFlag)
	}

	files, err := utils.FindSourceFiles(path, p.config.Extensions)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}

	if len(files) == 0 {
		p.logger.Info(errors.InfoMsgNoSourceFilesFound, "dir", path)
		return nil
	}

	p.logger.Info(errors.InfoMsgFoundSourceFiles, "count", len(files), "dir", path)
	if root := utils.GetProjectRoot(path); root != "" {
		p.logger.Debug(errors.InfoMsgProjectRoot, "dir", root)
	}

	return p.processFiles(ctx, files, false)
}

// report writes the outcome of one file according to the output mode. single is true when the
// file was named directly rather than found in a directory.
func (p *processor) report(result Result, single bool) error {
	switch p.config.Mode {
	case PrintMode:
		if single {
			if _, err := io.WriteString(p.out, result.Optimized); err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			}
			return nil
		}
		if result.Changed {
			p.logger.Info(fmt.Sprintf(errors.InfoMsgWouldRewrite, result.Path))
		}

	case InPlaceMode:
		if result.Changed {
			p.logger.Info(errors.InfoMsgProcessedFile, "file", result.Path)
		} else {
			p.logger.Debug(errors.InfoMsgUnchangedFile, "file", result.Path)
		}

	case DiffMode:
		if result.Changed {
			if err := p.writeDiff(result); err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteDiff, err)
			}
		}

	case CheckMode:
		if result.Changed {
			if _, err := fmt.Fprintln(p.out, result.Path); err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			}
		}
	}

	return nil
}
