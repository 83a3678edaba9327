package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// fileToConvert pairs an input markdown path with its output path.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// run executes a batch conversion according to the parsed flags.
func run(ctx context.Context, flags *cliFlags, inputs []string) error {
	cfg := DefaultConfig()
	if flags.config != "" {
		cfgPath := flags.config
		// A bare name like "site" resolves to "site.yaml".
		if !fileutil.IsFilePath(cfgPath) && !fileutil.FileExists(cfgPath) {
			cfgPath += ".yaml"
		}
		loaded, err := LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.mergeFlags(flags)

	if len(inputs) == 0 {
		return ErrNoInput
	}

	tmpl, err := loadTemplate(cfg.Template)
	if err != nil {
		return err
	}

	files := make([]fileToConvert, 0, len(inputs))
	for _, in := range inputs {
		if !fileutil.FileExists(in) {
			return fmt.Errorf("%w: %s: %v", ErrReadMarkdown, in, os.ErrNotExist)
		}
		if !fileutil.IsMarkdownPath(in) {
			fmt.Fprintf(os.Stderr, "warning: %s does not look like a markdown file\n", in)
		}
		files = append(files, fileToConvert{
			inputPath:  in,
			outputPath: outputPathFor(in, cfg.OutputDir),
		})
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var opts []md2html.Option
	if cfg.BaseURL != "" {
		opts = append(opts, md2html.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Highlight != "" {
		opts = append(opts, md2html.WithCodeHighlighting(cfg.Highlight))
	}

	pool := md2html.NewConverterPool(md2html.ResolvePoolSize(flags.workers), opts...)
	defer pool.Close()
	results := convertBatch(ctx, pool, files, tmpl)

	return printResults(results, flags.verbose)
}

// outputPathFor derives an output path for an input file. With an
// output directory, all files land flat inside it; otherwise the HTML
// file sits next to its input.
func outputPathFor(input, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".html"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool *md2html.ConverterPool, files []fileToConvert, tmpl string) []conversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]conversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = conversionResult{
						inputPath: files[idx].inputPath,
						err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], tmpl)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv *md2html.Converter, f fileToConvert, tmpl string) conversionResult {
	start := time.Now()
	result := conversionResult{
		inputPath:  f.inputPath,
		outputPath: f.outputPath,
	}

	content, err := os.ReadFile(f.inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		result.err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, string(content))
	if err != nil {
		result.err = err
		result.duration = time.Since(start)
		return result
	}

	page := renderPage(tmpl, res.HTML, res.Metadata)
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.outputPath, []byte(page), filePermissions); err != nil {
		result.err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.duration = time.Since(start)
		return result
	}

	result.duration = time.Since(start)
	return result
}

// printResults reports each conversion and returns the first failure,
// so the caller can derive the process exit code from it.
func printResults(results []conversionResult, verbose bool) error {
	var firstErr error
	failed := 0

	for _, r := range results {
		if r.err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.err
			}
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", r.inputPath, r.err)
			continue
		}

		if verbose {
			fmt.Printf("%s -> %s (%v)\n", r.inputPath, r.outputPath, r.duration.Round(time.Millisecond))
		} else {
			fmt.Printf("Created %s\n", r.outputPath)
		}
	}

	if len(results) > 1 {
		fmt.Printf("\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d conversions failed: %w", failed, len(results), firstErr)
	}
	return nil
}
