package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "gooze.dev/pkg/lograft/internal/model"
)

const recursiveSuffix = "..."

// defaultPaths is used when no path is given.
var defaultPaths = []m.Path{"./..."}

// collectSources expands Go-style path patterns into the Go files to rewrite.
func (w *workflow) collectSources(ctx context.Context, paths []m.Path, exclude []string) ([]m.Source, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	wd, err := w.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	if len(paths) == 0 {
		paths = defaultPaths
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, pattern := range paths {
		found, err := w.expandPattern(ctx, pattern)
		if err != nil {
			return nil, err
		}

		for _, file := range found {
			if isExcluded(file, excludes) {
				slog.Debug("excluded source", "path", file)
				continue
			}

			abs := absPath(wd, file)
			if _, ok := seen[abs]; ok {
				continue
			}

			seen[abs] = struct{}{}

			files = append(files, abs)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	sources := make([]m.Source, 0, len(files))

	for _, file := range files {
		source, err := w.newSource(ctx, wd, file)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	return sources, nil
}

func (w *workflow) newSource(ctx context.Context, wd, file m.Path) (m.Source, error) {
	hash, err := w.HashFile(ctx, file)
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", file, err)
	}

	short, err := w.RelPath(wd, file)
	if err != nil {
		short = file
	}

	return m.Source{Origin: &m.File{FullPath: file, ShortPath: short, Hash: hash}}, nil
}

// expandPattern resolves a single file, a directory or a dir/... pattern.
func (w *workflow) expandPattern(ctx context.Context, pattern m.Path) ([]m.Path, error) {
	root, recursive := splitPattern(string(pattern))

	info, err := w.FileInfo(ctx, m.Path(root))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if !isGoFile(root) {
			return nil, fmt.Errorf("%s is not a Go source file", root)
		}

		return []m.Path{m.Path(root)}, nil
	}

	var files []m.Path

	err = w.Walk(ctx, m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && skipDir(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if isGoFile(path) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func splitPattern(pattern string) (string, bool) {
	if pattern == recursiveSuffix {
		return ".", true
	}

	trimmed := strings.TrimSuffix(pattern, "/"+recursiveSuffix)
	if trimmed != pattern {
		if trimmed == "" {
			trimmed = "/"
		}

		return filepath.Clean(trimmed), true
	}

	return filepath.Clean(pattern), false
}

// skipDir follows the go tool: vendor, testdata and dirs starting with . or _ are ignored.
func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isGoFile(path string) bool {
	return filepath.Ext(path) == ".go"
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path m.Path, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(string(path))

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func absPath(wd, path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return m.Path(filepath.Clean(string(path)))
	}

	return m.Path(filepath.Join(string(wd), string(path)))
}
