// Package domain contains the lograft workflow: collecting sources, running
// the rewrite pass over them and handing the results to the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/lograft/internal/adapter"
	"gooze.dev/pkg/lograft/internal/controller"
	m "gooze.dev/pkg/lograft/internal/model"
	"gooze.dev/pkg/lograft/pkg/lograft"
)

// ErrPendingRewrites is returned in check mode when a file still contains
// intrinsic calls.
var ErrPendingRewrites = errors.New("sources contain intrinsic calls")

// Mode selects what Rewrite does with the rewritten sources.
type Mode int

const (
	// ModePrint writes every rewritten source to the UI.
	ModePrint Mode = iota
	// ModeWrite overwrites changed files in place.
	ModeWrite
	// ModeDiff shows a unified diff per changed file.
	ModeDiff
	// ModeCheck fails when any file would change.
	ModeCheck
)

// ListArgs contains the arguments shared by every workflow command.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Options lograft.Options
	Threads int
}

// RewriteArgs contains the arguments for rewriting sources.
type RewriteArgs struct {
	ListArgs
	Mode Mode
	// Report, when set, receives a YAML report of every call site.
	Report m.Path
}

// Workflow defines the lograft operations exposed to the CLI.
type Workflow interface {
	Rewrite(ctx context.Context, args RewriteArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		GoFileAdapter:   goFileAdapter,
		ReportStore:     reportStore,
		UI:              ui,
	}
}

// Rewrite runs the pass over every selected source and applies args.Mode.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) error {
	reports, err := w.process(ctx, args.ListArgs)
	if err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.SaveReports(ctx, args.Report, reports); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	switch args.Mode {
	case ModeWrite:
		return w.writeChanged(ctx, reports)
	case ModeDiff:
		return w.displayDiffs(ctx, reports)
	case ModeCheck:
		return w.check(ctx, reports)
	default:
		for _, report := range reports {
			if err := w.DisplaySource(ctx, report); err != nil {
				return err
			}
		}

		return nil
	}
}

// List runs the pass without touching any file and shows every call site.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	reports, err := w.process(ctx, args)
	if err != nil {
		return err
	}

	return w.DisplaySites(ctx, reports)
}

func (w *workflow) process(ctx context.Context, args ListArgs) ([]m.Report, error) {
	wd, err := w.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	pass, err := lograft.New(args.Options, lograft.WithWorkingDir(string(wd)))
	if err != nil {
		return nil, err
	}

	sources, err := w.collectSources(ctx, args.Paths, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	slog.Debug("collected sources", "count", len(sources))

	return w.rewriteSources(ctx, pass, sources, args.Threads)
}

// rewriteSources runs the pass over sources with at most threads workers.
// Reports keep the order of sources.
func (w *workflow) rewriteSources(ctx context.Context, pass *lograft.Pass, sources []m.Source, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			report, err := w.rewriteSource(groupCtx, pass, source)
			if err != nil {
				slog.Error("failed to rewrite source", "path", source.Origin.FullPath, "error", err)
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *workflow) rewriteSource(ctx context.Context, pass *lograft.Pass, source m.Source) (m.Report, error) {
	path := source.Origin.FullPath

	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	fset := token.NewFileSet()

	file, err := w.Parse(ctx, fset, string(path), content)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	pkg := file.Name.Name
	source.Package = &pkg

	file, sites, err := pass.TransformFile(fset, file)
	if err != nil {
		return m.Report{}, err
	}

	report := m.Report{
		Source:    source,
		Sites:     toModelSites(sites),
		Original:  content,
		Rewritten: content,
	}

	if len(sites) == 0 {
		return report, nil
	}

	rewritten, err := w.Format(ctx, fset, file)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to format %s: %w", path, err)
	}

	report.Rewritten = rewritten
	report.Changed = true

	slog.Debug("rewrote source",
		"path", path,
		"emitted", report.Count(m.SiteEmitted),
		"stripped", report.Count(m.SiteStripped))

	return report, nil
}

func (w *workflow) writeChanged(ctx context.Context, reports []m.Report) error {
	for _, report := range reports {
		if !report.Changed {
			continue
		}

		path := report.Source.Origin.FullPath

		info, err := w.FileInfo(ctx, path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if err := w.WriteFile(ctx, path, report.Rewritten, info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		slog.Info("wrote rewritten source", "path", path)
	}

	return w.DisplaySummary(ctx, reports)
}

func (w *workflow) displayDiffs(ctx context.Context, reports []m.Report) error {
	for _, report := range reports {
		if !report.Changed {
			continue
		}

		diff, err := unifiedDiff(report.Source.Origin.ShortPath, report.Original, report.Rewritten)
		if err != nil {
			return fmt.Errorf("diff %s: %w", report.Source.Origin.FullPath, err)
		}

		if err := w.DisplayDiff(ctx, report.Source.Origin.ShortPath, diff); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) check(ctx context.Context, reports []m.Report) error {
	pending := 0

	for _, report := range reports {
		if report.Changed {
			pending++
		}
	}

	if pending == 0 {
		return nil
	}

	if err := w.DisplaySummary(ctx, reports); err != nil {
		return err
	}

	return fmt.Errorf("%w: %d file(s)", ErrPendingRewrites, pending)
}

func toModelSites(sites []lograft.Site) []m.Site {
	if len(sites) == 0 {
		return nil
	}

	out := make([]m.Site, 0, len(sites))

	for _, site := range sites {
		action := m.SiteEmitted
		if site.Action == lograft.ActionStrip {
			action = m.SiteStripped
		}

		out = append(out, m.Site{
			Line:   site.Position.Line,
			Column: site.Position.Column,
			Call:   site.Target.RuntimeName(),
			Action: action,
			Prefix: site.Prefix,
			Level:  site.Level,
		})
	}

	return out
}
