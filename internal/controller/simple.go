package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/lograft/internal/model"
)

// SimpleUI implements UI by writing to the cobra command output.
type SimpleUI struct {
	cmd    *cobra.Command
	styles Styles
}

// SimpleUIOption configures a SimpleUI.
type SimpleUIOption func(*SimpleUI)

// WithStyles enables styled output.
func WithStyles(styles Styles) SimpleUIOption {
	return func(s *SimpleUI) {
		s.styles = styles
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...SimpleUIOption) *SimpleUI {
	s := &SimpleUI{cmd: cmd}
	for _, option := range options {
		option(s)
	}

	return s
}

// DisplaySource writes the rewritten source unchanged.
func (s *SimpleUI) DisplaySource(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.cmd.OutOrStdout().Write(report.Rewritten)

	return err
}

// DisplayDiff prints a unified diff, coloring added and removed lines.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		return nil
	}

	s.printf("%s\n", render(s.styles.Header, "diff "+string(path)))

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		text := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"), strings.HasPrefix(text, "@@"):
			text = render(s.styles.Header, text)
		case strings.HasPrefix(text, "+"):
			text = render(s.styles.Added, text)
		case strings.HasPrefix(text, "-"):
			text = render(s.styles.Removed, text)
		}

		s.printf("%s\n", text)
	}

	return nil
}

// DisplaySites prints one row per intrinsic call.
func (s *SimpleUI) DisplaySites(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := buildSiteRows(reports)
	if len(rows) == 0 {
		s.printf("no intrinsic calls found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Location", "Call", "Action", "Level", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	stripped := 0

	for _, row := range rows {
		action := string(row.site.Action)
		if row.site.Action == m.SiteStripped {
			action = render(s.styles.Strip, action)
			stripped++
		}

		table.Append([]string{
			fmt.Sprintf("%s:%d:%d", row.path, row.site.Line, row.site.Column),
			row.site.Call,
			action,
			formatLevel(row.site.Level),
			row.site.Prefix,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Calls %d", len(rows)),
		"",
		fmt.Sprintf("%d stripped", stripped),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySummary prints emitted and stripped counts per file.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stats := buildFileStats(reports)
	if len(stats) == 0 {
		s.printf("no intrinsic calls found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Emitted", "Stripped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalEmitted, totalStripped := 0, 0

	for _, stat := range stats {
		table.Append([]string{stat.path, strconv.Itoa(stat.emitted), strconv.Itoa(stat.stripped)})

		totalEmitted += stat.emitted
		totalStripped += stat.stripped
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		strconv.Itoa(totalEmitted),
		strconv.Itoa(totalStripped),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

type fileStat struct {
	path     string
	emitted  int
	stripped int
}

type siteRow struct {
	path string
	site m.Site
}

func reportPath(report m.Report) string {
	if report.Source.Origin == nil {
		return ""
	}

	if report.Source.Origin.ShortPath != "" {
		return string(report.Source.Origin.ShortPath)
	}

	return string(report.Source.Origin.FullPath)
}

func buildFileStats(reports []m.Report) []fileStat {
	stats := make([]fileStat, 0, len(reports))

	for _, report := range reports {
		if len(report.Sites) == 0 {
			continue
		}

		stats = append(stats, fileStat{
			path:     reportPath(report),
			emitted:  report.Count(m.SiteEmitted),
			stripped: report.Count(m.SiteStripped),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].path < stats[j].path
	})

	return stats
}

func buildSiteRows(reports []m.Report) []siteRow {
	var rows []siteRow

	for _, report := range reports {
		path := reportPath(report)
		for _, site := range report.Sites {
			rows = append(rows, siteRow{path: path, site: site})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].path != rows[j].path {
			return rows[i].path < rows[j].path
		}

		return rows[i].site.Line < rows[j].site.Line
	})

	return rows
}

func formatLevel(level *float64) string {
	if level == nil {
		return "-"
	}

	return strconv.FormatFloat(*level, 'f', -1, 64)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
