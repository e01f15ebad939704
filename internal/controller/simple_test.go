package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lograft/internal/model"
)

func newTestUI(options ...SimpleUIOption) (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd, options...), out
}

func sampleReports() []m.Report {
	level := 5.0

	return []m.Report{
		{
			Source:  m.Source{Origin: &m.File{FullPath: "/proj/b/main.go", ShortPath: "b/main.go"}},
			Changed: true,
			Sites: []m.Site{
				{Line: 9, Column: 2, Call: "warn", Action: m.SiteStripped, Level: &level},
				{Line: 4, Column: 2, Call: "print", Action: m.SiteEmitted, Prefix: "[b/main.go:4]"},
			},
		},
		{
			Source: m.Source{Origin: &m.File{FullPath: "/proj/a.go", ShortPath: "a.go"}},
		},
		{
			Source:  m.Source{Origin: &m.File{FullPath: "/proj/a/util.go", ShortPath: "a/util.go"}},
			Changed: true,
			Sites:   []m.Site{{Line: 3, Column: 1, Call: "print", Action: m.SiteEmitted, Prefix: "[a/util.go:3]"}},
		},
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplaySummary(context.Background(), sampleReports()))

	text := out.String()
	assert.Contains(t, text, "PATH")
	assert.Contains(t, text, "TOTAL FILES 2")
	assert.NotContains(t, text, "a.go ")
	assert.Less(t, strings.Index(text, "a/util.go"), strings.Index(text, "b/main.go"))
}

func TestSimpleUI_DisplaySummary_Empty(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplaySummary(context.Background(), nil))
	assert.Equal(t, "no intrinsic calls found\n", out.String())
}

func TestSimpleUI_DisplaySites(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplaySites(context.Background(), sampleReports()))

	text := out.String()
	assert.Contains(t, text, "a/util.go:3:1")
	assert.Contains(t, text, "[b/main.go:4]")
	assert.Contains(t, text, "TOTAL CALLS 3")
	assert.Contains(t, text, "1 STRIPPED")
	assert.Less(t, strings.Index(text, "b/main.go:4:2"), strings.Index(text, "b/main.go:9:2"))
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	ui, out := newTestUI()

	diff := "--- a/main.go\n+++ b/main.go\n@@ -1 +1 @@\n-intrinsicPrint()\n+print(\"[main.go:1]\")\n"
	require.NoError(t, ui.DisplayDiff(context.Background(), "main.go", diff))

	assert.Equal(t, "diff main.go\n"+diff, out.String())
}

func TestSimpleUI_DisplayDiff_Styled(t *testing.T) {
	ui, out := newTestUI(WithStyles(NewStyles()))

	require.NoError(t, ui.DisplayDiff(context.Background(), "main.go", "-old\n+new\n"))

	assert.Contains(t, out.String(), "old")
	assert.Contains(t, out.String(), "new")
}

func TestSimpleUI_DisplaySource(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplaySource(context.Background(), m.Report{Rewritten: []byte("package main\n")}))
	assert.Equal(t, "package main\n", out.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, ui.DisplaySummary(ctx, sampleReports()))
	require.Error(t, ui.DisplaySites(ctx, sampleReports()))
	require.Error(t, ui.DisplayDiff(ctx, "x", "-a\n"))
	require.Error(t, ui.DisplaySource(ctx, m.Report{}))
	assert.Empty(t, out.String())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestRender_ZeroStyleIsPlain(t *testing.T) {
	assert.Equal(t, "text", render(nil, "text"))
}
