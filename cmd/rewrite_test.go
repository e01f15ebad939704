package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lograft/internal/domain"
	domainmocks "gooze.dev/pkg/lograft/internal/domain/mocks"
	m "gooze.dev/pkg/lograft/internal/model"
	"gooze.dev/pkg/lograft/pkg/lograft"
)

func newTestRewriteCmd(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRewriteCmd())
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, mockWorkflow
}

// captureRewrite runs the rewrite command with args and returns what reached the workflow.
func captureRewrite(t *testing.T, args ...string) domain.RewriteArgs {
	t.Helper()

	cmd, mockWorkflow := newTestRewriteCmd(t)

	var got domain.RewriteArgs
	mockWorkflow.On("Rewrite", mock.Anything, mock.Anything).Run(func(call mock.Arguments) {
		got = call.Get(1).(domain.RewriteArgs)
	}).Return(nil).Once()

	cmd.SetArgs(append([]string{"rewrite"}, args...))
	require.NoError(t, cmd.Execute())

	return got
}

func TestRewriteCmd_Modes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Mode
	}{
		{"default prints", nil, domain.ModePrint},
		{"write", []string{"-w"}, domain.ModeWrite},
		{"write long", []string{"--write"}, domain.ModeWrite},
		{"diff", []string{"--diff"}, domain.ModeDiff},
		{"check", []string{"--check"}, domain.ModeCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureRewrite(t, tt.args...)
			assert.Equal(t, tt.want, got.Mode)
		})
	}
}

func TestRewriteCmd_Defaults(t *testing.T) {
	got := captureRewrite(t, "./...")

	assert.Equal(t, []m.Path{"./..."}, got.Paths)
	assert.Empty(t, got.Exclude)
	assert.Equal(t, defaultRunParallel, got.Threads)
	assert.Empty(t, got.Report)
	assert.Equal(t, lograft.Options{}, got.Options)
}

func TestRewriteCmd_PassOptions(t *testing.T) {
	got := captureRewrite(t,
		"--show-path", "short",
		"--show-file-extension", "off",
		"--show-line=false",
		"--log-level", "3",
		"./pkg/...",
	)

	want := lograft.Options{}.
		WithShowPath(lograft.ShowShort).
		WithShowFileExtension(lograft.ShowOff).
		WithShowLine(false).
		WithLogLevel(3)

	assert.Equal(t, want, got.Options)
	assert.Equal(t, []m.Path{"./pkg/..."}, got.Paths)
}

func TestRewriteCmd_WorkflowFlags(t *testing.T) {
	got := captureRewrite(t,
		"-x", `_gen\.go$`,
		"-x", "/mocks/",
		"-p", "4",
		"--report", "sites.yaml",
		"./cmd", "./pkg",
	)

	assert.Equal(t, []string{`_gen\.go$`, "/mocks/"}, got.Exclude)
	assert.Equal(t, 4, got.Threads)
	assert.Equal(t, m.Path("sites.yaml"), got.Report)
	assert.Equal(t, []m.Path{"./cmd", "./pkg"}, got.Paths)
}

func TestRewriteCmd_EnvOptions(t *testing.T) {
	t.Setenv("LOGRAFT_SHOWPATH", "off")
	t.Setenv("LOGRAFT_LOGLEVEL", "2.5")

	got := captureRewrite(t)

	require.NotNil(t, got.Options.ShowPath)
	assert.Equal(t, lograft.ShowOff, *got.Options.ShowPath)
	require.NotNil(t, got.Options.LogLevel)
	assert.InDelta(t, 2.5, *got.Options.LogLevel, 0)
	assert.Nil(t, got.Options.ShowLine)
}

func TestRewriteCmd_InvalidLogLevel(t *testing.T) {
	cmd, _ := newTestRewriteCmd(t)

	cmd.SetArgs([]string{"rewrite", "--log-level", "loud"})
	err := cmd.Execute()
	require.ErrorIs(t, err, lograft.ErrInvalidLogLevel)
}

func TestRewriteCmd_ExclusiveModes(t *testing.T) {
	cmd, _ := newTestRewriteCmd(t)

	cmd.SetArgs([]string{"rewrite", "-w", "--check"})
	require.Error(t, cmd.Execute())
}

func TestRewriteCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow := newTestRewriteCmd(t)

	mockWorkflow.On("Rewrite", mock.Anything, mock.Anything).Return(domain.ErrPendingRewrites).Once()

	cmd.SetArgs([]string{"rewrite", "--check"})
	err := cmd.Execute()
	require.True(t, errors.Is(err, domain.ErrPendingRewrites))
}

func TestRewriteMode(t *testing.T) {
	t.Cleanup(func() {
		rewriteWriteFlag, rewriteDiffFlag, rewriteCheckFlag = false, false, false
	})

	rewriteWriteFlag, rewriteDiffFlag, rewriteCheckFlag = false, false, false
	assert.Equal(t, domain.ModePrint, rewriteMode())

	rewriteDiffFlag = true
	assert.Equal(t, domain.ModeDiff, rewriteMode())
}
