package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lograft/internal/domain"
	m "gooze.dev/pkg/lograft/internal/model"
	"gooze.dev/pkg/lograft/pkg/lograft"
)

func TestListCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRewriteCmd(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("./internal/...") &&
			args.Threads == 2 &&
			args.Options.LogLevel != nil && *args.Options.LogLevel == 1
	})).Return(nil).Once()

	cmd.SetArgs([]string{"list", "-p", "2", "--log-level", "1", "./internal/..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_DefaultOptions(t *testing.T) {
	cmd, mockWorkflow := newTestRewriteCmd(t)

	var got domain.ListArgs
	mockWorkflow.On("List", mock.Anything, mock.Anything).Run(func(call mock.Arguments) {
		got = call.Get(1).(domain.ListArgs)
	}).Return(nil).Once()

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, got.Paths)
	assert.Equal(t, lograft.Options{}, got.Options)
}

func TestListCmd_Error(t *testing.T) {
	cmd, mockWorkflow := newTestRewriteCmd(t)

	failure := errors.New("walk failed")
	mockWorkflow.On("List", mock.Anything, mock.Anything).Return(failure).Once()

	cmd.SetArgs([]string{"list"})
	require.ErrorIs(t, cmd.Execute(), failure)
}
