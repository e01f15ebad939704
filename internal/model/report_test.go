package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Count(t *testing.T) {
	report := Report{Sites: []Site{
		{Line: 1, Action: SiteEmitted},
		{Line: 2, Action: SiteStripped},
		{Line: 3, Action: SiteEmitted},
	}}

	assert.Equal(t, 2, report.Count(SiteEmitted))
	assert.Equal(t, 1, report.Count(SiteStripped))
	assert.Equal(t, 0, Report{}.Count(SiteEmitted))
}
