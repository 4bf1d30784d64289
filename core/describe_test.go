package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/core"
)

func TestDescribe_RendersTypeAndEntries(t *testing.T) {
	c := &fakeCounter{}
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 1))

	out := core.Describe(c)
	assert.True(t, strings.Contains(out, "FakeCounter"))
	assert.True(t, strings.Contains(out, "2"))
}
