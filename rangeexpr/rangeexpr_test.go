package rangeexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestRelativeLookback(t *testing.T) {
	r, err := Eval("-15m", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(-15*time.Minute).UnixMilli(), r.Begin())
	assert.Equal(t, testNow.UnixMilli(), r.End())
}

func TestCompoundDuration(t *testing.T) {
	r, err := Eval("-1h30m", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(90*60*1000), r.Duration())

	r, err = Eval("-2d", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2*24*3600*1000), r.Duration())
}

func TestAbsolutePair(t *testing.T) {
	r, err := Eval("2024-01-02..2024-01-03", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), r.Begin())
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).UnixMilli(), r.End())
}

func TestStampWithTime(t *testing.T) {
	r, err := Eval("2024-01-02T10:30..now", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC).UnixMilli(), r.Begin())
	assert.Equal(t, testNow.UnixMilli(), r.End())

	r, err = Eval("2024-01-02T10:30:45..now", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 45, 0, time.UTC).UnixMilli(), r.Begin())
}

func TestUnixMillis(t *testing.T) {
	r, err := Eval("1700000000000..1700000060000", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), r.Begin())
	assert.Equal(t, int64(60000), r.Duration())
}

func TestMissingUpperBoundIsNow(t *testing.T) {
	r, err := Eval("2024-03-15", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).UnixMilli(), r.Begin())
	assert.Equal(t, testNow.UnixMilli(), r.End())
}

func TestInvertedPairSwaps(t *testing.T) {
	r, err := Eval("2024-01-03..2024-01-02", testNow)
	require.NoError(t, err)
	assert.True(t, r.Begin() < r.End())
}

func TestRelativeUpperBound(t *testing.T) {
	// millis lower bound, "5 minutes ago" upper bound
	r, err := Eval("1700000000000..-5m", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), r.Begin())
	assert.Equal(t, testNow.Add(-5*time.Minute).UnixMilli(), r.End())
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"", "..", "yesterday", "-15x", "2024-1-2"} {
		_, err := Eval(bad, testNow)
		assert.Error(t, err, "input %q", bad)
	}
}
