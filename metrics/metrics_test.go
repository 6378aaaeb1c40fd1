package metrics

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.ObserveHand("pair")
	r.ObserveHand("pair")
	r.ObserveHand("flush")
	r.ObserveParseFailure()
	r.ObserveWinners(2)
	r.ObserveMatches(10, 3)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.handsClassified.WithLabelValues("pair")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.handsClassified.WithLabelValues("flush")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.parseFailures))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.winners))
	assert.Equal(t, float64(10), testutil.ToFloat64(r.matches))
	assert.Equal(t, float64(3), testutil.ToFloat64(r.mismatches))
}

func TestWriteToTextfile(t *testing.T) {
	dir, err := ioutil.TempDir("", "metrics")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	r := NewRecorder()
	r.ObserveHand("straight flush")
	path := filepath.Join(dir, "showdown.prom")
	require.NoError(t, r.WriteToTextfile(path))

	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `showdown_hands_classified_total{category="straight flush"} 1`))
}

func TestWriteToTextfileEmptyPath(t *testing.T) {
	assert.NoError(t, NewRecorder().WriteToTextfile(""))
}
