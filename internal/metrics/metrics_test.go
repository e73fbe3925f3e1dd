package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

func TestCollectorImplementsObserver(t *testing.T) {
	var _ ndtm.Observer = (*Collector)(nil)
}

func TestNilCollectorMethodsAreNoOps(t *testing.T) {
	var c *Collector
	require.NotPanics(t, func() {
		c.ConfigurationExpanded()
		c.TapeSharedNoOp()
		c.TapeMutatedInPlace()
		c.TapeDuplicated()
		c.Verdict("accept")
		c.ObserveQueueDepth(3)
	})
}

func TestCollectorCountsVerdicts(t *testing.T) {
	c, reg := New()
	c.Verdict("accept")
	c.Verdict("accept")
	c.Verdict("reject")

	require.InDelta(t, 2, testutil.ToFloat64(c.verdicts.WithLabelValues("accept")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(c.verdicts.WithLabelValues("reject")), 0)
	require.NotNil(t, reg)
}

func TestCollectorTracksQueueHighWaterMark(t *testing.T) {
	c, _ := New()
	c.ObserveQueueDepth(5)
	c.ObserveQueueDepth(12)
	require.InDelta(t, 12, testutil.ToFloat64(c.queueHighWaterMark), 0)
}

func TestCollectorQueueHighWaterMarkNeverDecreases(t *testing.T) {
	c, _ := New()
	c.ObserveQueueDepth(12)
	c.ObserveQueueDepth(3)
	require.InDelta(t, 12, testutil.ToFloat64(c.queueHighWaterMark), 0)
}
