package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReconcile(t *testing.T) {
	created := testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "create"))
	updated := testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "update"))
	deleted := testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "delete"))

	ObserveReconcile("budget", 1, 2, 3)

	assert.Equal(t, created+1, testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "create")))
	assert.Equal(t, updated+2, testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "update")))
	assert.Equal(t, deleted+3, testutil.ToFloat64(ReconciledChildrenTotal.WithLabelValues("budget", "delete")))
}
