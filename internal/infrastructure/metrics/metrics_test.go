package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetModelLoaded(t *testing.T) {
	SetModelLoaded(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ModelLoaded))

	SetModelLoaded(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ModelLoaded))
}

func TestPredictionsTotal(t *testing.T) {
	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues("Positive"))
	PredictionsTotal.WithLabelValues("Positive").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PredictionsTotal.WithLabelValues("Positive")))
}
