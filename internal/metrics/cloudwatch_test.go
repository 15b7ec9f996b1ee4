package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudWatch struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(
	_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options),
) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

func (f *fakeCloudWatch) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, in := range f.inputs {
		for _, d := range in.MetricData {
			out = append(out, aws.ToString(d.MetricName))
		}
	}
	return out
}

func newTestClient(fake *fakeCloudWatch) *Client {
	return &Client{client: fake, enabled: true, environment: "test"}
}

func TestNewClientDisabledOutsideProduction(t *testing.T) {
	c, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	// Disabled clients are no-ops.
	c.RecordAPIRequest("/api/generate", 200, time.Millisecond)
	c.RecordGeneration(Generation{Family: "fish", Success: true})
}

func TestRecordAPIRequest(t *testing.T) {
	fake := &fakeCloudWatch{}
	c := newTestClient(fake)

	c.RecordAPIRequest("/api/generate", 200, 15*time.Millisecond)
	c.RecordAPIRequest("/api/generate", 500, 15*time.Millisecond)

	assert.Equal(t, []string{"APIRequests", "APILatency", "APIErrors", "APILatency"}, fake.names())
	assert.Equal(t, namespace, aws.ToString(fake.inputs[0].Namespace))
}

func TestRecordGeneration(t *testing.T) {
	fake := &fakeCloudWatch{}
	c := newTestClient(fake)

	c.RecordGeneration(Generation{Family: "corners", GridSize: 9, PathCount: 3, Duration: time.Second, Success: true})
	c.RecordGeneration(Generation{Family: "corners", GridSize: 9, Duration: time.Second, Success: false})

	assert.Equal(t, []string{"GenerationDuration", "PathCount", "GenerationDuration"}, fake.names())

	dims := fake.inputs[0].MetricData[0].Dimensions
	require.Len(t, dims, 3)
	assert.Equal(t, "BoundaryType", aws.ToString(dims[0].Name))
	assert.Equal(t, "corners", aws.ToString(dims[0].Value))

	failed := fake.inputs[2].MetricData[0].Dimensions
	assert.Equal(t, "Success", aws.ToString(failed[1].Name))
	assert.Equal(t, "false", aws.ToString(failed[1].Value))
}

func TestPutMetricErrorIsLogged(t *testing.T) {
	fake := &fakeCloudWatch{err: errors.New("throttled")}
	c := newTestClient(fake)

	assert.NotPanics(t, func() {
		c.RecordAPIRequest("/api/health", 200, time.Millisecond)
	})
	assert.Len(t, fake.names(), 2)
}

func TestSentryMetricsWithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	assert.NotPanics(t, func() {
		m.RecordAPIRequest(context.Background(), "/api/generate", 200, time.Millisecond)
		m.RecordGeneration(context.Background(), Generation{Family: "waves", GridSize: 5, Success: true})
	})
}
