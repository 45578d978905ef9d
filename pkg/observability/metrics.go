package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes application metrics to CloudWatch
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a metrics publisher
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// RecordAnalysisRun records one pattern-analysis run
func (m *Metrics) RecordAnalysisRun(ctx context.Context, cached bool, duration time.Duration, patternCount int) {
	source := "computed"
	if cached {
		source = "cached"
	}

	m.put(ctx,
		datum("AnalysisRuns", 1, types.StandardUnitCount, source),
		datum("AnalysisDuration", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, source),
		datum("PatternsReturned", float64(patternCount), types.StandardUnitCount, source),
	)
}

// RecordUpsertFailure counts a single failed pattern upsert
func (m *Metrics) RecordUpsertFailure(ctx context.Context) {
	m.put(ctx, datum("PatternUpsertFailures", 1, types.StandardUnitCount, "computed"))
}

// RecordSuggestionFailure counts a failed or malformed suggestion-service call
func (m *Metrics) RecordSuggestionFailure(ctx context.Context) {
	m.put(ctx, datum("SuggestionFailures", 1, types.StandardUnitCount, "computed"))
}

func (m *Metrics) put(ctx context.Context, data ...types.MetricDatum) {
	if m.client == nil {
		return
	}

	// Metrics are best effort; a publish failure must never affect the request path.
	_, _ = m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	})
}

func datum(name string, value float64, unit types.StandardUnit, source string) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: []types.Dimension{
			{Name: aws.String("Source"), Value: aws.String(source)},
		},
	}
}
