package ga4client

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cv-report-api/internal/config"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportURL = "https://ga4.test/v1beta/properties/123:runReport"

func newTestClient(t *testing.T) *GA4Client {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	cfg := &config.Config{
		GA4: config.GA4{
			Endpoint:            "https://ga4.test/",
			RequestTimeout:      5 * time.Second,
			RateLimitPerMinute:  100,
			RateLimitSleep:      time.Millisecond,
			RateLimitMaxRetries: 1,
		},
	}

	client, err := NewClient(context.Background(), cfg, option.WithHTTPClient(httpClient))
	require.NoError(t, err)

	return client.(*GA4Client)
}

func decodeRequest(t *testing.T, req *http.Request) analyticsdata.RunReportRequest {
	t.Helper()

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)

	var report analyticsdata.RunReportRequest
	require.NoError(t, json.Unmarshal(body, &report))

	return report
}

func reportRow(values []string, metrics ...string) map[string]any {
	dims := make([]map[string]string, 0, len(values))
	for _, v := range values {
		dims = append(dims, map[string]string{"value": v})
	}

	mets := make([]map[string]string, 0, len(metrics))
	for _, v := range metrics {
		mets = append(mets, map[string]string{"value": v})
	}

	return map[string]any{"dimensionValues": dims, "metricValues": mets}
}

func TestGA4Client_RunReport(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, reportURL, func(req *http.Request) (*http.Response, error) {
		report := decodeRequest(t, req)
		assert.Equal(t, "eventCount", report.Metrics[0].Name)

		return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
			"rowCount": 1,
			"rows":     []any{reportRow([]string{"20250301", "form_submit"}, "5")},
		})
	})

	resp, err := client.RunReport(context.Background(), "123", &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{StartDate: "2025-03-01", EndDate: "2025-03-31"}},
		Dimensions: []*analyticsdata.Dimension{{Name: "date"}, {Name: "eventName"}},
		Metrics:    []*analyticsdata.Metric{{Name: "eventCount"}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "form_submit", resp.Rows[0].DimensionValues[1].Value)
	assert.Equal(t, "5", resp.Rows[0].MetricValues[0].Value)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestGA4Client_RunReportPaginates(t *testing.T) {
	client := newTestClient(t)

	var offsets []int64
	httpmock.RegisterResponder(http.MethodPost, reportURL, func(req *http.Request) (*http.Response, error) {
		report := decodeRequest(t, req)
		offsets = append(offsets, report.Offset)

		rows := []any{reportRow([]string{"a"}, "1"), reportRow([]string{"b"}, "2")}
		if report.Offset > 0 {
			rows = []any{reportRow([]string{"c"}, "3")}
		}

		return httpmock.NewJsonResponse(http.StatusOK, map[string]any{"rowCount": 3, "rows": rows})
	})

	resp, err := client.RunReport(context.Background(), "properties/123", &analyticsdata.RunReportRequest{
		Dimensions: []*analyticsdata.Dimension{{Name: "pagePath"}},
		Metrics:    []*analyticsdata.Metric{{Name: "sessions"}},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, []int64{0, 2}, offsets)
}

func TestGA4Client_RunReportRespectsLimit(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, reportURL, func(req *http.Request) (*http.Response, error) {
		report := decodeRequest(t, req)
		assert.Equal(t, int64(2), report.Limit)

		return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
			"rowCount": 10,
			"rows":     []any{reportRow([]string{"/"}, "9"), reportRow([]string{"/contato"}, "4")},
		})
	})

	resp, err := client.RunReport(context.Background(), "123", &analyticsdata.RunReportRequest{
		Dimensions: []*analyticsdata.Dimension{{Name: "pagePath"}},
		Metrics:    []*analyticsdata.Metric{{Name: "sessions"}},
		Limit:      2,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Rows, 2)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestGA4Client_RunReportError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, reportURL,
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota"}}`))

	resp, err := client.RunReport(context.Background(), "123", &analyticsdata.RunReportRequest{})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "properties/123")
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "properties/42", propertyName("42"))
	assert.Equal(t, "properties/42", propertyName("properties/42"))
}
