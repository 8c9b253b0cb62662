package ga4client

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/pkg/metrics"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

const (
	provider = "ga4"

	// maxPageSize é o limite de linhas por página da Data API
	maxPageSize int64 = 100000
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	RunReport(ctx context.Context, propertyID string, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error)
}

type GA4Client struct {
	service *analyticsdata.Service
	limiter *RateLimiter
	timeout time.Duration
}

// NewClient cria o cliente da Data API. Opções extras (ex.: WithHTTPClient) têm precedência.
func NewClient(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (Client, error) {
	clientOpts := make([]option.ClientOption, 0, len(opts)+2)

	if cfg.GA4.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.GA4.CredentialsFile))
	}

	if cfg.GA4.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.GA4.Endpoint))
	}

	clientOpts = append(clientOpts, opts...)

	service, err := analyticsdata.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço da Data API")
	}

	return &GA4Client{
		service: service,
		limiter: NewRateLimiter(cfg.GA4.RateLimitPerMinute, cfg.GA4.RateLimitSleep, cfg.GA4.RateLimitMaxRetries),
		timeout: cfg.GA4.RequestTimeout,
	}, nil
}

// RunReport executa o relatório paginando até ler todas as linhas ou atingir o Limit pedido
func (c *GA4Client) RunReport(ctx context.Context, propertyID string, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	property := propertyName(propertyID)
	requested := req.Limit

	page := *req
	page.Offset = 0
	if page.Limit <= 0 || page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}

	var result *analyticsdata.RunReportResponse
	for {
		resp, err := c.runPage(ctx, property, &page)
		if err != nil {
			metrics.FeedRequests.WithLabelValues(reportName(req), "error").Inc()
			return nil, err
		}
		metrics.FeedRequests.WithLabelValues(reportName(req), "ok").Inc()

		if result == nil {
			result = resp
		} else {
			result.Rows = append(result.Rows, resp.Rows...)
		}

		read := int64(len(result.Rows))
		if len(resp.Rows) == 0 || read >= resp.RowCount || (requested > 0 && read >= requested) {
			break
		}

		page.Offset = read
	}

	if requested > 0 && int64(len(result.Rows)) > requested {
		result.Rows = result.Rows[:requested]
	}

	return result, nil
}

func (c *GA4Client) runPage(ctx context.Context, property string, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	if err := c.limiter.Wait(ctx, provider); err != nil {
		return nil, errors.Wrap(err, "espera do limitador interrompida")
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.service.Properties.RunReport(property, req).Context(reqCtx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar relatório em %s (offset %d)", property, req.Offset)
	}

	logrus.WithFields(logrus.Fields{
		"property":  property,
		"offset":    req.Offset,
		"rows":      len(resp.Rows),
		"row_count": resp.RowCount,
		"elapsed":   time.Since(start).String(),
	}).Debug("Relatório GA4 executado")

	return resp, nil
}

func propertyName(propertyID string) string {
	if strings.HasPrefix(propertyID, "properties/") {
		return propertyID
	}

	return "properties/" + propertyID
}

// reportName identifica o relatório nas métricas pelas dimensões pedidas
func reportName(req *analyticsdata.RunReportRequest) string {
	names := make([]string, 0, len(req.Dimensions))
	for _, d := range req.Dimensions {
		names = append(names, d.Name)
	}

	return strings.Join(names, ",")
}
