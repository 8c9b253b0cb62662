package ga4

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ga4domain "github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// GA4Integrator é o contrato do feed automatizado. Falhas do provedor não
// atravessam DailyEventCounts: os dias afetados ficam zerados e o resultado degradado.
type GA4Integrator interface {
	DailyEventCounts(ctx context.Context, tenant *domain.Tenant, startDate, endDate time.Time, eventNames []string) *domain.AutomatedDailyCounts
	DimensionBreakdown(ctx context.Context, tenant *domain.Tenant, dimension domain.Dimension, startDate, endDate time.Time, eventNames []string) ([]domain.DimensionBreakdownRow, error)
	ReviewEvents(ctx context.Context, tenant *domain.Tenant, startDate, endDate time.Time, eventNames []string) ([]domain.RawReviewEvent, error)
}

type GA4Service struct {
	cfg    *config.Config
	Client ga4client.Client
}

func New(cfg *config.Config, client ga4client.Client) GA4Integrator {
	return &GA4Service{
		cfg:    cfg,
		Client: client,
	}
}

// DailyEventCounts soma os key events por dia e, para os eventos nomeados (rotas e
// telefone), usa o eventCount bruto, que independe da marcação como key event.
func (s *GA4Service) DailyEventCounts(ctx context.Context, tenant *domain.Tenant, startDate, endDate time.Time, eventNames []string) *domain.AutomatedDailyCounts {
	counts := domain.NewAutomatedDailyCounts()

	if tenant == nil || tenant.GA4PropertyID == "" {
		logrus.WithField("tenant_id", tenantID(tenant)).Debug("Tenant sem propriedade GA4, contagens automáticas vazias")
		return counts
	}

	named := make(map[string]bool, len(eventNames))
	for _, name := range eventNames {
		named[name] = true
	}

	keyEvents, err := s.Client.RunReport(ctx, tenant.GA4PropertyID, &analyticsdata.RunReportRequest{
		DateRanges: dateRanges(startDate, endDate),
		Dimensions: dimensions(ga4domain.DimensionDate, ga4domain.DimensionEventName),
		Metrics:    metricsOf(ga4domain.MetricKeyEvents),
	})
	if err != nil {
		s.degrade(counts, tenant, "key_events", err)
	} else {
		s.collectDaily(counts, keyEvents, func(event string) bool { return !named[event] })
	}

	if len(eventNames) == 0 {
		return counts
	}

	eventCounts, err := s.Client.RunReport(ctx, tenant.GA4PropertyID, &analyticsdata.RunReportRequest{
		DateRanges:      dateRanges(startDate, endDate),
		Dimensions:      dimensions(ga4domain.DimensionDate, ga4domain.DimensionEventName),
		Metrics:         metricsOf(ga4domain.MetricEventCount),
		DimensionFilter: eventNameFilter(eventNames),
	})
	if err != nil {
		s.degrade(counts, tenant, "event_count", err)
		return counts
	}

	s.collectDaily(counts, eventCounts, func(event string) bool { return named[event] })

	return counts
}

func (s *GA4Service) collectDaily(counts *domain.AutomatedDailyCounts, resp *analyticsdata.RunReportResponse, accept func(event string) bool) {
	for _, row := range resp.Rows {
		if len(row.DimensionValues) < 2 || len(row.MetricValues) < 1 {
			continue
		}

		date, err := ga4domain.ParseReportDate(row.DimensionValues[0].Value)
		if err != nil {
			logrus.WithError(err).Warn("Linha ignorada no relatório diário")
			continue
		}

		event := row.DimensionValues[1].Value
		if !accept(event) {
			continue
		}

		if n := ga4domain.ParseMetric(row.MetricValues[0].Value); n > 0 {
			counts.Add(event, date, n)
		}
	}
}

func (s *GA4Service) degrade(counts *domain.AutomatedDailyCounts, tenant *domain.Tenant, report string, err error) {
	counts.Degraded = true

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenant.ID,
		"property_id": tenant.GA4PropertyID,
		"report":      report,
	}).WithError(err).Warn("Falha no feed GA4, contagens marcadas como degradadas")
}

// DimensionBreakdown retorna tráfego e contagem de eventos de CV por valor da dimensão,
// ordenado por sessões. A dimensão de página é limitada às mais acessadas.
func (s *GA4Service) DimensionBreakdown(ctx context.Context, tenant *domain.Tenant, dimension domain.Dimension, startDate, endDate time.Time, eventNames []string) ([]domain.DimensionBreakdownRow, error) {
	if !dimension.IsValid() {
		return nil, errors.Errorf("dimensão não suportada: %q", dimension)
	}

	if tenant == nil || tenant.GA4PropertyID == "" {
		return nil, nil
	}

	name := dimension.GA4Name()
	limited := dimension == domain.DimensionPage

	trafficReq := &analyticsdata.RunReportRequest{
		DateRanges: dateRanges(startDate, endDate),
		Dimensions: dimensions(name),
		Metrics:    metricsOf(ga4domain.MetricSessions, ga4domain.MetricTotalUsers, ga4domain.MetricScreenPageViews),
		OrderBys: []*analyticsdata.OrderBy{
			{Metric: &analyticsdata.MetricOrderBy{MetricName: ga4domain.MetricSessions}, Desc: true},
		},
	}
	if limited {
		trafficReq.Limit = s.cfg.GA4.PageDimensionLimit
	}

	traffic, err := s.Client.RunReport(ctx, tenant.GA4PropertyID, trafficReq)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar tráfego por %s", name)
	}

	eventsReq := &analyticsdata.RunReportRequest{
		DateRanges: dateRanges(startDate, endDate),
		Dimensions: dimensions(name),
		Metrics:    metricsOf(ga4domain.MetricEventCount),
	}
	if len(eventNames) > 0 {
		eventsReq.DimensionFilter = eventNameFilter(eventNames)
	} else {
		eventsReq.Metrics = metricsOf(ga4domain.MetricKeyEvents)
	}

	events, err := s.Client.RunReport(ctx, tenant.GA4PropertyID, eventsReq)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar eventos de CV por %s", name)
	}

	return mergeBreakdown(traffic, events, !limited), nil
}

// mergeBreakdown junta tráfego e eventos pelo rótulo. Rótulos que só aparecem nos
// eventos entram com tráfego zerado, exceto quando o tráfego foi limitado.
func mergeBreakdown(traffic, events *analyticsdata.RunReportResponse, keepEventOnly bool) []domain.DimensionBreakdownRow {
	rows := make([]domain.DimensionBreakdownRow, 0, len(traffic.Rows))
	index := make(map[string]int, len(traffic.Rows))

	for _, row := range traffic.Rows {
		if len(row.DimensionValues) < 1 || len(row.MetricValues) < 3 {
			continue
		}

		label := labelOf(row.DimensionValues[0].Value)
		if i, ok := index[label]; ok {
			rows[i].Sessions += ga4domain.ParseMetric(row.MetricValues[0].Value)
			rows[i].Users += ga4domain.ParseMetric(row.MetricValues[1].Value)
			rows[i].Pageviews += ga4domain.ParseMetric(row.MetricValues[2].Value)
			continue
		}

		index[label] = len(rows)
		rows = append(rows, domain.DimensionBreakdownRow{
			Label:     label,
			Sessions:  ga4domain.ParseMetric(row.MetricValues[0].Value),
			Users:     ga4domain.ParseMetric(row.MetricValues[1].Value),
			Pageviews: ga4domain.ParseMetric(row.MetricValues[2].Value),
		})
	}

	for _, row := range events.Rows {
		if len(row.DimensionValues) < 1 || len(row.MetricValues) < 1 {
			continue
		}

		label := labelOf(row.DimensionValues[0].Value)
		count := ga4domain.ParseMetric(row.MetricValues[0].Value)

		if i, ok := index[label]; ok {
			rows[i].EventCount += count
			continue
		}

		if keepEventOnly && count > 0 {
			index[label] = len(rows)
			rows = append(rows, domain.DimensionBreakdownRow{Label: label, EventCount: count})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sessions > rows[j].Sessions
	})

	return rows
}

// ReviewEvents lista as ocorrências dos eventos informados por minuto com o contexto
// de página, origem, dispositivo e país. Sem eventos não há o que revisar.
func (s *GA4Service) ReviewEvents(ctx context.Context, tenant *domain.Tenant, startDate, endDate time.Time, eventNames []string) ([]domain.RawReviewEvent, error) {
	if len(eventNames) == 0 || tenant == nil || tenant.GA4PropertyID == "" {
		return nil, nil
	}

	resp, err := s.Client.RunReport(ctx, tenant.GA4PropertyID, &analyticsdata.RunReportRequest{
		DateRanges: dateRanges(startDate, endDate),
		Dimensions: dimensions(
			ga4domain.DimensionEventName,
			ga4domain.DimensionDateHourMinute,
			ga4domain.DimensionPagePath,
			ga4domain.DimensionSourceMedium,
			ga4domain.DimensionDeviceCategory,
			ga4domain.DimensionCountry,
		),
		Metrics:         metricsOf(ga4domain.MetricEventCount),
		DimensionFilter: eventNameFilter(eventNames),
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar eventos para revisão")
	}

	events := make([]domain.RawReviewEvent, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.DimensionValues) < 6 || len(row.MetricValues) < 1 {
			continue
		}

		minute, err := ga4domain.ParseReportMinute(row.DimensionValues[1].Value)
		if err != nil {
			logrus.WithError(err).Warn("Linha ignorada no relatório de revisão")
			continue
		}

		events = append(events, domain.RawReviewEvent{
			EventName:        row.DimensionValues[0].Value,
			OccurrenceMinute: minute,
			PagePath:         row.DimensionValues[2].Value,
			SourceMedium:     row.DimensionValues[3].Value,
			DeviceCategory:   row.DimensionValues[4].Value,
			Country:          row.DimensionValues[5].Value,
			EventCount:       ga4domain.ParseMetric(row.MetricValues[0].Value),
		})
	}

	return events, nil
}

func dateRanges(startDate, endDate time.Time) []*analyticsdata.DateRange {
	return []*analyticsdata.DateRange{
		{StartDate: startDate.Format(time.DateOnly), EndDate: endDate.Format(time.DateOnly)},
	}
}

func dimensions(names ...string) []*analyticsdata.Dimension {
	dims := make([]*analyticsdata.Dimension, 0, len(names))
	for _, name := range names {
		dims = append(dims, &analyticsdata.Dimension{Name: name})
	}

	return dims
}

func metricsOf(names ...string) []*analyticsdata.Metric {
	list := make([]*analyticsdata.Metric, 0, len(names))
	for _, name := range names {
		list = append(list, &analyticsdata.Metric{Name: name})
	}

	return list
}

func eventNameFilter(eventNames []string) *analyticsdata.FilterExpression {
	return &analyticsdata.FilterExpression{
		Filter: &analyticsdata.Filter{
			FieldName:    ga4domain.DimensionEventName,
			InListFilter: &analyticsdata.InListFilter{Values: eventNames},
		},
	}
}

func labelOf(value string) string {
	if value == "" {
		return ga4domain.NotSet
	}

	return value
}

func tenantID(tenant *domain.Tenant) string {
	if tenant == nil {
		return ""
	}

	return tenant.ID
}
