package reconciling

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

// readAutomated monta as contagens diárias do mês a partir da tabela de contagens e busca no
// GA4 apenas os dias ausentes ou recentes com dados vencidos. O dia corrente nunca é gravado.
func (s *Service) readAutomated(ctx context.Context, tenant *domain.Tenant, ym string, eventNames []string) *domain.AutomatedDailyCounts {
	counts := domain.NewAutomatedDailyCounts()

	first, last, err := utils.MonthBounds(ym)
	if err != nil {
		return counts
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if first.After(today) {
		return counts
	}
	if last.After(today) {
		last = today
	}

	fields := logrus.Fields{
		"tenant_id":  tenant.ID,
		"start_date": first.Format(time.DateOnly),
		"end_date":   last.Format(time.DateOnly),
	}

	// 1. Buscar as contagens gravadas para o período
	stored := map[string]*domain.DailyEventCountEntry{}
	entries, err := s.eventCountRepo.GetByDateRange(ctx, tenant.ID, first, last)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("Erro ao buscar contagens diárias do banco de dados")
	}
	for _, entry := range entries {
		stored[entry.Date] = entry
	}

	// 2. Determinar os dias a buscar do GA4
	var pending []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if s.needsFetch(stored[day.Format(time.DateOnly)], day, today, now) {
			pending = append(pending, day)
		}
	}

	if len(pending) > 0 {
		fetchStart, fetchEnd := pending[0], pending[len(pending)-1]

		logrus.WithFields(fields).WithFields(logrus.Fields{
			"pending_days":  len(pending),
			"first_pending": fetchStart.Format(time.DateOnly),
			"last_pending":  fetchEnd.Format(time.DateOnly),
		}).Info("Buscando contagens diárias do GA4 para dias faltantes")

		fresh := s.ga4Service.DailyEventCounts(ctx, tenant, fetchStart, fetchEnd, eventNames)
		if fresh == nil || fresh.Degraded {
			// Sem gravar: os dias ficam com o que já havia no banco
			counts.Degraded = true
		} else {
			s.storeFresh(ctx, tenant, pending, fresh, today, stored)
		}
	}

	// 3. Montar as contagens a partir das entradas do banco e das recém buscadas
	for date, entry := range stored {
		for event, n := range entry.Counts {
			counts.Add(event, date, n)
		}
	}

	return counts
}

// needsFetch indica dia ausente, o dia corrente, ou dia ainda em assentamento com dados vencidos
func (s *Service) needsFetch(entry *domain.DailyEventCountEntry, day, today, now time.Time) bool {
	if entry == nil || !day.Before(today) {
		return true
	}

	settling := today.Sub(day) < time.Duration(s.cfg.GA4.SettleDays)*24*time.Hour
	return settling && now.Sub(entry.UpdatedAt) > s.cfg.GA4.DailyCountsTTL
}

func (s *Service) storeFresh(
	ctx context.Context,
	tenant *domain.Tenant,
	pending []time.Time,
	fresh *domain.AutomatedDailyCounts,
	today time.Time,
	stored map[string]*domain.DailyEventCountEntry,
) {
	byDay := map[string]map[string]int{}
	for event, days := range fresh.Counts {
		for date, n := range days {
			if byDay[date] == nil {
				byDay[date] = map[string]int{}
			}
			byDay[date][event] = n
		}
	}

	for _, day := range pending {
		date := day.Format(time.DateOnly)

		entry := &domain.DailyEventCountEntry{
			TenantID:  tenant.ID,
			Date:      date,
			Counts:    byDay[date],
			UpdatedAt: s.now(),
		}
		if entry.Counts == nil {
			entry.Counts = map[string]int{}
		}
		stored[date] = entry

		if day.Equal(today) {
			continue
		}

		if err := s.eventCountRepo.SaveOrUpdate(ctx, entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id": tenant.ID,
				"date":      date,
			}).Warn("Erro ao salvar contagens diárias no banco de dados")
		}
	}
}
