package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/reconciling"
	"github.com/vfg2006/cv-report-api/pkg/metrics"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

// CVRefreshJob identifica a cadeia no lock e no histórico de execuções
const CVRefreshJob = "cv_refresh_chain"

// CVRefreshChainConfig representa a configuração da cadeia de recálculo
type CVRefreshChainConfig struct {
	CronSchedule    string
	SyncEnabled     bool
	ChunkSize       int
	FollowUpDelay   time.Duration
	LockTTL         time.Duration
	MonthLookBack   int
	SnapshotMonths  int
	ResumeOnStartup bool
}

// CVRefreshChainService recalcula o CV efetivo dos tenants ativos em blocos. Cada execução
// processa um bloco a partir do cursor gravado e agenda a próxima até percorrer todos.
type CVRefreshChainService struct {
	scheduler      *gocron.Scheduler
	config         CVRefreshChainConfig
	tenantRepo     repository.TenantRepository
	lockRepo       repository.JobLockRepository
	snapshotRepo   repository.MonthlyCVSnapshotRepository
	eventCountRepo repository.EventCountRepository
	resolver       reconciling.Resolver

	now      func() time.Time
	newRunID func() (string, error)
	followUp func(owner string, delay time.Duration) error

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastOutcome         domain.JobOutcome
	lastRunID           string
}

// NewCVRefreshChainService cria a cadeia de recálculo a partir da config global
func NewCVRefreshChainService(
	tenantRepo repository.TenantRepository,
	lockRepo repository.JobLockRepository,
	snapshotRepo repository.MonthlyCVSnapshotRepository,
	eventCountRepo repository.EventCountRepository,
	resolver reconciling.Resolver,
	appConfig *config.Config,
) *CVRefreshChainService {
	chainConfig := CVRefreshChainConfig{
		CronSchedule:    appConfig.CVRefresh.CronSchedule,
		SyncEnabled:     appConfig.CVRefresh.Enabled,
		ChunkSize:       appConfig.CVRefresh.ChunkSize,
		FollowUpDelay:   appConfig.CVRefresh.FollowUpDelay,
		LockTTL:         appConfig.CVRefresh.LockTTL,
		MonthLookBack:   appConfig.CVRefresh.MonthLookBack,
		SnapshotMonths:  appConfig.CVRefresh.SnapshotMonths,
		ResumeOnStartup: appConfig.CVRefresh.ResumeOnStartup,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  chainConfig.CronSchedule,
		"chunk_size":     chainConfig.ChunkSize,
		"followup_delay": chainConfig.FollowUpDelay.String(),
		"lock_ttl":       chainConfig.LockTTL.String(),
		"sync_enabled":   chainConfig.SyncEnabled,
	}).Info("Configuração da cadeia de recálculo de CV carregada")

	s := &CVRefreshChainService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         chainConfig,
		tenantRepo:     tenantRepo,
		lockRepo:       lockRepo,
		snapshotRepo:   snapshotRepo,
		eventCountRepo: eventCountRepo,
		resolver:       resolver,
		now:            time.Now,
		newRunID:       utils.GenerateRunID,
	}
	s.followUp = s.scheduleFollowUp

	return s
}

// Start agenda a cadeia no cron e retoma uma cadeia interrompida quando configurado
func (s *CVRefreshChainService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cadeia de recálculo de CV desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da cadeia de recálculo de CV")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.StartChain)
	if err != nil {
		return fmt.Errorf("erro ao agendar cadeia de recálculo de CV: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.ResumeOnStartup {
		s.resumePending(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da cadeia de recálculo de CV")
		s.scheduler.Stop()
	}()

	return nil
}

// resumePending agenda a continuação de uma cadeia que parou no meio. Enquanto o lock
// antigo não expira a continuação é registrada como skipped.
func (s *CVRefreshChainService) resumePending(ctx context.Context) {
	lock, err := s.lockRepo.Get(ctx, CVRefreshJob)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar lock da cadeia de recálculo")
		return
	}

	if lock == nil || lock.Cursor == 0 {
		return
	}

	owner, err := s.newRunID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id de execução para retomar a cadeia")
		return
	}

	logrus.WithFields(logrus.Fields{
		"cursor":       lock.Cursor,
		"locked_until": lock.LockedUntil,
		"run_id":       owner,
	}).Info("Retomando cadeia de recálculo de CV interrompida")

	delay := s.config.FollowUpDelay
	if wait := lock.LockedUntil.Sub(s.now()); wait > delay {
		delay = wait
	}

	if err := s.followUp(owner, delay); err != nil {
		logrus.WithError(err).Warn("Erro ao agendar retomada da cadeia de recálculo")
	}
}

// StartChain inicia uma nova cadeia com um id de execução novo
func (s *CVRefreshChainService) StartChain() {
	owner, err := s.newRunID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar id de execução da cadeia de recálculo")
		return
	}

	if _, err := s.RunChunk(context.Background(), owner); err != nil {
		logrus.WithError(err).WithField("run_id", owner).Error("Erro na execução da cadeia de recálculo de CV")
	}
}

// RunChunk processa um bloco de tenants em nome do dono do lock
func (s *CVRefreshChainService) RunChunk(ctx context.Context, owner string) (domain.JobOutcome, error) {
	run := &domain.JobRun{
		Job:       CVRefreshJob,
		RunID:     owner,
		StartedAt: s.now(),
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("run_id", owner).Info("Cadeia de recálculo já em andamento neste processo, ignorando")
		return s.finish(ctx, run, domain.JobOutcomeSkipped, "execução local em andamento"), nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = run.StartedAt
	s.lastRunID = owner
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	lock, acquired, err := s.lockRepo.Acquire(ctx, CVRefreshJob, owner, s.config.LockTTL)
	if err != nil {
		s.finish(ctx, run, domain.JobOutcomeFailed, err.Error())
		return domain.JobOutcomeFailed, fmt.Errorf("erro ao adquirir lock da cadeia: %w", err)
	}

	if !acquired {
		logrus.WithField("run_id", owner).Info("Lock da cadeia de recálculo pertence a outra execução, ignorando")
		return s.finish(ctx, run, domain.JobOutcomeSkipped, "lock pertence a outra execução"), nil
	}

	run.Cursor = lock.Cursor
	statuses := []domain.TenantStatus{domain.TenantStatusActive}

	tenants, err := s.tenantRepo.ListTenantsPage(ctx, statuses, lock.Cursor, s.config.ChunkSize)
	if err != nil {
		s.finish(ctx, run, domain.JobOutcomeFailed, err.Error())
		return domain.JobOutcomeFailed, fmt.Errorf("erro ao listar tenants: %w", err)
	}

	total, err := s.tenantRepo.CountTenants(ctx, statuses)
	if err != nil {
		s.finish(ctx, run, domain.JobOutcomeFailed, err.Error())
		return domain.JobOutcomeFailed, fmt.Errorf("erro ao contar tenants: %w", err)
	}

	periods := s.periods()

	logrus.WithFields(logrus.Fields{
		"run_id":  owner,
		"cursor":  lock.Cursor,
		"tenants": len(tenants),
		"total":   total,
		"periods": periods,
	}).Info("Processando bloco da cadeia de recálculo de CV")

	for _, tenant := range tenants {
		s.refreshTenant(ctx, tenant, periods)
		run.Processed++
	}

	next := lock.Cursor + len(tenants)
	if len(tenants) > 0 && next < total {
		if err := s.lockRepo.SaveCursor(ctx, CVRefreshJob, owner, next, s.config.LockTTL); err != nil {
			s.finish(ctx, run, domain.JobOutcomeFailed, err.Error())
			return domain.JobOutcomeFailed, fmt.Errorf("erro ao gravar cursor da cadeia: %w", err)
		}
		run.Cursor = next

		if err := s.followUp(owner, s.config.FollowUpDelay); err != nil {
			// O cursor já está gravado; a próxima execução do cron retoma após o lock expirar
			logrus.WithError(err).WithField("run_id", owner).Error("Erro ao agendar continuação da cadeia")
		}

		return s.finish(ctx, run, domain.JobOutcomeContinued, ""), nil
	}

	s.cleanup(ctx)

	if err := s.lockRepo.Release(ctx, CVRefreshJob, owner); err != nil {
		logrus.WithError(err).WithField("run_id", owner).Warn("Erro ao liberar lock da cadeia de recálculo")
	}
	run.Cursor = 0

	return s.finish(ctx, run, domain.JobOutcomeCompleted, ""), nil
}

// refreshTenant recalcula os períodos do tenant e grava snapshots dos resultados completos
func (s *CVRefreshChainService) refreshTenant(ctx context.Context, tenant *domain.Tenant, periods []string) {
	for _, period := range periods {
		result, err := s.resolver.Refresh(ctx, tenant.ID, period)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id": tenant.ID,
				"period":    period,
			}).Error("Erro ao recalcular CV do tenant")
			continue
		}

		if result.Degraded {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenant.ID,
				"period":    period,
			}).Warn("Resultado degradado, snapshot não gravado")
			continue
		}

		snapshot := &domain.MonthlyCVSnapshot{
			TenantID: tenant.ID,
			Period:   period,
			Source:   result.Source,
			Total:    result.Total,
			Result:   result,
		}

		if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id": tenant.ID,
				"period":    period,
			}).Error("Erro ao gravar snapshot mensal de CV")
		}
	}
}

// cleanup aplica a retenção de snapshots e das contagens diárias ao fim da cadeia
func (s *CVRefreshChainService) cleanup(ctx context.Context) {
	if s.config.SnapshotMonths <= 0 {
		return
	}

	snapshots, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.SnapshotMonths)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
	}

	counts, err := s.eventCountRepo.DeleteOlderThan(ctx, s.config.SnapshotMonths*31)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover contagens diárias antigas")
	}

	logrus.WithFields(logrus.Fields{
		"snapshots_removed":    snapshots,
		"daily_counts_removed": counts,
	}).Info("Retenção da cadeia de recálculo aplicada")
}

// periods retorna o mês atual e os meses anteriores configurados
func (s *CVRefreshChainService) periods() []string {
	current := utils.YearMonthOf(s.now())

	periods := []string{current}
	for i := 1; i <= s.config.MonthLookBack; i++ {
		period, err := utils.ShiftYearMonth(current, -i)
		if err != nil {
			break
		}
		periods = append(periods, period)
	}

	return periods
}

func (s *CVRefreshChainService) finish(ctx context.Context, run *domain.JobRun, outcome domain.JobOutcome, message string) domain.JobOutcome {
	run.Outcome = outcome
	run.Message = message
	run.FinishedAt = s.now()

	if err := s.lockRepo.RecordRun(ctx, run); err != nil {
		logrus.WithError(err).WithField("run_id", run.RunID).Warn("Erro ao registrar execução da cadeia")
	}

	metrics.ChainRuns.WithLabelValues(string(outcome)).Inc()

	s.syncMutex.Lock()
	s.lastOutcome = outcome
	if outcome == domain.JobOutcomeCompleted {
		s.lastSyncCompletedAt = run.FinishedAt
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":    run.RunID,
		"outcome":   outcome,
		"processed": run.Processed,
		"cursor":    run.Cursor,
		"duration":  run.FinishedAt.Sub(run.StartedAt).String(),
	}).Info("Execução da cadeia de recálculo de CV finalizada")

	return outcome
}

// scheduleFollowUp agenda uma execução única da continuação com o mesmo dono do lock
func (s *CVRefreshChainService) scheduleFollowUp(owner string, delay time.Duration) error {
	// Execuções manuais podem acontecer com o cron desabilitado
	if !s.scheduler.IsRunning() {
		s.scheduler.StartAsync()
	}

	_, err := s.scheduler.
		Every(delay).
		StartAt(s.now().Add(delay)).
		LimitRunsTo(1).
		Tag(CVRefreshJob, owner).
		Do(func() {
			if _, err := s.RunChunk(context.Background(), owner); err != nil {
				logrus.WithError(err).WithField("run_id", owner).Error("Erro na continuação da cadeia de recálculo de CV")
			}
		})
	if err != nil {
		return fmt.Errorf("erro ao agendar continuação da cadeia: %w", err)
	}

	return nil
}

// TriggerManualSync inicia manualmente uma nova cadeia
func (s *CVRefreshChainService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cadeia de recálculo de CV já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando cadeia de recálculo de CV manualmente")
	go s.StartChain()
}

// GetStatus retorna o status atual da cadeia
func (s *CVRefreshChainService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"chunk_size":             s.config.ChunkSize,
		"last_run_id":            s.lastRunID,
		"last_outcome":           s.lastOutcome,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
