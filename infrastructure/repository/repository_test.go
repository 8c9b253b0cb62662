package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

func TestBuildDeleteMissingRoutesQuery(t *testing.T) {
	tests := []struct {
		name     string
		keep     []string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "Sem rotas remove todas",
			keep:     nil,
			wantSQL:  "DELETE FROM cv_routes WHERE tenant_id = $1",
			wantArgs: []any{"t1"},
		},
		{
			name:     "Mantém apenas as rotas informadas",
			keep:     []string{"form_submit", "phone_tap"},
			wantSQL:  "DELETE FROM cv_routes WHERE tenant_id = $1 AND route_key NOT IN ($2,$3)",
			wantArgs: []any{"t1", "form_submit", "phone_tap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteMissingRoutesQuery("t1", tt.keep)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpsertRoutesQuery(t *testing.T) {
	routes := []*domain.CVRoute{
		{RouteKey: "form_submit", Label: "Formulário", Enabled: true, SortOrder: 0},
		{RouteKey: "phone_tap", Label: "Telefone", Enabled: false, SortOrder: 1},
	}

	query, args, err := buildUpsertRoutesQuery("t1", routes)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO cv_routes (tenant_id,route_key,label,enabled,sort_order) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")
	assert.Contains(t, query, "ON CONFLICT (tenant_id, route_key) DO UPDATE SET")
	assert.Len(t, args, 10)
	assert.Equal(t, "phone_tap", args[6])
}

func TestBuildUpdateStatusQuery(t *testing.T) {
	memo := "lead duplicado"
	hash := domain.RowHash("form_submit", "2025-03-01 10:15")

	withMemo, args, err := buildUpdateStatusQuery("t1", "2025-03", domain.ReviewUpdate{
		RowHash: hash,
		Status:  domain.ReviewStatusInvalid,
		Memo:    &memo,
	}, "inspetor")
	require.NoError(t, err)
	assert.Contains(t, withMemo, "memo = $")
	assert.Contains(t, args, memo)
	assert.Contains(t, args, hash)

	withoutMemo, _, err := buildUpdateStatusQuery("t1", "2025-03", domain.ReviewUpdate{
		RowHash: hash,
		Status:  domain.ReviewStatusValid,
	}, "inspetor")
	require.NoError(t, err)
	assert.NotContains(t, withoutMemo, "memo")
}

func TestBuildUpsertIngestedQuery_PreservesReviewColumns(t *testing.T) {
	rows := []*domain.CVReviewRow{
		{TenantID: "t1", YearMonth: "2025-03", RowHash: domain.RowHash("form_submit", "2025-03-01 10:15"),
			EventName: "form_submit", OccurrenceMinute: "2025-03-01 10:15", PagePath: "/contato", EventCount: 1},
	}

	query, args, err := buildUpsertIngestedQuery(rows)
	require.NoError(t, err)
	assert.Len(t, args, 10)
	assert.Contains(t, query, "ON CONFLICT (tenant_id, year_month, row_hash) DO UPDATE SET")
	assert.NotContains(t, query, "status =")
	assert.NotContains(t, query, "memo =")
}

func TestBatchReviewRows_StaysUnderParameterLimit(t *testing.T) {
	rows := make([]*domain.CVReviewRow, 7000)
	for i := range rows {
		minute := fmt.Sprintf("2025-03-%02d %02d:%02d", i%28+1, (i/60)%24, i%60)
		rows[i] = &domain.CVReviewRow{TenantID: "t1", YearMonth: "2025-03", RowHash: domain.RowHash("form_submit", minute),
			EventName: "form_submit", OccurrenceMinute: minute, EventCount: 1}
	}

	batches := batchReviewRows(rows, ingestBatchSize)
	require.Len(t, batches, 7)

	total := 0
	for _, batch := range batches {
		query, args, err := buildUpsertIngestedQuery(batch)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(args), 65535)
		assert.Len(t, args, len(batch)*10)
		assert.Contains(t, query, "ON CONFLICT (tenant_id, year_month, row_hash) DO UPDATE SET")
		total += len(batch)
	}
	assert.Equal(t, len(rows), total)
	assert.Same(t, rows[len(rows)-1], batches[6][len(batches[6])-1])

	small := batchReviewRows(rows[:3], ingestBatchSize)
	require.Len(t, small, 1)
	assert.Len(t, small[0], 3)
}

func TestBuildAcquireLockQuery(t *testing.T) {
	query, args, err := buildAcquireLockQuery("cv_refresh", "run-1", 10*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES ($1,$2,NOW() + ($3 * INTERVAL '1 second'),$4)")
	assert.Contains(t, query, "WHERE job_locks.locked_until < NOW() OR job_locks.owner = EXCLUDED.owner")
	assert.Contains(t, query, "RETURNING job, owner, locked_until, cursor")
	assert.Equal(t, []any{"cv_refresh", "run-1", int64(600), 0}, args)
}

func TestSummarizeStatusCounts(t *testing.T) {
	summary := summarizeStatusCounts([]statusDayCount{
		{Status: domain.ReviewStatusValid, Day: "2025-03-01", Count: 2},
		{Status: domain.ReviewStatusValid, Day: "2025-03-15", Count: 1},
		{Status: domain.ReviewStatusInvalid, Day: "2025-03-01", Count: 4},
		{Status: domain.ReviewStatusUnreviewed, Day: "2025-03-02", Count: 9},
	})

	assert.True(t, summary.HasReview())
	assert.Equal(t, 7, summary.Reviewed)
	assert.Equal(t, 3, summary.Valid)
	assert.Equal(t, 4, summary.Invalid)
	assert.Equal(t, map[string]int{"2025-03-01": 2, "2025-03-15": 1}, summary.ValidByDay)

	empty := summarizeStatusCounts(nil)
	assert.False(t, empty.HasReview())
	assert.NotNil(t, empty.ValidByDay)
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pq.Error{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pq.Error{Code: "23505"}))
	assert.False(t, isUndefinedTable(assert.AnError))
}
