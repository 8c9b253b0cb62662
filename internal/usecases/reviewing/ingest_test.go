package reviewing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cv-report-api/internal/domain"
)

func rawEvent(minute, page, source string) domain.RawReviewEvent {
	return domain.RawReviewEvent{
		EventName:        "form_submit",
		OccurrenceMinute: minute,
		PagePath:         page,
		SourceMedium:     source,
		EventCount:       3,
	}
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name       string
		raw        []domain.RawReviewEvent
		wantRows   int
		wantPage   string
		wantSource string
		wantDevice string
	}{
		{
			name: "Mesmo evento e minuto com páginas diferentes vira uma linha",
			raw: []domain.RawReviewEvent{
				rawEvent("2025-03-01 10:00", "/", "google / organic"),
				rawEvent("2025-03-01 10:00", "/contato", "google / organic"),
			},
			wantRows:   1,
			wantPage:   "/contato",
			wantSource: "google / organic",
		},
		{
			name: "Caminho específico mais longo vence",
			raw: []domain.RawReviewEvent{
				rawEvent("2025-03-01 10:00", "/contato/obrigado", ""),
				rawEvent("2025-03-01 10:00", "/contato", ""),
				rawEvent("2025-03-01 10:00", "(not set)", ""),
			},
			wantRows: 1,
			wantPage: "/contato/obrigado",
		},
		{
			name: "Raiz vence vazio e (not set)",
			raw: []domain.RawReviewEvent{
				rawEvent("2025-03-01 10:00", "(not set)", ""),
				rawEvent("2025-03-01 10:00", "/", ""),
			},
			wantRows: 1,
			wantPage: "/",
		},
		{
			name: "Origem não direta vence (direct) / (none)",
			raw: []domain.RawReviewEvent{
				rawEvent("2025-03-01 10:00", "/", "(direct) / (none)"),
				rawEvent("2025-03-01 10:00", "/", "yahoo / cpc"),
				rawEvent("2025-03-01 10:00", "/", "google / cpc"),
			},
			wantRows:   1,
			wantPage:   "/",
			wantSource: "yahoo / cpc",
		},
		{
			name: "Minutos diferentes geram linhas diferentes",
			raw: []domain.RawReviewEvent{
				rawEvent("2025-03-01 10:00", "/", ""),
				rawEvent("2025-03-01 10:01", "/", ""),
			},
			wantRows: 2,
			wantPage: "/",
		},
		{
			name: "Dispositivo usa o primeiro valor conhecido",
			raw: []domain.RawReviewEvent{
				{EventName: "form_submit", OccurrenceMinute: "2025-03-01 10:00", DeviceCategory: "(not set)"},
				{EventName: "form_submit", OccurrenceMinute: "2025-03-01 10:00", DeviceCategory: "mobile"},
				{EventName: "form_submit", OccurrenceMinute: "2025-03-01 10:00", DeviceCategory: "desktop"},
			},
			wantRows:   1,
			wantPage:   "",
			wantDevice: "mobile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Deduplicate("t1", "2025-03", tt.raw)

			require.Len(t, rows, tt.wantRows)
			first := rows[0]
			assert.Equal(t, 1, first.EventCount)
			assert.Equal(t, tt.wantPage, first.PagePath)
			assert.Equal(t, tt.wantSource, first.SourceMedium)
			if tt.wantDevice != "" {
				assert.Equal(t, tt.wantDevice, first.DeviceCategory)
			}
			assert.Equal(t, domain.RowHash(first.EventName, first.OccurrenceMinute), first.RowHash)
			assert.True(t, domain.ValidRowHash(first.RowHash))
			assert.Equal(t, domain.ReviewStatusUnreviewed, first.Status)
		})
	}
}

func TestDeduplicate_SortsByMinute(t *testing.T) {
	rows := Deduplicate("t1", "2025-03", []domain.RawReviewEvent{
		{EventName: "phone_tap", OccurrenceMinute: "2025-03-02 09:00"},
		{EventName: "form_submit", OccurrenceMinute: "2025-03-01 18:30"},
		{EventName: "", OccurrenceMinute: "2025-03-01 18:30"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-03-01 18:30", rows[0].OccurrenceMinute)
	assert.Equal(t, "phone_tap", rows[1].EventName)
}

func TestMergeStored(t *testing.T) {
	inspector := "ana"
	updatedAt := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	fresh := Deduplicate("t1", "2025-03", []domain.RawReviewEvent{
		{EventName: "form_submit", OccurrenceMinute: "2025-03-01 10:00", PagePath: "/contato"},
		{EventName: "form_submit", OccurrenceMinute: "2025-03-02 11:00", PagePath: "/"},
	})

	stored := []*domain.CVReviewRow{
		{
			TenantID:         "t1",
			YearMonth:        "2025-03",
			RowHash:          domain.RowHash("form_submit", "2025-03-01 10:00"),
			EventName:        "form_submit",
			OccurrenceMinute: "2025-03-01 10:00",
			PagePath:         "/",
			Status:           domain.ReviewStatusValid,
			Memo:             "cliente ligou",
			UpdatedBy:        &inspector,
			UpdatedAt:        &updatedAt,
		},
		{
			TenantID:         "t1",
			YearMonth:        "2025-03",
			RowHash:          domain.RowHash("form_submit", "2025-03-20 08:00"),
			EventName:        "form_submit",
			OccurrenceMinute: "2025-03-20 08:00",
			Status:           domain.ReviewStatusInvalid,
		},
	}

	merged := MergeStored(fresh, stored)

	require.Len(t, merged, 3)

	assert.Equal(t, domain.ReviewStatusValid, merged[0].Status)
	assert.Equal(t, "cliente ligou", merged[0].Memo)
	assert.Equal(t, "/contato", merged[0].PagePath, "colunas descritivas vêm do feed")
	assert.Equal(t, &inspector, merged[0].UpdatedBy)

	assert.Equal(t, domain.ReviewStatusUnreviewed, merged[1].Status)
	assert.Empty(t, merged[1].Memo)

	assert.Equal(t, "2025-03-20 08:00", merged[2].OccurrenceMinute)
	assert.Equal(t, domain.ReviewStatusInvalid, merged[2].Status)

	assert.Equal(t, domain.ReviewStatusUnreviewed, fresh[0].Status, "as linhas novas não são alteradas")
}
