package reviewing

import (
	"sort"
	"strings"

	"github.com/vfg2006/cv-report-api/internal/domain"
)

const notSet = "(not set)"

type reviewKey struct {
	event  string
	minute string
}

// Deduplicate colapsa as linhas brutas com o mesmo (evento, minuto) numa única ocorrência.
// O feed devolve uma linha por combinação de dimensões, então a mesma conversão pode repetir.
func Deduplicate(tenantID, ym string, raw []domain.RawReviewEvent) []*domain.CVReviewRow {
	index := make(map[reviewKey]*domain.CVReviewRow, len(raw))
	rows := make([]*domain.CVReviewRow, 0, len(raw))

	for _, event := range raw {
		if event.EventName == "" || event.OccurrenceMinute == "" {
			continue
		}

		key := reviewKey{event: event.EventName, minute: event.OccurrenceMinute}
		row, ok := index[key]
		if !ok {
			row = &domain.CVReviewRow{
				TenantID:         tenantID,
				YearMonth:        ym,
				RowHash:          domain.RowHash(event.EventName, event.OccurrenceMinute),
				EventName:        event.EventName,
				OccurrenceMinute: event.OccurrenceMinute,
				EventCount:       1,
				Status:           domain.ReviewStatusUnreviewed,
			}
			index[key] = row
			rows = append(rows, row)
		}

		row.PagePath = preferPagePath(row.PagePath, event.PagePath)
		row.SourceMedium = preferSourceMedium(row.SourceMedium, event.SourceMedium)
		row.DeviceCategory = firstKnown(row.DeviceCategory, event.DeviceCategory)
		row.Country = firstKnown(row.Country, event.Country)
	}

	sortRows(rows)
	return rows
}

func isUnknown(value string) bool {
	return value == "" || value == notSet
}

// pagePathRank: vazio/(not set) < "/" < caminho específico
func pagePathRank(path string) int {
	switch {
	case isUnknown(path):
		return 0
	case path == "/":
		return 1
	default:
		return 2
	}
}

func preferPagePath(current, candidate string) string {
	cr, nr := pagePathRank(current), pagePathRank(candidate)
	if nr > cr {
		return candidate
	}

	if nr == 2 && cr == 2 && len(candidate) > len(current) {
		return candidate
	}

	if cr == 0 && current == "" && candidate != "" {
		return candidate
	}

	return current
}

// isDirect cobre (direct) / (none), vazio e (not set)
func isDirect(sourceMedium string) bool {
	if isUnknown(sourceMedium) {
		return true
	}

	return strings.Contains(sourceMedium, "(direct)") || strings.Contains(sourceMedium, "(none)")
}

func preferSourceMedium(current, candidate string) string {
	if current == "" {
		return candidate
	}

	if isDirect(current) && !isDirect(candidate) {
		return candidate
	}

	return current
}

func firstKnown(current, candidate string) string {
	if !isUnknown(current) {
		return current
	}

	if !isUnknown(candidate) {
		return candidate
	}

	if current == "" {
		return candidate
	}

	return current
}

// MergeStored aplica status e memo gravados sobre as linhas novas, pelo hash. Linhas gravadas
// que o feed não devolveu mais continuam listadas para não esconder revisões já feitas.
func MergeStored(fresh, stored []*domain.CVReviewRow) []*domain.CVReviewRow {
	byHash := make(map[string]*domain.CVReviewRow, len(stored))
	for _, row := range stored {
		byHash[row.RowHash] = row
	}

	merged := make([]*domain.CVReviewRow, 0, len(fresh)+len(stored))
	seen := make(map[string]bool, len(fresh))

	for _, row := range fresh {
		out := *row
		if saved, ok := byHash[row.RowHash]; ok {
			out.Status = saved.Status
			out.Memo = saved.Memo
			out.UpdatedBy = saved.UpdatedBy
			out.UpdatedAt = saved.UpdatedAt
		} else {
			out.Status = domain.ReviewStatusUnreviewed
			out.Memo = ""
		}

		seen[row.RowHash] = true
		merged = append(merged, &out)
	}

	for _, row := range stored {
		if !seen[row.RowHash] {
			merged = append(merged, row)
		}
	}

	sortRows(merged)
	return merged
}

func sortRows(rows []*domain.CVReviewRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OccurrenceMinute != rows[j].OccurrenceMinute {
			return rows[i].OccurrenceMinute < rows[j].OccurrenceMinute
		}
		return rows[i].EventName < rows[j].EventName
	})
}
