package domain

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"time"
)

type ReviewStatus int

const (
	ReviewStatusUnreviewed ReviewStatus = 0
	ReviewStatusValid      ReviewStatus = 1
	ReviewStatusInvalid    ReviewStatus = 2
)

func (s ReviewStatus) IsValid() bool {
	return s == ReviewStatusUnreviewed || s == ReviewStatusValid || s == ReviewStatusInvalid
}

// OccurrenceMinuteLayout é o formato normalizado do minuto da ocorrência
const OccurrenceMinuteLayout = "2006-01-02 15:04"

var rowHashPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// RowHash é a chave de deduplicação de uma ocorrência: md5(evento|minuto)
func RowHash(eventName, occurrenceMinute string) string {
	sum := md5.Sum([]byte(eventName + "|" + occurrenceMinute))
	return hex.EncodeToString(sum[:])
}

func ValidRowHash(hash string) bool {
	return rowHashPattern.MatchString(hash)
}

// CVReviewRow é uma ocorrência deduplicada de evento de conversão sujeita a inspeção
type CVReviewRow struct {
	TenantID         string       `json:"tenant_id"`
	YearMonth        string       `json:"year_month"`
	RowHash          string       `json:"row_hash"`
	EventName        string       `json:"event_name"`
	OccurrenceMinute string       `json:"occurrence_minute"`
	PagePath         string       `json:"page_path"`
	SourceMedium     string       `json:"source_medium"`
	DeviceCategory   string       `json:"device_category"`
	Country          string       `json:"country"`
	EventCount       int          `json:"event_count"`
	Status           ReviewStatus `json:"status"`
	Memo             string       `json:"memo"`
	UpdatedBy        *string      `json:"updated_by"`
	UpdatedAt        *time.Time   `json:"updated_at"`
}

// Day retorna o dia (YYYY-MM-DD) da ocorrência
func (r *CVReviewRow) Day() string {
	if len(r.OccurrenceMinute) < 10 {
		return ""
	}

	return r.OccurrenceMinute[:10]
}

// RawReviewEvent é uma linha bruta do feed: uma por combinação de dimensões
type RawReviewEvent struct {
	EventName        string
	OccurrenceMinute string
	PagePath         string
	SourceMedium     string
	DeviceCategory   string
	Country          string
	EventCount       int
}

// ReviewSummary agrega os status gravados de um mês
type ReviewSummary struct {
	Reviewed   int            `json:"reviewed"`
	Valid      int            `json:"valid"`
	Invalid    int            `json:"invalid"`
	ValidByDay map[string]int `json:"valid_by_day"`
}

// HasReview indica que ao menos uma linha saiu do estado não revisado
func (s *ReviewSummary) HasReview() bool {
	return s != nil && s.Reviewed > 0
}

type ReviewUpdate struct {
	RowHash string       `json:"rowHash" validate:"required,rowhash"`
	Status  ReviewStatus `json:"status" validate:"oneof=0 1 2"`
	Memo    *string      `json:"memo,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReviewRowRequest struct {
	Tenant    string  `json:"tenant" validate:"required"`
	Month     string  `json:"month" validate:"required,datetime=2006-01"`
	UpdatedBy *string `json:"updatedBy,omitempty"`
	ReviewUpdate
}

type BulkUpdateReviewRequest struct {
	Tenant    string         `json:"tenant" validate:"required"`
	Month     string         `json:"month" validate:"required,datetime=2006-01"`
	Items     []ReviewUpdate `json:"items" validate:"required,min=1,max=500,dive"`
	UpdatedBy *string        `json:"updatedBy,omitempty"`
}

type BulkUpdateReviewResponse struct {
	Updated int `json:"updated"`
}

type CVReviewResponse struct {
	Rows []*CVReviewRow `json:"rows"`
}
