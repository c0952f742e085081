package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/repository"
)

type ReportService interface {
	Get(ctx context.Context, id uint) (*dto.ReportResponse, error)
	List(ctx context.Context, q dto.ListReportsQuery) (*dto.Page[dto.ReportResponse], error)
}

type reportService struct {
	store repository.Store
	cache *cache.Cache
}

func NewReportService(store repository.Store, c *cache.Cache) ReportService {
	return &reportService{store: store, cache: c}
}

func (s *reportService) Get(ctx context.Context, id uint) (*dto.ReportResponse, error) {
	r, err := s.store.Reports().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Translate(err, "report")
	}
	resp := toReportResponse(r)
	return &resp, nil
}

func (s *reportService) List(ctx context.Context, q dto.ListReportsQuery) (*dto.Page[dto.ReportResponse], error) {
	page := q.Pagination.Normalize()
	filter := repository.ReportFilter{AssessmentID: q.AssessmentID}
	params := url.Values{
		"page":  {strconv.Itoa(page.Page)},
		"limit": {strconv.Itoa(page.Limit)},
	}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return nil, apperror.Validation("userId must be a UUID")
		}
		filter.UserID = &id
		params.Set("userId", id.String())
	}
	if q.AssessmentID != 0 {
		params.Set("assessmentId", strconv.FormatUint(uint64(q.AssessmentID), 10))
	}

	key := cache.ListKey(s.cache.Namespace(ctx, cache.ReportListNamespace), params)
	return cache.Remember(ctx, s.cache, key, cache.ListTTL, func(ctx context.Context) (*dto.Page[dto.ReportResponse], error) {
		reports, total, err := s.store.Reports().List(ctx, filter, page.Limit, page.SQLOffset())
		if err != nil {
			return nil, apperror.Translate(err, "reports")
		}
		data := make([]dto.ReportResponse, 0, len(reports))
		for i := range reports {
			data = append(data, toReportResponse(&reports[i]))
		}
		return &dto.Page[dto.ReportResponse]{Data: data, Page: page.Page, Limit: page.Limit, Total: total}, nil
	})
}
