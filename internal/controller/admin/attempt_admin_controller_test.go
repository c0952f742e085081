package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/internal/apperror"
	"github.com/lshigami/examcore/internal/dto"
	"github.com/lshigami/examcore/internal/service"
)

type fakeScoring struct {
	calls int
	err   error
}

func (f *fakeScoring) Score(_ context.Context, attemptID uint) (*dto.ScoreResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ScoreResult{AttemptID: attemptID, ReportID: 3, Score: 4.5, MaxPossibleScore: 7}, nil
}

type fakeProctoring struct {
	penalty float64
}

func (f *fakeProctoring) IngestLogs(context.Context, dto.IngestProctoringLogsRequest) (*service.IngestResult, error) {
	return nil, nil
}

func (f *fakeProctoring) ComputePenalty(context.Context, uint) (float64, error) {
	return f.penalty, nil
}

func newRouter(sc *fakeScoring, pc *fakeProctoring) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewAttemptAdminController(sc, pc)
	r.POST("/admin/attempts/:id/score", c.RescoreAttempt)
	r.GET("/admin/attempts/:id/penalty", c.GetPenalty)
	return r
}

func TestRescoreAttempt(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "scored", path: "/admin/attempts/12/score", wantStatus: http.StatusOK, wantCalls: 1},
		{name: "still in progress", path: "/admin/attempts/12/score", err: apperror.InvalidState("Attempt is not submitted"), wantStatus: http.StatusBadRequest, wantCalls: 1},
		{name: "unknown attempt", path: "/admin/attempts/12/score", err: apperror.NotFound("attempt not found"), wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "bad id", path: "/admin/attempts/x/score", wantStatus: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := &fakeScoring{err: tc.err}
			w := httptest.NewRecorder()
			newRouter(sc, &fakeProctoring{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if sc.calls != tc.wantCalls {
				t.Fatalf("Score called %d times, want %d", sc.calls, tc.wantCalls)
			}
			if tc.wantStatus != http.StatusOK {
				return
			}
			var resp dto.RescoreResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Result.AttemptID != 12 || resp.Result.ReportID != 3 {
				t.Fatalf("unexpected result %+v", resp.Result)
			}
		})
	}
}

func TestGetPenalty(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(&fakeScoring{}, &fakeProctoring{penalty: 17}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/attempts/5/penalty", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.PenaltyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AttemptID != 5 || resp.Penalty != 17 {
		t.Fatalf("resp = %+v", resp)
	}
}
