package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "record not found", err: fmt.Errorf("load: %w", gorm.ErrRecordNotFound), want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindConflict},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: KindInternal},
		{name: "passes through", err: Forbidden("nope"), want: KindForbidden},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := KindOf(Translate(tc.err, "attempt"))
			if got != tc.want {
				t.Fatalf("KindOf(Translate()) = %s, want %s", got, tc.want)
			}
		})
	}
	if Translate(nil, "attempt") != nil {
		t.Fatal("Translate(nil) should be nil")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:         http.StatusBadRequest,
		KindInvalidState:       http.StatusBadRequest,
		KindProctoringDisabled: http.StatusBadRequest,
		KindForbidden:          http.StatusForbidden,
		KindNotFound:           http.StatusNotFound,
		KindConflict:           http.StatusConflict,
		KindInternal:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := HTTPStatus(kind); got != want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestPublicDetailHidesInternal(t *testing.T) {
	err := Internal(errors.New("dial tcp 10.0.0.3:5432: refused"), "failed to load attempt")
	if got := PublicDetail(err); got != "an unexpected error occurred" {
		t.Fatalf("PublicDetail leaked %q", got)
	}
	wrapped := fmt.Errorf("start: %w", Conflict("attempt already submitted"))
	if got := PublicDetail(wrapped); got != "attempt already submitted" {
		t.Fatalf("PublicDetail = %q", got)
	}
}
