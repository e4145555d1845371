package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestHandleErrorDbErrors(t *testing.T) {
	fk := &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		TableName:      "answers",
		ConstraintName: "answers_question_id_fkey",
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "invalid uuid",
			err:        errs.NewInvalidUUIDError(),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_UUID",
		},
		{
			name:       "question not found",
			err:        errs.NewDbError(errs.NotFound, "question not found", pgx.ErrNoRows).ForEntity("question"),
			wantStatus: http.StatusNotFound,
			wantCode:   "QUESTION_NOT_FOUND",
			wantMsg:    "Question not found",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get answer: %w", errs.NewDbError(errs.NotFound, "answer not found", pgx.ErrNoRows).ForEntity("answer")),
			wantStatus: http.StatusNotFound,
			wantCode:   "ANSWER_NOT_FOUND",
		},
		{
			name:       "creation with foreign key violation",
			err:        errs.NewDbError(errs.Creation, "failed to create answer", fk),
			wantStatus: http.StatusBadRequest,
			wantCode:   "ANSWER_NOT_FOUND",
			wantMsg:    "The referenced Question does not exist",
		},
		{
			name:       "creation without driver detail",
			err:        errs.NewDbError(errs.Creation, "failed to create question", errors.New("conn closed")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "access",
			err:        errs.NewDbError(errs.Access, "failed to list questions", errors.New("conn refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "commit",
			err:        errs.NewDbError(errs.Commit, "failed to commit transaction", errors.New("conn lost")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asHTTPError(t, HandleError(tt.err))
			if got.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && got.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleErrorPgErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *pgconn.PgError
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: "23505", TableName: "questions", ConstraintName: "questions_title_key"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "QUESTION_ALREADY_EXISTS",
			wantMsg:    "A Question with this Title already exists",
		},
		{
			name:       "not null violation",
			err:        &pgconn.PgError{Code: "23502", TableName: "answers", ColumnName: "answer"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ANSWER_REQUIRED",
			wantMsg:    "The Answer is required",
		},
		{
			name:       "check violation",
			err:        &pgconn.PgError{Code: "23514", TableName: "questions", ColumnName: "likes"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "QUESTION_INVALID",
		},
		{
			name:       "deadlock",
			err:        &pgconn.PgError{Code: "40P01"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asHTTPError(t, HandleError(tt.err))
			if got.Status != tt.wantStatus || got.Code != tt.wantCode {
				t.Errorf("got %d %q, want %d %q", got.Status, got.Code, tt.wantStatus, tt.wantCode)
			}
			if tt.wantMsg != "" && got.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleErrorPassthroughAndFallbacks(t *testing.T) {
	original := errs.NewBadRequestError("bad", true, nil, nil, nil)
	if got := HandleError(original); got != error(original) {
		t.Fatalf("HTTPError should pass through unchanged, got %v", got)
	}

	if got := asHTTPError(t, HandleError(pgx.ErrNoRows)); got.Status != http.StatusNotFound {
		t.Fatalf("ErrNoRows status = %d", got.Status)
	}

	if got := asHTTPError(t, HandleError(errors.New("boom"))); got.Status != http.StatusInternalServerError {
		t.Fatalf("unknown error status = %d", got.Status)
	}
}

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"40P01": DeadlockDetected,
		"XX000": Other,
	}
	for sqlstate, want := range tests {
		if got := MapCode(sqlstate); got != want {
			t.Errorf("MapCode(%q) = %q, want %q", sqlstate, got, want)
		}
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	if got := ErrCode(fmt.Errorf("insert: %w", converted)); got != UniqueViolation {
		t.Fatalf("ErrCode() = %q, want %q", got, UniqueViolation)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Fatalf("ErrCode() = %q, want %q", got, Other)
	}

	var pgErr *pgconn.PgError
	if !errors.As(converted, &pgErr) {
		t.Fatalf("converted error should unwrap to the driver error")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"unique_questions_title": "title",
		"questions_title_key":    "title",
		"answers_answer_ukey":    "answer",
		"questions_pkey":         "",
		"":                       "",
	}
	for constraint, want := range tests {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", constraint, got, want)
		}
	}
}
