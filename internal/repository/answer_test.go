package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func answerRow(id, questionID uuid.UUID, likes int64) []any {
	return []any{id, questionID, "Because.", likes, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)}
}

func TestAnswerCreate(t *testing.T) {
	id, questionID := uuid.New(), uuid.New()
	db := newFakeDB().on(insertAnswerQuery, fakeResult{row: []any{id}})

	got, err := NewAnswerRepository(db).Create(context.Background(), model.NewAnswer{
		QuestionID: questionID.String(),
		Answer:     "Because.",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got != id {
		t.Fatalf("Create() = %s, want %s", got, id)
	}

	call, _ := db.call(insertAnswerQuery)
	if call.args[0] != questionID || call.args[1] != "Because." {
		t.Fatalf("insert args = %v", call.args)
	}
}

func TestAnswerCreateInvalidQuestionID(t *testing.T) {
	for _, raw := range malformedIDs {
		t.Run(raw, func(t *testing.T) {
			db := newFakeDB()
			_, err := NewAnswerRepository(db).Create(context.Background(), model.NewAnswer{QuestionID: raw, Answer: "x"})
			assertKind(t, err, errs.InvalidUUID)
			if n := len(db.statements()); n != 0 {
				t.Fatalf("expected no insert, got %d statements", n)
			}
		})
	}
}

func TestAnswerCreateUnknownQuestion(t *testing.T) {
	fkErr := &pgconn.PgError{
		Code:           "23503",
		Message:        `insert or update on table "answers" violates foreign key constraint "answers_question_id_fkey"`,
		TableName:      "answers",
		ConstraintName: "answers_question_id_fkey",
	}
	db := newFakeDB().on(insertAnswerQuery, fakeResult{err: fkErr})

	_, err := NewAnswerRepository(db).Create(context.Background(), model.NewAnswer{
		QuestionID: uuid.NewString(),
		Answer:     "orphan",
	})
	assertKind(t, err, errs.Creation)

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		t.Fatalf("expected the foreign key violation to stay reachable, got %v", err)
	}
}

func TestAnswerGet(t *testing.T) {
	id, questionID := uuid.New(), uuid.New()
	db := newFakeDB().on(getAnswerQuery, fakeResult{row: answerRow(id, questionID, 7)})

	a, err := NewAnswerRepository(db).Get(context.Background(), model.NewEntityID(id.String()))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if a.ID != id || a.QuestionID != questionID || a.Answer != "Because." || a.Likes != 7 || a.CreatedAt.IsZero() {
		t.Fatalf("Get() = %+v", a)
	}
}

func TestAnswerGetErrors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		raw    string
		result fakeResult
		want   errs.DbErrorKind
	}{
		{"malformed id", "answer-1", fakeResult{}, errs.InvalidUUID},
		{"no rows", id.String(), fakeResult{}, errs.NotFound},
		{"question id not a uuid", id.String(), fakeResult{row: []any{id, "q-1", "a", int64(0), time.Now()}}, errs.FromRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newFakeDB().on(getAnswerQuery, tt.result)
			_, err := NewAnswerRepository(db).Get(context.Background(), model.NewEntityID(tt.raw))
			assertKind(t, err, tt.want)
		})
	}
}

func TestAnswerListByQuestion(t *testing.T) {
	questionID := uuid.New()
	rows := [][]any{
		answerRow(uuid.New(), questionID, 0),
		answerRow(uuid.New(), questionID, 2),
	}
	db := newFakeDB().on(listAnswersByQuestionQuery, fakeResult{rows: rows})

	answers, err := NewAnswerRepository(db).ListByQuestion(context.Background(), model.NewEntityID(questionID.String()))
	if err != nil {
		t.Fatalf("ListByQuestion() error = %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("ListByQuestion() returned %d answers, want 2", len(answers))
	}

	call, _ := db.call(listAnswersByQuestionQuery)
	if len(call.args) != 1 || call.args[0] != questionID {
		t.Fatalf("list args = %v, want [%s]", call.args, questionID)
	}
}

func TestAnswerListByQuestionErrors(t *testing.T) {
	t.Run("malformed question id", func(t *testing.T) {
		db := newFakeDB()
		_, err := NewAnswerRepository(db).ListByQuestion(context.Background(), model.NewEntityID("nope"))
		assertKind(t, err, errs.InvalidUUID)
		if n := len(db.statements()); n != 0 {
			t.Fatalf("expected no statements, got %d", n)
		}
	})

	t.Run("unknown question is empty", func(t *testing.T) {
		db := newFakeDB()
		answers, err := NewAnswerRepository(db).ListByQuestion(context.Background(), model.NewEntityID(uuid.NewString()))
		if err != nil {
			t.Fatalf("ListByQuestion() error = %v", err)
		}
		if answers == nil || len(answers) != 0 {
			t.Fatalf("ListByQuestion() = %#v, want empty non-nil slice", answers)
		}
	})
}

func TestAnswerListAll(t *testing.T) {
	rows := [][]any{
		answerRow(uuid.New(), uuid.New(), 0),
		answerRow(uuid.New(), uuid.New(), 1),
		answerRow(uuid.New(), uuid.New(), 2),
	}

	db := newFakeDB().on(listAllAnswersQuery, fakeResult{rows: rows})
	answers, err := NewAnswerRepository(db).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("ListAll() returned %d answers, want 3", len(answers))
	}

	failing := newFakeDB().on(listAllAnswersQuery, fakeResult{err: errors.New("connection refused")})
	_, err = NewAnswerRepository(failing).ListAll(context.Background())
	assertKind(t, err, errs.Access)

	broken := newFakeDB().on(listAllAnswersQuery, fakeResult{rows: [][]any{{uuid.New()}}})
	_, err = NewAnswerRepository(broken).ListAll(context.Background())
	assertKind(t, err, errs.FromRow)
}

func TestAnswerDelete(t *testing.T) {
	id := uuid.New()

	t.Run("existing", func(t *testing.T) {
		db := newFakeDB().
			on(lockAnswerQuery, fakeResult{row: []any{id}}).
			on(deleteAnswerQuery, fakeResult{row: []any{id}})

		deleted, err := NewAnswerRepository(db).Delete(context.Background(), model.NewEntityID(id.String()))
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if deleted != id || db.committed != 1 {
			t.Fatalf("Delete() = %s committed=%d", deleted, db.committed)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db := newFakeDB()
		_, err := NewAnswerRepository(db).Delete(context.Background(), model.NewEntityID(id.String()))
		assertKind(t, err, errs.NotFound)
		if _, issued := db.call(deleteAnswerQuery); issued {
			t.Fatalf("delete must not run when the row does not exist")
		}
		if db.rolledBack != 1 {
			t.Fatalf("expected rollback")
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		db := newFakeDB().
			on(lockAnswerQuery, fakeResult{row: []any{id}}).
			on(deleteAnswerQuery, fakeResult{err: errors.New("statement timeout")})
		_, err := NewAnswerRepository(db).Delete(context.Background(), model.NewEntityID(id.String()))
		assertKind(t, err, errs.Deletion)
		if db.committed != 0 || db.rolledBack != 1 {
			t.Fatalf("committed=%d rolledBack=%d, want 0/1", db.committed, db.rolledBack)
		}
	})
}

func TestAnswerIncrementLikes(t *testing.T) {
	id := uuid.New()

	t.Run("existing", func(t *testing.T) {
		db := newFakeDB().on(lockAnswerLikesQuery, fakeResult{row: []any{int64(0)}})
		if err := NewAnswerRepository(db).IncrementLikes(context.Background(), model.NewEntityID(id.String())); err != nil {
			t.Fatalf("IncrementLikes() error = %v", err)
		}
		call, ok := db.call(updateAnswerLikesQuery)
		if !ok || call.args[1] != int64(1) {
			t.Fatalf("update args = %v", call.args)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db := newFakeDB()
		err := NewAnswerRepository(db).IncrementLikes(context.Background(), model.NewEntityID(id.String()))
		assertKind(t, err, errs.NotFound)
		if _, issued := db.call(updateAnswerLikesQuery); issued {
			t.Fatalf("update must not run when the row does not exist")
		}
	})

	t.Run("commit failure", func(t *testing.T) {
		db := newFakeDB().on(lockAnswerLikesQuery, fakeResult{row: []any{int64(9)}})
		db.commitErr = errors.New("connection lost")
		err := NewAnswerRepository(db).IncrementLikes(context.Background(), model.NewEntityID(id.String()))
		assertKind(t, err, errs.Commit)
	})

	t.Run("malformed id", func(t *testing.T) {
		db := newFakeDB()
		err := NewAnswerRepository(db).IncrementLikes(context.Background(), model.NewEntityID("1234"))
		assertKind(t, err, errs.InvalidUUID)
		if db.begun != 0 {
			t.Fatalf("expected no transaction")
		}
	})
}
