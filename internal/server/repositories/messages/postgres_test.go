package messages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+messages\s*\(id,\s*to_name,\s*msg_from,\s*msg_to,\s*message,\s*image\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+message_status,\s*created_at\s*$`

	rows := sqlmock.NewRows([]string{"message_status", "created_at"}).
		AddRow(false, time.Now())
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "Bob", "ann@example.com", "bob@example.com", "hi", "").
		WillReturnRows(rows)

	msg := &models.Message{ToName: "Bob", MsgFrom: "ann@example.com", MsgTo: "bob@example.com", Message: "hi"}
	got, err := repo.Create(context.Background(), msg)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.MessageStatus || got.CreatedAt.IsZero() {
		t.Fatalf("defaults not read back: %+v", got)
	}
}

func TestListSentBy_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "to_name", "msg_from", "msg_to", "message", "image", "message_status", "created_at"}).
		AddRow("m-2", "Bob", "ann@example.com", "bob@example.com", "later", "", false, time.Now()).
		AddRow("m-1", "Bob", "ann@example.com", "bob@example.com", "hi", "", false, time.Now().Add(-time.Minute))
	mock.ExpectQuery(`SELECT .* FROM messages WHERE msg_from = \$1 ORDER BY created_at DESC`).
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	got, err := repo.ListSentBy(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("ListSentBy error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-2" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestReassignEmail_UpdatesBothDirections(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE messages SET msg_from = \$2 WHERE msg_from = \$1`).
		WithArgs("old@example.com", "new@example.com").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE messages SET msg_to = \$2 WHERE msg_to = \$1`).
		WithArgs("old@example.com", "new@example.com").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.ReassignEmail(context.Background(), "old@example.com", "new@example.com"); err != nil {
		t.Fatalf("ReassignEmail error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestReassignEmail_FirstUpdateFails(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE messages SET msg_from`).
		WillReturnError(errors.New("db down"))

	if err := repo.ReassignEmail(context.Background(), "old@example.com", "new@example.com"); err == nil {
		t.Fatalf("expected error")
	}
}
