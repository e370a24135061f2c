package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/XVDel0Saint/fameconnect/internal/common"
	"github.com/XVDel0Saint/fameconnect/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleUser() *models.User {
	return &models.User{
		FirstName:         "Ana",
		LastName:          "Cruz",
		Email:             "ana@x.com",
		UserName:          "anacruz",
		PasswordHash:      "$2a$10$hash",
		ParticipationType: models.ParticipationBuyer,
	}
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(first_name,\s*last_name,\s*email,\s*username,\s*password_hash,\s*participation_type\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(42))
	mock.ExpectQuery(insertQ).
		WithArgs("Ana", "Cruz", "ana@x.com", "anacruz", "$2a$10$hash", models.ParticipationBuyer).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), sampleUser())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.UserName != "anacruz" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: EmailConstraint}
	mock.ExpectQuery(insertQ).
		WithArgs("Ana", "Cruz", "ana@x.com", "anacruz", "$2a$10$hash", models.ParticipationBuyer).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), sampleUser())
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
	if !regexp.MustCompile(EmailConstraint).MatchString(err.Error()) {
		t.Fatalf("error should name the violated constraint, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs("Ana", "Cruz", "ana@x.com", "anacruz", "$2a$10$hash", models.ParticipationBuyer).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleUser())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestEmailExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\)\s*$`
	mock.ExpectQuery(q).WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.EmailExists(context.Background(), "ana@x.com")
	if err != nil {
		t.Fatalf("EmailExists error: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestUserNameExists_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\)\s*$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(errors.New("boom"))

	_, err := repo.UserNameExists(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error")
	}
}
