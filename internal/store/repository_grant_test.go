package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/search"
	"github.com/webdev-team/access-server/models"
)

func newTestGrantRepo(t *testing.T) (*grantRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &grantRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func grantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"grant_id", "access_id", "user_id", "permission_level"})
}

func TestSearchGrants_NoPredicates(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := grantRows().
		AddRow(1, 5, 7, "lead").
		AddRow(2, 5, 8, nil)

	mock.ExpectQuery("SELECT grant_id, access_id, user_id, permission_level FROM user_access").
		WillReturnRows(rows)

	grants, err := repo.SearchGrants(context.Background(), models.GrantSearch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grants) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(grants))
	}
	if grants[0].PermissionLevel == nil || *grants[0].PermissionLevel != "lead" {
		t.Errorf("expected permission_level lead, got %v", grants[0].PermissionLevel)
	}
	if grants[1].PermissionLevel != nil {
		t.Errorf("expected nil permission_level, got %v", *grants[1].PermissionLevel)
	}
}

func TestSearchGrants_WithPredicates(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	grantSearch := models.GrantSearch{
		AccessID: search.Exact[int64](5),
		UserID:   search.Exact[int64](7),
	}

	rows := grantRows().AddRow(1, 5, 7, "lead")

	mock.ExpectQuery("WHERE access_id = \\$1 AND user_id = \\$2").
		WithArgs(int64(5), int64(7)).
		WillReturnRows(rows)

	grants, err := repo.SearchGrants(context.Background(), grantSearch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant, got %d", len(grants))
	}
	if grants[0].GrantID != 1 {
		t.Errorf("expected grant_id=1, got %d", grants[0].GrantID)
	}
}

func TestSearchGrants_NoMatchesIsEmptyNotError(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT grant_id").
		WillReturnRows(grantRows())

	grants, err := repo.SearchGrants(context.Background(), models.GrantSearch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grants) != 0 {
		t.Fatalf("expected empty result, got %d grants", len(grants))
	}
}

func TestSearchGrants_QueryError(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT grant_id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.SearchGrants(context.Background(), models.GrantSearch{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSearchGrants_ScanError(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"grant_id"}).AddRow(1)

	mock.ExpectQuery("SELECT grant_id").
		WillReturnRows(rows)

	_, err := repo.SearchGrants(context.Background(), models.GrantSearch{})
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestCheckAccess_Exists(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (")).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(rows)

	granted, err := repo.CheckAccess(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !granted {
		t.Error("expected granted=true")
	}
}

func TestCheckAccess_Absent(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (")).
		WithArgs(int64(7), int64(99)).
		WillReturnRows(rows)

	granted, err := repo.CheckAccess(context.Background(), 7, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if granted {
		t.Error("expected granted=false")
	}
}

func TestCheckAccess_QueryError(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (")).
		WithArgs(int64(7), int64(3)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.CheckAccess(context.Background(), 7, 3)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateGrant_Success(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	level := "lead"
	rows := grantRows().AddRow(1, 5, 7, level)

	mock.ExpectQuery("INSERT INTO user_access").
		WithArgs(int64(5), int64(7), level).
		WillReturnRows(rows)

	grant, err := repo.CreateGrant(context.Background(), models.NewGrant{
		AccessID:        5,
		UserID:          7,
		PermissionLevel: &level,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant.GrantID != 1 {
		t.Errorf("expected grant_id=1, got %d", grant.GrantID)
	}
	if grant.PermissionLevel == nil || *grant.PermissionLevel != "lead" {
		t.Errorf("expected permission_level lead, got %v", grant.PermissionLevel)
	}
}

func TestCreateGrant_NilPermissionLevel(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := grantRows().AddRow(1, 5, 7, nil)

	mock.ExpectQuery("INSERT INTO user_access").
		WithArgs(int64(5), int64(7), nil).
		WillReturnRows(rows)

	grant, err := repo.CreateGrant(context.Background(), models.NewGrant{AccessID: 5, UserID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant.PermissionLevel != nil {
		t.Errorf("expected nil permission_level, got %v", *grant.PermissionLevel)
	}
}

func TestCreateGrant_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO user_access").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateGrant(context.Background(), models.NewGrant{AccessID: 5, UserID: 7})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestUpdateGrant_SetLevel(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := grantRows().AddRow(12, 5, 7, "read_only")

	mock.ExpectQuery("UPDATE user_access").
		WithArgs("read_only", int64(12)).
		WillReturnRows(rows)

	grant, err := repo.UpdateGrant(context.Background(), 12, models.PartialGrant{
		PermissionLevel: models.OptionalStringOf("read_only"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant.PermissionLevel == nil || *grant.PermissionLevel != "read_only" {
		t.Errorf("expected permission_level read_only, got %v", grant.PermissionLevel)
	}
}

func TestUpdateGrant_ClearLevel(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := grantRows().AddRow(12, 5, 7, nil)

	mock.ExpectQuery("UPDATE user_access").
		WithArgs(nil, int64(12)).
		WillReturnRows(rows)

	grant, err := repo.UpdateGrant(context.Background(), 12, models.PartialGrant{
		PermissionLevel: models.OptionalStringNull(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant.PermissionLevel != nil {
		t.Errorf("expected nil permission_level, got %v", *grant.PermissionLevel)
	}
}

func TestUpdateGrant_AbsentLevelFetchesCurrentRow(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	rows := grantRows().AddRow(12, 5, 7, "lead")

	mock.ExpectQuery("SELECT grant_id, access_id, user_id, permission_level").
		WithArgs(int64(12)).
		WillReturnRows(rows)

	grant, err := repo.UpdateGrant(context.Background(), 12, models.PartialGrant{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant.PermissionLevel == nil || *grant.PermissionLevel != "lead" {
		t.Errorf("expected permission_level lead, got %v", grant.PermissionLevel)
	}
}

func TestUpdateGrant_NotFound(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE user_access").
		WithArgs("lead", int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateGrant(context.Background(), 99, models.PartialGrant{
		PermissionLevel: models.OptionalStringOf("lead"),
	})
	if !errors.Is(err, ErrGrantNotFound) {
		t.Fatalf("expected ErrGrantNotFound, got %v", err)
	}
}

func TestDeleteGrant_Success(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM user_access").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteGrant(context.Background(), 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteGrant_NotFound(t *testing.T) {
	repo, mock, db := newTestGrantRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM user_access").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteGrant(context.Background(), 99)
	if !errors.Is(err, ErrGrantNotFound) {
		t.Fatalf("expected ErrGrantNotFound, got %v", err)
	}
}
