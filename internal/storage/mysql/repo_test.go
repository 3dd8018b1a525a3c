package mysql_test

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
	mysqlrepo "github.com/AnthonyM972321/LuxuryBot/internal/storage/mysql"
)

func TestCreateProperty_ReturnsStringID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users_properties").
		WithArgs("uid-1", "Loft A", "apartment", "Nice, France", 1, 1, 2, "available", false, nil, "2026-08-29T10:00:00Z").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := mysqlrepo.New(db)
	id, err := repo.CreateProperty(context.Background(), "uid-1", domain.Property{
		Name: "Loft A", Type: domain.TypeApartment, Address: "Nice, France",
		Bedrooms: 1, Bathrooms: 1, Capacity: 2, Status: domain.StatusAvailable,
		CreatedAt: "2026-08-29T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "7" {
		t.Fatalf("expected normalized string id \"7\", got %q", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateProperty_ErrorIsRemoteUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users_properties").
		WillReturnError(errors.New("connection refused"))

	repo := mysqlrepo.New(db)
	_, err = repo.CreateProperty(context.Background(), "uid-1", domain.Property{Name: "x", CreatedAt: "t"})
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
}

func TestListProperties_ScansAndNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "type", "address", "bedrooms", "bathrooms", "capacity",
		"status", "imported", "platform", "created_at",
	}).AddRow(int64(7), "Loft A", "apartment", "Nice, France", 1, 1, 2, "available", false, nil, "2026-08-29T10:00:00Z").
		AddRow(int64(9), "Villa B", "villa", "Cannes", 3, 2, 6, "occupied", true, "Airbnb", "2026-08-29T11:00:00Z")

	mock.ExpectQuery("SELECT id, name, type, address").
		WithArgs("uid-1").
		WillReturnRows(rows)

	repo := mysqlrepo.New(db)
	got, err := repo.ListProperties(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != "7" || got[0].Type != domain.TypeApartment || got[0].Platform != "" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].ID != "9" || !got[1].Imported || got[1].Platform != "Airbnb" {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestGuideUpsert_SQLShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users_guides").
		WithArgs("uid-1", "7", "fr", `{"welcome":"Bienvenue","access":"","equipment":"","neighborhood":"","checkout":"","emergency":""}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := mysqlrepo.New(db)
	err = repo.CreateOrReplaceGuide(context.Background(), "uid-1", domain.Guide{
		PropertyID: "7", Language: "fr",
		Content: domain.GuideContent{Welcome: "Bienvenue"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
