package gormstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/store"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCreate_AssignsID(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &Store{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `assets`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	port := 443
	a := &models.Asset{Name: "Srv1", Hostname: "srv1.local", ServiceType: "https", Port: &port}
	err := s.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
}

func TestCreate_HostnameConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &Store{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `assets`").WillReturnError(&mysqldriver.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'srv1.local' for key 'assets.idx_assets_hostname'",
	})
	mock.ExpectRollback()

	a := &models.Asset{Name: "Srv1", Hostname: "srv1.local"}
	err := s.Create(context.Background(), a)

	var conflict *store.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, schema.FieldHostname, conflict.Field)
	assert.Equal(t, "srv1.local", conflict.Value)
}

func TestCreate_NameConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &Store{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `assets`").WillReturnError(&mysqldriver.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'Srv1' for key 'assets.idx_assets_name'",
	})
	mock.ExpectRollback()

	a := &models.Asset{Name: "Srv1"}
	err := s.Create(context.Background(), a)

	var conflict *store.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, schema.FieldName, conflict.Field)
	assert.Equal(t, "Srv1", conflict.Value)
}

func TestCreate_OtherErrorWrapped(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &Store{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `assets`").WillReturnError(&mysqldriver.MySQLError{
		Number:  1205,
		Message: "Lock wait timeout exceeded",
	})
	mock.ExpectRollback()

	err := s.Create(context.Background(), &models.Asset{Name: "Srv1"})
	assert.Error(t, err)

	var conflict *store.ConflictError
	assert.False(t, errors.As(err, &conflict))
	assert.Contains(t, err.Error(), "failed to create asset")
}

func TestList_MapsRows(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &Store{db: db}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "hostname", "ip_address", "service_type", "port", "is_secure", "tags", "created_at", "updated_at"})
	rows.AddRow("id-1", "Srv1", "srv1.local", "10.0.0.1", "https", 443, true, "web,prod", now, now)
	rows.AddRow("id-2", nil, nil, "10.0.0.2", "ssh", 22, false, "", now, now)

	mock.ExpectQuery("SELECT \\* FROM `assets`").WillReturnRows(rows)

	records, err := s.List(context.Background(), 0, 10)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, "Srv1", records[0].Name)
	assert.Equal(t, "srv1.local", records[0].Hostname)
	assert.Equal(t, []string{"web", "prod"}, records[0].Tags)
	if assert.NotNil(t, records[0].Port) {
		assert.Equal(t, 443, *records[0].Port)
	}

	assert.Equal(t, "", records[1].Name)
	assert.Equal(t, "", records[1].Hostname)
	assert.Nil(t, records[1].Tags)
}
