// Package gormstore persists asset records in MySQL through GORM.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/normalize"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/store"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assetRecord is the database row shape for one asset. Name and Hostname
// are nullable so the unique indexes permit any number of blank values,
// matching the in-memory store's conflict rules.
type assetRecord struct {
	ID                   string  `gorm:"primaryKey;size:36"`
	Name                 *string `gorm:"size:255;uniqueIndex"`
	Hostname             *string `gorm:"size:255;uniqueIndex"`
	IPAddress            string  `gorm:"column:ip_address;size:64;index"`
	DeviceType           string  `gorm:"size:64"`
	OSType               string  `gorm:"column:os_type;size:64"`
	ServiceType          string  `gorm:"size:64"`
	Port                 *int
	IsSecure             bool
	Status               string  `gorm:"size:32"`
	Environment          string  `gorm:"size:32"`
	Criticality          string  `gorm:"size:32"`
	CredentialType       string  `gorm:"size:64"`
	Username             string  `gorm:"size:255"`
	Password             string  `gorm:"size:512"`
	PrivateKey           string  `gorm:"type:text"`
	APIKey               string  `gorm:"column:api_key;size:512"`
	BearerToken          string  `gorm:"size:512"`
	Certificate          string  `gorm:"type:text"`
	DatabaseType         string  `gorm:"size:64"`
	DatabaseName         string  `gorm:"size:255"`
	SecondaryServiceType string  `gorm:"size:64"`
	FTPType              string  `gorm:"column:ftp_type;size:32"`
	Tags                 string  `gorm:"size:512"`
	Notes                string  `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (assetRecord) TableName() string { return "assets" }

// Store is the MySQL-backed record store.
type Store struct {
	db *gorm.DB
}

// New migrates the assets table and returns the store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&assetRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate assets table: %w", err)
	}
	return &Store{db: db}, nil
}

// Create inserts the record and assigns its ID. MySQL duplicate-key
// errors come back as store.ConflictError carrying the conflicting field.
func (s *Store) Create(ctx context.Context, a *models.Asset) error {
	row := toRow(a)
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err, a)
	}
	a.ID = row.ID
	return nil
}

// List returns a page of records ordered by creation time.
func (s *Store) List(ctx context.Context, offset, limit int) ([]*models.Asset, error) {
	var rows []assetRecord
	q := s.db.WithContext(ctx).Order("created_at, id").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	out := make([]*models.Asset, len(rows))
	for i := range rows {
		out[i] = fromRow(&rows[i])
	}
	return out, nil
}

// translate maps MySQL error 1062 (duplicate entry) onto ConflictError so
// the import report names the colliding field instead of echoing SQL.
func translate(err error, a *models.Asset) error {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		switch {
		case strings.Contains(mysqlErr.Message, "hostname"):
			return &store.ConflictError{Field: schema.FieldHostname, Value: a.Hostname}
		case strings.Contains(mysqlErr.Message, "name"):
			return &store.ConflictError{Field: schema.FieldName, Value: a.Name}
		default:
			return &store.ConflictError{}
		}
	}
	return fmt.Errorf("failed to create asset: %w", err)
}

func toRow(a *models.Asset) *assetRecord {
	return &assetRecord{
		ID:                   a.ID,
		Name:                 nullable(a.Name),
		Hostname:             nullable(a.Hostname),
		IPAddress:            a.IPAddress,
		DeviceType:           a.DeviceType,
		OSType:               a.OSType,
		ServiceType:          a.ServiceType,
		Port:                 a.Port,
		IsSecure:             a.IsSecure,
		Status:               a.Status,
		Environment:          a.Environment,
		Criticality:          a.Criticality,
		CredentialType:       a.CredentialType,
		Username:             a.Username,
		Password:             a.Password,
		PrivateKey:           a.PrivateKey,
		APIKey:               a.APIKey,
		BearerToken:          a.BearerToken,
		Certificate:          a.Certificate,
		DatabaseType:         a.DatabaseType,
		DatabaseName:         a.DatabaseName,
		SecondaryServiceType: a.SecondaryServiceType,
		FTPType:              a.FTPType,
		Tags:                 strings.Join(a.Tags, ","),
		Notes:                a.Notes,
	}
}

func fromRow(r *assetRecord) *models.Asset {
	return &models.Asset{
		ID:                   r.ID,
		Name:                 text(r.Name),
		Hostname:             text(r.Hostname),
		IPAddress:            r.IPAddress,
		DeviceType:           r.DeviceType,
		OSType:               r.OSType,
		ServiceType:          r.ServiceType,
		Port:                 r.Port,
		IsSecure:             r.IsSecure,
		Status:               r.Status,
		Environment:          r.Environment,
		Criticality:          r.Criticality,
		CredentialType:       r.CredentialType,
		Username:             r.Username,
		Password:             r.Password,
		PrivateKey:           r.PrivateKey,
		APIKey:               r.APIKey,
		BearerToken:          r.BearerToken,
		Certificate:          r.Certificate,
		DatabaseType:         r.DatabaseType,
		DatabaseName:         r.DatabaseName,
		SecondaryServiceType: r.SecondaryServiceType,
		FTPType:              r.FTPType,
		Tags:                 normalize.SplitList(r.Tags),
		Notes:                r.Notes,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
