package service

import (
	"context"
)

// DatabaseInfoStorage reads metadata from the database catalog
type DatabaseInfoStorage interface {
	GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error)
	GetAllTables(ctx context.Context) ([]TableInfo, error)
	GetTablesList(ctx context.Context) ([]TableInfo, error)
	GetDatabaseStats(ctx context.Context) (*DatabaseStats, error)
	Close() error
}

// DatabaseInfoService wraps every storage result in an Envelope, failures
// are returned as values and never as errors.
type DatabaseInfoService interface {
	GetDatabaseInfo(ctx context.Context) *Envelope[*DatabaseInfo]
	GetAllTables(ctx context.Context) *Envelope[[]TableInfo]
	GetTablesList(ctx context.Context) *Envelope[[]TableInfo]
	GetDatabaseStats(ctx context.Context) *Envelope[*DatabaseStats]
}

type DatabaseInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	User    string `json:"user"`
}

type TableInfo struct {
	Schema      string  `json:"schemaname"`
	Table       string  `json:"tablename"`
	Owner       string  `json:"tableowner"`
	Tablespace  *string `json:"tablespace"`
	HasIndexes  bool    `json:"hasindexes"`
	HasRules    bool    `json:"hasrules"`
	HasTriggers bool    `json:"hastriggers"`
	RowSecurity bool    `json:"rowsecurity"`
}

type DatabaseStats struct {
	TotalTables  int `json:"totalTables"`
	TotalSchemas int `json:"totalSchemas"`
}
