package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Collection names double as query cache keys and table names.
const (
	CollectionAccounts    = "accounts"
	CollectionUsers       = "users"
	CollectionVendors     = "vendors"
	CollectionDepartments = "departments"
	CollectionEmployees   = "employees"
)
