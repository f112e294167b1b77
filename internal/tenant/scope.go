// Package tenant confines queries to one company. Every table the service
// owns carries a company_id column.
package tenant

import "gorm.io/gorm"

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return ScopeAlias("", companyID)
}

// ScopeAlias qualifies company_id with a table name or alias for joined
// queries where the bare column would be ambiguous.
func ScopeAlias(alias, companyID string) func(db *gorm.DB) *gorm.DB {
	column := "company_id"
	if alias != "" {
		column = alias + ".company_id"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyID)
	}
}
