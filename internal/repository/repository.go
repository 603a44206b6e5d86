// Package repository contains one repository per aggregate. Repositories hold
// a *gorm.DB handle; WithTx rebinds a repository to a caller-owned transaction
// so multi-aggregate operations commit or roll back as one unit.
package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds SELECT ... FOR UPDATE row locking. SQLite (used by the test
// suite) has no FOR UPDATE syntax; its writes already serialize on the
// database lock, so the clause is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
