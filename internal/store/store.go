// Package store is the persistence gateway: one interface per entity, each
// backed by gorm. Mutations run in a single transaction that also carries
// the audit row.
package store

import "gorm.io/gorm"

type Store struct {
	Articles   ArticleGateway
	Categories CategoryGateway
	Commands   CommandGateway
	Stocks     StockGateway
}

// New builds every gateway on the same database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		Articles:   NewArticleGateway(db),
		Categories: NewCategoryGateway(db),
		Commands:   NewCommandGateway(db),
		Stocks:     NewStockGateway(db),
	}
}
