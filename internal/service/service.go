// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs business operations inside
// a single transaction per request, and calls repository methods to
// interact with the data.
package service

import (
	"context"

	"github.com/medialogapp/medialog-server/internal/database"
)

// txRunner is the slice of database.Database the services use. Keeping
// it an interface lets tests substitute an in-memory runner.
type txRunner interface {
	Querier() database.Querier
	WithTx(ctx context.Context, fn func(q database.Querier) error) error
}
