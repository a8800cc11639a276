package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB que os repositórios enxergam, o que
// permite trocar a conexão por uma transação sem mudar o repositório
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) *sql.Row
}
