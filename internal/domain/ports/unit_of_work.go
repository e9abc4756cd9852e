package ports

import "context"

// UnitOfWork define la interfaz para el manejo de transacciones.
// WithTransaction ejecuta fn dentro de una transacción: commit si fn
// devuelve nil, rollback en caso contrario.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
