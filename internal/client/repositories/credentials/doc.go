// Package credentials persists session credentials (tokens and the cached
// user profile) as key/value rows in the local SQLite database.
//
// SQLiteRepository works over a dbx.DBTX, so the same code runs against a
// *sql.DB or inside a transaction started with dbx.WithTx:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := credentials.NewSQLiteRepository(tx)
//	    return repo.Set(ctx, "k", []byte("v"))
//	})
package credentials
