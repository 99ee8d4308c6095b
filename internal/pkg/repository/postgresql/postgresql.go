package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
	Verbose    bool
}

// Database wraps the bun connection so repositories can embed it and share
// the claims/validation/soft-delete helpers.
type Database struct {
	*bun.DB
}

func NewDatabase(cfg Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(cfg.Verbose)))

	return &Database{DB: db}
}

// CheckClaims retrieves the authenticated claims from the context. Any role
// listed in denied is rejected with 403.
func (d Database) CheckClaims(ctx context.Context, denied ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}

	for _, role := range denied {
		if claims.Role == role {
			return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
		}
	}

	return claims, nil
}

// ValidateStruct checks required request fields before touching the database.
func (d Database) ValidateStruct(data interface{}, requiredFields ...string) error {
	return web.RequiredFields(data, requiredFields...)
}

// DeleteRow soft deletes a row by stamping deleted_at/deleted_by.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().Table(table).Where("deleted_at IS NULL AND id = ?", id)
	q.Set("deleted_at = ?", time.Now())
	q.Set("deleted_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusBadRequest)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return web.NewRequestError(errors.New("row not found"), http.StatusNotFound)
	}

	return nil
}
