package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/storehub/internal/domain"
	storeerrors "github.com/abgdnv/storehub/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// allowedFields is the whitelist of column names accepted in dynamic filter
// and sort clauses. Anything else never reaches the query builder.
var allowedFields = map[string]struct{}{
	"id":          {},
	"name":        {},
	"address":     {},
	"city":        {},
	"country":     {},
	"postal_code": {},
	"phone":       {},
	"email":       {},
	"is_active":   {},
	"created_at":  {},
	"updated_at":  {},
}

const storeColumns = "id, name, address, city, country, postal_code, phone, email, is_active, created_at, updated_at"

// PgStore implements StoreRepository using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of StoreRepository using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a store by its unique identifier.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*domain.Store, error) {
	row := p.db.QueryRow(ctx, "SELECT "+storeColumns+" FROM stores WHERE id = $1", id)
	s, err := scanStore(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storeerrors.ErrStoreNotFound
		}
		return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreFind, err)
	}
	return s, nil
}

// FindAll retrieves stores matching the given exact-match filters, ordered by
// the sort keys in the order given. Both field sets are validated against the
// whitelist before any query executes.
func (p *PgStore) FindAll(ctx context.Context, filters map[string]any, sort []SortKey) ([]*domain.Store, error) {
	query, args, err := buildFindAllQuery(filters, sort)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreFind, err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreFind, err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreFind, err)
	}
	return stores, nil
}

// Save routes to create or update depending on whether the store has an
// identity, then re-fetches the row so the returned entity reflects
// storage-assigned values exactly. Persistence faults are wrapped into
// ErrStoreSave; the driver error stays on the wrapped chain for diagnostics.
func (p *PgStore) Save(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	if !s.Persisted() {
		return p.create(ctx, s)
	}
	return p.update(ctx, s)
}

func (p *PgStore) create(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	var id int64
	err := p.db.QueryRow(ctx,
		`INSERT INTO stores (name, address, city, country, postal_code, phone, email, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		s.Name(), s.Address(), s.City(), s.Country(), s.PostalCode(), s.Phone(), s.Email(), s.IsActive(), s.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreSave, err)
	}
	return p.FindByID(ctx, id)
}

func (p *PgStore) update(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	_, err := p.db.Exec(ctx,
		`UPDATE stores
		 SET name = $1, address = $2, city = $3, country = $4, postal_code = $5,
		     phone = $6, email = $7, is_active = $8, updated_at = $9
		 WHERE id = $10`,
		s.Name(), s.Address(), s.City(), s.Country(), s.PostalCode(), s.Phone(), s.Email(), s.IsActive(), s.UpdatedAt(), s.ID(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storeerrors.ErrStoreSave, err)
	}
	return p.FindByID(ctx, s.ID())
}

// Delete removes a store by its unique identifier.
// Returns true iff a row was removed; a nonexistent ID returns false.
func (p *PgStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := p.db.Exec(ctx, "DELETE FROM stores WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", storeerrors.ErrStoreDelete, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a store with the given ID is persisted.
func (p *PgStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM stores WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: %w", storeerrors.ErrStoreFind, err)
	}
	return exists, nil
}

// buildFindAllQuery assembles the SELECT with parameterized WHERE clauses and
// whitelisted ORDER BY identifiers. Field names are never interpolated from
// caller input without passing the whitelist first.
func buildFindAllQuery(filters map[string]any, sort []SortKey) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT " + storeColumns + " FROM stores")

	args := make([]any, 0, len(filters))
	if len(filters) > 0 {
		conditions := make([]string, 0, len(filters))
		for field, value := range filters {
			if _, ok := allowedFields[field]; !ok {
				return "", nil, fmt.Errorf("%w: invalid filter field: %s", storeerrors.ErrInvalidField, field)
			}
			args = append(args, value)
			conditions = append(conditions, fmt.Sprintf("%s = $%d", field, len(args)))
		}
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	if len(sort) > 0 {
		orderBy := make([]string, 0, len(sort))
		for _, key := range sort {
			if _, ok := allowedFields[key.Field]; !ok {
				return "", nil, fmt.Errorf("%w: invalid sort field: %s", storeerrors.ErrInvalidField, key.Field)
			}
			direction := "ASC"
			if strings.EqualFold(key.Direction, "desc") {
				direction = "DESC"
			}
			orderBy = append(orderBy, key.Field+" "+direction)
		}
		b.WriteString(" ORDER BY " + strings.Join(orderBy, ", "))
	}

	return b.String(), args, nil
}

// scanStore rehydrates a domain.Store from a row holding storeColumns.
func scanStore(row pgx.Row) (*domain.Store, error) {
	var (
		id                                                    int64
		name, address, city, country, postalCode, phone, email string
		isActive                                              bool
		createdAt                                             time.Time
		updatedAt                                             *time.Time
	)
	if err := row.Scan(&id, &name, &address, &city, &country, &postalCode, &phone, &email, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return domain.Restore(id, name, address, city, country, postalCode, phone, email, isActive, createdAt, updatedAt), nil
}
