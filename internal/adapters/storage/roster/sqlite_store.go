package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rosterplan/internal/adapters/storage"
	domain "rosterplan/internal/domain/member"
	rosterDomain "rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/weekday"
)

// SQLiteStore implements Store and CycleStore using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new roster store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByName retrieves a Member with its shifts and off-days.
// PRE: name is non-empty
// POST: Returns the entity or a not-found error
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT name FROM team_member WHERE name = ?", name)

	var entity domain.Member
	if err := row.Scan(&entity.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Member{}, fmt.Errorf("member %q: %w", name, rosterDomain.ErrNotFound)
		}
		return domain.Member{}, err
	}

	var err error
	entity.Shifts, err = s.loadOrdered(ctx, "SELECT label FROM member_shift WHERE member_name = ? ORDER BY position", entity.Name)
	if err != nil {
		return domain.Member{}, err
	}
	entity.WeekOffs, err = s.loadOrdered(ctx, "SELECT day FROM member_week_off WHERE member_name = ? ORDER BY position", entity.Name)
	if err != nil {
		return domain.Member{}, err
	}
	return entity, nil
}

// Save persists a Member, replacing its shifts and off-days wholesale.
// Enrollment order is assigned on first insert and kept on overwrite.
// PRE: entity has been validated
// POST: Entity is persisted atomically
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO team_member (name, position)
		 VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM team_member))
		 ON CONFLICT(name) DO NOTHING`,
		entity.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM member_shift WHERE member_name = ?", entity.Name); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM member_week_off WHERE member_name = ?", entity.Name); err != nil {
		return err
	}
	for i, label := range entity.Shifts {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO member_shift (member_name, position, label) VALUES (?, ?, ?)",
			entity.Name, i, label,
		); err != nil {
			return err
		}
	}
	for i, day := range entity.WeekOffs {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO member_week_off (member_name, position, day) VALUES (?, ?, ?)",
			entity.Name, i, day,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// List retrieves all members in enrollment order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM team_member ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(names))
	for _, name := range names {
		m, err := s.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// SaveCycle persists the single week-start selection.
func (s *SQLiteStore) SaveCycle(ctx context.Context, c weekday.Cycle) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO week_cycle (id, start) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET start=excluded.start",
		c.Start,
	)
	return err
}

// GetCycle retrieves the stored week cycle, defaulting to a Sunday start
// when none has been saved yet.
func (s *SQLiteStore) GetCycle(ctx context.Context) (weekday.Cycle, error) {
	row := s.db.QueryRowContext(ctx, "SELECT start FROM week_cycle WHERE id = 1")
	var start string
	if err := row.Scan(&start); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return weekday.Cycle{Start: weekday.Sunday}, nil
		}
		return weekday.Cycle{}, err
	}
	return weekday.Cycle{Start: start}, nil
}

// loadOrdered reads a single text column ordered by position.
func (s *SQLiteStore) loadOrdered(ctx context.Context, query, name string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
