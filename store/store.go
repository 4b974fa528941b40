// Package store keeps the library of named dive plans in SQLite.
package store

import (
	"encoding/json"
	"time"

	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"diveplan/model"
)

var ErrNotFound = merry.New("plan not found")

const schema = `
CREATE TABLE IF NOT EXISTS plans (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created INTEGER NOT NULL,
	plan_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS plans_created ON plans (created);
`

type Store struct {
	db  *sqlx.DB
	log log.FieldLogger
}

type planRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Created  int64  `db:"created"` // unix nano
	PlanJSON string `db:"plan_json"`
}

// Open opens or creates the database at the given path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, merry.Prepend(err, "open db")
	}
	db.SetMaxOpenConns(1)

	s := &Store{
		db:  db,
		log: log.WithField("db", path),
	}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, merry.Prepend(err, "migrate")
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Save adds the plan under new id.
func (s *Store) Save(name string, plan model.PlanRequest) (string, error) {
	plan.Name = name
	data, err := json.Marshal(plan)
	if err != nil {
		return "", merry.Wrap(err)
	}

	row := planRow{
		ID:       uuid.New().String(),
		Name:     name,
		Created:  time.Now().UnixNano(),
		PlanJSON: string(data),
	}
	_, err = s.db.NamedExec(`INSERT INTO plans (id, name, created, plan_json)
		VALUES (:id, :name, :created, :plan_json)`, row)
	if err != nil {
		return "", merry.Prepend(err, "save plan")
	}

	s.log.WithFields(log.Fields{
		"id":   row.ID,
		"name": name,
	}).Info("plan saved")
	return row.ID, nil
}

func (s *Store) Load(id string) (model.StoredPlan, error) {
	var rows []planRow
	if err := s.db.Select(&rows, `SELECT * FROM plans WHERE id = ?`, id); err != nil {
		return model.StoredPlan{}, merry.Prepend(err, "load plan")
	}
	if len(rows) == 0 {
		return model.StoredPlan{}, ErrNotFound.Here().Appendf("id %s", id)
	}
	return rows[0].toStored()
}

// List returns all plans, the oldest first.
func (s *Store) List() ([]model.StoredPlan, error) {
	var rows []planRow
	if err := s.db.Select(&rows, `SELECT * FROM plans ORDER BY created, rowid`); err != nil {
		return nil, merry.Prepend(err, "list plans")
	}

	plans := make([]model.StoredPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := row.toStored()
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return merry.Prepend(err, "delete plan")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return merry.Wrap(err)
	}
	if affected == 0 {
		return ErrNotFound.Here().Appendf("id %s", id)
	}

	s.log.WithField("id", id).Info("plan deleted")
	return nil
}

func (r planRow) toStored() (model.StoredPlan, error) {
	var plan model.PlanRequest
	if err := json.Unmarshal([]byte(r.PlanJSON), &plan); err != nil {
		return model.StoredPlan{}, merry.Prependf(err, "plan %s", r.ID)
	}
	return model.StoredPlan{
		ID:      r.ID,
		Name:    r.Name,
		Created: time.Unix(0, r.Created),
		Plan:    plan,
	}, nil
}
