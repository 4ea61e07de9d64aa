package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps both tables in a single SQLite file. Sequences are
// stored as JSON text columns.
type SQLiteStore struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens the database at path and applies the embedded schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func applyMigrations(db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		script, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Beneficiaries() BeneficiaryTable { return sqliteBeneficiaries{s.db} }
func (s *SQLiteStore) Activities() ActivityTable       { return sqliteActivities{s.db} }

// Close closes the SQLite handle
func (s *SQLiteStore) Close(context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func encodeList(values []string) string {
	data, _ := json.Marshal(cloneStrings(values))
	return string(data)
}

func decodeList(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

const beneficiaryColumns = `id, name, age, birth_date, national_id, phone, address,
	location_lat, location_lng, emergency_contact, pathologies, medications, disabilities,
	nutrition_beneficiary, status, image_url, created_at, updated_at`

type sqliteBeneficiaries struct{ db *sql.DB }

func scanBeneficiary(row scanner) (models.Beneficiary, error) {
	var (
		b                                      models.Beneficiary
		lat, lng                               sql.NullFloat64
		pathologies, medications, disabilities string
		createdAt, updatedAt                   int64
	)
	err := row.Scan(&b.ID, &b.Name, &b.Age, &b.BirthDate, &b.NationalID, &b.Phone, &b.Address,
		&lat, &lng, &b.EmergencyContact, &pathologies, &medications, &disabilities,
		&b.NutritionBeneficiary, &b.Status, &b.ImageURL, &createdAt, &updatedAt)
	if err != nil {
		return models.Beneficiary{}, err
	}
	if lat.Valid && lng.Valid {
		b.Location = &models.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
	}
	if b.Pathologies, err = decodeList(pathologies); err != nil {
		return models.Beneficiary{}, fmt.Errorf("decode pathologies: %w", err)
	}
	if b.Medications, err = decodeList(medications); err != nil {
		return models.Beneficiary{}, fmt.Errorf("decode medications: %w", err)
	}
	if b.Disabilities, err = decodeList(disabilities); err != nil {
		return models.Beneficiary{}, fmt.Errorf("decode disabilities: %w", err)
	}
	b.CreatedAt = fromMillis(createdAt)
	b.UpdatedAt = fromMillis(updatedAt)
	return b, nil
}

func locationArgs(loc *models.Coordinate) (any, any) {
	if loc == nil {
		return nil, nil
	}
	return loc.Lat, loc.Lng
}

func (t sqliteBeneficiaries) SelectAll(ctx context.Context) ([]models.Beneficiary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := t.db.QueryContext(ctx, `SELECT `+beneficiaryColumns+` FROM beneficiaries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list beneficiaries: %w", err)
	}
	defer rows.Close()

	out := []models.Beneficiary{}
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beneficiary: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (t sqliteBeneficiaries) Insert(ctx context.Context, b models.Beneficiary) (models.Beneficiary, error) {
	if err := ctx.Err(); err != nil {
		return models.Beneficiary{}, err
	}
	id := uuid.NewString()
	now := toMillis(time.Now())
	lat, lng := locationArgs(b.Location)

	_, err := t.db.ExecContext(ctx,
		`INSERT INTO beneficiaries (
		   id, seq, name, age, birth_date, national_id, phone, address,
		   location_lat, location_lng, emergency_contact, pathologies, medications, disabilities,
		   nutrition_beneficiary, status, image_url, created_at, updated_at
		 ) VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM beneficiaries), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, b.Name, b.Age, b.BirthDate, b.NationalID, b.Phone, b.Address,
		lat, lng, b.EmergencyContact, encodeList(b.Pathologies), encodeList(b.Medications), encodeList(b.Disabilities),
		b.NutritionBeneficiary, b.Status, b.ImageURL, now, now,
	)
	if err != nil {
		return models.Beneficiary{}, fmt.Errorf("insert beneficiary: %w", err)
	}
	return t.get(ctx, id)
}

func (t sqliteBeneficiaries) get(ctx context.Context, id string) (models.Beneficiary, error) {
	row := t.db.QueryRowContext(ctx, `SELECT `+beneficiaryColumns+` FROM beneficiaries WHERE id = ?`, id)
	b, err := scanBeneficiary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Beneficiary{}, ErrNotFound
		}
		return models.Beneficiary{}, fmt.Errorf("get beneficiary: %w", err)
	}
	return b, nil
}

func (t sqliteBeneficiaries) Update(ctx context.Context, id string, b models.Beneficiary) (models.Beneficiary, error) {
	if err := ctx.Err(); err != nil {
		return models.Beneficiary{}, err
	}
	lat, lng := locationArgs(b.Location)
	result, err := t.db.ExecContext(ctx,
		`UPDATE beneficiaries SET
		   name = ?, age = ?, birth_date = ?, national_id = ?, phone = ?, address = ?,
		   location_lat = ?, location_lng = ?, emergency_contact = ?,
		   pathologies = ?, medications = ?, disabilities = ?,
		   nutrition_beneficiary = ?, status = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		b.Name, b.Age, b.BirthDate, b.NationalID, b.Phone, b.Address,
		lat, lng, b.EmergencyContact,
		encodeList(b.Pathologies), encodeList(b.Medications), encodeList(b.Disabilities),
		b.NutritionBeneficiary, b.Status, b.ImageURL, toMillis(time.Now()),
		id,
	)
	if err != nil {
		return models.Beneficiary{}, fmt.Errorf("update beneficiary: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return models.Beneficiary{}, ErrNotFound
	}
	return t.get(ctx, id)
}

func (t sqliteBeneficiaries) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := t.db.ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete beneficiary: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (t sqliteBeneficiaries) SetNutritionFlag(ctx context.Context, ids []string, flag bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids)+2)
	args = append(args, flag, toMillis(time.Now()))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := t.db.ExecContext(ctx,
		`UPDATE beneficiaries SET nutrition_beneficiary = ?, updated_at = ? WHERE id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update nutrition flags: %w", err)
	}
	return nil
}

const activityColumns = `id, type, title, date, participants, status, time, location,
	description, prize, winner_id, created_at, updated_at`

type sqliteActivities struct{ db *sql.DB }

func scanActivity(row scanner) (models.Activity, error) {
	var (
		a                    models.Activity
		participants         string
		winner               sql.NullString
		createdAt, updatedAt int64
	)
	err := row.Scan(&a.ID, &a.Type, &a.Title, &a.Date, &participants, &a.Status, &a.Time, &a.Location,
		&a.Description, &a.Prize, &winner, &createdAt, &updatedAt)
	if err != nil {
		return models.Activity{}, err
	}
	if a.Participants, err = decodeList(participants); err != nil {
		return models.Activity{}, fmt.Errorf("decode participants: %w", err)
	}
	if winner.Valid {
		id := winner.String
		a.WinnerID = &id
	}
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

func (t sqliteActivities) SelectAll(ctx context.Context) ([]models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := t.db.QueryContext(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (t sqliteActivities) get(ctx context.Context, id string) (models.Activity, error) {
	row := t.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Activity{}, ErrNotFound
		}
		return models.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

func (t sqliteActivities) Insert(ctx context.Context, a models.Activity) (models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return models.Activity{}, err
	}
	id := uuid.NewString()
	now := toMillis(time.Now())

	_, err := t.db.ExecContext(ctx,
		`INSERT INTO activities (
		   id, seq, type, title, date, participants, status, time, location,
		   description, prize, winner_id, created_at, updated_at
		 ) VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM activities), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, a.Type, a.Title, a.Date, encodeList(a.Participants), a.Status, a.Time, a.Location,
		a.Description, a.Prize, a.WinnerID, now, now,
	)
	if err != nil {
		return models.Activity{}, fmt.Errorf("insert activity: %w", err)
	}
	return t.get(ctx, id)
}

func (t sqliteActivities) Update(ctx context.Context, id string, a models.Activity) (models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return models.Activity{}, err
	}
	result, err := t.db.ExecContext(ctx,
		`UPDATE activities SET
		   type = ?, title = ?, date = ?, participants = ?, status = ?, time = ?, location = ?,
		   description = ?, prize = ?, winner_id = ?, updated_at = ?
		 WHERE id = ?`,
		a.Type, a.Title, a.Date, encodeList(a.Participants), a.Status, a.Time, a.Location,
		a.Description, a.Prize, a.WinnerID, toMillis(time.Now()),
		id,
	)
	if err != nil {
		return models.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return models.Activity{}, ErrNotFound
	}
	return t.get(ctx, id)
}

func (t sqliteActivities) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := t.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (t sqliteActivities) CompleteRaffle(ctx context.Context, id, winnerID string) (models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return models.Activity{}, err
	}
	result, err := t.db.ExecContext(ctx,
		`UPDATE activities SET status = ?, winner_id = ?, updated_at = ?
		 WHERE id = ? AND type = ? AND status = ?`,
		models.StatusCompleted, winnerID, toMillis(time.Now()),
		id, models.ActivityRaffle, models.StatusActive,
	)
	if err != nil {
		return models.Activity{}, fmt.Errorf("complete raffle: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		if _, err := t.get(ctx, id); err != nil {
			return models.Activity{}, err
		}
		return models.Activity{}, ErrConflict
	}
	return t.get(ctx, id)
}
