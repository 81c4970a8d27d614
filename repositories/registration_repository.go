package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/hackathon-registration/config"
	"github.com/Dosada05/hackathon-registration/models"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var ErrRegistrationEmailConflict = errors.New("registration email conflict")

type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	GetAll(ctx context.Context) ([]models.Registration, error)
	Ping(ctx context.Context) error
}

// dialect скрывает различия SQL и кодирования булевых значений между бэкендами.
type dialect struct {
	insertQuery  string
	selectAll    string
	returningID  bool
	encodeBool   func(bool) interface{}
	boolScanDest func() interface{}
	decodeBool   func(interface{}) bool
}

const insertColumns = `full_name, email, phone, participation_type, team_members, skill_level,
	project_idea, wants_free_license, availability_confirmed, share_recordings, social_handle`

const selectColumns = `id, full_name, email, phone, participation_type, team_members, skill_level,
	project_idea, wants_free_license, availability_confirmed, share_recordings, social_handle`

const (
	postgresInsertQuery = `INSERT INTO registrations (` + insertColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	postgresSelectAll = `SELECT ` + selectColumns + `, created_at::text
	FROM registrations ORDER BY created_at DESC, id DESC`

	sqliteInsertQuery = `INSERT INTO registrations (` + insertColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	sqliteSelectAll = `SELECT ` + selectColumns + `, CAST(created_at AS TEXT)
	FROM registrations ORDER BY created_at DESC, id DESC`
)

var postgresDialect = dialect{
	insertQuery:  postgresInsertQuery,
	selectAll:    postgresSelectAll,
	returningID:  true,
	encodeBool:   func(b bool) interface{} { return b },
	boolScanDest: func() interface{} { return new(bool) },
	decodeBool:   func(v interface{}) bool { return *v.(*bool) },
}

// SQLite хранит булевы значения как 0/1.
var sqliteDialect = dialect{
	insertQuery:  sqliteInsertQuery,
	selectAll:    sqliteSelectAll,
	encodeBool:   encodeIntBool,
	boolScanDest: func() interface{} { return new(int64) },
	decodeBool:   func(v interface{}) bool { return *v.(*int64) != 0 },
}

type sqlRegistrationRepository struct {
	db *sql.DB
	d  dialect
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepository{db: db, d: postgresDialect}
}

func NewSQLiteRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepository{db: db, d: sqliteDialect}
}

// NewRegistrationRepository выбирает адаптер по имени драйвера из конфигурации.
func NewRegistrationRepository(driver string, db *sql.DB) (RegistrationRepository, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresRegistrationRepository(db), nil
	case config.DriverSQLite:
		return NewSQLiteRegistrationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (r *sqlRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	args := []interface{}{
		reg.FullName,
		reg.Email,
		nullableString(reg.Phone),
		string(reg.ParticipationType),
		nullableString(reg.TeamMembers),
		string(reg.SkillLevel),
		reg.ProjectIdea,
		r.d.encodeBool(reg.WantsFreeLicense),
		r.d.encodeBool(reg.AvailabilityConfirmed),
		r.d.encodeBool(reg.ShareRecordings),
		nullableString(reg.SocialHandle),
	}

	if r.d.returningID {
		err := r.db.QueryRowContext(ctx, r.d.insertQuery, args...).Scan(&reg.ID)
		if err != nil {
			return mapInsertError(err)
		}
		return nil
	}

	result, err := r.db.ExecContext(ctx, r.d.insertQuery, args...)
	if err != nil {
		return mapInsertError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted registration id: %w", err)
	}
	reg.ID = int(id)
	return nil
}

func (r *sqlRegistrationRepository) GetAll(ctx context.Context) ([]models.Registration, error) {
	rows, err := r.db.QueryContext(ctx, r.d.selectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var (
			reg                        models.Registration
			phone, teamMembers, social sql.NullString
			participation, skill       string
			createdAt                  sql.NullString
		)
		wantsLicense, confirmed, shareRec := r.d.boolScanDest(), r.d.boolScanDest(), r.d.boolScanDest()
		if err := rows.Scan(
			&reg.ID,
			&reg.FullName,
			&reg.Email,
			&phone,
			&participation,
			&teamMembers,
			&skill,
			&reg.ProjectIdea,
			wantsLicense,
			confirmed,
			shareRec,
			&social,
			&createdAt,
		); err != nil {
			return nil, err
		}
		reg.Phone = stringPtr(phone)
		reg.TeamMembers = stringPtr(teamMembers)
		reg.SocialHandle = stringPtr(social)
		reg.ParticipationType = models.ParticipationType(participation)
		reg.SkillLevel = models.SkillLevel(skill)
		reg.WantsFreeLicense = r.d.decodeBool(wantsLicense)
		reg.AvailabilityConfirmed = r.d.decodeBool(confirmed)
		reg.ShareRecordings = r.d.decodeBool(shareRec)
		reg.CreatedAt = createdAt.String
		registrations = append(registrations, reg)
	}

	// Критически важная проверка ошибки после цикла
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *sqlRegistrationRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// mapInsertError превращает нарушение уникальности email в ErrRegistrationEmailConflict.
func mapInsertError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrRegistrationEmailConflict, err)
	}
	return err
}

// isUniqueViolation сначала смотрит на коды драйверов и только потом на текст ошибки.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
