package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/college"
)

const collegeColumns = `id, name, state, acceptance_rate, average_gpa, sat_p25, sat_p75, act_p25, act_p75, created_at, updated_at`

// acceptance rates <= 1 are stored as fractions
const collegeRatePct = `(CASE WHEN acceptance_rate <= 1 THEN acceptance_rate * 100 ELSE acceptance_rate END)`

var collegeOrderingColumns = map[string]string{
	"name":            "lower(name)",
	"state":           "state",
	"acceptance_rate": collegeRatePct,
	"average_gpa":     "average_gpa",
	"created_at":      "created_at",
}

type collegeRepository struct {
	db *sqlx.DB
}

var _ college.Repository = (*collegeRepository)(nil)

func NewCollegeRepository(db *sqlx.DB) college.Repository {
	return &collegeRepository{db: db}
}

func (repo *collegeRepository) CreateCollege(ctx context.Context, c college.College) (college.College, error) {
	q := `INSERT INTO colleges (` + collegeColumns + `)
		VALUES (:id, :name, :state, :acceptance_rate, :average_gpa, :sat_p25, :sat_p75, :act_p25, :act_p75, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, c); err != nil {
		return college.College{}, errors.Wrap(err, "inserting college")
	}
	return c, nil
}

func (repo *collegeRepository) UpdateCollege(ctx context.Context, c college.College) (college.College, error) {
	q := `UPDATE colleges SET
		name = :name, state = :state, acceptance_rate = :acceptance_rate, average_gpa = :average_gpa,
		sat_p25 = :sat_p25, sat_p75 = :sat_p75, act_p25 = :act_p25, act_p75 = :act_p75, updated_at = :updated_at
		WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, c)
	if err != nil {
		return college.College{}, errors.Wrap(err, "updating college")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return college.College{}, college.ErrNotFound
	}
	return repo.GetCollegeByID(ctx, c.ID)
}

func (repo *collegeRepository) getCollege(ctx context.Context, where string, arg interface{}) (college.College, error) {
	var c college.College
	q := `SELECT ` + collegeColumns + ` FROM colleges WHERE ` + where
	if err := repo.db.GetContext(ctx, &c, q, arg); err != nil {
		if err == sql.ErrNoRows {
			return college.College{}, college.ErrNotFound
		}
		return college.College{}, errors.Wrap(err, "selecting college")
	}
	return c, nil
}

func (repo *collegeRepository) GetCollegeByID(ctx context.Context, id string) (college.College, error) {
	return repo.getCollege(ctx, "id = $1", id)
}

func (repo *collegeRepository) GetCollegeByName(ctx context.Context, name string) (college.College, error) {
	return repo.getCollege(ctx, "lower(name) = lower($1)", name)
}

func (repo *collegeRepository) QueryColleges(
	ctx context.Context,
	filter college.QueryFilter,
	orderings ...core.DBOrdering,
) ([]college.College, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf(`lower(name) LIKE $%d ESCAPE '\'`, len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		conds = append(conds, fmt.Sprintf("state = $%d", len(args)))
	}
	if filter.MaxAcceptanceRate > 0 {
		args = append(args, filter.MaxAcceptanceRate)
		conds = append(conds, fmt.Sprintf("%s <= $%d", collegeRatePct, len(args)))
	}

	q := `SELECT ` + collegeColumns + ` FROM colleges`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	orderBy, err := orderByClause(orderings)
	if err != nil {
		return nil, err
	}
	q += orderBy

	colleges := make([]college.College, 0)
	if err := repo.db.SelectContext(ctx, &colleges, q, args...); err != nil {
		return nil, errors.Wrap(err, "selecting colleges")
	}
	return colleges, nil
}

func (repo *collegeRepository) DeleteCollegesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM colleges WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting colleges")
	}
	return nil
}

// orderByClause mirrors the in-memory ordering: unknown values first, ties by id.
func orderByClause(orderings []core.DBOrdering) (string, error) {
	if len(orderings) == 0 {
		orderings = []core.DBOrdering{{Field: "name", Ascending: true}}
	}
	parts := make([]string, 0, len(orderings)+1)
	for _, ord := range orderings {
		col, ok := collegeOrderingColumns[ord.Field]
		if !ok {
			return "", core.ErrInvalidOrdering
		}
		if ord.Ascending {
			parts = append(parts, col+" ASC NULLS FIRST")
		} else {
			parts = append(parts, col+" DESC NULLS LAST")
		}
	}
	parts = append(parts, "id ASC")
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
