package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/webdev-team/access-server/models"
)

const (
	getAccess = `SELECT id, access_name
    FROM access
    WHERE id = $1;`

	createAccess = `INSERT INTO access (access_name)
    VALUES ($1)
    RETURNING id, access_name;`

	updateAccess = `UPDATE access
    SET access_name = $1
    WHERE id = $2
    RETURNING id, access_name;`

	deleteAccess = `DELETE FROM access
    WHERE id = $1;`

	getGrant = `SELECT grant_id, access_id, user_id, permission_level
    FROM user_access
    WHERE grant_id = $1;`

	createGrant = `INSERT INTO user_access (access_id, user_id, permission_level)
    VALUES ($1, $2, $3)
    RETURNING grant_id, access_id, user_id, permission_level;`

	updateGrantPermission = `UPDATE user_access
    SET permission_level = $1
    WHERE grant_id = $2
    RETURNING grant_id, access_id, user_id, permission_level;`

	deleteGrant = `DELETE FROM user_access
    WHERE grant_id = $1;`

	checkAccess = `SELECT EXISTS (
        SELECT 1 FROM user_access
        WHERE user_id = $1 AND access_id = $2
    );`
)

// buildSearchGrantsQuery translates a predicate set into a SELECT over the
// user_access table. Each active predicate contributes one WHERE condition;
// squirrel conjoins them with AND. Results are ordered by grant_id so that
// repeated searches of an unchanged table are byte-identical on the wire.
func buildSearchGrantsQuery(grantSearch models.GrantSearch) (string, []any, error) {
	builder := squirrel.
		Select("grant_id", "access_id", "user_id", "permission_level").
		From("user_access").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("grant_id")

	if v, ok := grantSearch.AccessID.ExactValue(); ok {
		builder = builder.Where(squirrel.Eq{"access_id": v})
	}
	if v, ok := grantSearch.UserID.ExactValue(); ok {
		builder = builder.Where(squirrel.Eq{"user_id": v})
	}
	if v, ok := grantSearch.PermissionLevel.ExactValue(); ok {
		builder = builder.Where(squirrel.Eq{"permission_level": v})
	} else if grantSearch.PermissionLevel.IsNull() {
		// squirrel renders Eq{col: nil} as "col IS NULL".
		builder = builder.Where(squirrel.Eq{"permission_level": nil})
	}

	return builder.ToSql()
}
