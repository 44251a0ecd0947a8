package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func countRow(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

// An email held by any of the three account tables is taken: login resolves
// admins first, then doctors, then patients, so a duplicate anywhere would
// shadow a login.
func TestEmailInUseChecksAllAccountTables(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "admins" WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors" WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients" WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(countRow(1))

	assert.True(t, emailInUse(db, "ana@example.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailInUseShortCircuitsOnAdmins(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "admins" WHERE email = \$1`).
		WithArgs("admin@hospital.com").
		WillReturnRows(countRow(1))

	assert.True(t, emailInUse(db, "admin@hospital.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailInUseFreeEmail(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors"`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).WillReturnRows(countRow(0))

	assert.False(t, emailInUse(db, "new@example.com"))
}
