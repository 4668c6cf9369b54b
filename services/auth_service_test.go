package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"taskping/taskping/testutils"
	sessiontoken "taskping/taskping/utils/token"
)

func newTestAuthService() *AuthService {
	return NewAuthService("test-secret", 1)
}

func TestRegister_MissingFields(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := newTestAuthService()

	_, err := authService.Register(db, "", "pw", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = authService.Register(db, "a@x.com", "", "")
	assert.ErrorIs(t, err, ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_ConfirmMismatch(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := newTestAuthService()

	_, err := authService.Register(db, "a@x.com", "pw", "other")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	authService := newTestAuthService()
	_, err := authService.Register(db, "a@x.com", "pw", "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	authService := newTestAuthService()
	user, err := authService.Register(db, " A@X.com ", "pw", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_SuccessThenWrongPassword(t *testing.T) {
	authService := newTestAuthService()
	hash, err := authService.HashPassword("pw")
	assert.NoError(t, err)

	userID := uuid.New()
	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password_hash", "webhook_url", "ping_interval_hours", "last_ping_at"}).
			AddRow(userID.String(), "a@x.com", hash, nil, 0, nil)
	}

	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com", 1).
		WillReturnRows(userRow())

	sessionToken, err := authService.Login(db, "a@x.com", "pw")
	assert.NoError(t, err)
	assert.NotEmpty(t, sessionToken)

	claims, err := authService.ValidateSession(sessionToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com", 1).
		WillReturnRows(userRow())

	_, err = authService.Login(db, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("nobody@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	authService := newTestAuthService()
	_, err := authService.Login(db, "nobody@x.com", "pw")
	// Unknown email and bad password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateSession_RejectsForeignSecret(t *testing.T) {
	authService := newTestAuthService()

	foreign, err := sessiontoken.GenerateToken(uuid.New(), "a@x.com", []byte("other-secret"), time.Hour)
	assert.NoError(t, err)

	_, err = authService.ValidateSession(foreign)
	assert.Error(t, err)
}
