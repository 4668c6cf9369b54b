package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"taskping/taskping/testutils"
)

func TestClampInterval(t *testing.T) {
	cases := map[string]int{
		"-5":  0,
		"30":  24,
		"abc": 0,
		"":    0,
		"7":   7,
		"0":   0,
		"24":  24,
		" 3 ": 3,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ClampInterval(raw), "input %q", raw)
	}
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "webhook_url", "ping_interval_hours", "last_ping_at", "created_at", "updated_at"}
}

func TestGetSettings_UnknownUser(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	settingsService := &SettingsService{}
	_, err := settingsService.GetSettings(db, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettings_ClampsAndStores(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID.String(), "a@x.com", "hash", nil, 0, nil, now, now))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	settingsService := &SettingsService{}
	user, err := settingsService.UpdateSettings(db, userID, "https://discord.com/api/webhooks/x", "30")
	assert.NoError(t, err)
	assert.NotNil(t, user.WebhookURL)
	assert.Equal(t, "https://discord.com/api/webhooks/x", *user.WebhookURL)
	assert.Equal(t, 24, user.PingIntervalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettings_EmptyWebhookStoredAsAbsent(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()
	now := time.Now()
	webhook := "https://discord.com/api/webhooks/x"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID.String(), "a@x.com", "hash", webhook, 6, nil, now, now))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	settingsService := &SettingsService{}
	user, err := settingsService.UpdateSettings(db, userID, "   ", "abc")
	assert.NoError(t, err)
	assert.Nil(t, user.WebhookURL)
	assert.Equal(t, 0, user.PingIntervalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}
