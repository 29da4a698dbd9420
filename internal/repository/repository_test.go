package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return sqlDB, mock, db
}

func TestCountryRepository_GetCountryByID_NotFound(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT \\* FROM `countries` WHERE `countries`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "acronym"}))

	_, err := NewCountryRepo(db).GetCountryByID(context.Background(), 9)

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "country not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryRepository_GetCountryByID_Success(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT \\* FROM `countries`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "acronym"}).AddRow(3, "Brasil", "BR"))

	country, err := NewCountryRepo(db).GetCountryByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), country.ID)
	assert.Equal(t, "BR", country.Acronym)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryRepository_DatabaseErrorPassesThrough(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT \\* FROM `countries`").WillReturnError(boom)

	_, err := NewCountryRepo(db).GetCountryByID(context.Background(), 3)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestPatientRepository_HygiaExists_ExcludesOwnRow(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `patients` WHERE hygia = \\? AND id <> \\?").
		WithArgs("H-1", 4).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	taken, err := NewPatientRepo(db).HygiaExists(context.Background(), "H-1", 4)

	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_PatientScheduled(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `appointments` WHERE patient_id = \\? AND removal_date = \\?").
		WithArgs(2, "2026-11-02").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	taken, err := NewAppointmentRepo(db).PatientScheduled(context.Background(), 2, "2026-11-02", 0)

	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionRepository_UserHasPermission(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` INNER JOIN group_permissions").
		WithArgs(7, true, "can_view_patients").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	ok, err := NewPermissionRepo(db).UserHasPermission(context.Background(), 7, "can_view_patients")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHospitalRepository_CreateHospital(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hospitals`").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	hospital := &models.Hospital{CityID: 1, Name: "Santa Casa", Street: "Av. Independencia", Number: "75"}
	err := NewHospitalRepo(db).CreateHospital(context.Background(), hospital)

	require.NoError(t, err)
	assert.Equal(t, uint(12), hospital.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions` WHERE expires_at < \\?").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	removed, err := NewSessionRepo(db).DeleteExpiredSessions(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindSession_NotFound(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT \\* FROM `sessions` WHERE token_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_id"}))

	_, err := NewSessionRepo(db).FindSession(context.Background(), "missing")

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_CreatePatient_DuplicateKeyIsConflict(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `patients`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'H-1' for key 'idx_patients_hygia'"})
	mock.ExpectRollback()

	err := NewPatientRepo(db).CreatePatient(context.Background(), &models.Patient{CityID: 1, Name: "Ana", Hygia: "H-1"})

	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_UpdateVehicle_OtherErrorsPassThrough(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `vehicles`").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := NewVehicleRepo(db).UpdateVehicle(context.Background(), &models.Vehicle{ID: 4, Model: "Sprinter", Plate: "IXY2041"})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
