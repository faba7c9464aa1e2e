package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"
	"medinote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.DoctorRepository())
	assert.NotNil(t, uow.SessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Doctor Repository", func(t *testing.T) {
		count, err := uow.DoctorRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Doctor count: %d", count)
	})

	t.Run("Check Audio Chunk Repository", func(t *testing.T) {
		count, err := uow.AudioChunkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("AudioChunk count: %d", count)
	})

	t.Run("Check Transactional Session Roundtrip", func(t *testing.T) {
		ctx := context.Background()

		doctor := &entity.Doctor{
			Id:           uuid.New(),
			Name:         "Integration Test Doctor",
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
		}
		require.NoError(t, uow.DoctorRepository().Create(ctx, doctor))

		patient := &entity.Patient{
			Id:       uuid.New(),
			DoctorId: doctor.Id,
			Name:     "Integration Test Patient",
		}
		require.NoError(t, uow.PatientRepository().Create(ctx, patient))

		session := &entity.Session{
			Id:        uuid.New(),
			DoctorId:  doctor.Id,
			PatientId: patient.Id,
			Status:    string(entity.SessionStatusCreated),
		}
		require.NoError(t, uow.SessionRepository().Create(ctx, session))

		found, err := uow.SessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedByDoctor{DoctorID: doctor.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, session.Id, found.Id)

		// A foreign doctor must not see the session through the owned lookup.
		foreign, err := uow.SessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedByDoctor{DoctorID: uuid.New()},
		)
		require.NoError(t, err)
		assert.Nil(t, foreign)

		// Cleanup
		assert.NoError(t, uow.SessionRepository().Delete(ctx, session.Id))
		assert.NoError(t, gormDB.Exec("DELETE FROM patient WHERE id = ?", patient.Id).Error)
		assert.NoError(t, gormDB.Exec("DELETE FROM doctor WHERE id = ?", doctor.Id).Error)
	})
}
