package repository

import (
	"errors"
	"testing"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	repo := NewRepository[models.RaceResult](nil, "race result")

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, repo.translate(nil))
	})

	t.Run("record not found", func(t *testing.T) {
		err := repo.translate(gorm.ErrRecordNotFound)
		assert.True(t, errors.Is(err, apperrors.ErrRaceResultNotFound))
	})

	t.Run("duplicated key", func(t *testing.T) {
		err := repo.translate(gorm.ErrDuplicatedKey)
		assert.True(t, errors.Is(err, apperrors.ErrRaceResultExists))
	})

	t.Run("foreign key violated", func(t *testing.T) {
		err := repo.translate(gorm.ErrForeignKeyViolated)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := repo.translate(cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "race result repository")
	})
}

func TestIDOf(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, idOf(&models.Car{BaseModel: models.BaseModel{ID: id}}))

	type plain struct{ Name string }
	assert.Equal(t, uuid.Nil, idOf(&plain{Name: "x"}))
}
