package service

import (
	"errors"
	"testing"

	apperrors "motorsport-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := ValidateStruct(v, &CreateDriverRequest{FirstName: "Minh", LastName: "Le", Nationality: "France"})
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "nationality", verr.Field)
	assert.Contains(t, verr.Message, "must be one of")
}

func TestValidateStruct_Required(t *testing.T) {
	err := ValidateStruct(NewValidator(), &CreateClassRequest{})

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "is required", verr.Message)
}

func TestValidateStruct_NestedResults(t *testing.T) {
	carID := uuid.New()
	err := ValidateStruct(NewValidator(), &CreateRaceRequest{
		Name:    "Saigon 500",
		Results: []RaceResultInput{{CarID: &carID}},
	})

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "results[0].driver_id", verr.Field)
}

func TestValidateStruct_QueryFieldNames(t *testing.T) {
	err := ValidateStruct(NewValidator(), &ResultQuery{ListQuery: ListQuery{PageSize: 500}})

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "page_size", verr.Field)
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(NewValidator(), &CreateTeamRequest{Name: "Hanoi Motorsport"}))
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "name", fieldPath("CreateClassRequest.name"))
	assert.Equal(t, "page_size", fieldPath("ResultQuery.ListQuery.page_size"))
	assert.Equal(t, "race_id", fieldPath("CreateRaceResultRequest.race_id"))
	assert.Equal(t, "car_id", fieldPath("CreateRaceResultRequest.RaceResultInput.car_id"))
	assert.Equal(t, "results[0].driver_id", fieldPath("CreateRaceRequest.results[0].driver_id"))
}
