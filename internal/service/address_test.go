package service_test

import (
	"context"
	"errors"
	"testing"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/mocks"
	"motorsport-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validAddress() *service.CreateAddressRequest {
	return &service.CreateAddressRequest{
		Name:    "Head office",
		Street:  "12 Nguyen Hue",
		City:    "Ho Chi Minh City",
		State:   "HCM",
		Zip:     "70000",
		Country: "Viet Nam",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository[models.Address](ctrl)
	svc := service.NewAddressService(repo, service.NewValidator())
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Address) error {
		a.ID = id
		return nil
	})
	repo.EXPECT().FindOne(ctx, map[string]interface{}{"id": id}).Return(&models.Address{BaseModel: models.BaseModel{ID: id}, City: "Ho Chi Minh City"}, nil)

	address, err := svc.Create(ctx, validAddress())
	require.NoError(t, err)
	assert.Equal(t, id, address.ID)
}

func TestAddressService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewAddressService(mocks.NewMockRepository[models.Address](ctrl), service.NewValidator())

	req := validAddress()
	req.Zip = "123"

	_, err := svc.Create(context.Background(), req)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "zip", verr.Field)
	assert.Equal(t, "must be at least 5", verr.Message)
}

func TestAddressService_UpdateKeepsUntouchedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository[models.Address](ctrl)
	svc := service.NewAddressService(repo, service.NewValidator())
	ctx := context.Background()
	id := uuid.New()
	stored := &models.Address{BaseModel: models.BaseModel{ID: id}, Name: "Head office", City: "Da Nang"}
	city := "Hue"

	repo.EXPECT().FindOne(ctx, map[string]interface{}{"id": id}).Return(stored, nil).Times(2)
	repo.EXPECT().Save(ctx, stored).Return(nil)

	address, err := svc.Update(ctx, id, &service.UpdateAddressRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Head office", address.Name)
	assert.Equal(t, "Hue", address.City)
}

func TestClassService_ReplaceRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewClassService(mocks.NewMockRepository[models.Class](ctrl), service.NewValidator())

	_, err := svc.Replace(context.Background(), uuid.New(), &service.CreateClassRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestClassService_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository[models.Class](ctrl)
	svc := service.NewClassService(repo, service.NewValidator())
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(int64(0), nil)

	err := svc.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, apperrors.ErrClassNotFound))
}
