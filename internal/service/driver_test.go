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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var driverDetail = []interface{}{"HomeAddress", "ManagementAddress", "Teams", "Results"}

type DriverServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDrivers   *mocks.MockRepository[models.Driver]
	mockAddresses *mocks.MockRepository[models.Address]
	mockTeams     *mocks.MockRepository[models.Team]
	driverService *service.DriverService
	ctx           context.Context
}

func (suite *DriverServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDrivers = mocks.NewMockRepository[models.Driver](suite.ctrl)
	suite.mockAddresses = mocks.NewMockRepository[models.Address](suite.ctrl)
	suite.mockTeams = mocks.NewMockRepository[models.Team](suite.ctrl)
	suite.driverService = service.NewDriverService(suite.mockDrivers, suite.mockAddresses, suite.mockTeams, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *DriverServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DriverServiceTestSuite) TestCreate_ResolvesTeamsThenSaves() {
	driverID := uuid.New()
	teamA, missing := uuid.New(), uuid.New()
	resolved := []models.Team{{BaseModel: models.BaseModel{ID: teamA}, Name: "Saigon Racing"}}

	gomock.InOrder(
		suite.mockTeams.EXPECT().FindByIDs(suite.ctx, []uuid.UUID{teamA, missing}).Return(resolved, nil),
		suite.mockDrivers.EXPECT().Save(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Driver) error {
			suite.Equal("Minh", d.FirstName)
			suite.Equal(models.NationalityUSA, d.Nationality)
			d.ID = driverID
			return nil
		}),
		suite.mockDrivers.EXPECT().ReplaceAssociation(suite.ctx, gomock.Any(), "Teams", resolved).Return(nil),
		suite.mockDrivers.EXPECT().
			FindOne(suite.ctx, map[string]interface{}{"id": driverID}, driverDetail...).
			Return(&models.Driver{BaseModel: models.BaseModel{ID: driverID}, FirstName: "Minh", Teams: resolved}, nil),
	)

	driver, err := suite.driverService.Create(suite.ctx, &service.CreateDriverRequest{
		FirstName: "Minh",
		LastName:  "Tran",
		TeamIDs:   []uuid.UUID{teamA, missing},
	})

	suite.Require().NoError(err)
	suite.Equal(driverID, driver.ID)
	suite.Require().Len(driver.Teams, 1)
	suite.Equal("Saigon Racing", driver.Teams[0].Name)
}

func (suite *DriverServiceTestSuite) TestCreate_WithoutTeamsSkipsAssociation() {
	driverID := uuid.New()
	suite.mockDrivers.EXPECT().Save(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Driver) error {
		d.ID = driverID
		return nil
	})
	suite.mockDrivers.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": driverID}, driverDetail...).
		Return(&models.Driver{BaseModel: models.BaseModel{ID: driverID}}, nil)

	_, err := suite.driverService.Create(suite.ctx, &service.CreateDriverRequest{FirstName: "An", LastName: "Pham", Nationality: models.NationalityVietNam})
	suite.NoError(err)
}

func (suite *DriverServiceTestSuite) TestCreate_UnknownHomeAddress() {
	addressID := uuid.New()
	suite.mockAddresses.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": addressID}).
		Return(nil, apperrors.ErrAddressNotFound)

	_, err := suite.driverService.Create(suite.ctx, &service.CreateDriverRequest{
		FirstName:     "Minh",
		LastName:      "Tran",
		HomeAddressID: &addressID,
	})

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("home_address_id", verr.Field)
}

func (suite *DriverServiceTestSuite) TestCreate_InvalidNationality() {
	_, err := suite.driverService.Create(suite.ctx, &service.CreateDriverRequest{
		FirstName:   "Minh",
		LastName:    "Tran",
		Nationality: "Vietnam",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DriverServiceTestSuite) TestUpdate_PatchesOnlyProvidedFields() {
	id := uuid.New()
	homeID := uuid.New()
	stored := &models.Driver{
		BaseModel:     models.BaseModel{ID: id},
		FirstName:     "Minh",
		LastName:      "Tran",
		Nationality:   models.NationalityVietNam,
		HomeAddressID: &homeID,
	}
	last := "Nguyen"

	suite.mockDrivers.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(stored, nil)
	suite.mockAddresses.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": homeID}).Return(&models.Address{}, nil)
	suite.mockDrivers.EXPECT().Save(suite.ctx, stored).DoAndReturn(func(_ context.Context, d *models.Driver) error {
		suite.Equal("Minh", d.FirstName)
		suite.Equal("Nguyen", d.LastName)
		suite.Equal(models.NationalityVietNam, d.Nationality)
		return nil
	})
	suite.mockDrivers.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": id}, driverDetail...).
		Return(stored, nil)

	driver, err := suite.driverService.Update(suite.ctx, id, &service.UpdateDriverRequest{LastName: &last})
	suite.Require().NoError(err)
	suite.Equal("Nguyen", driver.LastName)
}

func (suite *DriverServiceTestSuite) TestUpdate_NullClearsAddress() {
	id, homeID, managementID := uuid.New(), uuid.New(), uuid.New()
	stored := &models.Driver{
		BaseModel:           models.BaseModel{ID: id},
		FirstName:           "Minh",
		LastName:            "Tran",
		HomeAddressID:       &homeID,
		ManagementAddressID: &managementID,
	}

	suite.mockDrivers.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(stored, nil)
	suite.mockAddresses.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": managementID}).Return(&models.Address{}, nil)
	suite.mockDrivers.EXPECT().Save(suite.ctx, stored).DoAndReturn(func(_ context.Context, d *models.Driver) error {
		suite.Nil(d.HomeAddressID)
		suite.Require().NotNil(d.ManagementAddressID)
		suite.Equal(managementID, *d.ManagementAddressID)
		return nil
	})
	suite.mockDrivers.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": id}, driverDetail...).
		Return(stored, nil)

	_, err := suite.driverService.Update(suite.ctx, id, &service.UpdateDriverRequest{HomeAddressID: service.NullID})
	suite.NoError(err)
}

func (suite *DriverServiceTestSuite) TestUpdate_ReplacesAddress() {
	id, oldID, newID := uuid.New(), uuid.New(), uuid.New()
	stored := &models.Driver{BaseModel: models.BaseModel{ID: id}, FirstName: "Minh", LastName: "Tran", HomeAddressID: &oldID}

	suite.mockDrivers.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(stored, nil)
	suite.mockAddresses.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": newID}).Return(&models.Address{}, nil)
	suite.mockDrivers.EXPECT().Save(suite.ctx, stored).DoAndReturn(func(_ context.Context, d *models.Driver) error {
		suite.Require().NotNil(d.HomeAddressID)
		suite.Equal(newID, *d.HomeAddressID)
		return nil
	})
	suite.mockDrivers.EXPECT().FindOne(suite.ctx, gomock.Any(), driverDetail...).Return(stored, nil)

	_, err := suite.driverService.Update(suite.ctx, id, &service.UpdateDriverRequest{HomeAddressID: service.SomeID(newID)})
	suite.NoError(err)
}

func (suite *DriverServiceTestSuite) TestReplace_ClearsTeamsWhenOmitted() {
	id := uuid.New()
	stored := &models.Driver{BaseModel: models.BaseModel{ID: id}, FirstName: "Minh", LastName: "Tran"}

	suite.mockDrivers.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(stored, nil)
	suite.mockTeams.EXPECT().FindByIDs(suite.ctx, gomock.Nil()).Return([]models.Team{}, nil)
	suite.mockDrivers.EXPECT().Save(suite.ctx, stored).Return(nil)
	suite.mockDrivers.EXPECT().ReplaceAssociation(suite.ctx, stored, "Teams", []models.Team{}).Return(nil)
	suite.mockDrivers.EXPECT().FindOne(suite.ctx, gomock.Any(), driverDetail...).Return(stored, nil)

	_, err := suite.driverService.Replace(suite.ctx, id, &service.CreateDriverRequest{FirstName: "Minh", LastName: "Le"})
	suite.NoError(err)
}

func (suite *DriverServiceTestSuite) TestReplace_NotFound() {
	id := uuid.New()
	suite.mockDrivers.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(nil, apperrors.ErrDriverNotFound)

	_, err := suite.driverService.Replace(suite.ctx, id, &service.CreateDriverRequest{FirstName: "Minh", LastName: "Le"})
	suite.True(errors.Is(err, apperrors.ErrDriverNotFound))
}

func (suite *DriverServiceTestSuite) TestDelete_MissingIsNotFound() {
	id := uuid.New()
	suite.mockDrivers.EXPECT().Delete(suite.ctx, id).Return(int64(0), nil)

	err := suite.driverService.Delete(suite.ctx, id)
	suite.True(errors.Is(err, apperrors.ErrDriverNotFound))
}

func (suite *DriverServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockDrivers.EXPECT().Delete(suite.ctx, id).Return(int64(1), nil)

	suite.NoError(suite.driverService.Delete(suite.ctx, id))
}

func (suite *DriverServiceTestSuite) TestList_RejectsUnknownSort() {
	_, err := suite.driverService.List(suite.ctx, service.ListQuery{Sort: "salary"})
	suite.True(apperrors.IsValidation(err))
}

func TestDriverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DriverServiceTestSuite))
}
