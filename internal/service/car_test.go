package service_test

import (
	"context"
	"errors"
	"testing"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/mocks"
	"motorsport-backend/internal/repository"
	"motorsport-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCars    *mocks.MockRepository[models.Car]
	mockClasses *mocks.MockRepository[models.Class]
	mockTeams   *mocks.MockRepository[models.Team]
	carService  *service.CarService
	ctx         context.Context
}

func (suite *CarServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCars = mocks.NewMockRepository[models.Car](suite.ctrl)
	suite.mockClasses = mocks.NewMockRepository[models.Class](suite.ctrl)
	suite.mockTeams = mocks.NewMockRepository[models.Team](suite.ctrl)
	suite.carService = service.NewCarService(suite.mockCars, suite.mockClasses, suite.mockTeams, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *CarServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CarServiceTestSuite) TestCreate_ChecksReferences() {
	carID, classID, teamID := uuid.New(), uuid.New(), uuid.New()

	suite.mockClasses.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": classID}).Return(&models.Class{}, nil)
	suite.mockTeams.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": teamID}).Return(&models.Team{}, nil)
	suite.mockCars.EXPECT().Save(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Car) error {
		suite.Equal("VinFast", c.Make)
		c.ID = carID
		return nil
	})
	suite.mockCars.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": carID}, "Class", "Team", "Results").
		Return(&models.Car{BaseModel: models.BaseModel{ID: carID}, Make: "VinFast"}, nil)

	car, err := suite.carService.Create(suite.ctx, &service.CreateCarRequest{
		Make:    "VinFast",
		Model:   "VF 8 GT",
		ClassID: &classID,
		TeamID:  &teamID,
	})

	suite.Require().NoError(err)
	suite.Equal(carID, car.ID)
}

func (suite *CarServiceTestSuite) TestCreate_UnknownClass() {
	classID := uuid.New()
	suite.mockClasses.EXPECT().FindOne(suite.ctx, gomock.Any()).Return(nil, apperrors.ErrClassNotFound)

	_, err := suite.carService.Create(suite.ctx, &service.CreateCarRequest{Make: "VinFast", Model: "VF 8", ClassID: &classID})

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("class_id", verr.Field)
}

func (suite *CarServiceTestSuite) TestCreate_RepositoryErrorPropagates() {
	teamID := uuid.New()
	boom := errors.New("connection reset")
	suite.mockTeams.EXPECT().FindOne(suite.ctx, gomock.Any()).Return(nil, boom)

	_, err := suite.carService.Create(suite.ctx, &service.CreateCarRequest{Make: "VinFast", Model: "VF 8", TeamID: &teamID})
	suite.ErrorIs(err, boom)
	suite.False(apperrors.IsValidation(err))
}

func (suite *CarServiceTestSuite) TestList_LoadsClassAndTeam() {
	suite.mockCars.EXPECT().
		FindMany(suite.ctx, repository.Query{
			Relations: []string{"Class", "Team"},
			Limit:     10,
			Offset:    10,
			Order:     []repository.Order{{Field: "make"}, {Field: "created_at", Desc: true}},
		}).
		Return([]models.Car{}, int64(12), nil)

	res, err := suite.carService.List(suite.ctx, service.ListQuery{Page: 2, PageSize: 10, Sort: "make,-created_at"})

	suite.Require().NoError(err)
	suite.Equal(int64(12), res.Count)
}

func TestCarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CarServiceTestSuite))
}
