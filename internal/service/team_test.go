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

var teamDetail = []interface{}{
	"BusinessAddress", "Cars", "Cars.Class",
	"Drivers", "Drivers.HomeAddress", "Drivers.ManagementAddress", "Drivers.Teams",
}

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTeams     *mocks.MockRepository[models.Team]
	mockAddresses *mocks.MockRepository[models.Address]
	mockDrivers   *mocks.MockRepository[models.Driver]
	teamService   *service.TeamService
	ctx           context.Context
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockRepository[models.Team](suite.ctrl)
	suite.mockAddresses = mocks.NewMockRepository[models.Address](suite.ctrl)
	suite.mockDrivers = mocks.NewMockRepository[models.Driver](suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeams, suite.mockAddresses, suite.mockDrivers, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreate_ResolvesDriversAndAddress() {
	teamID, addressID := uuid.New(), uuid.New()
	d1, d2 := uuid.New(), uuid.New()
	drivers := []models.Driver{
		{BaseModel: models.BaseModel{ID: d1}, FirstName: "Minh"},
		{BaseModel: models.BaseModel{ID: d2}, FirstName: "Lan"},
	}

	gomock.InOrder(
		suite.mockAddresses.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": addressID}).Return(&models.Address{}, nil),
		suite.mockDrivers.EXPECT().FindByIDs(suite.ctx, []uuid.UUID{d1, d2}).Return(drivers, nil),
		suite.mockTeams.EXPECT().Save(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, t *models.Team) error {
			suite.Equal("Saigon Racing", t.Name)
			suite.Equal(models.NationalityVietNam, t.Nationality)
			suite.Equal(&addressID, t.BusinessAddressID)
			t.ID = teamID
			return nil
		}),
		suite.mockTeams.EXPECT().ReplaceAssociation(suite.ctx, gomock.Any(), "Drivers", drivers).Return(nil),
		suite.mockTeams.EXPECT().
			FindOne(suite.ctx, map[string]interface{}{"id": teamID}, teamDetail...).
			Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Drivers: drivers}, nil),
	)

	team, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{
		Name:              "Saigon Racing",
		Nationality:       models.NationalityVietNam,
		BusinessAddressID: &addressID,
		DriverIDs:         []uuid.UUID{d1, d2},
	})

	suite.Require().NoError(err)
	suite.Len(team.Drivers, 2)
}

func (suite *TeamServiceTestSuite) TestCreate_DefaultsNationality() {
	suite.mockTeams.EXPECT().Save(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, t *models.Team) error {
		suite.Equal(models.DefaultNationality, t.Nationality)
		return nil
	})
	suite.mockTeams.EXPECT().FindOne(suite.ctx, gomock.Any(), teamDetail...).Return(&models.Team{}, nil)

	_, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{Name: "Hanoi Motorsport"})
	suite.NoError(err)
}

func (suite *TeamServiceTestSuite) TestCreate_MissingName() {
	_, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{})

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("name", verr.Field)
}

func (suite *TeamServiceTestSuite) TestUpdate_EmptyDriverListClears() {
	id := uuid.New()
	stored := &models.Team{BaseModel: models.BaseModel{ID: id}, Name: "Saigon Racing", Nationality: models.NationalityVietNam}
	empty := []uuid.UUID{}

	suite.mockTeams.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}).Return(stored, nil)
	suite.mockDrivers.EXPECT().FindByIDs(suite.ctx, empty).Return([]models.Driver{}, nil)
	suite.mockTeams.EXPECT().Save(suite.ctx, stored).Return(nil)
	suite.mockTeams.EXPECT().ReplaceAssociation(suite.ctx, stored, "Drivers", []models.Driver{}).Return(nil)
	suite.mockTeams.EXPECT().FindOne(suite.ctx, map[string]interface{}{"id": id}, teamDetail...).Return(stored, nil)

	_, err := suite.teamService.Update(suite.ctx, id, &service.UpdateTeamRequest{DriverIDs: &empty})
	suite.NoError(err)
}

func (suite *TeamServiceTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.mockTeams.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": id}, teamDetail...).
		Return(nil, apperrors.ErrTeamNotFound)

	_, err := suite.teamService.Get(suite.ctx, id)
	suite.True(errors.Is(err, apperrors.ErrTeamNotFound))
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
