//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// GormRepositoryTestSuite exercises GormRepository against a real Postgres
type GormRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	ctx           context.Context

	addresses *GormRepository[models.Address]
	classes   *GormRepository[models.Class]
	teams     *GormRepository[models.Team]
	drivers   *GormRepository[models.Driver]
	cars      *GormRepository[models.Car]
	races     *GormRepository[models.Race]
	results   *GormRepository[models.RaceResult]
}

func (suite *GormRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	db := suite.baseTestSuite.DB
	suite.addresses = NewRepository[models.Address](db, "address")
	suite.classes = NewRepository[models.Class](db, "class")
	suite.teams = NewRepository[models.Team](db, "team")
	suite.drivers = NewRepository[models.Driver](db, "driver")
	suite.cars = NewRepository[models.Car](db, "car")
	suite.races = NewRepository[models.Race](db, "race")
	suite.results = NewRepository[models.RaceResult](db, "race result")
}

func (suite *GormRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *GormRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *GormRepositoryTestSuite) TestSaveAndFindOne() {
	class := suite.factories.Class.WithName("LMP2")
	suite.Require().NoError(suite.classes.Save(suite.ctx, class))
	suite.NotEqual(uuid.Nil, class.ID)

	found, err := suite.classes.FindOne(suite.ctx, map[string]interface{}{"id": class.ID})
	suite.Require().NoError(err)
	suite.Equal("LMP2", found.Name)
	suite.NotZero(found.CreatedAt)
}

func (suite *GormRepositoryTestSuite) TestFindOneMissing() {
	_, err := suite.classes.FindOne(suite.ctx, map[string]interface{}{"id": uuid.New()})
	suite.True(errors.Is(err, apperrors.ErrClassNotFound))
}

func (suite *GormRepositoryTestSuite) TestSaveReplacesExistingRow() {
	address := suite.factories.Address.Create()
	address.Street2 = "Floor 3"
	suite.Require().NoError(suite.addresses.Save(suite.ctx, address))
	createdAt := address.CreatedAt

	replacement := &models.Address{
		BaseModel: models.BaseModel{ID: address.ID},
		Name:      "HQ",
		Street:    "1 Le Loi",
		City:      "Hanoi",
		State:     "HN",
		Zip:       "100000",
		Country:   "Viet Nam",
	}
	suite.Require().NoError(suite.addresses.Save(suite.ctx, replacement))
	suite.Equal(address.ID, replacement.ID)

	found, err := suite.addresses.FindOne(suite.ctx, map[string]interface{}{"id": address.ID})
	suite.Require().NoError(err)
	suite.Equal("HQ", found.Name)
	suite.Empty(found.Street2)
	suite.WithinDuration(createdAt, found.CreatedAt, time.Millisecond)
}

func (suite *GormRepositoryTestSuite) TestSaveWithUnknownIDCreatesFreshRow() {
	unknown := uuid.New()
	class := suite.factories.Class.Create()
	class.ID = unknown

	suite.Require().NoError(suite.classes.Save(suite.ctx, class))
	suite.NotEqual(unknown, class.ID)

	_, err := suite.classes.FindOne(suite.ctx, map[string]interface{}{"id": unknown})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestFindManyPagination() {
	var saved []*models.Class
	for i := 0; i < 5; i++ {
		class := suite.factories.Class.Create()
		suite.Require().NoError(suite.classes.Save(suite.ctx, class))
		saved = append(saved, class)
	}

	page, count, err := suite.classes.FindMany(suite.ctx, Query{Limit: 2, Offset: 2})
	suite.Require().NoError(err)
	suite.Equal(int64(5), count)
	suite.Require().Len(page, 2)
	suite.Equal(saved[2].ID, page[0].ID)
	suite.Equal(saved[3].ID, page[1].ID)
}

func (suite *GormRepositoryTestSuite) TestFindManyWhereAndOrder() {
	for _, name := range []string{"GT4", "GT3", "LMP2"} {
		suite.Require().NoError(suite.classes.Save(suite.ctx, suite.factories.Class.WithName(name)))
	}

	all, count, err := suite.classes.FindMany(suite.ctx, Query{Order: []Order{{Field: "name", Desc: true}}})
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
	suite.Equal("LMP2", all[0].Name)
	suite.Equal("GT3", all[2].Name)

	filtered, count, err := suite.classes.FindMany(suite.ctx, Query{Where: map[string]interface{}{"name": "GT3"}})
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
	suite.Equal("GT3", filtered[0].Name)
}

func (suite *GormRepositoryTestSuite) TestFindByIDsOmitsMissingAndKeepsOrder() {
	a := suite.factories.Class.Create()
	c := suite.factories.Class.Create()
	suite.Require().NoError(suite.classes.SaveMany(suite.ctx, []*models.Class{a, c}))

	found, err := suite.classes.FindByIDs(suite.ctx, []uuid.UUID{c.ID, uuid.New(), a.ID, c.ID})
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal(c.ID, found[0].ID)
	suite.Equal(a.ID, found[1].ID)
}

func (suite *GormRepositoryTestSuite) TestDeleteReportsAffectedRows() {
	class := suite.factories.Class.Create()
	suite.Require().NoError(suite.classes.Save(suite.ctx, class))

	affected, err := suite.classes.Delete(suite.ctx, class.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	affected, err = suite.classes.Delete(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.Equal(int64(0), affected)
}

func (suite *GormRepositoryTestSuite) TestDriverTeamsLoadFullEntities() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Save(suite.ctx, team))

	driver := suite.factories.Driver.Create()
	suite.Require().NoError(suite.drivers.Save(suite.ctx, driver))

	teams, err := suite.teams.FindByIDs(suite.ctx, []uuid.UUID{team.ID})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.drivers.ReplaceAssociation(suite.ctx, driver, "Teams", teams))

	found, err := suite.drivers.FindOne(suite.ctx, map[string]interface{}{"id": driver.ID}, "Teams")
	suite.Require().NoError(err)
	suite.Require().Len(found.Teams, 1)
	suite.Equal(team.ID, found.Teams[0].ID)
	suite.Equal(team.Name, found.Teams[0].Name)

	// the inverse side shares the join table
	back, err := suite.teams.FindOne(suite.ctx, map[string]interface{}{"id": team.ID}, "Drivers")
	suite.Require().NoError(err)
	suite.Require().Len(back.Drivers, 1)
	suite.Equal(driver.ID, back.Drivers[0].ID)

	suite.Require().NoError(suite.drivers.ReplaceAssociation(suite.ctx, found, "Teams", []models.Team{}))
	cleared, err := suite.drivers.FindOne(suite.ctx, map[string]interface{}{"id": driver.ID}, "Teams")
	suite.Require().NoError(err)
	suite.Empty(cleared.Teams)
}

func (suite *GormRepositoryTestSuite) TestDeleteAddressNullsReference() {
	address := suite.factories.Address.Create()
	suite.Require().NoError(suite.addresses.Save(suite.ctx, address))
	team := suite.factories.Team.WithBusinessAddress(address.ID)
	suite.Require().NoError(suite.teams.Save(suite.ctx, team))

	_, err := suite.addresses.Delete(suite.ctx, address.ID)
	suite.Require().NoError(err)

	found, err := suite.teams.FindOne(suite.ctx, map[string]interface{}{"id": team.ID})
	suite.Require().NoError(err)
	suite.Nil(found.BusinessAddressID)
}

func (suite *GormRepositoryTestSuite) TestRaceDeleteCascadesToResults() {
	race, car, driver := suite.seedEntry()
	result := suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID)
	suite.Require().NoError(suite.results.Save(suite.ctx, result))

	affected, err := suite.races.Delete(suite.ctx, race.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	_, count, err := suite.results.FindMany(suite.ctx, Query{})
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *GormRepositoryTestSuite) TestDuplicateResultIsRejected() {
	race, car, driver := suite.seedEntry()
	suite.Require().NoError(suite.results.Save(suite.ctx, suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID)))

	err := suite.results.Save(suite.ctx, suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID))
	suite.True(errors.Is(err, apperrors.ErrRaceResultExists))
}

func (suite *GormRepositoryTestSuite) TestSaveManyIsAtomic() {
	race, car, driver := suite.seedEntry()
	first := suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID)
	dup := suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID)

	err := suite.results.SaveMany(suite.ctx, []*models.RaceResult{first, dup})
	suite.True(apperrors.IsAlreadyExists(err))

	_, count, err := suite.results.FindMany(suite.ctx, Query{})
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *GormRepositoryTestSuite) TestPreloadNestedRelations() {
	race, car, driver := suite.seedEntry()
	class := suite.factories.Class.Create()
	suite.Require().NoError(suite.classes.Save(suite.ctx, class))
	result := suite.factories.RaceResult.ForEntry(car.ID, race.ID, driver.ID)
	result.ClassID = &class.ID
	suite.Require().NoError(suite.results.Save(suite.ctx, result))

	found, err := suite.races.FindOne(suite.ctx, map[string]interface{}{"id": race.ID}, "Results.Driver", "Results.Class")
	suite.Require().NoError(err)
	suite.Require().Len(found.Results, 1)
	suite.Equal(driver.ID, found.Results[0].Driver.ID)
	suite.Equal(class.Name, found.Results[0].Class.Name)
}

func (suite *GormRepositoryTestSuite) seedEntry() (*models.Race, *models.Car, *models.Driver) {
	race := suite.factories.Race.Create()
	suite.Require().NoError(suite.races.Save(suite.ctx, race))
	car := suite.factories.Car.Create()
	suite.Require().NoError(suite.cars.Save(suite.ctx, car))
	driver := suite.factories.Driver.Create()
	suite.Require().NoError(suite.drivers.Save(suite.ctx, driver))
	return race, car, driver
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
