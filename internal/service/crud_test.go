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

type CrudServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockRepository[models.Class]
	crud     *service.CrudService[models.Class]
	ctx      context.Context
}

func (suite *CrudServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRepository[models.Class](suite.ctrl)
	suite.crud = service.NewCrudService[models.Class](suite.mockRepo, "class", "Detail")
	suite.ctx = context.Background()
}

func (suite *CrudServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CrudServiceTestSuite) TestFindAll_TranslatesPagination() {
	rows := []models.Class{{Name: "GT3"}, {Name: "GT4"}}
	suite.mockRepo.EXPECT().
		FindMany(suite.ctx, repository.Query{Limit: 2, Offset: 2}).
		Return(rows, int64(5), nil)

	res, err := suite.crud.FindAll(suite.ctx, &service.FindOptions{
		Pagination: &service.Pagination{PageSize: 2, CurrentPage: 2},
	})

	suite.Require().NoError(err)
	suite.Equal(int64(5), res.Count)
	suite.Equal(rows, res.Data)
}

func (suite *CrudServiceTestSuite) TestFindAll_DefaultPageSize() {
	suite.mockRepo.EXPECT().
		FindMany(suite.ctx, repository.Query{Limit: service.DefaultPageSize, Offset: 0}).
		Return([]models.Class{}, int64(0), nil)

	res, err := suite.crud.FindAll(suite.ctx, &service.FindOptions{Pagination: &service.Pagination{}})

	suite.Require().NoError(err)
	suite.Empty(res.Data)
}

func (suite *CrudServiceTestSuite) TestFindAll_NoOptionsIsUnbounded() {
	suite.mockRepo.EXPECT().
		FindMany(suite.ctx, repository.Query{}).
		Return([]models.Class{{Name: "LMP2"}}, int64(1), nil)

	res, err := suite.crud.FindAll(suite.ctx, nil)

	suite.Require().NoError(err)
	suite.Len(res.Data, 1)
}

func (suite *CrudServiceTestSuite) TestFindAll_PassesWhereRelationsAndOrder() {
	where := map[string]interface{}{"name": "GT3"}
	order := []repository.Order{{Field: "name", Desc: true}}
	suite.mockRepo.EXPECT().
		FindMany(suite.ctx, repository.Query{Where: where, Relations: []string{"Cars"}, Order: order}).
		Return([]models.Class{}, int64(0), nil)

	_, err := suite.crud.FindAll(suite.ctx, &service.FindOptions{Where: where, Relations: []string{"Cars"}, Order: order})
	suite.NoError(err)
}

func (suite *CrudServiceTestSuite) TestFindAll_RepositoryError() {
	cause := errors.New("connection refused")
	suite.mockRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).Return(nil, int64(0), cause)

	_, err := suite.crud.FindAll(suite.ctx, nil)
	suite.ErrorIs(err, cause)
}

func (suite *CrudServiceTestSuite) TestFindByID_LoadsDetailRelations() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		FindOne(suite.ctx, map[string]interface{}{"id": id}, "Detail").
		Return(&models.Class{BaseModel: models.BaseModel{ID: id}, Name: "GT3"}, nil)

	class, err := suite.crud.FindByID(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal("GT3", class.Name)
}

func (suite *CrudServiceTestSuite) TestFindByID_NotFound() {
	suite.mockRepo.EXPECT().
		FindOne(suite.ctx, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrClassNotFound)

	_, err := suite.crud.FindByID(suite.ctx, uuid.New())
	suite.True(errors.Is(err, apperrors.ErrClassNotFound))
}

func (suite *CrudServiceTestSuite) TestFindByIDs_OmitsMissing() {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	found := []models.Class{{BaseModel: models.BaseModel{ID: a}}, {BaseModel: models.BaseModel{ID: c}}}
	suite.mockRepo.EXPECT().FindByIDs(suite.ctx, []uuid.UUID{a, b, c}).Return(found, nil)

	got, err := suite.crud.FindByIDs(suite.ctx, []uuid.UUID{a, b, c})
	suite.Require().NoError(err)
	suite.Equal(found, got)
}

func (suite *CrudServiceTestSuite) TestSave_WrapsError() {
	suite.mockRepo.EXPECT().Save(suite.ctx, gomock.Any()).Return(apperrors.NewValidationError("class", "bad reference"))

	err := suite.crud.Save(suite.ctx, &models.Class{Name: "GT3"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "failed to save class")
}

func (suite *CrudServiceTestSuite) TestSaveMany() {
	batch := []*models.Class{{Name: "GT3"}, {Name: "GT4"}}
	suite.mockRepo.EXPECT().SaveMany(suite.ctx, batch).Return(nil)

	suite.NoError(suite.crud.SaveMany(suite.ctx, batch))
}

func (suite *CrudServiceTestSuite) TestDelete_MissingIDReportsZero() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(suite.ctx, id).Return(int64(0), nil)

	affected, err := suite.crud.Delete(suite.ctx, id)
	suite.NoError(err)
	suite.Equal(int64(0), affected)
}

func (suite *CrudServiceTestSuite) TestDelete_ReportsAffected() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(suite.ctx, id).Return(int64(1), nil)

	affected, err := suite.crud.Delete(suite.ctx, id)
	suite.NoError(err)
	suite.Equal(int64(1), affected)
}

func TestCrudServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrudServiceTestSuite))
}
