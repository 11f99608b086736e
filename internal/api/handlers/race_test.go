package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"motorsport-backend/internal/api/handlers"
	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/mocks"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RaceHandlerTestSuite defines the test suite for RaceHandler
type RaceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRaces   *mocks.MockRaceServiceInterface
	mockResults *mocks.MockRaceResultServiceInterface
	router      *gin.Engine
}

func (suite *RaceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRaces = mocks.NewMockRaceServiceInterface(suite.ctrl)
	suite.mockResults = mocks.NewMockRaceResultServiceInterface(suite.ctrl)
	suite.router = newRouter(handlers.NewRaceHandler(suite.mockRaces, suite.mockResults, service.NewValidator()))
}

func (suite *RaceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RaceHandlerTestSuite) TestCreateRace_WithResults() {
	carID, driverID := uuid.New(), uuid.New()
	suite.mockRaces.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateRaceRequest) (*models.Race, error) {
			suite.Equal("Grand Prix Da Lat", req.Name)
			suite.Require().Len(req.Results, 1)
			suite.Equal(carID, *req.Results[0].CarID)
			return &models.Race{Name: req.Name}, nil
		})

	body := `{"name":"Grand Prix Da Lat","results":[{"car_number":9,"finishing_position":1,"is_finished":true,` +
		`"car_id":"` + carID.String() + `","driver_id":"` + driverID.String() + `"}]}`
	w := doRequest(suite.router, http.MethodPost, "/api/races", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *RaceHandlerTestSuite) TestCreateRace_NestedResultInvalid() {
	body := `{"name":"Grand Prix Da Lat","results":[{"car_id":"` + uuid.NewString() + `"}]}`
	w := doRequest(suite.router, http.MethodPost, "/api/races", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("results[0].driver_id", errorBody(w)["field"])
}

func (suite *RaceHandlerTestSuite) TestListRaceResults() {
	raceID, carID := uuid.New(), uuid.New()
	suite.mockResults.EXPECT().
		ListBy(gomock.Any(), service.ResultFilter{RaceID: &raceID}, service.ResultQuery{CarID: carID.String()}).
		Return(&service.ListResult[models.RaceResult]{Data: []models.RaceResult{}, Count: 0}, nil)

	w := doRequest(suite.router, http.MethodGet, "/api/races/"+raceID.String()+"/results?car_id="+carID.String(), "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[],"count":0}`, w.Body.String())
}

func (suite *RaceHandlerTestSuite) TestListRaceResults_MalformedFilter() {
	w := doRequest(suite.router, http.MethodGet, "/api/races/"+uuid.NewString()+"/results?driver_id=abc", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("driver_id", errorBody(w)["field"])
}

func (suite *RaceHandlerTestSuite) TestAddRaceResults() {
	raceID, carID, driverID := uuid.New(), uuid.New(), uuid.New()
	suite.mockResults.EXPECT().
		AddToRace(gomock.Any(), raceID, []service.RaceResultInput{{CarNumber: 3, CarID: &carID, DriverID: &driverID}}).
		Return([]models.RaceResult{{CarNumber: 3, RaceID: &raceID}}, nil)

	body := `{"results":[{"car_number":3,"car_id":"` + carID.String() + `","driver_id":"` + driverID.String() + `"}]}`
	w := doRequest(suite.router, http.MethodPut, "/api/races/"+raceID.String()+"/results", body)

	suite.Equal(http.StatusOK, w.Code)
	var got []models.RaceResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 1)
}

func (suite *RaceHandlerTestSuite) TestAddRaceResults_EmptyList() {
	w := doRequest(suite.router, http.MethodPut, "/api/races/"+uuid.NewString()+"/results", `{"results":[]}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RaceHandlerTestSuite) TestAddRaceResults_Duplicate() {
	raceID, carID, driverID := uuid.New(), uuid.New(), uuid.New()
	suite.mockResults.EXPECT().AddToRace(gomock.Any(), raceID, gomock.Any()).Return(nil, apperrors.ErrRaceResultExists)

	body := `{"results":[{"car_id":"` + carID.String() + `","driver_id":"` + driverID.String() + `"}]}`
	w := doRequest(suite.router, http.MethodPut, "/api/races/"+raceID.String()+"/results", body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RaceHandlerTestSuite) TestUpdateRaceResult_OtherRace() {
	raceID, resultID := uuid.New(), uuid.New()
	suite.mockResults.EXPECT().
		UpdateInRace(gomock.Any(), raceID, resultID, gomock.Any()).
		Return(nil, apperrors.ErrRaceResultNotFound)

	w := doRequest(suite.router, http.MethodPatch, "/api/races/"+raceID.String()+"/results/"+resultID.String(), `{"finishing_position":2}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("race result not found", errorBody(w)["error"])
}

func (suite *RaceHandlerTestSuite) TestUpdateRaceResult_InvalidResultID() {
	w := doRequest(suite.router, http.MethodPatch, "/api/races/"+uuid.NewString()+"/results/7", `{"finishing_position":2}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("resultId", errorBody(w)["field"])
}

func TestRaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RaceHandlerTestSuite))
}
