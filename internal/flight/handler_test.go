package flight

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel/internal/session"
	"travel/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(s *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewFlightHandler(s).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.Header, "handler-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlightHandler_Search(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.MatchedBy(func(r SearchRequest) bool {
		return r.SessionID == "handler-test"
	})).Return(sampleFlights(), nil)

	w := doJSON(t, newTestRouter(newTestService(client, c)), http.MethodPost, "/v1/flights/search", validRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Flights, 5)
	assert.Equal(t, "LAX", resp.SearchCriteria.Destination)
}

func TestFlightHandler_Search_BadBody(t *testing.T) {
	r := newTestRouter(newTestService(new(MockFlightClient), new(MockCache)))

	req := httptest.NewRequest(http.MethodPost, "/v1/flights/search", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeValidation))
}

func TestFlightHandler_Search_ValidationError(t *testing.T) {
	r := newTestRouter(newTestService(new(MockFlightClient), new(MockCache)))

	req := validRequest()
	req.Origin = "NOPE"
	w := doJSON(t, r, http.MethodPost, "/v1/flights/search", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "3-letter")
}

func TestFlightHandler_Search_UpstreamFailure(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	w := doJSON(t, newTestRouter(newTestService(client, c)), http.MethodPost, "/v1/flights/search", validRequest())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeUpstreamFailure))
}

func TestFlightHandler_Results(t *testing.T) {
	client := new(MockFlightClient)
	c := new(MockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleFlights(), nil)

	body := ResultsRequest{
		SearchRequest: validRequest(),
		QuickFilters:  []QuickFilterID{QuickDirect},
		Sort:          SortFastest,
	}
	w := doJSON(t, newTestRouter(newTestService(client, c)), http.MethodPost, "/v1/flights/results", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ResultsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"f1", "f3"}, ids(resp.Flights))
	assert.Len(t, resp.QuickFilters, 6)
	assert.Equal(t, SortFastest, resp.Sort)
}

func TestFlightHandler_InvalidateCache(t *testing.T) {
	c := new(MockCache)
	c.On("Del", mock.Anything, mock.Anything).Return(nil).Once()

	w := doJSON(t, newTestRouter(newTestService(new(MockFlightClient), c)), http.MethodDelete, "/v1/flights/cache", validRequest())

	assert.Equal(t, http.StatusNoContent, w.Code)
	c.AssertExpectations(t)
}

func TestSendError_UnknownError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	sendError(ctx, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeInternalFailure))
}
