package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "todolist/internal/delivery/context"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_KeepsDetailsForClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "email: must be a valid email"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Input validation failed", body.Detail)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, "req-42", body.RequestID)
	assert.Equal(t, "email: must be a valid email", body.Details)
	assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestError_HidesDetails(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "CODE", "message", "secret internals"))

		assert.Empty(t, decodeError(t, rec).Details, status)
		assert.NotContains(t, rec.Body.String(), "secret internals")
	}
}

func TestError_UnauthorizedAdvertisesBearer(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusUnauthorized, "CREDENTIALS_INVALID", "Could not validate credentials", ""))

	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, "Task deleted successfully"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, rec.Body.String())
}
