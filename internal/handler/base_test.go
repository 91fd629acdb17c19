package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haleview/clinic-api/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidate = validator.New()

type noteRequest struct {
	Title string  `json:"title" validate:"required"`
	Notes *string `json:"notes"`
}

func (r *noteRequest) Validate() error {
	return testValidate.Struct(r)
}

type noteResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func newTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notes/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNewRequestAllocatesPerCall(t *testing.T) {
	prototype := &noteRequest{}

	first := newRequest(prototype)
	second := newRequest(prototype)

	assert.NotSame(t, prototype, first)
	assert.NotSame(t, first, second)
}

func TestHandleWritesJSONResponse(t *testing.T) {
	route := Handle(Handler{}, func(c echo.Context, req *noteRequest) (*noteResponse, error) {
		return &noteResponse{ID: 1, Title: req.Title}, nil
	}, http.StatusCreated, &noteRequest{})

	c, rec := newTestContext(`{"title": "Checkup"}`)
	require.NoError(t, route(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": 1, "title": "Checkup"}`, rec.Body.String())
}

func TestHandleDoesNotLeakStateBetweenRequests(t *testing.T) {
	var seen []*noteRequest
	route := Handle(Handler{}, func(c echo.Context, req *noteRequest) (*noteResponse, error) {
		seen = append(seen, req)
		return &noteResponse{ID: len(seen), Title: req.Title}, nil
	}, http.StatusCreated, &noteRequest{})

	c1, _ := newTestContext(`{"title": "First", "notes": "bring records"}`)
	require.NoError(t, route(c1))

	c2, _ := newTestContext(`{"title": "Second"}`)
	require.NoError(t, route(c2))

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	require.NotNil(t, seen[0].Notes)
	assert.Equal(t, "bring records", *seen[0].Notes)
	// The second request's payload must not carry the first one's notes.
	assert.Nil(t, seen[1].Notes)
}

func TestHandleReturnsValidationError(t *testing.T) {
	route := Handle(Handler{}, func(c echo.Context, req *noteRequest) (*noteResponse, error) {
		t.Fatal("handler must not run when validation fails")
		return nil, nil
	}, http.StatusCreated, &noteRequest{})

	c, _ := newTestContext(`{}`)
	err := route(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Errors, errs.FieldError{Field: "title", Error: "is required"})
}

func TestHandlePropagatesHandlerError(t *testing.T) {
	want := errors.New("store unavailable")
	route := Handle(Handler{}, func(c echo.Context, req *noteRequest) (*noteResponse, error) {
		return nil, want
	}, http.StatusCreated, &noteRequest{})

	c, _ := newTestContext(`{"title": "Checkup"}`)
	assert.ErrorIs(t, route(c), want)
}

func TestHandleNoContent(t *testing.T) {
	route := HandleNoContent(Handler{}, func(c echo.Context, req *noteRequest) error {
		return nil
	}, http.StatusNoContent, &noteRequest{})

	c, rec := newTestContext(`{"title": "Checkup"}`)
	require.NoError(t, route(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleNoContentPropagatesError(t *testing.T) {
	want := errs.NewNotFoundError("Patient not found", true, nil)
	route := HandleNoContent(Handler{}, func(c echo.Context, req *noteRequest) error {
		return want
	}, http.StatusNoContent, &noteRequest{})

	c, _ := newTestContext(`{"title": "Checkup"}`)
	assert.ErrorIs(t, route(c), want)
}
