// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/polls"
	"github.com/danielhkuo/quickpoll/testutil"
)

// mockPollService is a testify mock of PollService
type mockPollService struct {
	mock.Mock
}

func (m *mockPollService) CreatePoll(ctx context.Context, title, option1, option2 string) (string, error) {
	args := m.Called(ctx, title, option1, option2)
	return args.String(0), args.Error(1)
}

func (m *mockPollService) CastVote(ctx context.Context, pollID, option string) error {
	return m.Called(ctx, pollID, option).Error(0)
}

func (m *mockPollService) RemovePoll(ctx context.Context, pollID string) error {
	return m.Called(ctx, pollID).Error(0)
}

func (m *mockPollService) ListPolls(ctx context.Context) ([]models.Poll, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Poll)
	return list, args.Error(1)
}

func TestListPolls(t *testing.T) {
	t.Run("all fine", func(t *testing.T) {
		svc := &mockPollService{}
		svc.On("ListPolls", mock.Anything).Return([]models.Poll{
			{ID: "p1", Title: "T", Option1: "A", Option2: "B", Votes1: 3, Votes2: 1},
		}, nil)
		defer svc.AssertExpectations(t)
		handler := NewPollHandler(svc)

		w := httptest.NewRecorder()
		handler.ListPolls(w, httptest.NewRequest("GET", "/polls/list", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListPollsResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.StatusOK, resp.Result.Status)
		assert.Equal(t, []models.Poll{{ID: "p1", Title: "T", Option1: "A", Option2: "B", Votes1: 3, Votes2: 1}}, resp.Polls)
	})

	t.Run("store failure still answers 200", func(t *testing.T) {
		svc := &mockPollService{}
		svc.On("ListPolls", mock.Anything).Return(nil, errors.New("connection refused"))
		defer svc.AssertExpectations(t)
		handler := NewPollHandler(svc)

		w := httptest.NewRecorder()
		handler.ListPolls(w, httptest.NewRequest("GET", "/polls/list", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListPollsResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.StatusError, resp.Result.Status)
		assert.Equal(t, "connection refused", resp.Result.Message)
		assert.Nil(t, resp.Polls)
	})
}

func TestCreatePoll(t *testing.T) {
	validForm := url.Values{"title": {"Lunch?"}, "option1": {"Pizza"}, "option2": {"Sushi"}}

	t.Run("valid poll creation", func(t *testing.T) {
		svc := &mockPollService{}
		svc.On("CreatePoll", mock.Anything, "Lunch?", "Pizza", "Sushi").Return("abc123", nil)
		defer svc.AssertExpectations(t)
		handler := NewPollHandler(svc)

		w := httptest.NewRecorder()
		handler.CreatePoll(w, testutil.MakeFormRequest("POST", "/polls/create", validForm))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ResultResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.StatusOK, resp.Result.Status)
		assert.Equal(t, "abc123", resp.Result.ID)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &mockPollService{}
		svc.On("CreatePoll", mock.Anything, "", "Pizza", "Sushi").Return("", &polls.ValidationError{Field: "title"})
		defer svc.AssertExpectations(t)
		handler := NewPollHandler(svc)

		form := url.Values{"option1": {"Pizza"}, "option2": {"Sushi"}}
		w := httptest.NewRecorder()
		handler.CreatePoll(w, testutil.MakeFormRequest("POST", "/polls/create", form))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		var resp models.ResultResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.StatusError, resp.Result.Status)
		assert.Equal(t, "title is required", resp.Result.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &mockPollService{}
		svc.On("CreatePoll", mock.Anything, "Lunch?", "Pizza", "Sushi").Return("", errors.New("disk full"))
		defer svc.AssertExpectations(t)
		handler := NewPollHandler(svc)

		w := httptest.NewRecorder()
		handler.CreatePoll(w, testutil.MakeFormRequest("POST", "/polls/create", validForm))

		testutil.AssertStatus(t, w, http.StatusInternalServerError)
		var resp models.ResultResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.StatusError, resp.Result.Status)
		assert.Equal(t, "disk full", resp.Result.Message)
	})
}

func readFailure(err error, msg string) error {
	return &polls.StepError{Step: polls.StepRead, Err: pkgerrors.Wrap(err, msg)}
}

func writeFailure(err error, msg string) error {
	return &polls.StepError{Step: polls.StepWrite, Err: pkgerrors.Wrap(err, msg)}
}

func TestCastVote(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expected       models.Result
	}{
		{
			name:           "vote counted",
			expectedStatus: http.StatusOK,
			expected:       models.Result{Status: models.StatusOK},
		},
		{
			name:           "poll not found",
			err:            readFailure(polls.ErrNotFound, "failed to retrieve poll p1"),
			expectedStatus: http.StatusNotFound,
			expected:       models.Result{Status: models.StatusError, Message: "failed to retrieve poll p1: document not found"},
		},
		{
			name:           "store failure while reading",
			err:            readFailure(errors.New("connection refused"), "failed to retrieve poll p1"),
			expectedStatus: http.StatusNotFound,
			expected:       models.Result{Status: models.StatusError, Message: "failed to retrieve poll p1: connection refused"},
		},
		{
			name:           "revision conflict",
			err:            writeFailure(polls.ErrConflict, "failed to update poll p1"),
			expectedStatus: http.StatusConflict,
			expected:       models.Result{Status: models.StatusError},
		},
		{
			name:           "store failure while writing",
			err:            writeFailure(errors.New("connection reset"), "failed to update poll p1"),
			expectedStatus: http.StatusConflict,
			expected:       models.Result{Status: models.StatusError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPollService{}
			svc.On("CastVote", mock.Anything, "p1", "2").Return(tt.err)
			defer svc.AssertExpectations(t)
			handler := NewPollHandler(svc)

			req := httptest.NewRequest("POST", "/polls/vote/p1/2", nil)
			req.SetPathValue("pollid", "p1")
			req.SetPathValue("option", "2")
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			var resp models.ResultResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.expected, resp.Result)
		})
	}
}

func TestDeletePoll(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expected       models.Result
	}{
		{
			name:           "deleted",
			expectedStatus: http.StatusOK,
			expected:       models.Result{Status: models.StatusOK},
		},
		{
			name:           "poll not found",
			err:            readFailure(polls.ErrNotFound, "failed to retrieve poll p1"),
			expectedStatus: http.StatusNotFound,
			expected:       models.Result{Status: models.StatusError, Message: "failed to retrieve poll p1: document not found"},
		},
		{
			name:           "store failure while reading",
			err:            readFailure(errors.New("connection refused"), "failed to retrieve poll p1"),
			expectedStatus: http.StatusNotFound,
			expected:       models.Result{Status: models.StatusError, Message: "failed to retrieve poll p1: connection refused"},
		},
		{
			name:           "revision conflict",
			err:            writeFailure(polls.ErrConflict, "failed to delete poll p1"),
			expectedStatus: http.StatusBadRequest,
			expected:       models.Result{Status: models.StatusError, Message: "failed to delete poll p1: document update conflict"},
		},
		{
			name:           "poll vanished before delete",
			err:            writeFailure(polls.ErrNotFound, "failed to delete poll p1"),
			expectedStatus: http.StatusBadRequest,
			expected:       models.Result{Status: models.StatusError, Message: "failed to delete poll p1: document not found"},
		},
		{
			name:           "store failure while deleting",
			err:            writeFailure(errors.New("connection reset"), "failed to delete poll p1"),
			expectedStatus: http.StatusBadRequest,
			expected:       models.Result{Status: models.StatusError, Message: "failed to delete poll p1: connection reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPollService{}
			svc.On("RemovePoll", mock.Anything, "p1").Return(tt.err)
			defer svc.AssertExpectations(t)
			handler := NewPollHandler(svc)

			req := httptest.NewRequest("DELETE", "/polls/vote/p1", nil)
			req.SetPathValue("pollid", "p1")
			w := httptest.NewRecorder()

			handler.DeletePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			var resp models.ResultResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.expected, resp.Result)
		})
	}
}

func TestStoreReadFailureThroughMux(t *testing.T) {
	svc := &mockPollService{}
	readErr := readFailure(errors.New("connection refused"), "failed to retrieve poll x")
	svc.On("CastVote", mock.Anything, "x", "1").Return(readErr)
	svc.On("RemovePoll", mock.Anything, "x").Return(readErr)
	defer svc.AssertExpectations(t)
	handler := NewPollHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /polls/vote/{pollid}/{option}", handler.CastVote)
	mux.HandleFunc("DELETE /polls/vote/{pollid}", handler.DeletePoll)

	for _, req := range []*http.Request{
		httptest.NewRequest("POST", "/polls/vote/x/1", nil),
		httptest.NewRequest("DELETE", "/polls/vote/x", nil),
	} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		var resp models.ResultResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.Result{Status: models.StatusError, Message: "failed to retrieve poll x: connection refused"}, resp.Result)
	}
}
