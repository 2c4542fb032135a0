package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gatherly/meetup-service/internal/models"
	"github.com/gatherly/meetup-service/internal/services"
)

func TestCreateRSVPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	meetupID := uuid.New()

	tests := []struct {
		name          string
		reqBody       CreateRSVPRequest
		mockSetup     func(m *MockRSVPCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "success",
			reqBody: CreateRSVPRequest{UserID: userID, MeetupID: meetupID},
			mockSetup: func(m *MockRSVPCreator) {
				created := &models.RSVPDB{RSVPID: uuid.New(), UserID: userID, MeetupID: meetupID}
				m.EXPECT().Create(gomock.Any(), userID, meetupID).Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "duplicate rsvp",
			reqBody: CreateRSVPRequest{UserID: userID, MeetupID: meetupID},
			mockSetup: func(m *MockRSVPCreator) {
				m.EXPECT().Create(gomock.Any(), userID, meetupID).Return(nil, services.ErrAlreadyRSVPed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: services.ErrAlreadyRSVPed.Error(),
		},
		{
			name:    "dangling reference",
			reqBody: CreateRSVPRequest{UserID: userID, MeetupID: meetupID},
			mockSetup: func(m *MockRSVPCreator) {
				m.EXPECT().Create(gomock.Any(), userID, meetupID).Return(nil, services.ErrInvalidReference)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: services.ErrInvalidReference.Error(),
		},
		{
			name:          "missing user id rejected before the service",
			reqBody:       CreateRSVPRequest{MeetupID: meetupID},
			expectedCode:  http.StatusBadRequest,
			expectedError: "UserID is required",
		},
		{
			name:    "internal server error",
			reqBody: CreateRSVPRequest{UserID: userID, MeetupID: meetupID},
			mockSetup: func(m *MockRSVPCreator) {
				m.EXPECT().Create(gomock.Any(), userID, meetupID).Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRSVPCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateRSVPHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/createRsvp", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp models.RSVPDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID, resp.UserID)
			assert.Equal(t, meetupID, resp.MeetupID)
		})
	}
}
