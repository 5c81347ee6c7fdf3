//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/handler/api"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/validator"
	"hotelcore/tests/common/builder"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/common/testutil"
	commandsmock "hotelcore/tests/mock/commands"
	queriesmock "hotelcore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("staff_role", staff.RoleReceptionist)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.POST("/reservations/validate", authMiddleware, s.handler.ValidateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.PUT("/reservations/:id", authMiddleware, s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.DeleteReservation)
	s.router.POST("/reservations/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/reservations/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", authMiddleware, s.handler.CheckOut)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil)},
			{name: "missing number_of_guests", mutate: testutil.Field("number_of_guests", nil)},
			{name: "missing primary_guest_name", mutate: testutil.Field("primary_guest_name", nil)},
			{name: "missing primary_guest_id_number", mutate: testutil.Field("primary_guest_id_number", nil)},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request with the full violation list", func() {
		violations := []string{
			"Room capacity (2) exceeded. Guests: 5",
			"Number of guests (5) doesn't match provided guest details (1)",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &commands.ValidationError{Violations: violations}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
		var body struct {
			Error  string   `json:"error"`
			Errors []string `json:"errors"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Validation failed", body.Error)
		s.Equal(violations, body.Errors)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "room conflict",
				commandsError:  commands.ErrRoomConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room is not available for selected dates",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestValidateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestValidateReservation() {
	url := "/reservations/validate"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: clean input returns isValid true", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(validator.Result{IsValid: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsValid)
		s.Empty(response.Errors)
	})

	s.Run("success: violations come back as a 200, not an error", func() {
		violations := []string{
			"Room is not available for the selected dates",
			"Room capacity (2) exceeded. Guests: 5",
		}
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(validator.Result{IsValid: false, Errors: violations}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsValid)
		s.Equal(violations, response.Errors)
	})

	s.Run("error: 400 on malformed body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("room_id", "not-a-uuid"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
		s.Len(response.Guests, 1)
		s.True(response.Guests[0].IsPrimary)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	s.Run("success: returns the reservation list", func() {
		returned := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().BuildListItem(),
		}

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes status and room filters through", func() {
		roomID := uuid.New()
		returned := []*queries.ReservationListItem{
			builder.NewReservationBuilder().WithRoomID(roomID).BuildListItem(),
		}

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter queries.ReservationListFilter) ([]*queries.ReservationListItem, error) {
				s.Equal("confirmed", filter.Status)
				s.Require().NotNil(filter.RoomID)
				s.Equal(roomID, *filter.RoomID)
				return returned, nil
			},
		).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=confirmed&room_id="+roomID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed room_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room_id format")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransitions() {
	reservationID := uuid.New()

	s.Run("success: confirm returns 200 with a message", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/confirm", nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Reservation confirmed", body["message"])
	})

	s.Run("success: cancel returns 200", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on invalid transition", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID).
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 422 on early check-in", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), reservationID).
			Return(commands.ErrCheckInTooEarly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/check-in", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cannot check in before reservation date")
	})

	s.Run("error: 404 on unknown reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestCheckOut
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckOut() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/check-out"

	s.Run("success: returns 200 with a completed checkout", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), reservationID, false).
			Return(&commands.CheckOutResult{Success: true, Message: "Checked out successfully"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Checked out successfully", response.Message)
	})

	s.Run("success: unpaid balance reports the outstanding amount", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), reservationID, false).
			Return(&commands.CheckOutResult{
				Success:         false,
				Message:         "Payment required: 30000 cents outstanding",
				RequiresPayment: true,
				RemainingCents:  30000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.True(response.RequiresPayment)
		s.Equal(int64(30000), response.RemainingCents)
	})

	s.Run("success: force=true is passed through", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), reservationID, true).
			Return(&commands.CheckOutResult{Success: true, Message: "Checked out successfully"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?force=true", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when not checked in", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), reservationID, false).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})
}

// ================================================================================
// TestUpdateReservation / TestDeleteReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	b := builder.NewReservationBuilder()
	reqBody := map[string]any{
		"check_in":           b.BuildInput().CheckIn,
		"check_out":          b.BuildInput().CheckOut,
		"number_of_guests":   1,
		"total_amount_cents": 45000,
		"paid_amount_cents":  45000,
		"payment_method":     "card",
	}
	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 with the refreshed view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reservationID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 on conflicting dates", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reservationID, gomock.Any()).
			Return(commands.ErrRoomConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is not available for selected dates")
	})

	s.Run("error: 422 on terminal reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reservationID, gomock.Any()).
			Return(commands.ErrTerminalReservation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Reservation is in a terminal state")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reservationID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on unknown reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reservationID).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
