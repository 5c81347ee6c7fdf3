package api

import (
	"errors"
	"net/http"

	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// GuestHandler is read-only: guest profiles are created and updated through
// the reservation flow, never directly.
type GuestHandler struct {
	guestQueries queries.GuestQueries
}

func NewGuestHandler(qs queries.GuestQueries) *GuestHandler {
	return &GuestHandler{guestQueries: qs}
}

// @Summary Get guest
// @Description Get guest profile with visit and spend statistics
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondGuestErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary List guests
// @Description List guest profiles, optionally active-only or by name; an identity_number param performs an exact lookup instead
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Active guests only"
// @Param name query string false "Name substring"
// @Param identity_number query string false "Exact national ID lookup"
// @Success 200 {array} resdto.GuestResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	if identityNumber := c.Query("identity_number"); identityNumber != "" {
		view, err := h.guestQueries.GetByIdentityNumber(c.Request.Context(), identityNumber)
		if err != nil {
			respondGuestErr(c, err)
			return
		}
		c.JSON(http.StatusOK, []*resdto.GuestResponse{resdto.FromGuestView(view)})
		return
	}

	filter := queries.GuestListFilter{
		ActiveOnly: c.Query("active") == "true",
		NameLike:   c.Query("name"),
	}

	views, err := h.guestQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GuestResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromGuestView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get guest history
// @Description List a guest's reservations, newest first
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id}/history [get]
func (h *GuestHandler) GetGuestHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := h.guestQueries.History(c.Request.Context(), id)
	if err != nil {
		respondGuestErr(c, err)
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func respondGuestErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
