package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type ReservationStore interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id uint) (models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) error
	Update(ctx context.Context, id uint, in models.Reservation) (models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type ReservationController struct {
	Reservations ReservationStore
}

func NewReservationController(store ReservationStore) *ReservationController {
	return &ReservationController{Reservations: store}
}

// GetReservations (GET /api/reservations)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.Reservations.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation (GET /api/reservations/:id)
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := ctrl.Reservations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// CreateReservation (POST /api/reservations)
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var r models.Reservation
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Reservations.Create(c.Request.Context(), &r); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}

// UpdateReservation (PUT /api/reservations/:id)
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.Reservation
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	r, err := ctrl.Reservations.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// DeleteReservation (DELETE /api/reservations/:id)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Reservations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation deleted"})
}
