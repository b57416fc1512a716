package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/forms"
	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type ReservationReader interface {
	Get(ctx context.Context, id uint) (models.Reservation, error)
}

// FormController exposes server-side edit sessions for reservation forms.
type FormController struct {
	Reservations ReservationReader
	Sessions     *forms.Store
}

func NewFormController(reservations ReservationReader, sessions *forms.Store) *FormController {
	return &FormController{Reservations: reservations, Sessions: sessions}
}

type setFieldPayload struct {
	Value string `json:"value"`
}

// OpenReservationForm (POST /api/reservations/:id/form)
func (ctrl *FormController) OpenReservationForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := ctrl.Reservations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	snap := ctrl.Sessions.Open(forms.KindReservation, services.MapReservationToForm(r), forms.ReservationRules)
	utils.JSONSuccess(c, http.StatusCreated, snap)
}

// GetForm (GET /api/forms/:sid)
func (ctrl *FormController) GetForm(c *gin.Context) {
	snap, err := ctrl.Sessions.Get(c.Param("sid"))
	ctrl.respond(c, snap, err)
}

// ChangeField (PATCH /api/forms/:sid) applies a {name, value} change event.
func (ctrl *FormController) ChangeField(c *gin.Context) {
	var ev forms.ChangeEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid change event: "+err.Error())
		return
	}
	snap, err := ctrl.Sessions.Do(c.Param("sid"), func(f *forms.Controller) *bool {
		f.HandleChange(ev)
		return nil
	})
	ctrl.respond(c, snap, err)
}

// SetField (PUT /api/forms/:sid/fields/:key)
func (ctrl *FormController) SetField(c *gin.Context) {
	var p setFieldPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	key := c.Param("key")
	snap, err := ctrl.Sessions.Do(c.Param("sid"), func(f *forms.Controller) *bool {
		f.SetField(key, p.Value)
		return nil
	})
	ctrl.respond(c, snap, err)
}

// ValidateForm (POST /api/forms/:sid/validate)
func (ctrl *FormController) ValidateForm(c *gin.Context) {
	snap, err := ctrl.Sessions.Do(c.Param("sid"), func(f *forms.Controller) *bool {
		ok := f.Validate()
		return &ok
	})
	ctrl.respond(c, snap, err)
}

// ResetForm (POST /api/forms/:sid/reset)
func (ctrl *FormController) ResetForm(c *gin.Context) {
	snap, err := ctrl.Sessions.Do(c.Param("sid"), func(f *forms.Controller) *bool {
		f.Reset()
		return nil
	})
	ctrl.respond(c, snap, err)
}

// CloseForm (DELETE /api/forms/:sid)
func (ctrl *FormController) CloseForm(c *gin.Context) {
	if err := ctrl.Sessions.Close(c.Param("sid")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "form closed"})
}

func (ctrl *FormController) respond(c *gin.Context, snap forms.Snapshot, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}
