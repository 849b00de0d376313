package controllers

import (
	"errors"
	"log"
	"net/http"

	"lodging-backend/services"
	"lodging-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// ----------------------------------------------------
// 1. Reserve (POST /api/places/:id/bookings)
// ----------------------------------------------------

func (rc *ReservationController) Reserve(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := rc.service.Reserve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case services.IsValidation(err):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrPlaceNotFound):
			utils.JSONError(c, http.StatusNotFound, "Place not found")
		default:
			log.Printf("❌ failed to reserve place %s: %v", c.Param("id"), err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ----------------------------------------------------
// 2. Cancel (DELETE /api/places/:id/bookings/:bookingId)
// ----------------------------------------------------

func (rc *ReservationController) Cancel(c *gin.Context) {
	err := rc.service.Cancel(c.Request.Context(), c.Param("id"), c.Param("bookingId"))
	if err != nil {
		log.Printf("❌ failed to cancel booking %s: %v", c.Param("bookingId"), err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}
	c.Status(http.StatusNoContent)
}
