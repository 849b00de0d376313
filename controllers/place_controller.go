package controllers

import (
	"errors"
	"log"
	"net/http"

	"lodging-backend/services"
	"lodging-backend/utils"

	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	service *services.PlaceService
}

func NewPlaceController(service *services.PlaceService) *PlaceController {
	return &PlaceController{service: service}
}

// ----------------------------------------------------
// 1. List Places (GET /api/places)
// ----------------------------------------------------

func (pc *PlaceController) GetPlaces(c *gin.Context) {
	places, err := pc.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("❌ failed to list places: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list places")
		return
	}
	c.JSON(http.StatusOK, places)
}

// ----------------------------------------------------
// 2. Get Place (GET /api/places/:id)
// ----------------------------------------------------

func (pc *PlaceController) GetPlaceByID(c *gin.Context) {
	place, err := pc.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPlaceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Place not found")
			return
		}
		log.Printf("❌ failed to get place %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get place")
		return
	}
	c.JSON(http.StatusOK, place)
}

// ----------------------------------------------------
// 3. Create Place (POST /api/places)
// ----------------------------------------------------

func (pc *PlaceController) CreatePlace(c *gin.Context) {
	var input services.PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	place, err := pc.service.Create(c.Request.Context(), input)
	if err != nil {
		if services.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ failed to create place: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create place")
		return
	}
	c.JSON(http.StatusCreated, place)
}

// ----------------------------------------------------
// 4. Places With Bookings By Guest (GET /api/bookings?guestId=...)
// ----------------------------------------------------

func (pc *PlaceController) GetBookedPlaces(c *gin.Context) {
	places, err := pc.service.GetForGuest(c.Request.Context(), c.Query("guestId"))
	if err != nil {
		if services.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ failed to list booked places: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, places)
}
