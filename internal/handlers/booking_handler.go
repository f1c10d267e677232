package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voltdrive/internal/repositories/interfaces"
	"voltdrive/internal/services"
	"voltdrive/internal/utils"
	"voltdrive/internal/validators"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// GetAvailableDates returns the bookable date labels for a vehicle
func (h *BookingHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.bookingService.AvailableDates(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, interfaces.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Available dates retrieved successfully", gin.H{"dates": dates})
}

// GetDaySchedule returns the slot list for one vehicle and date, with each
// slot flagged booked or free
func (h *BookingHandler) GetDaySchedule(c *gin.Context) {
	dateLabel := c.Query("date")
	if dateLabel == "" {
		utils.BadRequestResponse(c, "Missing date parameter")
		return
	}

	schedule, err := h.bookingService.DaySchedule(c.Request.Context(), c.Param("slug"), dateLabel)
	if err != nil {
		if errors.Is(err, interfaces.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Schedule retrieved successfully", schedule)
}

// CreateBooking accepts the wizard's multipart submission and confirms the
// test drive
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var form validators.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBookingForm(&form); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	request := &services.BookingRequest{
		VehicleSlug: c.Param("slug"),
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		DateLabel:   form.Date,
		TimeLabel:   form.Time,
		Comments:    form.Comments,
		Locale:      c.GetString("locale"),
	}

	if fileHeader, err := c.FormFile("attachment"); err == nil {
		if fileHeader.Size > utils.MaxAttachmentSize {
			utils.BadRequestResponse(c, "Attachment exceeds the 10MB limit")
			return
		}
		contentType := fileHeader.Header.Get("Content-Type")
		if !utils.AllowedAttachmentTypes[contentType] {
			utils.BadRequestResponse(c, "Unsupported attachment type")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.InternalServerErrorResponse(c)
			return
		}
		defer file.Close()

		request.Attachment = &services.AttachmentUpload{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrVehicleNotFound):
			utils.NotFoundResponse(c, "Vehicle")
		case errors.Is(err, services.ErrSlotConflict):
			utils.ConflictResponse(c, "This time slot was just booked, please pick another")
		case errors.Is(err, services.ErrInvalidSlot):
			utils.BadRequestResponse(c, "Selected date or time is not available for this vehicle")
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.CreatedResponse(c, "Test drive booked successfully", booking)
}

// GetBooking looks a booking up by its reference
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, interfaces.ErrBookingNotFound) {
			utils.NotFoundResponse(c, "Booking")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Booking retrieved successfully", booking)
}

// CancelBooking cancels a booking by reference and frees its slot
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("reference")); err != nil {
		if errors.Is(err, interfaces.ErrBookingNotFound) {
			utils.NotFoundResponse(c, "Booking")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled successfully", nil)
}

// ListBookings returns a customer's bookings looked up by email
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.BadRequestResponse(c, "Missing email parameter")
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), email)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Bookings retrieved successfully", bookings)
}
