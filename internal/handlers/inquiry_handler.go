package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/models"
	"voltdrive/internal/services"
	"voltdrive/internal/utils"
	"voltdrive/internal/validators"
)

type InquiryHandler struct {
	inquiryService services.InquiryService
}

func NewInquiryHandler(inquiryService services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// CreateInquiry accepts a quote request or contact message
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var form validators.InquiryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateInquiryForm(&form); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	inquiry := &models.Inquiry{
		Type:    models.InquiryType(form.Type),
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
		Locale:  c.GetString("locale"),
	}

	if form.VehicleID != "" {
		id, err := primitive.ObjectIDFromHex(form.VehicleID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid vehicle ID")
			return
		}
		inquiry.VehicleID = &id
	}

	if err := h.inquiryService.CreateInquiry(c.Request.Context(), inquiry); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Inquiry submitted successfully", inquiry)
}

// ListInquiries returns submitted inquiries, optionally narrowed by type
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	inquiryType := models.InquiryType(c.Query("type"))
	if inquiryType != "" && inquiryType != models.InquiryTypeQuote && inquiryType != models.InquiryTypeContact {
		utils.BadRequestResponse(c, "Unknown inquiry type")
		return
	}

	inquiries, total, err := h.inquiryService.ListInquiries(c.Request.Context(), inquiryType, pagination.Page, pagination.PageSize)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
		Total:      total,
		Count:      len(inquiries),
	}
	utils.SuccessResponseWithMeta(c, "Inquiries retrieved successfully", inquiries, meta)
}
