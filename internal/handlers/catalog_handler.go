package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"voltdrive/internal/inventory"
	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/internal/services"
	"voltdrive/internal/utils"
	"voltdrive/pkg/i18n"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	currency       string
}

func NewCatalogHandler(catalogService services.CatalogService, currency string) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		currency:       currency,
	}
}

// vehicleView is a catalog vehicle plus its locale-rendered fields: the price
// formatted for the negotiated language and the description in that language.
type vehicleView struct {
	models.Vehicle
	DisplayPrice            string `json:"display_price"`
	DisplayDescription      string `json:"display_description"`
	DisplayShortDescription string `json:"display_short_description"`
}

func (h *CatalogHandler) view(tag language.Tag, v models.Vehicle) vehicleView {
	return vehicleView{
		Vehicle:                 v,
		DisplayPrice:            i18n.FormatPrice(tag, h.currency, v.Price),
		DisplayDescription:      i18n.Pick(tag, v.Description, v.DescriptionAr),
		DisplayShortDescription: i18n.Pick(tag, v.ShortDescription, v.ShortDescriptionAr),
	}
}

func (h *CatalogHandler) views(tag language.Tag, vehicles []models.Vehicle) []vehicleView {
	views := make([]vehicleView, len(vehicles))
	for i, v := range vehicles {
		views[i] = h.view(tag, v)
	}
	return views
}

func localeTag(c *gin.Context) language.Tag {
	if v, ok := c.Get("locale_tag"); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.English
}

// ListVehicles returns a filtered, sorted, searched page of the catalog
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	params := services.ListParams{
		Filters:  filtersFromQuery(c),
		Sort:     inventory.ParseSortKey(c.Query("sort")),
		Query:    c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	vehicles, total, err := h.catalogService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
		Total:      total,
		Count:      len(vehicles),
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", h.views(localeTag(c), vehicles), meta)
}

// GetVehicle returns one vehicle by its slug
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.catalogService.GetVehicle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, interfaces.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", h.view(localeTag(c), *vehicle))
}

// ListFeatured returns the featured vehicles for the home page
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	vehicles, err := h.catalogService.FeaturedVehicles(c.Request.Context(), limit)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Featured vehicles retrieved successfully", h.views(localeTag(c), vehicles))
}

// GetFilterMetadata returns the distinct filter values of the catalog
func (h *CatalogHandler) GetFilterMetadata(c *gin.Context) {
	meta, err := h.catalogService.FilterMetadata(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Filter options retrieved successfully", meta)
}

// filtersFromQuery maps the storefront's query string onto filter constraints.
// The literal "all" (or an absent parameter) leaves a dimension unconstrained.
func filtersFromQuery(c *gin.Context) inventory.Filters {
	f := inventory.Filters{
		Make:       matchParam(c, "make"),
		Model:      matchParam(c, "model"),
		Color:      matchParam(c, "color"),
		Drivetrain: matchParam(c, "drivetrain"),
	}

	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		f.Year = &year
	}
	f.Range = boundsParams(c, "range_min", "range_max")
	f.Battery = boundsParams(c, "battery_min", "battery_max")

	return f
}

func matchParam(c *gin.Context, name string) inventory.Match {
	v := c.Query(name)
	if v == "" || v == utils.FilterAll {
		return inventory.Any()
	}
	return inventory.Exactly(v)
}

func boundsParams(c *gin.Context, minName, maxName string) inventory.Bounds {
	var b inventory.Bounds
	if v, err := strconv.Atoi(c.Query(minName)); err == nil {
		b.Min = &v
	}
	if v, err := strconv.Atoi(c.Query(maxName)); err == nil {
		b.Max = &v
	}
	return b
}
