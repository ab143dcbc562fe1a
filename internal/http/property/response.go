package property

import (
	"github.com/MrJamesThe3rd/aqari/internal/property"
)

type propertyResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	City           string `json:"city"`
	UnitCount      int    `json:"unitCount"`
	OccupancyRate  int    `json:"occupancyRate"`
	Location       string `json:"location"`
	BuildingNumber string `json:"buildingNumber"`
	District       string `json:"district"`
	Street         string `json:"street"`
	PostalCode     string `json:"postalCode"`
}

func toResponse(p property.Property) propertyResponse {
	return propertyResponse{
		ID:             p.ID,
		Name:           p.Name,
		City:           p.City,
		UnitCount:      p.UnitCount,
		OccupancyRate:  p.OccupancyRate,
		Location:       p.Location,
		BuildingNumber: p.BuildingNumber,
		District:       p.District,
		Street:         p.Street,
		PostalCode:     p.PostalCode,
	}
}
