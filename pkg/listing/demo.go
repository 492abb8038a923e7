package listing

import "github.com/umputun/realtor/pkg/domain"

// DemoListings returns the built-in demo set, a fresh copy on each call
func DemoListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:        1,
			Title:     "3-комнатная квартира в центре Бишкека",
			Price:     45000,
			Type:      domain.PropertyApartment,
			Operation: domain.OperationSale,
			Location:  "Бишкек, Центр",
			Rooms:     3,
			Area:      85,
			Image:     "images/objects/1.jpg",
			Featured:  true,
		},
		{
			ID:        2,
			Title:     "Коттедж в пригороде Бишкека",
			Price:     120000,
			Type:      domain.PropertyCottage,
			Operation: domain.OperationSale,
			Location:  "Бишкек, Пригород",
			Rooms:     5,
			Area:      200,
			Image:     "images/objects/2.jpg",
			Featured:  true,
		},
	}
}
