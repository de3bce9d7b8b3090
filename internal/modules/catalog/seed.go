package catalog

import "vendee/internal/models"

// seedVendors is the demo vendor set around Central Delhi.
func seedVendors() []*models.Vendor {
	return []*models.Vendor{
		{
			ID: "V001", Name: "Rajesh Kumar", Phone: "+91-98765-43210",
			Type: models.VendorTypeStationary, Status: models.VendorStatusActive,
			Location: models.Coordinate{Latitude: 28.7041, Longitude: 77.1025}, LocationDesc: "Near Central Market",
			Rating: 4.8, TotalRatings: 156,
			Items: []models.Item{
				{Name: "Mango", PricePerUnit: 80, Unit: "kg", Quantity: "2 kg"},
				{Name: "Banana", PricePerUnit: 60, Unit: "kg", Quantity: "1 kg"},
				{Name: "Tomato", PricePerUnit: 40, Unit: "kg", Quantity: "1 kg"},
			},
		},
		{
			ID: "V002", Name: "Amit Singh", Phone: "+91-98765-43211",
			Type: models.VendorTypeMoving, Status: models.VendorStatusActive,
			Location: models.Coordinate{Latitude: 28.7045, Longitude: 77.1030}, LocationDesc: "Moving on Main Road",
			Rating: 4.6, TotalRatings: 89,
			Items: []models.Item{
				{Name: "Onion", PricePerUnit: 30, Unit: "kg", Quantity: "1 kg"},
				{Name: "Potato", PricePerUnit: 25, Unit: "kg", Quantity: "2 kg"},
				{Name: "Carrot", PricePerUnit: 50, Unit: "kg", Quantity: "0.5 kg"},
			},
		},
		{
			ID: "V003", Name: "Priya Sharma", Phone: "+91-98765-43212",
			Type: models.VendorTypeStationary, Status: models.VendorStatusActive,
			Location: models.Coordinate{Latitude: 28.7050, Longitude: 77.1035}, LocationDesc: "Stationary at Park",
			Rating: 4.6, TotalRatings: 112,
			Items: []models.Item{
				{Name: "Apple", PricePerUnit: 120, Unit: "kg", Quantity: "1 kg"},
				{Name: "Orange", PricePerUnit: 90, Unit: "kg", Quantity: "1 kg"},
				{Name: "Grapes", PricePerUnit: 150, Unit: "kg", Quantity: "0.5 kg"},
			},
		},
		{
			ID: "V004", Name: "Suresh Patel", Phone: "+91-98765-43213",
			Type: models.VendorTypeMoving, Status: models.VendorStatusActive,
			Location: models.Coordinate{Latitude: 28.7048, Longitude: 77.1028}, LocationDesc: "Near Metro Station",
			Rating: 4.3, TotalRatings: 64,
			Items: []models.Item{
				{Name: "Milk", PricePerUnit: 60, Unit: "liter", Quantity: "1 liter"},
				{Name: "Bread", PricePerUnit: 35, Unit: "packet", Quantity: "1 packet"},
				{Name: "Eggs", PricePerUnit: 80, Unit: "dozen", Quantity: "12 pieces"},
			},
		},
		{
			ID: "V005", Name: "Lakshmi Devi", Phone: "+91-98765-43214",
			Type: models.VendorTypeStationary, Status: models.VendorStatusActive,
			Location: models.Coordinate{Latitude: 28.7055, Longitude: 77.1040}, LocationDesc: "Community Park",
			Rating: 4.9, TotalRatings: 203,
			Items: []models.Item{
				{Name: "Rice", PricePerUnit: 45, Unit: "kg", Quantity: "1 kg"},
				{Name: "Dal", PricePerUnit: 120, Unit: "kg", Quantity: "1 kg"},
				{Name: "Sugar", PricePerUnit: 40, Unit: "kg", Quantity: "1 kg"},
			},
		},
	}
}
