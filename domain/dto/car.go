package dto

import (
	"bizmanager/domain/models"
	"bizmanager/pkg/utils"
)

type CreateCarRequest struct {
	VIN          string `json:"vin" validate:"required,max=17"`
	LicensePlate string `json:"license_plate" validate:"max=20"`
	Brand        string `json:"brand" validate:"required,max=50"`
	Model        string `json:"model" validate:"required,max=50"`
	Year         *int   `json:"year" validate:"omitnil,gte=1886,lte=2100"`
	Color        string `json:"color" validate:"max=30"`

	EngineType   string   `json:"engine_type" validate:"max=30"`
	EngineVolume *float64 `json:"engine_volume" validate:"omitnil,gte=0"`
	Horsepower   *int     `json:"horsepower" validate:"omitnil,gte=0"`
	Transmission string   `json:"transmission" validate:"max=30"`
	Mileage      *int     `json:"mileage" validate:"omitnil,gte=0"`

	PurchasePrice *float64 `json:"purchase_price" validate:"omitnil,gte=0"`
	PurchaseDate  *string  `json:"purchase_date"`
	SalePrice     *float64 `json:"sale_price" validate:"omitnil,gte=0"`
	SaleDate      *string  `json:"sale_date"`
	CurrentValue  *float64 `json:"current_value" validate:"omitnil,gte=0"`

	Status      string `json:"status" validate:"omitempty,oneof=in_stock sold in_service"`
	Condition   string `json:"condition" validate:"max=30"`
	Description string `json:"description"`

	InsuranceCost   *float64 `json:"insurance_cost" validate:"omitnil,gte=0"`
	MaintenanceCost *float64 `json:"maintenance_cost" validate:"omitnil,gte=0"`
	FuelCost        *float64 `json:"fuel_cost" validate:"omitnil,gte=0"`
}

type UpdateCarRequest struct {
	VIN          *string `json:"vin" validate:"omitnil,min=1,max=17"`
	LicensePlate *string `json:"license_plate" validate:"omitnil,max=20"`
	Brand        *string `json:"brand" validate:"omitnil,min=1,max=50"`
	Model        *string `json:"model" validate:"omitnil,min=1,max=50"`
	Year         *int    `json:"year" validate:"omitnil,gte=1886,lte=2100"`
	Color        *string `json:"color" validate:"omitnil,max=30"`

	EngineType   *string  `json:"engine_type" validate:"omitnil,max=30"`
	EngineVolume *float64 `json:"engine_volume" validate:"omitnil,gte=0"`
	Horsepower   *int     `json:"horsepower" validate:"omitnil,gte=0"`
	Transmission *string  `json:"transmission" validate:"omitnil,max=30"`
	Mileage      *int     `json:"mileage" validate:"omitnil,gte=0"`

	PurchasePrice *float64 `json:"purchase_price" validate:"omitnil,gte=0"`
	PurchaseDate  *string  `json:"purchase_date"`
	SalePrice     *float64 `json:"sale_price" validate:"omitnil,gte=0"`
	SaleDate      *string  `json:"sale_date"`
	CurrentValue  *float64 `json:"current_value" validate:"omitnil,gte=0"`

	Status      *string `json:"status" validate:"omitnil,oneof=in_stock sold in_service"`
	Condition   *string `json:"condition" validate:"omitnil,max=30"`
	Description *string `json:"description"`

	InsuranceCost   *float64 `json:"insurance_cost" validate:"omitnil,gte=0"`
	MaintenanceCost *float64 `json:"maintenance_cost" validate:"omitnil,gte=0"`
	FuelCost        *float64 `json:"fuel_cost" validate:"omitnil,gte=0"`
}

type CarFilterRequest struct {
	Status string `query:"status"`
}

type CarResponse struct {
	ID           uint   `json:"id"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"license_plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         *int   `json:"year"`
	Color        string `json:"color"`

	EngineType   string   `json:"engine_type"`
	EngineVolume *float64 `json:"engine_volume"`
	Horsepower   *int     `json:"horsepower"`
	Transmission string   `json:"transmission"`
	Mileage      *int     `json:"mileage"`

	PurchasePrice *float64 `json:"purchase_price"`
	PurchaseDate  *string  `json:"purchase_date"`
	SalePrice     *float64 `json:"sale_price"`
	SaleDate      *string  `json:"sale_date"`
	CurrentValue  *float64 `json:"current_value"`

	Status      string `json:"status"`
	Condition   string `json:"condition"`
	Description string `json:"description"`

	InsuranceCost   *float64 `json:"insurance_cost"`
	MaintenanceCost *float64 `json:"maintenance_cost"`
	FuelCost        *float64 `json:"fuel_cost"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func CreateCarRequestToCar(req *CreateCarRequest) (*models.Car, error) {
	purchaseDate, err := parseOptionalDate("purchase_date", req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	saleDate, err := parseOptionalDate("sale_date", req.SaleDate)
	if err != nil {
		return nil, err
	}

	return &models.Car{
		VIN:             req.VIN,
		LicensePlate:    req.LicensePlate,
		Brand:           req.Brand,
		Model:           req.Model,
		Year:            req.Year,
		Color:           req.Color,
		EngineType:      req.EngineType,
		EngineVolume:    req.EngineVolume,
		Horsepower:      req.Horsepower,
		Transmission:    req.Transmission,
		Mileage:         req.Mileage,
		PurchasePrice:   req.PurchasePrice,
		PurchaseDate:    purchaseDate,
		SalePrice:       req.SalePrice,
		SaleDate:        saleDate,
		CurrentValue:    req.CurrentValue,
		Status:          firstNonEmpty(req.Status, models.CarStatusInStock),
		Condition:       req.Condition,
		Description:     req.Description,
		InsuranceCost:   req.InsuranceCost,
		MaintenanceCost: req.MaintenanceCost,
		FuelCost:        req.FuelCost,
	}, nil
}

func ApplyCarUpdate(car *models.Car, req *UpdateCarRequest) error {
	assign(&car.VIN, req.VIN)
	assign(&car.LicensePlate, req.LicensePlate)
	assign(&car.Brand, req.Brand)
	assign(&car.Model, req.Model)
	assignPtr(&car.Year, req.Year)
	assign(&car.Color, req.Color)
	assign(&car.EngineType, req.EngineType)
	assignPtr(&car.EngineVolume, req.EngineVolume)
	assignPtr(&car.Horsepower, req.Horsepower)
	assign(&car.Transmission, req.Transmission)
	assignPtr(&car.Mileage, req.Mileage)
	assignPtr(&car.PurchasePrice, req.PurchasePrice)
	assignPtr(&car.SalePrice, req.SalePrice)
	assignPtr(&car.CurrentValue, req.CurrentValue)
	assign(&car.Status, req.Status)
	assign(&car.Condition, req.Condition)
	assign(&car.Description, req.Description)
	assignPtr(&car.InsuranceCost, req.InsuranceCost)
	assignPtr(&car.MaintenanceCost, req.MaintenanceCost)
	assignPtr(&car.FuelCost, req.FuelCost)

	if err := updateDate(&car.PurchaseDate, "purchase_date", req.PurchaseDate); err != nil {
		return err
	}
	return updateDate(&car.SaleDate, "sale_date", req.SaleDate)
}

func CarToCarResponse(car *models.Car) *CarResponse {
	if car == nil {
		return nil
	}
	return &CarResponse{
		ID:              car.ID,
		VIN:             car.VIN,
		LicensePlate:    car.LicensePlate,
		Brand:           car.Brand,
		Model:           car.Model,
		Year:            car.Year,
		Color:           car.Color,
		EngineType:      car.EngineType,
		EngineVolume:    car.EngineVolume,
		Horsepower:      car.Horsepower,
		Transmission:    car.Transmission,
		Mileage:         car.Mileage,
		PurchasePrice:   car.PurchasePrice,
		PurchaseDate:    utils.FormatOptionalDate(car.PurchaseDate),
		SalePrice:       car.SalePrice,
		SaleDate:        utils.FormatOptionalDate(car.SaleDate),
		CurrentValue:    car.CurrentValue,
		Status:          car.Status,
		Condition:       car.Condition,
		Description:     car.Description,
		InsuranceCost:   car.InsuranceCost,
		MaintenanceCost: car.MaintenanceCost,
		FuelCost:        car.FuelCost,
		CreatedAt:       utils.FormatDateTime(car.CreatedAt),
		UpdatedAt:       utils.FormatDateTime(car.UpdatedAt),
	}
}

func CarsToCarResponses(cars []*models.Car) []*CarResponse {
	out := make([]*CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, CarToCarResponse(c))
	}
	return out
}
