package models

import "time"

const (
	CarStatusInStock   = "in_stock"
	CarStatusSold      = "sold"
	CarStatusInService = "in_service"
)

var CarStatuses = []string{CarStatusInStock, CarStatusSold, CarStatusInService}

// Car is a vehicle in the dealership inventory. Status and SaleDate are independent.
type Car struct {
	ID           uint   `gorm:"primaryKey"`
	VIN          string `gorm:"column:vin;size:17;uniqueIndex;not null"`
	LicensePlate string `gorm:"size:20"`
	Brand        string `gorm:"size:50;not null;index"`
	Model        string `gorm:"size:50;not null"`
	Year         *int
	Color        string `gorm:"size:30"`

	EngineType   string `gorm:"size:30"`
	EngineVolume *float64
	Horsepower   *int
	Transmission string `gorm:"size:30"`
	Mileage      *int

	PurchasePrice *float64
	PurchaseDate  *time.Time
	SalePrice     *float64
	SaleDate      *time.Time
	CurrentValue  *float64

	Status      string `gorm:"size:20;default:'in_stock';index"`
	Condition   string `gorm:"size:30"`
	Description string `gorm:"type:text"`

	InsuranceCost   *float64
	MaintenanceCost *float64
	FuelCost        *float64

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Car) TableName() string {
	return "cars"
}
