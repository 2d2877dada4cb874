package services

import (
	"context"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type CarService interface {
	CreateCar(ctx context.Context, req *dto.CreateCarRequest) (*models.Car, error)
	GetCar(ctx context.Context, id uint) (*models.Car, error)
	ListCars(ctx context.Context, filter repositories.CarFilter) ([]*models.Car, error)
	UpdateCar(ctx context.Context, id uint, req *dto.UpdateCarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, id uint) error
}
