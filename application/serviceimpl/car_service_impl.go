package serviceimpl

import (
	"context"
	"errors"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
)

type CarServiceImpl struct {
	carRepo   repositories.CarRepository
	publisher ports.EventPublisher
}

func NewCarService(carRepo repositories.CarRepository, publisher ports.EventPublisher) services.CarService {
	return &CarServiceImpl{
		carRepo:   carRepo,
		publisher: publisher,
	}
}

func mapCarErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return services.ErrCarNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return services.ErrDuplicateVIN
	}
	return err
}

func (s *CarServiceImpl) CreateCar(ctx context.Context, req *dto.CreateCarRequest) (*models.Car, error) {
	car, err := dto.CreateCarRequestToCar(req)
	if err != nil {
		return nil, err
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.WarnContext(ctx, "Duplicate VIN on create", "vin", car.VIN)
		} else {
			logger.ErrorContext(ctx, "Failed to create car", "error", err)
		}
		return nil, mapCarErr(err)
	}

	logger.InfoContext(ctx, "Car created", "car_id", car.ID, "vin", car.VIN)
	publishChange(ctx, s.publisher, ports.EntityCar, ports.ActionCreated, car.ID, dto.CarToCarResponse(car))
	return car, nil
}

func (s *CarServiceImpl) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapCarErr(err)
	}
	return car, nil
}

func (s *CarServiceImpl) ListCars(ctx context.Context, filter repositories.CarFilter) ([]*models.Car, error) {
	cars, err := s.carRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list cars", "error", err)
		return nil, err
	}
	return cars, nil
}

func (s *CarServiceImpl) UpdateCar(ctx context.Context, id uint, req *dto.UpdateCarRequest) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Car not found for update", "car_id", id)
		return nil, mapCarErr(err)
	}

	if err := dto.ApplyCarUpdate(car, req); err != nil {
		return nil, err
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			logger.ErrorContext(ctx, "Failed to update car", "car_id", id, "error", err)
		}
		return nil, mapCarErr(err)
	}

	logger.InfoContext(ctx, "Car updated", "car_id", id, "status", car.Status)
	publishChange(ctx, s.publisher, ports.EntityCar, ports.ActionUpdated, car.ID, dto.CarToCarResponse(car))
	return car, nil
}

func (s *CarServiceImpl) DeleteCar(ctx context.Context, id uint) error {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to delete car", "car_id", id, "error", err)
		}
		return mapCarErr(err)
	}

	logger.InfoContext(ctx, "Car deleted", "car_id", id)
	publishChange(ctx, s.publisher, ports.EntityCar, ports.ActionDeleted, id, nil)
	return nil
}
