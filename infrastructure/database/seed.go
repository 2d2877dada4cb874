package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bizmanager/domain/models"
	"bizmanager/pkg/logger"
)

// Seed fills empty tables with demo rows. Each table is counted and filled
// inside its own transaction, so a table that already has rows is left alone
// and repeated runs insert nothing.
func Seed(ctx context.Context, db *gorm.DB, now time.Time) error {
	now = now.UTC()
	steps := []struct {
		table string
		model any
		rows  func() any
	}{
		{"tasks", &models.Task{}, func() any { return demoTasks(now) }},
		{"calendar_events", &models.CalendarEvent{}, func() any { return demoEvents(now) }},
		{"contacts", &models.Contact{}, func() any { return demoContacts(now) }},
		{"cars", &models.Car{}, func() any { return demoCars(now) }},
	}

	for _, step := range steps {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(step.model).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
			if err := tx.Create(step.rows()).Error; err != nil {
				return err
			}
			logger.InfoContext(ctx, "Seeded demo data", "table", step.table)
			return nil
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func atHour(now time.Time, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
}

func demoTasks(now time.Time) []*models.Task {
	return []*models.Task{
		{
			Title:       `Подписать договор с ООО "Ромашка"`,
			Description: "Встреча в главном офисе для подписания договора о сотрудничестве",
			Priority:    models.TaskPriorityHigh,
			Status:      models.TaskStatusPending,
			DueDate:     ptr(now.Add(24 * time.Hour)),
		},
		{
			Title:       "Отправить коммерческое предложение",
			Description: "Подготовить и отправить КП по новому проекту",
			Priority:    models.TaskPriorityMedium,
			Status:      models.TaskStatusInProgress,
			DueDate:     ptr(now.Add(5 * time.Hour)),
		},
		{
			Title:       "Составить отчет по продажам",
			Description: "Еженедельный отчет по продажам за текущий период",
			Priority:    models.TaskPriorityLow,
			Status:      models.TaskStatusCompleted,
			DueDate:     ptr(now.Add(-24 * time.Hour)),
			CompletedAt: ptr(now.Add(-3 * time.Hour)),
		},
	}
}

func demoEvents(now time.Time) []*models.CalendarEvent {
	return []*models.CalendarEvent{
		{
			Title:       "Встреча с клиентом",
			Description: "Обсуждение нового проекта",
			StartTime:   atHour(now, 10, 0),
			EndTime:     atHour(now, 11, 30),
			EventType:   models.EventTypeMeeting,
			Location:    "Конференц-зал №1",
			Status:      models.EventStatusScheduled,
		},
		{
			Title:       "Звонок поставщику",
			Description: "Обсуждение условий поставки",
			StartTime:   atHour(now, 14, 0),
			EndTime:     atHour(now, 14, 30),
			EventType:   models.EventTypeCall,
			Status:      models.EventStatusScheduled,
		},
		{
			Title:       "Планирование задач на неделю",
			Description: "Еженедельное планирование",
			StartTime:   atHour(now, 16, 0),
			EndTime:     atHour(now, 17, 0),
			EventType:   models.EventTypeTask,
			Location:    "Рабочий кабинет",
			Status:      models.EventStatusScheduled,
		},
	}
}

func demoContacts(now time.Time) []*models.Contact {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return []*models.Contact{
		{
			FirstName:        "Иван",
			LastName:         "Иванов",
			MiddleName:       "Иванович",
			Phone:            "+79991234567",
			Email:            "ivanov@example.com",
			Company:          "ООО Ромашка",
			Position:         "Менеджер",
			BirthDate:        ptr(day.AddDate(0, 0, -365*30)),
			Category:         models.ContactCategoryClient,
			AddressCountry:   "Россия",
			AddressCity:      "Москва",
			AddressStreet:    "Ленинская",
			AddressHouse:     "10",
			AddressApartment: "5",
		},
		{
			FirstName:      "Анна",
			LastName:       "Петрова",
			MiddleName:     "Сергеевна",
			Phone:          "+79997654321",
			Email:          "petrova@example.com",
			Company:        "ООО Лютик",
			Position:       "Директор",
			BirthDate:      ptr(day.AddDate(0, 0, -365*28)),
			Category:       models.ContactCategoryPartner,
			AddressCountry: "Россия",
			AddressCity:    "Санкт-Петербург",
			AddressStreet:  "Невский",
			AddressHouse:   "25",
		},
	}
}

func demoCars(now time.Time) []*models.Car {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return []*models.Car{
		{
			VIN:           "XTAGFK330LY123456",
			LicensePlate:  "А123ВС77",
			Brand:         "Lada",
			Model:         "Vesta",
			Year:          ptr(2020),
			Color:         "Белый",
			EngineType:    "Бензин",
			EngineVolume:  ptr(1.6),
			Horsepower:    ptr(106),
			Transmission:  "Механика",
			Mileage:       ptr(45000),
			PurchasePrice: ptr(850000.0),
			PurchaseDate:  ptr(day.AddDate(0, -2, 0)),
			CurrentValue:  ptr(900000.0),
			Status:        models.CarStatusInStock,
			Condition:     "Хорошее",
		},
		{
			VIN:           "JTNB11HK103456789",
			LicensePlate:  "М456ОР77",
			Brand:         "Toyota",
			Model:         "Camry",
			Year:          ptr(2019),
			Color:         "Черный",
			EngineType:    "Бензин",
			EngineVolume:  ptr(2.5),
			Horsepower:    ptr(181),
			Transmission:  "Автомат",
			Mileage:       ptr(78000),
			PurchasePrice: ptr(2100000.0),
			PurchaseDate:  ptr(day.AddDate(0, -3, 0)),
			SalePrice:     ptr(2400000.0),
			SaleDate:      ptr(day.AddDate(0, 0, -10)),
			Status:        models.CarStatusSold,
			Condition:     "Отличное",
		},
		{
			VIN:             "Z94CB41AAGR987654",
			Brand:           "Kia",
			Model:           "Rio",
			Year:            ptr(2016),
			Color:           "Серый",
			EngineType:      "Бензин",
			EngineVolume:    ptr(1.4),
			Horsepower:      ptr(100),
			Transmission:    "Автомат",
			Mileage:         ptr(132000),
			PurchasePrice:   ptr(600000.0),
			PurchaseDate:    ptr(day.AddDate(0, -1, 0)),
			Status:          models.CarStatusInService,
			Condition:       "Требует ремонта",
			MaintenanceCost: ptr(45000.0),
		},
	}
}
