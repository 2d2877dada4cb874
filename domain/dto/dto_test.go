package dto

import (
	"errors"
	"testing"
	"time"

	"bizmanager/domain/models"
	"bizmanager/pkg/utils"
)

func strPtr(s string) *string { return &s }

func TestCreateTaskDefaults(t *testing.T) {
	task, err := CreateTaskRequestToTask(&CreateTaskRequest{Title: "Sign contract"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Priority != models.TaskPriorityMedium || task.Status != models.TaskStatusPending {
		t.Fatalf("defaults not applied: %+v", task)
	}
	if task.DueDate != nil {
		t.Fatalf("due date should be nil")
	}
}

func TestCreateTaskBadDueDate(t *testing.T) {
	_, err := CreateTaskRequestToTask(&CreateTaskRequest{Title: "x", DueDate: strPtr("tomorrow")})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "due_date" {
		t.Fatalf("expected due_date field error, got %v", err)
	}
	if !errors.Is(err, utils.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime in chain")
	}
}

func TestApplyTaskUpdateKeepsAbsentFields(t *testing.T) {
	due := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	task := &models.Task{Title: "Old", Description: "keep", Priority: "low", Status: "pending", DueDate: &due}

	err := ApplyTaskUpdate(task, &UpdateTaskRequest{Title: strPtr("New"), DueDate: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "New" || task.Description != "keep" || task.Priority != "low" {
		t.Fatalf("merge wrong: %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("blank due_date must leave value unchanged, got %v", task.DueDate)
	}
}

func TestCreateEventAcceptsSerializedNames(t *testing.T) {
	event, err := CreateEventRequestToEvent(&CreateEventRequest{
		Title: "Standup",
		Start: strPtr("2024-01-03T10:00:00"),
		End:   strPtr("2024-01-03T10:15:00"),
		Type:  "call",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.EventType != "call" || event.Status != models.EventStatusScheduled {
		t.Fatalf("unexpected event %+v", event)
	}
	resp := EventToEventResponse(event)
	if resp.Start != "2024-01-03T10:00:00" || resp.End != "2024-01-03T10:15:00" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateEventRequiresTimes(t *testing.T) {
	_, err := CreateEventRequestToEvent(&CreateEventRequest{Title: "x", Start: strPtr("2024-01-03T10:00:00")})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "end_time" {
		t.Fatalf("expected end_time error, got %v", err)
	}
}

func TestApplyCarUpdatePointers(t *testing.T) {
	year := 2019
	car := &models.Car{VIN: "X", Brand: "Lada", Model: "Vesta", Year: &year}
	newYear := 2020
	if err := ApplyCarUpdate(car, &UpdateCarRequest{Year: &newYear, SaleDate: strPtr("2024-06-01")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *car.Year != 2020 || year != 2019 {
		t.Fatalf("year update must not alias request: car=%d orig=%d", *car.Year, year)
	}
	if car.SaleDate == nil || car.SaleDate.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("sale date = %v", car.SaleDate)
	}
	if car.Brand != "Lada" {
		t.Fatalf("brand changed")
	}
}

func TestContactResponseDerivedFields(t *testing.T) {
	c := &models.Contact{FirstName: "Иван", LastName: "Петров", AddressCity: "Москва"}
	resp := ContactToContactResponse(c)
	if resp.FullName != "Петров Иван" {
		t.Errorf("full_name = %q", resp.FullName)
	}
	if resp.FullAddress != "г. Москва" {
		t.Errorf("full_address = %q", resp.FullAddress)
	}
	if resp.BirthDate != nil {
		t.Errorf("birth_date should be null")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   any
		field string
	}{
		{"task missing title", &CreateTaskRequest{}, "title"},
		{"task bad priority", &CreateTaskRequest{Title: "x", Priority: "extreme"}, "priority"},
		{"task update bad status", &UpdateTaskRequest{Status: strPtr("done")}, "status"},
		{"contact missing last name", &CreateContactRequest{FirstName: "a"}, "last_name"},
		{"contact bad email", &UpdateContactRequest{Email: strPtr("nope")}, "email"},
		{"car missing vin", &CreateCarRequest{Brand: "a", Model: "b"}, "vin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateStruct(tt.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if _, ok := utils.GetValidationErrors(err)[tt.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.field, utils.GetValidationErrors(err))
			}
		})
	}

	if err := utils.ValidateStruct(&UpdateContactRequest{Email: strPtr("")}); err != nil {
		t.Fatalf("clearing email must be allowed: %v", err)
	}
	if err := utils.ValidateStruct(&UpdateTaskRequest{}); err != nil {
		t.Fatalf("empty update must be valid: %v", err)
	}
}
