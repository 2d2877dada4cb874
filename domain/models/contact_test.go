package models

import "testing"

func TestContactFullName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"with middle name", Contact{FirstName: "Иван", LastName: "Иванов", MiddleName: "Иванович"}, "Иванов Иван Иванович"},
		{"without middle name", Contact{FirstName: "Anna", LastName: "Petrova"}, "Petrova Anna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contact.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactFullAddress(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{
			name:    "empty",
			contact: Contact{},
			want:    "Адрес не указан",
		},
		{
			name: "all parts",
			contact: Contact{
				AddressIndex:     "101000",
				AddressCountry:   "Россия",
				AddressRegion:    "Московская обл.",
				AddressCity:      "Москва",
				AddressStreet:    "Ленинская",
				AddressHouse:     "10",
				AddressApartment: "5",
			},
			want: "101000, Россия, Московская обл., г. Москва, ул. Ленинская, д. 10, кв. 5",
		},
		{
			name:    "gaps are skipped",
			contact: Contact{AddressCountry: "Россия", AddressCity: "Санкт-Петербург", AddressHouse: "25"},
			want:    "Россия, г. Санкт-Петербург, д. 25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contact.FullAddress(); got != tt.want {
				t.Errorf("FullAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
