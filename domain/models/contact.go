package models

import (
	"strings"
	"time"
)

const (
	ContactCategoryClient   = "client"
	ContactCategoryPartner  = "partner"
	ContactCategorySupplier = "supplier"
	ContactCategoryEmployee = "employee"
	ContactCategoryOther    = "other"
)

var ContactCategories = []string{
	ContactCategoryClient,
	ContactCategoryPartner,
	ContactCategorySupplier,
	ContactCategoryEmployee,
	ContactCategoryOther,
}

const noAddress = "Адрес не указан"

type Contact struct {
	ID         uint   `gorm:"primaryKey"`
	FirstName  string `gorm:"size:50;not null"`
	LastName   string `gorm:"size:50;not null;index"`
	MiddleName string `gorm:"size:50"`
	Phone      string `gorm:"size:20"`
	Email      string `gorm:"size:120"`
	Photo      string `gorm:"size:500"`

	PassportSeries         string `gorm:"size:4"`
	PassportNumber         string `gorm:"size:6"`
	PassportIssuedBy       string `gorm:"size:200"`
	PassportIssueDate      *time.Time
	PassportDepartmentCode string `gorm:"size:7"`

	AddressIndex     string `gorm:"size:10"`
	AddressCountry   string `gorm:"size:50"`
	AddressRegion    string `gorm:"size:50"`
	AddressCity      string `gorm:"size:50"`
	AddressStreet    string `gorm:"size:100"`
	AddressHouse     string `gorm:"size:10"`
	AddressApartment string `gorm:"size:10"`

	Company   string `gorm:"size:100"`
	Position  string `gorm:"size:100"`
	BirthDate *time.Time
	Category  string `gorm:"size:20;default:'client';index"`

	SocialTelegram string `gorm:"size:100"`
	SocialWhatsapp string `gorm:"size:100"`
	SocialVK       string `gorm:"column:social_vk;size:100"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	UserID    *uint     `gorm:"index"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (Contact) TableName() string {
	return "contacts"
}

// FullName is "Last First Middle", middle name only when set
func (c *Contact) FullName() string {
	parts := []string{c.LastName, c.FirstName}
	if c.MiddleName != "" {
		parts = append(parts, c.MiddleName)
	}
	return strings.Join(parts, " ")
}

// FullAddress joins the non-empty address parts in postal order
func (c *Contact) FullAddress() string {
	var parts []string
	add := func(prefix, value string) {
		if value != "" {
			parts = append(parts, prefix+value)
		}
	}

	add("", c.AddressIndex)
	add("", c.AddressCountry)
	add("", c.AddressRegion)
	add("г. ", c.AddressCity)
	add("ул. ", c.AddressStreet)
	add("д. ", c.AddressHouse)
	add("кв. ", c.AddressApartment)

	if len(parts) == 0 {
		return noAddress
	}
	return strings.Join(parts, ", ")
}
