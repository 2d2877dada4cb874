package dto

import (
	"bizmanager/domain/models"
	"bizmanager/pkg/utils"
)

type CreateContactRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	MiddleName string `json:"middle_name" validate:"max=50"`
	Phone      string `json:"phone" validate:"max=20"`
	Email      string `json:"email" validate:"omitempty,email,max=120"`
	Photo      string `json:"photo" validate:"max=500"`

	PassportSeries         string  `json:"passport_series" validate:"max=4"`
	PassportNumber         string  `json:"passport_number" validate:"max=6"`
	PassportIssuedBy       string  `json:"passport_issued_by" validate:"max=200"`
	PassportIssueDate      *string `json:"passport_issue_date"`
	PassportDepartmentCode string  `json:"passport_department_code" validate:"max=7"`

	AddressIndex     string `json:"address_index" validate:"max=10"`
	AddressCountry   string `json:"address_country" validate:"max=50"`
	AddressRegion    string `json:"address_region" validate:"max=50"`
	AddressCity      string `json:"address_city" validate:"max=50"`
	AddressStreet    string `json:"address_street" validate:"max=100"`
	AddressHouse     string `json:"address_house" validate:"max=10"`
	AddressApartment string `json:"address_apartment" validate:"max=10"`

	Company   string  `json:"company" validate:"max=100"`
	Position  string  `json:"position" validate:"max=100"`
	BirthDate *string `json:"birth_date"`
	Category  string  `json:"category" validate:"omitempty,oneof=client partner supplier employee other"`

	SocialTelegram string `json:"social_telegram" validate:"max=100"`
	SocialWhatsapp string `json:"social_whatsapp" validate:"max=100"`
	SocialVK       string `json:"social_vk" validate:"max=100"`

	Notes string `json:"notes"`
}

type UpdateContactRequest struct {
	FirstName  *string `json:"first_name" validate:"omitnil,min=1,max=50"`
	LastName   *string `json:"last_name" validate:"omitnil,min=1,max=50"`
	MiddleName *string `json:"middle_name" validate:"omitnil,max=50"`
	Phone      *string `json:"phone" validate:"omitnil,max=20"`
	Email      *string `json:"email" validate:"omitnil,max=120,email_or_empty"`
	Photo      *string `json:"photo" validate:"omitnil,max=500"`

	PassportSeries         *string `json:"passport_series" validate:"omitnil,max=4"`
	PassportNumber         *string `json:"passport_number" validate:"omitnil,max=6"`
	PassportIssuedBy       *string `json:"passport_issued_by" validate:"omitnil,max=200"`
	PassportIssueDate      *string `json:"passport_issue_date"`
	PassportDepartmentCode *string `json:"passport_department_code" validate:"omitnil,max=7"`

	AddressIndex     *string `json:"address_index" validate:"omitnil,max=10"`
	AddressCountry   *string `json:"address_country" validate:"omitnil,max=50"`
	AddressRegion    *string `json:"address_region" validate:"omitnil,max=50"`
	AddressCity      *string `json:"address_city" validate:"omitnil,max=50"`
	AddressStreet    *string `json:"address_street" validate:"omitnil,max=100"`
	AddressHouse     *string `json:"address_house" validate:"omitnil,max=10"`
	AddressApartment *string `json:"address_apartment" validate:"omitnil,max=10"`

	Company   *string `json:"company" validate:"omitnil,max=100"`
	Position  *string `json:"position" validate:"omitnil,max=100"`
	BirthDate *string `json:"birth_date"`
	Category  *string `json:"category" validate:"omitnil,oneof=client partner supplier employee other"`

	SocialTelegram *string `json:"social_telegram" validate:"omitnil,max=100"`
	SocialWhatsapp *string `json:"social_whatsapp" validate:"omitnil,max=100"`
	SocialVK       *string `json:"social_vk" validate:"omitnil,max=100"`

	Notes *string `json:"notes"`
}

type ContactFilterRequest struct {
	Category string `query:"category"`
	UserID   *uint  `query:"user_id"`
}

type ContactResponse struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Photo      string `json:"photo"`

	PassportSeries         string  `json:"passport_series"`
	PassportNumber         string  `json:"passport_number"`
	PassportIssuedBy       string  `json:"passport_issued_by"`
	PassportIssueDate      *string `json:"passport_issue_date"`
	PassportDepartmentCode string  `json:"passport_department_code"`

	FullAddress      string `json:"full_address"`
	AddressIndex     string `json:"address_index"`
	AddressCountry   string `json:"address_country"`
	AddressRegion    string `json:"address_region"`
	AddressCity      string `json:"address_city"`
	AddressStreet    string `json:"address_street"`
	AddressHouse     string `json:"address_house"`
	AddressApartment string `json:"address_apartment"`

	Company   string  `json:"company"`
	Position  string  `json:"position"`
	BirthDate *string `json:"birth_date"`
	Category  string  `json:"category"`

	SocialTelegram string `json:"social_telegram"`
	SocialWhatsapp string `json:"social_whatsapp"`
	SocialVK       string `json:"social_vk"`

	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func CreateContactRequestToContact(req *CreateContactRequest) (*models.Contact, error) {
	issueDate, err := parseOptionalDate("passport_issue_date", req.PassportIssueDate)
	if err != nil {
		return nil, err
	}
	birthDate, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}

	contact := &models.Contact{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		MiddleName:             req.MiddleName,
		Phone:                  req.Phone,
		Email:                  req.Email,
		Photo:                  req.Photo,
		PassportSeries:         req.PassportSeries,
		PassportNumber:         req.PassportNumber,
		PassportIssuedBy:       req.PassportIssuedBy,
		PassportIssueDate:      issueDate,
		PassportDepartmentCode: req.PassportDepartmentCode,
		AddressIndex:           req.AddressIndex,
		AddressCountry:         req.AddressCountry,
		AddressRegion:          req.AddressRegion,
		AddressCity:            req.AddressCity,
		AddressStreet:          req.AddressStreet,
		AddressHouse:           req.AddressHouse,
		AddressApartment:       req.AddressApartment,
		Company:                req.Company,
		Position:               req.Position,
		BirthDate:              birthDate,
		Category:               firstNonEmpty(req.Category, models.ContactCategoryClient),
		SocialTelegram:         req.SocialTelegram,
		SocialWhatsapp:         req.SocialWhatsapp,
		SocialVK:               req.SocialVK,
		Notes:                  req.Notes,
	}
	return contact, nil
}

func ApplyContactUpdate(c *models.Contact, req *UpdateContactRequest) error {
	assign(&c.FirstName, req.FirstName)
	assign(&c.LastName, req.LastName)
	assign(&c.MiddleName, req.MiddleName)
	assign(&c.Phone, req.Phone)
	assign(&c.Email, req.Email)
	assign(&c.Photo, req.Photo)
	assign(&c.PassportSeries, req.PassportSeries)
	assign(&c.PassportNumber, req.PassportNumber)
	assign(&c.PassportIssuedBy, req.PassportIssuedBy)
	assign(&c.PassportDepartmentCode, req.PassportDepartmentCode)
	assign(&c.AddressIndex, req.AddressIndex)
	assign(&c.AddressCountry, req.AddressCountry)
	assign(&c.AddressRegion, req.AddressRegion)
	assign(&c.AddressCity, req.AddressCity)
	assign(&c.AddressStreet, req.AddressStreet)
	assign(&c.AddressHouse, req.AddressHouse)
	assign(&c.AddressApartment, req.AddressApartment)
	assign(&c.Company, req.Company)
	assign(&c.Position, req.Position)
	assign(&c.Category, req.Category)
	assign(&c.SocialTelegram, req.SocialTelegram)
	assign(&c.SocialWhatsapp, req.SocialWhatsapp)
	assign(&c.SocialVK, req.SocialVK)
	assign(&c.Notes, req.Notes)

	if err := updateDate(&c.PassportIssueDate, "passport_issue_date", req.PassportIssueDate); err != nil {
		return err
	}
	return updateDate(&c.BirthDate, "birth_date", req.BirthDate)
}

func ContactToContactResponse(c *models.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:                     c.ID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		MiddleName:             c.MiddleName,
		FullName:               c.FullName(),
		Phone:                  c.Phone,
		Email:                  c.Email,
		Photo:                  c.Photo,
		PassportSeries:         c.PassportSeries,
		PassportNumber:         c.PassportNumber,
		PassportIssuedBy:       c.PassportIssuedBy,
		PassportIssueDate:      utils.FormatOptionalDate(c.PassportIssueDate),
		PassportDepartmentCode: c.PassportDepartmentCode,
		FullAddress:            c.FullAddress(),
		AddressIndex:           c.AddressIndex,
		AddressCountry:         c.AddressCountry,
		AddressRegion:          c.AddressRegion,
		AddressCity:            c.AddressCity,
		AddressStreet:          c.AddressStreet,
		AddressHouse:           c.AddressHouse,
		AddressApartment:       c.AddressApartment,
		Company:                c.Company,
		Position:               c.Position,
		BirthDate:              utils.FormatOptionalDate(c.BirthDate),
		Category:               c.Category,
		SocialTelegram:         c.SocialTelegram,
		SocialWhatsapp:         c.SocialWhatsapp,
		SocialVK:               c.SocialVK,
		Notes:                  c.Notes,
		CreatedAt:              utils.FormatDateTime(c.CreatedAt),
		UpdatedAt:              utils.FormatDateTime(c.UpdatedAt),
	}
}

func ContactsToContactResponses(contacts []*models.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactToContactResponse(c))
	}
	return out
}
