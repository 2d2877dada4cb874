package services

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrCarNotFound     = errors.New("car not found")
	ErrDuplicateVIN    = errors.New("car with this VIN already exists")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPhoto       = errors.New("photo must be a jpeg, png, gif or webp image")
	ErrPhotoTooLarge      = errors.New("photo exceeds upload size limit")
	ErrStorageUnavailable = errors.New("file storage is not configured")
)
