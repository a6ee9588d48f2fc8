package store

import "errors"

var (
	ErrRecordExists        = errors.New("record already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrInvalidPage         = errors.New("invalid page request")
)
