package service

import "errors"

var (
	ErrEmployeeIDRequired = errors.New("employee id cannot be empty")
	ErrInvalidDataset     = errors.New("invalid dataset")
	ErrDatasetExists      = errors.New("database already holds data")
)
