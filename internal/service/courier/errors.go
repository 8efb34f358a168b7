package courier

import "errors"

var (
	ErrNoCouriers          = errors.New("no couriers to register")
	ErrInvalidCourierID    = errors.New("invalid courier id")
	ErrInvalidCourierType  = errors.New("invalid courier type")
	ErrInvalidRegions      = errors.New("invalid regions")
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)
