// Package validate держит один настроенный validator на процесс: у него
// кэш структур, пересоздание на каждый запрос бессмысленно.
package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"candydelivery/internal/entities"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		// окно "HH:MM-HH:MM"
		_ = instance.RegisterValidation("timewindow", func(fl validator.FieldLevel) bool {
			_, err := entities.ParseTimeWindow(fl.Field().String())
			return err == nil
		})
	})
	return instance
}
