package customvalidator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	inventoryBuckets = map[string]struct{}{"PC": {}, "CPU": {}, "Printer": {}, "UPS": {}}
	computerTypes    = map[string]struct{}{"desktop": {}, "laptop": {}, "workstation": {}, "server": {}}
	actionTypes      = map[string]struct{}{"transfer": {}, "exit": {}, "return": {}, "repair": {}}
	conditions       = map[string]struct{}{"excellent": {}, "good": {}, "fair": {}, "poor": {}, "damaged": {}}
)

// RegisterCustomValidations registers the inventory rules on v.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"inventory_bucket": oneOf(inventoryBuckets),
		"computer_type":    oneOf(computerTypes),
		"action_type":      oneOf(actionTypes),
		"condition":        oneOf(conditions),
		"date_only":        isDateOnly,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func oneOf(allowed map[string]struct{}) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := allowed[s]
		return ok
	}
}

func isDateOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
