package validator

import (
	"log"

	"github.com/go-playground/validator/v10"
)

var bloodTypes = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

var urgencies = map[string]bool{
	"High": true, "Medium": true, "Low": true,
}

// registerCustomRules registers domain validation tags. Registration failure
// is a startup error; the application must not run without these rules.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("blood-type", validateBloodType)
	mustRegister("urgency", validateUrgency)
}

func validateBloodType(fl validator.FieldLevel) bool {
	return bloodTypes[fl.Field().String()]
}

func validateUrgency(fl validator.FieldLevel) bool {
	return urgencies[fl.Field().String()]
}
