package validators

import (
	"github.com/go-playground/validator/v10"
)

// MaxModulusBits is the largest modulus size accepted by ModulusBitsValidation.
const MaxModulusBits = 16384

// ModulusBitsValidation accepts even modulus sizes between 4 and MaxModulusBits.
// Even sizes split evenly into two primes of bits/2.
func ModulusBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()
	return bits >= 4 && bits <= MaxModulusBits && bits%2 == 0
}

// PublicExponentValidation accepts odd public exponents of at least 3.
// An even exponent always shares the factor two with (p-1)(q-1).
func PublicExponentValidation(fl validator.FieldLevel) bool {
	e := fl.Field().Int()
	return e >= 3 && e%2 == 1
}

// Register installs the custom key generation rules on v under the tags
// "modulusbits" and "publicexponent".
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("modulusbits", ModulusBitsValidation); err != nil {
		return err
	}
	return v.RegisterValidation("publicexponent", PublicExponentValidation)
}
