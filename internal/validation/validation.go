// Package validation rejects pricing inputs outside the model's domain.
//
// The only rule is sign: spot, strike, expiry and volatility must not be
// negative. NaN is not negative and passes, so it reaches the kernel and comes
// back as a NaN quote.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/contactkeval/bsm-pricer/internal/pricing"
)

// ErrDomain is matched by every error ValidateInputs returns.
var ErrDomain = errors.New("input outside model domain")

// DomainError lists the inputs that violated the domain.
type DomainError struct {
	Fields []string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must not be negative", strings.Join(e.Fields, ", "))
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// domainInputs carries the sign rules for pricing.Inputs; rate is unrestricted.
type domainInputs struct {
	Spot   float64 `validate:"nonnegative"`
	Strike float64 `validate:"nonnegative"`
	Expiry float64 `validate:"nonnegative"`
	Vol    float64 `validate:"nonnegative"`
}

var labels = map[string]string{
	"Spot":   "Stock Price",
	"Strike": "Strike",
	"Expiry": "Time to Maturity",
	"Vol":    "Volatility",
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the nonnegative tag registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		mustRegister(validate, "nonnegative", nonNegative)
	})
	return validate
}

// mustRegister panics if tag cannot be registered; the tag set is fixed at build time.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registering %q: %v", tag, err))
	}
}

// nonNegative accepts any float that is not below zero, NaN included.
func nonNegative(fl validator.FieldLevel) bool {
	return !(fl.Field().Float() < 0)
}

// ValidateInputs returns a *DomainError when any signed-restricted input is negative.
func ValidateInputs(in pricing.Inputs) error {
	err := Validator().Struct(domainInputs{
		Spot:   in.Spot,
		Strike: in.Strike,
		Expiry: in.Expiry,
		Vol:    in.Vol,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating inputs: %w", err)
	}

	derr := &DomainError{}
	for _, fe := range verrs {
		label, ok := labels[fe.StructField()]
		if !ok {
			label = fe.StructField()
		}
		derr.Fields = append(derr.Fields, label)
	}
	return derr
}
