package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// CnfValidator checks a loaded Config against the validate struct tags
// before anything else gets built from it.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}
	return nil
}
