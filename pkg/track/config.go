package track

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultWidth is the visual thickness of a segment
	DefaultWidth = 50.0
	// DefaultBarrierTimeout bounds how long Wait blocks for positions
	DefaultBarrierTimeout = 5 * time.Second
)

var validate = validator.New()

// Config holds the host-overridable connector settings
type Config struct {
	Width          float64       `yaml:"width" validate:"gt=0"`
	Pivot          Pivot         `yaml:"pivot" validate:"oneof=midpoint start"`
	BarrierTimeout time.Duration `yaml:"barrier_timeout" validate:"gte=0"` // 0 waits forever
}

// DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Pivot:          PivotMidpoint,
		BarrierTimeout: DefaultBarrierTimeout,
	}
}

// Validate checks the config using its struct tags
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
