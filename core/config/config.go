package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the config file searched for in the
// configuration directory.
const ConfigurationName = "opgen.yaml"

// Configuration holds the scan and rendering settings.
type Configuration struct {
	// Input is the source listing scanned when no file argument is given.
	Input string `json:"input" validate:"required"`

	// Prefix marks the constructor calls that define opcodes.
	Prefix string `json:"prefix" validate:"required"`

	// ArmBody is appended to each generated match arm.
	ArmBody string `json:"arm_body" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}
