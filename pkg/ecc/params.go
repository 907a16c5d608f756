package ecc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCurve = "secp256k1"
	DefaultHash  = "sha256"
)

// CurveSpec is the data record of a curve that is not built in.
// All values are hexadecimal, with or without a 0x prefix.
type CurveSpec struct {
	Name string `yaml:"name"`
	P    string `yaml:"p"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	N    string `yaml:"order"`
	Gx   string `yaml:"generator_x"`
	Gy   string `yaml:"generator_y"`
}

// Parameters holds the configuration of a signing context.
type Parameters struct {
	Curve  string     `yaml:"curve"`  // registry name, e.g. "secp256k1"
	Hash   string     `yaml:"hash"`   // digest used by hash-to-scalar
	Custom *CurveSpec `yaml:"custom"` // overrides Curve when set
}

// DefaultParameters returns secp256k1 with SHA-256.
func DefaultParameters() *Parameters {
	return &Parameters{
		Curve: DefaultCurve,
		Hash:  DefaultHash,
	}
}

// LoadParameters decodes YAML parameters. Omitted fields keep their defaults.
func LoadParameters(data []byte) (*Parameters, error) {
	params := DefaultParameters()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("ecc: failed to parse parameters: %w", err)
	}
	if params.Custom != nil {
		if params.Custom.P == "" || params.Custom.N == "" || params.Custom.Gx == "" || params.Custom.Gy == "" {
			return nil, fmt.Errorf("ecc: custom curve %q: %w", params.Custom.Name, ErrInvalidParams)
		}
		if params.Custom.Name != "" {
			params.Curve = params.Custom.Name
		}
	}
	return params, nil
}
