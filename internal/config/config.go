package config

import (
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Demo describes a single demo run: a curve, a base point and a scalar.
// Either Preset names a built-in curve, or A, B, P and Generator spell one
// out. Integers are decimal or 0x-prefixed hex strings.
type Demo struct {
	Preset    string    `yaml:"preset,omitempty"`
	A         string    `yaml:"a,omitempty"`
	B         string    `yaml:"b,omitempty"`
	P         string    `yaml:"p,omitempty"`
	Generator Generator `yaml:"generator,omitempty"`
	Scalar    string    `yaml:"scalar"`
	LogLevel  string    `yaml:"log_level,omitempty"`
}

// Generator is the base point of an explicit curve.
type Generator struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Default returns the original demo: y² = x³ + 2x + 3 over F_97,
// G = (3, 6) and k = 5.
func Default() *Demo {
	return &Demo{
		A:         "2",
		B:         "3",
		P:         "97",
		Generator: Generator{X: "3", Y: "6"},
		Scalar:    "5",
		LogLevel:  "info",
	}
}

// Load reads and parses a YAML file.
func Load(path string) (*Demo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	logrus.WithFields(logrus.Fields{
		"path":   path,
		"preset": d.Preset,
	}).Debug("loaded demo config")
	return d, nil
}

// Parse decodes a YAML document and validates it.
func Parse(data []byte) (*Demo, error) {
	d := &Demo{LogLevel: "info"}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, errors.Wrap(err, "config: decode yaml")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that every field parses, without building the curve.
func (d *Demo) Validate() error {
	if _, err := logrus.ParseLevel(d.LogLevel); err != nil {
		return errors.Wrap(err, "config: log_level")
	}
	if _, err := parseField("scalar", d.Scalar); err != nil {
		return err
	}

	if d.Preset != "" {
		if d.A != "" || d.B != "" || d.P != "" || d.Generator != (Generator{}) {
			return errors.New("config: preset excludes explicit curve parameters")
		}
		for _, name := range curves.Names() {
			if name == d.Preset {
				return nil
			}
		}
		return errors.Errorf("config: unknown preset %q (known: %s)",
			d.Preset, strings.Join(curves.Names(), ", "))
	}

	for _, f := range d.explicit() {
		if _, err := parseField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the configured log level.
func (d *Demo) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(d.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Build constructs the curve, its base point and the scalar. The base point
// is validated against the curve.
func (d *Demo) Build() (*ecc.Curve, ecc.Point, *big.Int, error) {
	k, err := parseField("scalar", d.Scalar)
	if err != nil {
		return nil, ecc.Point{}, nil, err
	}

	if d.Preset != "" {
		preset, err := curves.New(d.Preset)
		if err != nil {
			return nil, ecc.Point{}, nil, err
		}
		return preset.Curve, preset.Generator, k, nil
	}

	values := make(map[string]*big.Int, 5)
	for _, f := range d.explicit() {
		v, err := parseField(f.name, f.value)
		if err != nil {
			return nil, ecc.Point{}, nil, err
		}
		values[f.name] = v
	}

	field, err := ecc.NewField(values["p"])
	if err != nil {
		return nil, ecc.Point{}, nil, errors.Wrap(err, "config: p")
	}
	curve, err := ecc.New(values["a"], values["b"], field)
	if err != nil {
		return nil, ecc.Point{}, nil, errors.Wrap(err, "config: curve")
	}
	g, err := curve.NewPoint(values["generator.x"], values["generator.y"])
	if err != nil {
		return nil, ecc.Point{}, nil, errors.Wrap(err, "config: generator")
	}
	return curve, g, k, nil
}

type namedValue struct{ name, value string }

// explicit lists the curve parameters of a demo without a preset.
func (d *Demo) explicit() []namedValue {
	return []namedValue{
		{"a", d.A},
		{"b", d.B},
		{"p", d.P},
		{"generator.x", d.Generator.X},
		{"generator.y", d.Generator.Y},
	}
}

func parseField(name, value string) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, errors.Errorf("config: %s is required", name)
	}
	v, err := ParseBig(value)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", name)
	}
	return v, nil
}

// ParseBig parses a decimal or 0x-prefixed hexadecimal integer with an
// optional sign.
func ParseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok || s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}
