// Command ecdemo multiplies a base point by a scalar on a configurable curve
// and reports curve membership of the input and the result.
//
// Usage:
//
//	ecdemo [-config demo.yaml]
//
// Without -config it runs y² = x³ + 2x + 3 over F_97 with G = (3, 6), k = 5.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML demo config")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	d := config.Default()
	if *configFile != "" {
		var err error
		if d, err = config.Load(*configFile); err != nil {
			log.WithError(err).Fatal("load config failed")
		}
	}
	log.SetLevel(d.Level())

	if err := run(d, os.Stdout); err != nil {
		log.WithFields(log.Fields{
			"caller":    ecc.IsCallerError(err),
			"parameter": ecc.IsParameterError(err),
		}).WithError(err).Fatal("demo failed")
	}
}

func run(d *config.Demo, w io.Writer) error {
	curve, g, k, err := d.Build()
	if err != nil {
		return errors.Wrap(err, "build curve")
	}
	log.WithFields(log.Fields{
		"a": curve.A(),
		"b": curve.B(),
		"p": curve.Field().Modulus(),
	}).Info("curve ready")

	fmt.Fprintf(w, "Is G on the curve? %t\n", curve.Contains(g))

	r, err := curve.ScalarMultiply(g, k)
	if err != nil {
		return err
	}
	log.WithField("k", k).Debugf("k*G = %v", r)

	fmt.Fprintf(w, "%v * G = %v\n", k, r)
	fmt.Fprintf(w, "Is %v * G on the curve? %t\n", k, curve.Contains(r))
	return nil
}
