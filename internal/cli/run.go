// Package cli runs the one-shot key generation command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cheetahbyte/clavekey/internal/licensecrypto"
)

// Seeder supplies the seed for one key.
type Seeder interface {
	Seed() uint64
	Raw() uint64
}

// Run generates one key from seeder and writes it to out.
func Run(out io.Writer, seeder Seeder, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if seeder == nil {
		return errors.New("seeder is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	seed := seeder.Seed()
	logger.Debug("seed used", "raw", seeder.Raw(), "mixed", seed)

	key := licensecrypto.GenerateKey(seed)
	_, err := fmt.Fprintf(out, "Generated Key: %s\n", key)
	return err
}
