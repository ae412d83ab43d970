package processmessage

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/settings"
)

var ErrInvalidConfig = errors.New("invalid machine configuration")

// UseCase runs a message through a freshly built machine. Because the
// cipher is reciprocal, the same operation both enciphers and deciphers.
type UseCase struct {
	validate *validator.Validate
	clock    clockwork.Clock
	logger   *zerolog.Logger
}

func New(
	validate *validator.Validate,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		validate: validate,
		clock:    clock,
		logger:   logger,
	}
}

func (uc UseCase) Execute(cfg settings.MachineConfig, text string) (string, error) {
	if err := uc.validate.Struct(cfg); err != nil {
		uc.logger.Error().
			Err(err).
			Msg("Machine configuration failed validation")
		return "", ErrInvalidConfig
	}

	board, err := cfg.Board()
	if err != nil {
		uc.logger.Error().
			Err(err).Strs("pairs", cfg.Plugboard).
			Msg("Unable to build plugboard")
		return "", ErrInvalidConfig
	}

	m, err := machine.New(cfg.Rotors, cfg.Positions, cfg.Rings, board)
	if err != nil {
		uc.logger.Error().
			Err(err).Ints("rotors", cfg.Rotors[:]).
			Msg("Unable to build machine")
		return "", ErrInvalidConfig
	}

	started := uc.clock.Now()
	processed := m.Process(text)

	uc.logger.Debug().
		Dur("elapsed", uc.clock.Since(started)).Int("length", len(text)).
		Msg("Processed message")

	return processed, nil
}
