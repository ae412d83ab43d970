package cipher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/internal/core/usecases/processmessage"
	"github.com/sergeii/enigma/internal/settings"
)

var (
	ErrNoInput         = errors.New("no input text provided; use --text, --file or pipe to stdin")
	ErrThreeRotorSlots = errors.New("exactly three rotors, positions and ring settings are required")
)

type Config struct {
	Machine settings.MachineConfig
	Random  bool
	Text    string
	File    string
	Output  string
}

type command struct {
	Rotors    []int    `default:"0,1,2" help:"Rotor selectors for the left, middle and right slots (0-2)"`
	Positions []int    `default:"0,0,0" help:"Initial rotor positions from left to right (0-25)"`
	Rings     []int    `default:"0,0,0" help:"Ring settings from left to right (0-25)"`
	Plugboard []string `help:"Plugboard letter pairs, e.g. AB,CD"`
	Random    bool     `help:"Generate random machine settings; they are printed to stderr for later deciphering"` // nolint:lll

	Text   string `short:"t" help:"Text to process"`
	File   string `short:"f" help:"File to process"`
	Output string `short:"o" help:"Output file (default: stdout)"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	var runErr error
	app := builder.
		Add(
			fx.Supply(cfg),
			fx.Provide(processmessage.New),
			fx.Invoke(func(uc processmessage.UseCase, logger *zerolog.Logger, shutdowner fx.Shutdowner) {
				runErr = run(uc, logger, cfg)
				_ = shutdowner.Shutdown()
			}),
		).
		Build()
	app.Run()

	return runErr
}

func (c *command) config() (Config, error) {
	cfg := Config{
		Random: c.Random,
		Text:   c.Text,
		File:   c.File,
		Output: c.Output,
	}

	if c.Random {
		cfg.Machine = settings.Randomize()
		return cfg, nil
	}

	if len(c.Rotors) != 3 || len(c.Positions) != 3 || len(c.Rings) != 3 {
		return Config{}, ErrThreeRotorSlots
	}
	for i := 0; i < 3; i++ {
		cfg.Machine.Rotors[i] = c.Rotors[i]
		cfg.Machine.Positions[i] = c.Positions[i]
		cfg.Machine.Rings[i] = c.Rings[i]
	}
	cfg.Machine.Plugboard = make([]string, 0, len(c.Plugboard))
	for _, pair := range c.Plugboard {
		cfg.Machine.Plugboard = append(cfg.Machine.Plugboard, strings.ToUpper(pair))
	}

	return cfg, nil
}

func run(uc processmessage.UseCase, logger *zerolog.Logger, cfg Config) error {
	text, err := readInput(cfg)
	if err != nil {
		return err
	}

	if cfg.Random {
		fmt.Fprintf( // nolint: forbidigo
			os.Stderr,
			"rotors=%v positions=%v rings=%v plugboard=%v\n",
			cfg.Machine.Rotors, cfg.Machine.Positions, cfg.Machine.Rings, cfg.Machine.Plugboard,
		)
	}

	processed, err := uc.Execute(cfg.Machine, text)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to process message")
		return err
	}

	return writeOutput(cfg.Output, processed)
}

func readInput(cfg Config) (string, error) {
	if cfg.Text != "" {
		return cfg.Text, nil
	}

	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return "", fmt.Errorf("unable to read file %s: %w", cfg.File, err)
		}
		return string(data), nil
	}

	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", ErrNoInput
}

func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text) // nolint: forbidigo
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o600)
}

type CLI struct {
	Encrypt command `cmd:"" help:"Encipher a message with the configured machine"`
	Decrypt command `cmd:"" help:"Decipher a message; the cipher is reciprocal, so the settings must match the enciphering run"` // nolint:lll
}
