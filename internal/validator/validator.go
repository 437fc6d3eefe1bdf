package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/blackjack/internal/config"
)

// Pauses above this make the dealer's turn drag
const maxDealerPauseMs = 5000

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks a config file. An error means the file could not be
// read at all; problems with its contents are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateKeys()
	v.validateCardBack()
	v.validateDealerPause()
	v.validateSeed()

	return v.Results, nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	v.config = config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, v.config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", v.ConfigPath, err)
	}
	v.meta = meta
	return nil
}

// validateKeys warns about keys the game does not read
func (v *Validator) validateKeys() {
	for _, key := range v.meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
	for _, key := range []string{"color", "clear_screen", "dealer_pause_ms", "card_back", "seed"} {
		if !v.meta.IsDefined(key) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s not set, using default", key))
		}
	}
}

func (v *Validator) validateCardBack() {
	if _, err := colorful.Hex(v.config.CardBack); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("card_back must be a hex color like #8b1a1a, got %q", v.config.CardBack))
	}
}

func (v *Validator) validateDealerPause() {
	switch {
	case v.config.DealerPauseMs < 0:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("dealer_pause_ms cannot be negative, got %d", v.config.DealerPauseMs))
	case v.config.DealerPauseMs > maxDealerPauseMs:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("dealer_pause_ms of %d is longer than %d", v.config.DealerPauseMs, maxDealerPauseMs))
	}
}

func (v *Validator) validateSeed() {
	if v.config.Seed < 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("seed cannot be negative, got %d", v.config.Seed))
	}
}
