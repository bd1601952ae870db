package primality

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned for a strategy name with no implementation.
var ErrUnknownStrategy = errors.New("unknown primality strategy")

// Func decides primality of a single candidate.
type Func func(n uint64) bool

// Strategy names a primality test selectable from configuration.
type Strategy string

const (
	StrategyTrialDivision Strategy = "trial-division"
	StrategyMillerRabin   Strategy = "miller-rabin"
	StrategyBailliePSW    Strategy = "baillie-psw"
)

// DefaultStrategy is used when configuration leaves the strategy empty.
const DefaultStrategy = StrategyMillerRabin

var strategies = map[Strategy]Func{
	StrategyTrialDivision: TrialDivision,
	StrategyMillerRabin:   MillerRabin,
	StrategyBailliePSW:    BailliePSW,
}

// Strategies lists every known strategy, reference first.
func Strategies() []Strategy {
	return []Strategy{StrategyTrialDivision, StrategyMillerRabin, StrategyBailliePSW}
}

// ParseStrategy maps a configuration value to a Strategy. The empty string
// selects DefaultStrategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultStrategy, nil
	}
	s := Strategy(name)
	if _, ok := strategies[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Func returns the test implementing s.
func (s Strategy) Func() (Func, error) {
	fn, ok := strategies[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
	return fn, nil
}

func (s Strategy) String() string { return string(s) }
