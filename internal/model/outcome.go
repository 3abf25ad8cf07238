package model

import (
	"strings"

	"StockDLC/internal/apperr"
)

// Outcome — чем закончилась жизнь товара при списании.
type Outcome string

const (
	OutcomeConsumed Outcome = "consumed"
	OutcomeWasted   Outcome = "wasted"
)

// словарь исходного приложения (consomme/perdu) принимается наравне с английским
var outcomeAliases = map[string]Outcome{
	"consumed": OutcomeConsumed,
	"consomme": OutcomeConsumed,
	"consommé": OutcomeConsumed,
	"wasted":   OutcomeWasted,
	"perdu":    OutcomeWasted,
}

// ParseOutcome нормализует значение исхода; остальное даёт ошибку валидации.
func ParseOutcome(s string) (Outcome, error) {
	if o, ok := outcomeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return "", apperr.Validation("outcome must be one of consumed, wasted (or consomme, perdu), got %q", s)
}

func (o Outcome) Valid() bool {
	return o == OutcomeConsumed || o == OutcomeWasted
}

func (o Outcome) String() string { return string(o) }
