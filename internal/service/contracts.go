package service

import (
	"github.com/aliskhannn/pixo/internal/domain/entities"
)

// RetryQueue schedules failed cards for a later retry pass.
type RetryQueue interface {
	Push(index int)
	Get() (int, bool)
	Advance(rng entities.Rand)
	RemoveValue(index int) bool
	IsEmpty() bool
	Len() int
}

// Console is the line-oriented terminal the asker talks to.
type Console interface {
	Prompt(text string) error
	ReadAnswer() (string, error)
	Tip(text string) error
	Reveal(answer string) error
	Accept() error
}
