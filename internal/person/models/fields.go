package models

import (
	"fmt"
	"unicode/utf8"

	dErrors "people-registry/pkg/domain-errors"
)

// Upper bounds, in characters, for free-text fields.
const (
	MaxNameLength = 100
	MaxNickLength = 100
	MaxTechLength = 32
)

// Name is a person's full name, at most MaxNameLength characters.
// Construct it with ParseName; the zero value is only used for empty structs.
type Name string

// Nick is a person's nickname, at most MaxNickLength characters.
type Nick string

// Tech is one entry of a person's technology stack, at most MaxTechLength characters.
type Tech string

func ParseName(s string) (Name, error) {
	if err := checkLength("nome", s, MaxNameLength); err != nil {
		return "", err
	}
	return Name(s), nil
}

func ParseNick(s string) (Nick, error) {
	if err := checkLength("apelido", s, MaxNickLength); err != nil {
		return "", err
	}
	return Nick(s), nil
}

func ParseTech(s string) (Tech, error) {
	if err := checkLength("stack", s, MaxTechLength); err != nil {
		return "", err
	}
	return Tech(s), nil
}

// ParseStack converts raw stack entries, keeping nil (no stack recorded)
// distinct from an empty stack.
func ParseStack(raw []string) ([]Tech, error) {
	if raw == nil {
		return nil, nil
	}
	stack := make([]Tech, 0, len(raw))
	for _, entry := range raw {
		tech, err := ParseTech(entry)
		if err != nil {
			return nil, err
		}
		stack = append(stack, tech)
	}
	return stack, nil
}

func (n Name) String() string { return string(n) }
func (n Nick) String() string { return string(n) }
func (t Tech) String() string { return string(t) }

// Length is counted in code points, not bytes: "José" is four characters.
func checkLength(field, s string, limit int) error {
	if utf8.RuneCountInString(s) > limit {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be %d characters or less", field, limit))
	}
	return nil
}
