package handler

import (
	"people-registry/internal/person/models"
	dErrors "people-registry/pkg/domain-errors"
)

// CreatePersonRequest is the wire payload for POST /pessoas. Pointer fields
// distinguish a missing or null value from an empty string.
type CreatePersonRequest struct {
	Name      *string  `json:"nome"`
	Nick      *string  `json:"apelido"`
	Birthdate *string  `json:"nascimento"`
	Stack     []string `json:"stack"`
}

// Parse is the only way wire input becomes a models.NewPerson.
// Follows validation order: Required -> Size -> Syntax.
func (r *CreatePersonRequest) Parse() (models.NewPerson, error) {
	if r == nil {
		return models.NewPerson{}, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Name == nil {
		return models.NewPerson{}, dErrors.New(dErrors.CodeValidation, "nome is required")
	}
	if r.Nick == nil {
		return models.NewPerson{}, dErrors.New(dErrors.CodeValidation, "apelido is required")
	}
	if r.Birthdate == nil {
		return models.NewPerson{}, dErrors.New(dErrors.CodeValidation, "nascimento is required")
	}

	name, err := models.ParseName(*r.Name)
	if err != nil {
		return models.NewPerson{}, err
	}
	nick, err := models.ParseNick(*r.Nick)
	if err != nil {
		return models.NewPerson{}, err
	}
	stack, err := models.ParseStack(r.Stack)
	if err != nil {
		return models.NewPerson{}, err
	}

	birthdate, err := models.ParseDate(*r.Birthdate)
	if err != nil {
		return models.NewPerson{}, err
	}

	return models.NewPerson{
		Name:      name,
		Nick:      nick,
		Birthdate: birthdate,
		Stack:     stack,
	}, nil
}
