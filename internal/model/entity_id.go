package model

import (
	"regexp"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/google/uuid"
)

// canonicalUUID matches only the hyphenated 8-4-4-4-12 form.
// uuid.Parse alone also accepts braces, "urn:uuid:" and 32 bare hex digits.
var canonicalUUID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// EntityID wraps an identifier string supplied by a caller.
type EntityID struct {
	Value string
}

// NewEntityID wraps value.
func NewEntityID(value string) EntityID {
	return EntityID{Value: value}
}

// Resolve parses the wrapped string into a uuid.UUID.
//
// It fails with an errs.InvalidUUID error for anything that is not the
// canonical textual form. Resolve has no side effects.
func (id EntityID) Resolve() (uuid.UUID, error) {
	if !canonicalUUID.MatchString(id.Value) {
		return uuid.Nil, errs.NewInvalidUUIDError()
	}

	parsed, err := uuid.Parse(id.Value)
	if err != nil {
		return uuid.Nil, errs.NewInvalidUUIDError()
	}
	return parsed, nil
}

func (id EntityID) String() string {
	return id.Value
}
