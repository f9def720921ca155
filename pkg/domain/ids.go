package domain

import (
	"bytes"

	"github.com/google/uuid"

	dErrors "people-registry/pkg/domain-errors"
)

// PersonID identifies a person record. It is a UUIDv7, so IDs generated later
// sort after IDs generated earlier (to millisecond precision).
type PersonID uuid.UUID

// NewPersonID returns a fresh time-ordered identifier.
// Like uuid.New, it panics only if the system random source fails.
func NewPersonID() PersonID {
	return PersonID(uuid.Must(uuid.NewV7()))
}

// ParsePersonID parses the canonical string form of a PersonID.
func ParsePersonID(s string) (PersonID, error) {
	if s == "" {
		return PersonID{}, dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return PersonID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid person id")
	}
	if u == uuid.Nil {
		return PersonID{}, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be nil")
	}
	return PersonID(u), nil
}

func (id PersonID) String() string {
	return uuid.UUID(id).String()
}

func (id PersonID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Compare orders IDs bytewise, which for UUIDv7 is creation order.
func (id PersonID) Compare(other PersonID) int {
	return bytes.Compare(id[:], other[:])
}

func (id PersonID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *PersonID) UnmarshalText(data []byte) error {
	parsed, err := ParsePersonID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
