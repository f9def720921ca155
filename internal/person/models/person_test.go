package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "people-registry/pkg/domain"
)

func TestBuild(t *testing.T) {
	personID := id.NewPersonID()

	t.Run("maps validated fields back to text", func(t *testing.T) {
		p := NewPerson{
			Name:      "Ada Lovelace",
			Nick:      "Ada",
			Birthdate: NewDate(1815, time.December, 10),
			Stack:     []Tech{"Math"},
		}.Build(personID)

		assert.Equal(t, personID, p.ID)
		assert.Equal(t, "Ada Lovelace", p.Name)
		assert.Equal(t, "Ada", p.Nick)
		assert.Equal(t, "1815-12-10", p.Birthdate.String())
		assert.Equal(t, []string{"Math"}, p.Stack)
	})

	t.Run("nil stack stays nil", func(t *testing.T) {
		p := NewPerson{Name: "a", Nick: "b"}.Build(personID)
		assert.Nil(t, p.Stack)
	})

	t.Run("empty stack stays empty", func(t *testing.T) {
		p := NewPerson{Name: "a", Nick: "b", Stack: []Tech{}}.Build(personID)
		assert.NotNil(t, p.Stack)
		assert.Empty(t, p.Stack)
	})
}

func TestPersonJSON(t *testing.T) {
	personID := id.NewPersonID()

	t.Run("absent stack serializes as null", func(t *testing.T) {
		p := NewPerson{Name: "a", Nick: "b", Birthdate: NewDate(2000, time.January, 1)}.Build(personID)
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.JSONEq(t, `null`, string(raw["stack"]))
		assert.JSONEq(t, `"2000-01-01"`, string(raw["nascimento"]))
		assert.JSONEq(t, `"`+personID.String()+`"`, string(raw["id"]))
	})

	t.Run("empty stack serializes as empty array", func(t *testing.T) {
		p := NewPerson{Name: "a", Nick: "b", Stack: []Tech{}}.Build(personID)
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.JSONEq(t, `[]`, string(raw["stack"]))
	})
}

func TestClone(t *testing.T) {
	p := NewPerson{Name: "a", Nick: "b", Stack: []Tech{"Go"}}.Build(id.NewPersonID())
	cp := p.Clone()
	cp.Stack[0] = "COBOL"
	cp.Name = "changed"

	assert.Equal(t, []string{"Go"}, p.Stack)
	assert.Equal(t, "a", p.Name)

	var nilPerson *Person
	assert.Nil(t, nilPerson.Clone())
}
