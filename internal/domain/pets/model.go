package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Sex define el sexo de la mascota.
// @Enum male, female, neutered_male, neutered_female, unknown
type Sex string

const (
	SexMale           Sex = "male"
	SexFemale         Sex = "female"
	SexNeuteredMale   Sex = "neutered_male"
	SexNeuteredFemale Sex = "neutered_female"
	SexUnknown        Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexNeuteredMale, SexNeuteredFemale, SexUnknown:
		return true
	}
	return false
}

// Pet pertenece a un grupo; la ven todos los miembros del grupo.
type Pet struct {
	ID      string
	GroupID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	Birthday *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
