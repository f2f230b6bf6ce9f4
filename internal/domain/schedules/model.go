package schedules

import "time"

// Category define el tipo de tarea agendada.
// @Enum hospital, walk, feed, grooming, medication, etc
type Category string

const (
	CategoryHospital   Category = "hospital"
	CategoryWalk       Category = "walk"
	CategoryFeed       Category = "feed"
	CategoryGrooming   Category = "grooming"
	CategoryMedication Category = "medication"
	CategoryEtc        Category = "etc"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHospital, CategoryWalk, CategoryFeed, CategoryGrooming, CategoryMedication, CategoryEtc:
		return true
	}
	return false
}

type Schedule struct {
	ID         string
	PetID      string
	UserID     string // quien lo creó
	AssigneeID string // opcional

	Category Category
	Title    string
	Body     string
	Place    string

	DueDate     time.Time
	IsCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
