package monitorings

import "time"

// Monitoring es el control diario de salud. Una entrada por mascota y fecha.
// Los campos custom son opcionales: nil = no registrado ese día.
type Monitoring struct {
	ID    string
	PetID string
	Date  time.Time // sólo fecha (UTC, 00:00)

	Weight     float64
	Vomit      bool
	AmPill     bool
	PmPill     bool
	Urination  int
	Defecation int
	WalkCnt    int
	Notes      string

	CustomSymptom     *bool
	CustomSymptomName string
	CustomInt         *int
	CustomIntName     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Report resume un rango de monitoreos. Los promedios van redondeados a 2 decimales.
type Report struct {
	Start time.Time
	End   time.Time

	Days      int
	WeightAvg float64

	VomitCount int
	AmPillTrue int
	PmPillTrue int

	UrinationAvg  float64
	DefecationAvg float64
	WalkAvg       float64

	CustomSymptomName  string
	CustomSymptomCount int
	CustomSymptomTrue  int

	CustomIntName  string
	CustomIntCount int
	CustomIntAvg   float64
}

type DeleteResult struct {
	ID      string
	Message string
}
