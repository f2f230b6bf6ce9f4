package monitorings

import (
	"math"

	"github.com/samber/lo"
)

// Aggregate pliega las entradas en un Report. Sin entradas => todo en cero.
// Para los campos opcionales el denominador son sólo las entradas que los tienen.
func Aggregate(items []Monitoring) Report {
	r := Report{Days: len(items)}
	if len(items) == 0 {
		return r
	}

	// peso 0 = no se pesó ese día
	weights := lo.FilterMap(items, func(m Monitoring, _ int) (float64, bool) {
		return m.Weight, m.Weight > 0
	})
	r.WeightAvg = avg(lo.Sum(weights), len(weights))

	r.VomitCount = lo.CountBy(items, func(m Monitoring) bool { return m.Vomit })
	r.AmPillTrue = lo.CountBy(items, func(m Monitoring) bool { return m.AmPill })
	r.PmPillTrue = lo.CountBy(items, func(m Monitoring) bool { return m.PmPill })

	r.UrinationAvg = avg(float64(lo.SumBy(items, func(m Monitoring) int { return m.Urination })), len(items))
	r.DefecationAvg = avg(float64(lo.SumBy(items, func(m Monitoring) int { return m.Defecation })), len(items))
	r.WalkAvg = avg(float64(lo.SumBy(items, func(m Monitoring) int { return m.WalkCnt })), len(items))

	symptoms := lo.FilterMap(items, func(m Monitoring, _ int) (bool, bool) {
		if m.CustomSymptom == nil {
			return false, false
		}
		return *m.CustomSymptom, true
	})
	r.CustomSymptomCount = len(symptoms)
	r.CustomSymptomTrue = lo.Count(symptoms, true)
	r.CustomSymptomName = lastName(items, func(m Monitoring) string { return m.CustomSymptomName })

	ints := lo.FilterMap(items, func(m Monitoring, _ int) (int, bool) {
		if m.CustomInt == nil {
			return 0, false
		}
		return *m.CustomInt, true
	})
	r.CustomIntCount = len(ints)
	r.CustomIntAvg = avg(float64(lo.Sum(ints)), len(ints))
	r.CustomIntName = lastName(items, func(m Monitoring) string { return m.CustomIntName })

	return r
}

// lastName toma el último nombre no vacío del rango (el usuario puede renombrarlo).
func lastName(items []Monitoring, name func(Monitoring) string) string {
	m, _, ok := lo.FindLastIndexOf(items, func(m Monitoring) bool { return name(m) != "" })
	if !ok {
		return ""
	}
	return name(m)
}

func avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
