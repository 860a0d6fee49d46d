package service

import "math"

// Marks are the nine raw components of a grade. A nil mark counts as 0.
type Marks struct {
	Mse1, Mse2, Task1, Task2, Task3 *float64

	RecordMarks, ConductionMarks, MseLab *float64

	SeeScore *float64
}

// Totals are the derived internal assessment figures.
type Totals struct {
	Theory  float64
	Lab     float64
	IA      float64
	Reduced float64
}

const (
	theoryMax    = 50.0
	theoryWeight = 30.0
	labMax       = 50.0
	labWeight    = 20.0
)

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// RoundHalfUp rounds to the nearest integer, halves going up (24.5 -> 25,
// -24.5 -> -24).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Aggregate rescales theory out of 50 to 30 and lab out of 50 to 20.
func Aggregate(m Marks) Totals {
	theory := val(m.Mse1) + val(m.Mse2) + val(m.Task1) + val(m.Task2) + val(m.Task3)
	lab := val(m.RecordMarks) + val(m.ConductionMarks) + val(m.MseLab)

	scaled := theory/theoryMax*theoryWeight + lab/labMax*labWeight
	return Totals{
		Theory:  theory,
		Lab:     lab,
		IA:      theory + lab,
		Reduced: RoundHalfUp(scaled),
	}
}

// FinalScore adds half of the semester end exam to the reduced IA total.
func FinalScore(m Marks) float64 {
	return Aggregate(m).Reduced + val(m.SeeScore)/2
}
