package gender

import (
	"math"

	"github.com/ofwlens/ofwlens/internal/dataset"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

// EstimationNote must accompany any surfaced split: the per-occupation
// breakdown applies the year's overall male/female shares to each
// occupation, it is not a measured per-occupation split.
const EstimationNote = "Gender splits are estimated by applying the overall male/female " +
	"shares for the year to each occupation count."

// Shares holds the overall gender proportions for a year.
type Shares struct {
	Year   int
	Male   float64
	Female float64
}

// MaleShare returns the male fraction of the total, defaulting to an
// even split when no people are recorded.
func (s Shares) MaleShare() float64 {
	total := s.Male + s.Female
	if total <= 0 {
		return 0.5
	}
	return s.Male / total
}

// FemaleShare returns the female fraction of the total.
func (s Shares) FemaleShare() float64 { return 1 - s.MaleShare() }

// Split is the estimated gender breakdown of one occupation.
type Split struct {
	Occupation string
	Count      float64
	Male       int
	Female     int
}

// SharesForYear reads the male/female totals for a year from the sex
// pivot table. ok is false when the year has no row there; callers
// typically fall back to the latest available year.
func SharesForYear(t *dataset.Table, year int) (Shares, bool) {
	rows := t.RowsForYear(year)
	if len(rows) == 0 {
		return Shares{}, false
	}
	s := Shares{Year: year}
	for _, r := range rows {
		s.Male += t.FloatOrZero(r, "male")
		s.Female += t.FloatOrZero(r, "female")
	}
	return s, true
}

// Estimate applies the shares to each occupation count, rounding to
// whole migrants.
func Estimate(occupations []reshape.CategoryCount, s Shares) []Split {
	maleShare := s.MaleShare()
	femaleShare := s.FemaleShare()
	out := make([]Split, 0, len(occupations))
	for _, o := range occupations {
		out = append(out, Split{
			Occupation: o.Category,
			Count:      o.Count,
			Male:       int(math.Round(o.Count * maleShare)),
			Female:     int(math.Round(o.Count * femaleShare)),
		})
	}
	return out
}
