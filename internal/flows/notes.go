package flows

// yearNotes explains migration-shaping events for specific years.
var yearNotes = map[int]string{
	1995: "The Migrant Workers and Overseas Filipinos Act (RA 8042) changed how the " +
		"Philippines manages and protects OFWs. This helped shape deployment patterns " +
		"in this period.",
	1997: "The Asian Financial Crisis affected many Asian economies. Some Filipinos " +
		"looked for work abroad as local opportunities became less stable.",
	2008: "The Global Financial Crisis shook job markets worldwide. Demand shifted, " +
		"but many Filipinos still relied on overseas work for income.",
}

const defaultYearNote = "Migration in this year reflects ongoing economic gaps between " +
	"the Philippines and destination countries, plus established labor corridors for " +
	"Filipino workers."

const zeroTotalNote = "This dataset records no documented migrants under the current " +
	"filters. This may reflect limited labor demand, absence of formal deployment " +
	"channels, or gaps in available statistics rather than the absolute absence of " +
	"any Filipino migrants."

// YearNote returns the narrative explanation for a year, falling back
// to a generic note for years without a recorded event.
func YearNote(year int) string {
	if n, ok := yearNotes[year]; ok {
		return n
	}
	return defaultYearNote
}

// ZeroTotalNote is the advisory shown when a filtered total is zero.
func ZeroTotalNote() string { return zeroTotalNote }
