package names

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts a raw label to its machine form: lowercased,
// runs of non-alphanumeric characters collapsed to a single underscore,
// leading/trailing underscores stripped.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Display maps a machine-form key to its human-readable name. Unknown
// keys fall back to a title-cased rendering of the key, so the function
// is total: it never fails and never returns an empty string for
// non-empty input.
func Display(key string) string {
	if v, ok := countryNames[key]; ok {
		return v
	}
	if v, ok := categoryNames[key]; ok {
		return v
	}
	return TitleCase(key)
}

// TitleCase renders a machine-form key as a readable label: underscores
// become spaces, "&" becomes "and", and each word is capitalized.
func TitleCase(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	s = strings.ReplaceAll(s, "&", "and")
	words := strings.Fields(s)
	if len(words) == 0 {
		return key
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// categoryNames covers the education and occupation vocabularies where
// the title-cased fallback would read poorly.
var categoryNames = map[string]string{
	"prof_l_tech_l_related_workers":    "Professional, Technical & Related Workers",
	"equipment_operators_laborers":     "Equipment Operators & Laborers",
	"workers_fishermen":                "Workers & Fishermen",
	"minors_below_7_years_old":         "Minors (below 7 years old)",
	"not_reported_no_response":         "Not Reported / No Response",
	"non_formal_education":             "Non-formal Education",
	"no_occupation_reported":           "No Occupation Reported",
	"members_of_the_armed_forces":      "Members of the Armed Forces",
	"out_of_school_youth":              "Out-of-School Youth",
	"not_of_schooling_age":             "Not of Schooling Age",
	"post_graduate":                    "Postgraduate",
	"post_graduate_level":              "Postgraduate Level",
}

// countryNames translates normalized destination-country keys to their
// official display names. Absent keys degrade to TitleCase.
var countryNames = map[string]string{
	"albania":                "Albania",
	"andorra":                "Andorra",
	"angola":                 "Angola",
	"anguilla":               "Anguilla",
	"antigua_and_barbuda":    "Antigua And Barbuda",
	"argentina":              "Argentina",
	"armenia":                "Armenia",
	"aruba":                  "Aruba",
	"australia":              "Australia",
	"austria":                "Austria",
	"bahamas":                "Bahamas",
	"bahrain":                "Bahrain",
	"bangladesh":             "Bangladesh",
	"barbados":               "Barbados",
	"belgium":                "Belgium",
	"bermuda":                "Bermuda",
	"bolivia":                "Bolivia",
	"bosnia_and_herzegovina": "Bosnia And Herzegovina",
	"brazil":                 "Brazil",
	"british_virgin_islands": "British Virgin Islands",
	"brunei_darussalam":      "Brunei Darussalam",
	"bulgaria":               "Bulgaria",
	"cameroon":               "Cameroon",
	"canada":                 "Canada",
	"cayman_islands":         "Cayman Islands",
	"channel_island":         "Channel Island",
	"chile":                  "Chile",
	"china_p_r_o_c":          "China (P.R.O.C.)",
	"cocos_keeling_island":   "Cocos (Keeling) Island",
	"colombia":               "Colombia",
	"costa_rica":             "Costa Rica",
	"croatia":                "Croatia",
	"cyprus":                 "Cyprus",
	"czech_republic":         "Czech Republic",
	"democratic_kampuchea":   "Democratic Kampuchea",
	"democratic_republic_of_the_congo_zaire": "Democratic Republic Of The Congo (Zaire)",
	"denmark":                  "Denmark",
	"dominican_republic":       "Dominican Republic",
	"ecuador":                  "Ecuador",
	"egypt":                    "Egypt",
	"estonia":                  "Estonia",
	"ethiopia":                 "Ethiopia",
	"falkland_islands_malvinas": "Falkland Islands (Malvinas)",
	"faroe_islands":            "Faroe Islands",
	"fiji":                     "Fiji",
	"finland":                  "Finland",
	"france":                   "France",
	"french_polynesia":         "French Polynesia",
	"gabon":                    "Gabon",
	"georgia":                  "Georgia",
	"germany":                  "Germany",
	"ghana":                    "Ghana",
	"gibraltar":                "Gibraltar",
	"greece":                   "Greece",
	"greenland":                "Greenland",
	"hongkong":                 "Hong Kong",
	"hungary":                  "Hungary",
	"iceland":                  "Iceland",
	"india":                    "India",
	"indonesia":                "Indonesia",
	"iran":                     "Iran",
	"iraq":                     "Iraq",
	"ireland":                  "Ireland",
	"isle_of_man":              "Isle Of Man",
	"israel":                   "Israel",
	"italy":                    "Italy",
	"japan":                    "Japan",
	"jordan":                   "Jordan",
	"kazakhstan":               "Kazakhstan",
	"kenya":                    "Kenya",
	"kiribati":                 "Kiribati",
	"kuwait":                   "Kuwait",
	"latvia":                   "Latvia",
	"lebanon":                  "Lebanon",
	"leichtenstein":            "Leichtenstein",
	"lesotho":                  "Lesotho",
	"liberia":                  "Liberia",
	"libya":                    "Libya",
	"lithuania":                "Lithuania",
	"luxembourg":               "Luxembourg",
	"macau":                    "Macau",
	"macedonia":                "Macedonia",
	"malaysia":                 "Malaysia",
	"maldives":                 "Maldives",
	"malta":                    "Malta",
	"marshall_islands":         "Marshall Islands",
	"mauritius":                "Mauritius",
	"mexico":                   "Mexico",
	"midway_island":            "Midway Island",
	"moldova":                  "Moldova",
	"monaco":                   "Monaco",
	"morocco":                  "Morocco",
	"mozambique":               "Mozambique",
	"myanmar_burma":            "Myanmar (Burma)",
	"namibia":                  "Namibia",
	"nepal":                    "Nepal",
	"netherlands":              "Netherlands",
	"netherlands_antilles":     "Netherlands Antilles",
	"new_caledonia":            "New Caledonia",
	"new_zealand":              "New Zealand",
	"nigeria":                  "Nigeria",
	"norway":                   "Norway",
	"oman":                     "Oman",
	"pacific_islands":          "Pacific Islands",
	"pakistan":                 "Pakistan",
	"palau":                    "Palau",
	"panama":                   "Panama",
	"papua_new_guinea":         "Papua New Guinea",
	"peru":                     "Peru",
	"poland":                   "Poland",
	"portugal":                 "Portugal",
	"puerto_rico":              "Puerto Rico",
	"qatar":                    "Qatar",
	"reunion":                  "Reunion",
	"romania":                  "Romania",
	"russian_federation_ussr":  "Russian Federation / Ussr",
	"saint_lucia":              "Saint Lucia",
	"san_marino":               "San Marino",
	"saudi_arabia":             "Saudi Arabia",
	"senegal":                  "Senegal",
	"seychelles":               "Seychelles",
	"singapore":                "Singapore",
	"sint_maarten":             "Sint Maarten",
	"slovak_republic":          "Slovak Republic",
	"slovenia":                 "Slovenia",
	"solomon_islands":          "Solomon Islands",
	"south_africa":             "South Africa",
	"south_korea":              "South Korea",
	"spain":                    "Spain",
	"sri_lanka":                "Sri Lanka",
	"sudan":                    "Sudan",
	"sweden":                   "Sweden",
	"switzerland":              "Switzerland",
	"syria":                    "Syria",
	"taiwan_roc":               "Taiwan",
	"thailand":                 "Thailand",
	"trinidad_and_tobago":      "Trinidad And Tobago",
	"tunisia":                  "Tunisia",
	"turkey":                   "Turkey",
	"turks_and_caicos_islands": "Turks And Caicos Islands",
	"uganda":                   "Uganda",
	"ukraine":                  "Ukraine",
	"united_arab_emirates":     "United Arab Emirates",
	"united_kingdom":           "United Kingdom",
	"united_republic_of_tanzania": "United Republic Of Tanzania",
	"united_states_of_america": "United States Of America",
	"uruguay":                  "Uruguay",
	"uzbekistan":               "Uzbekistan",
	"vanuatu":                  "Vanuatu",
	"venezuela":                "Venezuela",
	"vietnam":                  "Vietnam",
	"wake_island":              "Wake Island",
	"yemen":                    "Yemen",
	"yugoslavia_serbia_montenegro": "Yugoslavia (Serbia & Montenegro)",
	"zambia":                   "Zambia",
}
