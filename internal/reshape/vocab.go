package reshape

// Recognized category columns of the wide source tables. Columns listed
// here but absent from a given file are skipped during melting; the
// source schemas have grown over time and older exports carry fewer
// columns.

// EducationColumns are the educational-attainment count columns.
var EducationColumns = []string{
	"college_graduate", "college_level",
	"elementary_graduate", "elementary_level",
	"high_school_graduate", "high_school_level",
	"no_formal_education", "non-formal_education",
	"not_reported_/_no_response", "not_of_schooling_age",
	"post_graduate", "post_graduate_level",
	"vocational_graduate", "vocational_level",
}

// OccupationColumns are the occupation count columns.
var OccupationColumns = []string{
	"administrative_workers", "clerical_workers",
	"equipment_operators,_&_laborers", "housewives",
	"members_of_the_armed_forces", "minors_(below_7_years_old)",
	"no_occupation_reported", "out_of_school_youth",
	"prof'l,_tech'l,_&_related_workers", "refugees",
	"retirees", "sales_workers", "service_workers",
	"students", "workers_&_fishermen",
}

// SexColumns are the gender total columns of the sex pivot table.
var SexColumns = []string{"male", "female"}
