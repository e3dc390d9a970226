package names

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"College", "college"},
		{"Prof'l, Tech'l, & Related Workers", "prof_l_tech_l_related_workers"},
		{"Not Reported / No Response", "not_reported_no_response"},
		{"  UNITED ARAB EMIRATES  ", "united_arab_emirates"},
		{"minors (below 7 years old)", "minors_below_7_years_old"},
		{"___", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"Prof'l, Tech'l, & Related Workers", "college", "out-of-school youth"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestDisplayKnownKeys(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"united_arab_emirates", "United Arab Emirates"},
		{"prof_l_tech_l_related_workers", "Professional, Technical & Related Workers"},
		{"not_reported_no_response", "Not Reported / No Response"},
	}
	for _, tc := range cases {
		if got := Display(tc.key); got != tc.want {
			t.Errorf("Display(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestDisplayFallback(t *testing.T) {
	if got := Display("some_unknown_category"); got != "Some Unknown Category" {
		t.Errorf("Display fallback = %q, want title case", got)
	}
	if got := Display("workers_&_fishermen"); got != "Workers And Fishermen" {
		t.Errorf("Display fallback = %q, want ampersand expanded", got)
	}
}

func TestDisplayIsTotal(t *testing.T) {
	for _, key := range []string{"x", "a_b_c", "college", "zzz_9"} {
		if Display(key) == "" {
			t.Errorf("Display(%q) returned empty string", key)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("post_graduate_level"); got != "Post Graduate Level" {
		t.Errorf("TitleCase = %q", got)
	}
	if got := TitleCase(""); got != "" {
		t.Errorf("TitleCase(\"\") = %q, want empty passthrough", got)
	}
}
