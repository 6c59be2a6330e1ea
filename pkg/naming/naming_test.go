package naming

import (
	"testing"
	"unicode"
)

func TestDefensiveName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "_empty"},
		{"hello", "hello"},
		{"Hello world", "Hello_space_world"},
		{"NOT_AVAILABLE", "NOT_AVAILABLE"},
		{"version 2.0", "version_space_2_period_0"},
		{"2.0", "_2_period_0"},
		{"order#123", "order_num_123"},
		{"application/json", "application_sol_json"},
		{"a-b", "a_hyphen_b"},
		{"{region}", "_lcub_region_rcub_"},
		{"c++", "c_plus__plus_"},
		{"100%", "_100_percnt_"},
		{"naïve", "naïve"},
		{"😀", "_x1F600_"},
		{"tab\there", "tab_x9_here"},
	}

	p := NewProjector(StrategyDefensive, nil)
	for _, test := range tests {
		result := p.Project(test.input, RoleTypeName)
		if result != test.expected {
			t.Errorf("Project(%q, RoleTypeName) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIdiomaticTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello world", "HelloWorld"},
		{"NOT_AVAILABLE", "NotAvailable"},
		{"version 2.0", "Version2_0"},
		{"HTTPProxy", "HTTPProxy"},
		{"hello", "Hello"},
		{"userId", "UserId"},
		{"API_KEY", "ApiKey"},
		{"{region}", "Region"},
		{"us-east-1", "UsEast1"},
		{"1.2.3", "_1_2_3"},
		{"v2.0.1", "V20_1"},
		{"_internal", "_Internal"},
		{"HTTP2", "HTTP2"},
	}

	p := NewProjector(StrategyIdiomatic, nil)
	for _, test := range tests {
		result := p.Project(test.input, RoleTypeName)
		if result != test.expected {
			t.Errorf("Project(%q, RoleTypeName) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIdiomaticMemberName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello world", "helloWorld"},
		{"HTTPProxy", "httpProxy"},
		{"URL", "url"},
		{"userId", "userId"},
		{"NOT_AVAILABLE", "notAvailable"},
		{"version 2.0", "version2_0"},
		{"API_KEY", "apiKey"},
		{"A", "a"},
		{"HTTP2", "http2"},
		{"_internal", "_internal"},
		{"__name", "__name"},
	}

	p := NewProjector(StrategyIdiomatic, nil)
	for _, test := range tests {
		result := p.Project(test.input, RoleMemberName)
		if result != test.expected {
			t.Errorf("Project(%q, RoleMemberName) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIdiomaticFallsBackToDefensive(t *testing.T) {
	// One unsupported character disqualifies the whole name, so both
	// strategies must agree on these inputs.
	inputs := []string{
		"order#123",
		"what?",
		"a,b",
		"semi;colon",
		"per%cent",
		"",
		"---",
		"😀",
	}

	idiomatic := NewProjector(StrategyIdiomatic, nil)
	defensive := NewProjector(StrategyDefensive, nil)
	for _, in := range inputs {
		for _, role := range []Role{RoleTypeName, RoleMemberName, RoleEnumCase, RoleContentType} {
			got := idiomatic.Project(in, role)
			want := defensive.Project(in, role)
			if got != want {
				t.Errorf("Project(%q, role %d): idiomatic %q != defensive %q", in, role, got, want)
			}
		}
	}
}

func TestEnumCaseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"prod", "Prod"},
		{"staging", "Staging"},
		{"us-east-1", "UsEast1"},
		{"NOT_AVAILABLE", "NotAvailable"},
		{"HTTPProxy", "HTTPProxy"},
	}

	p := NewProjector(StrategyIdiomatic, nil)
	for _, test := range tests {
		result := p.Project(test.input, RoleEnumCase)
		if result != test.expected {
			t.Errorf("Project(%q, RoleEnumCase) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestContentTypeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"application/json", "applicationJson"},
		{"application/x-www-form-urlencoded", "applicationXWwwFormUrlencoded"},
		{"text/html", "textHtml"},
		{"application/vnd.api+json", "applicationVndApiJson"},
	}

	p := NewProjector(StrategyIdiomatic, nil)
	for _, test := range tests {
		result := p.ContentTypeToken(test.input)
		if result != test.expected {
			t.Errorf("ContentTypeToken(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestOverridesWinOverEveryStrategy(t *testing.T) {
	overrides := map[string]string{
		"order#123":   "Order123",
		"Hello world": "Greeting",
	}

	for _, strategy := range []Strategy{StrategyDefensive, StrategyIdiomatic} {
		p := NewProjector(strategy, overrides)
		for raw, want := range overrides {
			for _, role := range []Role{RoleTypeName, RoleMemberName, RoleEnumCase, RoleContentType} {
				if got := p.Project(raw, role); got != want {
					t.Errorf("strategy %s: Project(%q, role %d) = %q, expected override %q", strategy, raw, role, got, want)
				}
			}
		}
	}
}

func TestOverridesCopiedAtConstruction(t *testing.T) {
	overrides := map[string]string{"a": "b"}
	p := NewProjector(StrategyDefensive, overrides)
	overrides["a"] = "mutated"
	if got := p.Project("a", RoleTypeName); got != "b" {
		t.Errorf("Project(\"a\") = %q after caller mutation, expected %q", got, "b")
	}
}

// awkwardInputs exercises the projector's totality guarantee: every byte
// sequence must come out as a legal, non-empty identifier.
var awkwardInputs = []string{
	"",
	" ",
	"_",
	"___",
	"-",
	"123",
	"0",
	"version 2.0",
	"order#123",
	"{a}{b}",
	"a//b",
	"ä ö ü",
	"日本語",
	"mixed 日本語 and ascii",
	"\x00\x01",
	"😀🎉",
	"a\nb",
	"shouty SNAKE_case Mix",
}

func TestProjectionAlwaysLegal(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDefensive, StrategyIdiomatic} {
		p := NewProjector(strategy, nil)
		for _, in := range awkwardInputs {
			for _, role := range []Role{RoleTypeName, RoleMemberName, RoleEnumCase, RoleContentType} {
				out := p.Project(in, role)
				if !isLegalIdentifier(out) {
					t.Errorf("strategy %s: Project(%q, role %d) = %q is not a legal identifier", strategy, in, role, out)
				}
			}
		}
	}
}

func TestProjectionIsDeterministic(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDefensive, StrategyIdiomatic} {
		p := NewProjector(strategy, nil)
		for _, in := range awkwardInputs {
			for _, role := range []Role{RoleTypeName, RoleMemberName, RoleEnumCase, RoleContentType} {
				first := p.Project(in, role)
				second := p.Project(in, role)
				if first != second {
					t.Errorf("strategy %s: Project(%q, role %d) not deterministic: %q then %q", strategy, in, role, first, second)
				}
			}
		}
	}
}

func TestDefensivePreservesLetterCase(t *testing.T) {
	// Escape tokens add letters of their own ("_hyphen_"), so the check is
	// that the input's letters survive, in order and with their case, as a
	// subsequence of the output's letters.
	inputs := []string{"NOT_AVAILABLE", "HelloWorld", "hello World", "mIxEd-CaSe", "ÄÖü"}
	p := NewProjector(StrategyDefensive, nil)
	for _, in := range inputs {
		out := p.Project(in, RoleMemberName)
		if !isSubsequence(lettersOf(in), lettersOf(out)) {
			t.Errorf("Project(%q) = %q changed the case of an original letter", in, out)
		}
	}
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}

func TestAccentFoldingIsOptIn(t *testing.T) {
	plain := NewProjector(StrategyIdiomatic, nil)
	folding := NewProjector(StrategyIdiomatic, nil, WithAccentFolding())

	if got := plain.Project("configuração", RoleTypeName); got != "Configuração" {
		t.Errorf("without folding: got %q, expected %q", got, "Configuração")
	}
	if got := folding.Project("configuração", RoleTypeName); got != "Configuracao" {
		t.Errorf("with folding: got %q, expected %q", got, "Configuracao")
	}
	if got := folding.Project("café au lait", RoleMemberName); got != "cafeAuLait" {
		t.Errorf("with folding: got %q, expected %q", got, "cafeAuLait")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{"", StrategyDefensive, false},
		{"defensive", StrategyDefensive, false},
		{"idiomatic", StrategyIdiomatic, false},
		{"Idiomatic", "", true},
		{"swifty", "", true},
	}

	for _, test := range tests {
		got, err := ParseStrategy(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q) expected error, got %q", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStrategy(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseStrategy(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func isLegalIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func lettersOf(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
