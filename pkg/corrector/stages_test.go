package corrector

import (
	"testing"

	"github.com/hazyhaar/corrector-es/pkg/lexicon"
	"github.com/hazyhaar/corrector-es/pkg/numeral"
)

func testConverter(t *testing.T) *numeral.Converter {
	t.Helper()
	num, err := numeral.NewConverter(lexicon.Default().Numerals)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return num
}

func TestSanitizeStage(t *testing.T) {
	tests := []struct {
		in, want string
		cats     []Category
	}{
		{"hola mundo", "hola mundo", nil},
		{"hola   mundo\n\tadiós", "hola mundo adiós", []Category{CategoryMultipleSpaces}},
		{"precio 5€ #hoy", "precio 5 hoy", []Category{CategorySpecialChars}},
		{"a  b ©", "a b ", []Category{CategoryMultipleSpaces, CategorySpecialChars}},
		{"¿Qué? ¡Sí! (años) [ñandú] \"x\" 'y' a_b-c;d:e", "¿Qué? ¡Sí! (años) [ñandú] \"x\" 'y' a_b-c;d:e", nil},
		{"fecha 16/09/1810", "fecha 16091810", []Category{CategorySpecialChars}},
		// e + combining acute is composed, not stripped.
		{"cafe\u0301", "café", nil},
	}
	for _, tt := range tests {
		log := newChangeLog()
		got := sanitizeStage().run(tt.in, log)
		if got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if log.Len() != len(tt.cats) {
			t.Errorf("sanitize(%q) records = %v, want %v", tt.in, log.Changes(), tt.cats)
			continue
		}
		for i, c := range log.Changes() {
			if c.Category != tt.cats[i] {
				t.Errorf("sanitize(%q) record %d = %q, want %q", tt.in, i, c.Category, tt.cats[i])
			}
		}
	}
}

func TestAbbreviationStage(t *testing.T) {
	st := abbreviationStage(lexicon.Default().Abbreviations)
	tests := []struct {
		in, want string
	}{
		{"El Dr. Pérez", "El Doctor Pérez"},
		{"la casa.", "la casa."},
		{"la casa. a. C. y p. ej. etc.", "la casa. antes de Cristo y por ejemplo etcétera"},
		{"Etapa Olmeca I", "Etapa Olmeca uno"},
		{"Etapa Olmeca II", "Etapa Olmeca dos"},
		{"(1500-1200 a. C.)", "(mil quinientos-mil doscientos antes de Cristo)"},
		{"entre el 1500 a. C. y el 400 a. C.", "entre el mil quinientos antes de Cristo y el cuatrocientos antes de Cristo"},
		{"INAHS", "INAHS"},
		{"Meeeexico", "México"},
		{"Ida", "Ida"},
	}
	for _, tt := range tests {
		if got := st.run(tt.in, newChangeLog()); got != tt.want {
			t.Errorf("abbreviations(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAbbreviationStage_Records(t *testing.T) {
	st := abbreviationStage(lexicon.Default().Abbreviations)
	log := newChangeLog()
	in := "el INAH y el INAH con el Dr. Ruiz y el Dr. Soto"
	out := st.run(in, log)

	var acronyms, abbrs, aggregates int
	for _, c := range log.Changes() {
		switch c.Category {
		case CategoryAcronym:
			acronyms++
		case CategoryAbbreviation:
			abbrs++
		case CategoryAbbreviations:
			aggregates++
			if c.Before != in || c.After != out {
				t.Errorf("aggregate = %+v", c)
			}
		}
	}
	// One acronym record per key, one abbreviation record per occurrence.
	if acronyms != 1 || abbrs != 2 || aggregates != 1 {
		t.Errorf("acronyms=%d abbreviations=%d aggregates=%d, want 1 2 1", acronyms, abbrs, aggregates)
	}
}

func TestDateStage(t *testing.T) {
	num := testConverter(t)
	st := dateStage(num, numberStage(num))
	tests := []struct {
		in, want string
	}{
		{"28-02-2024", "veintiocho de febrero de dos mil veinticuatro"},
		{"30-02-2024", "30-02-2024"},
		{"29-02-2023", "29-02-2023"},
		{"29-02-2024", "veintinueve de febrero de dos mil veinticuatro"},
		{"16/09/1810", "dieciséis de septiembre de mil ochocientos diez"},
		{"31/12/1999", "treinta y uno de diciembre de mil novecientos noventa y nueve"},
		{"1-1-2000", "uno de enero de dos mil"},
		{"1/1/2150", "uno de enero de dos mil 150"},
		{"5-13-2020", "5-13-2020"},
		{"00-01-2020", "00-01-2020"},
		{"123-01-2020", "123-01-2020"},
		{"el año 1521", "el año mil quinientos veintiuno"},
		{"el año 800", "el año ochocientos"},
		{"el año 15210", "el año 15210"},
		{"el daño 123", "el daño 123"},
	}
	for _, tt := range tests {
		if got := st.run(tt.in, newChangeLog()); got != tt.want {
			t.Errorf("dates(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateStage_Records(t *testing.T) {
	num := testConverter(t)
	st := dateStage(num, numberStage(num))

	log := newChangeLog()
	st.run("30-02-2024", log)
	if log.Len() != 0 {
		t.Errorf("invalid date logged %v", log.Changes())
	}

	log = newChangeLog()
	st.run("el 28-02-2024 y el año 1521", log)
	want := []Category{CategoryDate, CategoryNumber, CategoryNumbers, CategoryDates}
	got := log.Changes()
	if len(got) != len(want) {
		t.Fatalf("records = %v, want categories %v", got, want)
	}
	for i := range want {
		if got[i].Category != want[i] {
			t.Errorf("record %d = %q, want %q", i, got[i].Category, want[i])
		}
	}
	if got[0].Before != "28-02-2024" {
		t.Errorf("date record before = %q", got[0].Before)
	}
}

func TestNumberStage(t *testing.T) {
	st := numberStage(testConverter(t))
	tests := []struct {
		in, want string
	}{
		{"en 1810", "en mil ochocientos diez"},
		{"en 1821", "en mil ochocientos veintiuno"},
		{"en 2100", "en dos mil cien"},
		{"en 2024", "en dos mil veinticuatro"},
		{"capítulo IV", "capítulo cuatro"},
		{"capítulo IX", "capítulo nueve"},
		{"capítulo XIV", "capítulo catorce"},
		{"siglo CL", "siglo CL"},
		{"MMXXIV", "MMXXIV"},
		{"Ivan", "Ivan"},
		{"16 de septiembre", "dieciséis de septiembre"},
		{"57 años", "cincuenta y siete años"},
		{"22 años", "veintidos años"},
		{"Etapa XXI", "Etapa veinte y uno"},
		{"515 pesos", "quinientos quince pesos"},
		{"100 pesos", "cien pesos"},
		{"123456 pesos", "123456 pesos"},
		{"costó 3.5 o 1,5", "costó 3.5 o 1,5"},
		{"1500, 1200", "mil quinientos, mil doscientos"},
		{"30-02-2024", "30-02-2024"},
		{"12345", "12345"},
		{"0000", "cero"},
	}
	for _, tt := range tests {
		if got := st.run(tt.in, newChangeLog()); got != tt.want {
			t.Errorf("numbers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumberStage_Records(t *testing.T) {
	st := numberStage(testConverter(t))
	log := newChangeLog()
	st.run("en 1810 y 16 con IV", log)

	var tokens, aggregates int
	for _, c := range log.Changes() {
		switch c.Category {
		case CategoryNumber:
			tokens++
		case CategoryNumbers:
			aggregates++
		}
	}
	if tokens != 3 || aggregates != 1 {
		t.Errorf("tokens=%d aggregates=%d, want 3 1", tokens, aggregates)
	}

	log = newChangeLog()
	st.run("sin números", log)
	if log.Len() != 0 {
		t.Errorf("unchanged text logged %v", log.Changes())
	}
}

func TestSpellingStage(t *testing.T) {
	lex := lexicon.Default()
	st := spellingStage(lex.SpecialCases, lex.Dictionary(), DefaultCutoff)
	tests := []struct {
		in, want string
	}{
		{"los anios", "los años"},
		{"ke", "que"},
		{"el pais", "el país"},
		{"Ke dijo", "Ke dijo"},
		{"la revolucon social", "la revolución social"},
		{"REVOLUCON", "REVOLUCON"},
		{"Revolucon", "Revolucon"},
		{"la independensia", "la independencia"},
		{"el ejercito", "el ejército"},
		{"en el Golfo", "en el Golfo"},
		{"xyzzy", "xyzzy"},
		{"de la", "de la"},
	}
	for _, tt := range tests {
		if got := st.run(tt.in, newChangeLog()); got != tt.want {
			t.Errorf("spelling(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpellingStage_Records(t *testing.T) {
	lex := lexicon.Default()
	st := spellingStage(lex.SpecialCases, lex.Dictionary(), DefaultCutoff)
	log := newChangeLog()
	st.run("ke ke revolucon revolucon Golfo", log)

	want := []Change{
		{CategorySpecialCase, "ke", "que"},
		{CategorySpecialCase, "Golfo", "Golfo"},
		{CategoryOrthography, "revolucon", "revolución"},
		{CategoryOrthography, "revolucon", "revolución"},
		{CategorySpellingOverview, "ke ke revolucon revolucon Golfo", "que que revolución revolución Golfo"},
	}
	got := log.Changes()
	if len(got) != len(want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSpellingStage_IdentitySpecialCase(t *testing.T) {
	lex := lexicon.Default()
	st := spellingStage(lex.SpecialCases, lex.Dictionary(), DefaultCutoff)
	log := newChangeLog()
	if got := st.run("en el Golfo", log); got != "en el Golfo" {
		t.Fatalf("spelling = %q", got)
	}
	want := []Change{{CategorySpecialCase, "Golfo", "Golfo"}}
	if got := log.Changes(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("records = %v, want %v", got, want)
	}
}
