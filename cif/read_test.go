package cif

import (
	"errors"
	"flag"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var flagFixtures = ""

func init() {
	flag.StringVar(&flagFixtures, "fixtures", flagFixtures,
		"When set, every *.cif file in this directory must be read without error.")
}

func TestRead(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]map[string]interface{}
	}{
		{
			"data_A\n_cell_length_a 4.99\n_cell_length_b 4.99\n",
			map[string]map[string]interface{}{
				"A": {"cell_length_a": "4.99", "cell_length_b": "4.99"},
			},
		},
		{
			"data_x\nloop_\n_atom_site_label\n_atom_site_type\nCa1 Ca2+\nO1 O2-\n",
			map[string]map[string]interface{}{
				"x": {
					"atom_site_label": []string{"Ca1", "O1"},
					"atom_site_type":  []string{"Ca2+", "O2-"},
				},
			},
		},
		{
			"data_x\n_foo\n;\ntext line one\ntext line two\n;\n",
			map[string]map[string]interface{}{
				"x": {"foo": "text line one\ntext line two"},
			},
		},
		{
			"_no_block_heading 1\n",
			map[string]map[string]interface{}{},
		},
		{
			"data_x\r\n_a 'b c'\r\n",
			map[string]map[string]interface{}{
				"x": {"a": "b c"},
			},
		},
	}
	for _, test := range tests {
		cif, err := Read(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("Read(%q): %s", test.input, err)
			continue
		}
		if got := cif.Map(); !reflect.DeepEqual(got, test.want) {
			t.Errorf("Read(%q) mismatch:\n%v\n------------\n%v", test.input, got, test.want)
		}
	}
}

func TestReadLoopFollowedBySkippedLines(t *testing.T) {
	want := map[string]map[string]interface{}{
		"x": {"a": []string{"x"}, "b": []string{"y"}},
	}
	for _, input := range []string{
		"data_x\nloop_\n_a\n_b\nx y\n  # note\n",
		"data_x\nloop_\n_a\n_b\nx y\n_ z\n",
	} {
		cif, err := Read(strings.NewReader(input))
		if err != nil {
			t.Errorf("Read(%q): %s", input, err)
			continue
		}
		if got := cif.Map(); !reflect.DeepEqual(got, want) {
			t.Errorf("Read(%q) mismatch:\n%v\n------------\n%v", input, got, want)
		}
	}
}

func TestMapCopiesLoops(t *testing.T) {
	cif, err := Read(strings.NewReader("data_x\nloop_\n_a\n1\n2\n"))
	if err != nil {
		t.Fatal(err)
	}
	cif.Map()["x"]["a"].([]string)[0] = "changed"
	if got := cif.Blocks["x"].Get("a").Strings(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("Changing a loop from Map changed the data block: %q.", got)
	}
}

func TestReadSyntaxError(t *testing.T) {
	cif, err := Read(strings.NewReader("data_x\nloop_\n_a\n_b\n1 2\n3\n"))
	if cif != nil {
		t.Fatalf("Expected no data for an invalid file, but got %v.", cif.Map())
	}
	assertError(t, err, LoopArityMismatch,
		`Unmatched data values to data names in loop on line 6: "3"`)

	_, err = Read(strings.NewReader(""))
	assertError(t, err, EmptyInput, `Empty file on line 1: ""`)
}

func TestVersion(t *testing.T) {
	cif, err := Read(strings.NewReader("#\\#CIF_1.1\ndata_x\n_a 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cif.Version != "CIF_1.1" {
		t.Fatalf("Version mismatch. Should be 'CIF_1.1' but is '%s'.", cif.Version)
	}

	cif, err = Read(strings.NewReader("data_x\n_a 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cif.Version != "" {
		t.Fatalf("Expected no version, but got '%s'.", cif.Version)
	}
}

func TestDuplicateHeaders(t *testing.T) {
	input := "data_A\n_x 1\ndata_B\n_y 2\ndata_A\n_z 3\n"
	cif, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(cif.Headers(), want) {
		t.Fatalf("Headers mismatch. Should be %q but are %q.", want, cif.Headers())
	}
	if want := map[string]interface{}{"z": "3"}; !reflect.DeepEqual(cif.Map()["A"], want) {
		t.Fatalf("Data block 'A' mismatch:\n%v\n------------\n%v", cif.Map()["A"], want)
	}
}

func TestHeaderCaseIsKept(t *testing.T) {
	cif, err := Read(strings.NewReader("DATA_Calcite\n_a 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cif.Blocks["Calcite"]; !ok {
		t.Fatalf("Expected data block 'Calcite', but got %q.", cif.Headers())
	}
}

func TestLoad(t *testing.T) {
	cif, err := Load(filepath.Join("testdata", "calcite.cif"))
	if err != nil {
		t.Fatal(err)
	}
	if cif.Version != "CIF_1.1" {
		t.Fatalf("Version mismatch. Should be 'CIF_1.1' but is '%s'.", cif.Version)
	}
	block := cif.Blocks["calcite"]
	if block == nil {
		t.Fatalf("Expected data block 'calcite', but got %q.", cif.Headers())
	}
	if n := len(block.Items); n != 23 {
		t.Fatalf("Expected 23 data items, but got %d.", n)
	}

	names := block.Names()
	want := []string{"refine_special_details", "chemical_name_mineral", "chemical_formula_sum"}
	if !reflect.DeepEqual(names[:3], want) {
		t.Fatalf("Names mismatch. Should start with %q but are %q.", want, names)
	}
	if last := names[len(names)-1]; last != "atom_site_occupancy" {
		t.Fatalf("Expected last data name 'atom_site_occupancy', but got '%s'.", last)
	}

	details := "Hexagonal setting. Atomic positions taken from the\n" +
		"rhombohedral cell of the original study."
	if got := block.Get("refine_special_details").String(); got != details {
		t.Fatalf("Value mismatch. Should be '%s' but is '%s'.", details, got)
	}
	if got := block.Get("symmetry_space_group_name_H-M").String(); got != "R -3 c" {
		t.Fatalf("Value mismatch. Should be 'R -3 c' but is '%s'.", got)
	}
	if got := block.Get("publ_author_name").Strings(); !reflect.DeepEqual(got, []string{"Graf, D. L."}) {
		t.Fatalf("Value mismatch. Should be [Graf, D. L.] but is %q.", got)
	}
	wantX := []string{"0", "0", "0.2578(2)"}
	if got := block.Get("atom_site_fract_x").Strings(); !reflect.DeepEqual(got, wantX) {
		t.Fatalf("Value mismatch. Should be %q but is %q.", wantX, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cif, err := Load(filepath.Join("testdata", "no-such-file.cif"))
	if err == nil {
		t.Fatalf("Expected an error for a missing file, but got %v.", cif)
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		t.Fatalf("A missing file was reported as a syntax error: %s", err)
	}
}

func TestValidateFile(t *testing.T) {
	if err := ValidateFile(filepath.Join("testdata", "calcite.cif")); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFile(filepath.Join("testdata", "polymorphs.cif")); err != nil {
		t.Fatal(err)
	}

	tests := map[string]ErrorKind{
		"empty.cif":               EmptyInput,
		"missing_data_name.cif":   MissingDataName,
		"missing_data_value.cif":  MissingDataValue,
		"loop_arity.cif":          LoopArityMismatch,
		"unclosed_text_field.cif": UnclosedTextField,
	}
	for name, kind := range tests {
		err := ValidateFile(filepath.Join("testdata", "invalid", name))
		if !errors.Is(err, kind) {
			t.Errorf("%s: expected '%s', but got '%v'.", name, kind, err)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(strings.NewReader("data_x\n_a 1\n")); err != nil {
		t.Fatal(err)
	}
	err := Validate(strings.NewReader("data_x\n_a\n_b 1\n"))
	assertError(t, err, MissingDataValue, `Invalid inline data value on line 2: "_a"`)
}

func TestFixtures(t *testing.T) {
	if flagFixtures == "" {
		return
	}
	paths, err := filepath.Glob(filepath.Join(flagFixtures, "*.cif"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range paths {
		if _, err := Load(path); err != nil {
			t.Errorf("%s: %s", path, err)
		}
	}
}
