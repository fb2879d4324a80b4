package cif

import (
	"regexp"

	"github.com/nikandfor/errors"
)

var (
	// ErrBlockRequired is returned by Block when a file has several data
	// blocks and no header was given.
	ErrBlockRequired = errors.New("data block header required for a file with several data blocks")

	// ErrNoBlock is returned by Block when no data block has the header given.
	ErrNoBlock = errors.New("no such data block")

	// ErrMissingItem is returned by Lookup for a data name not in the block.
	ErrMissingItem = errors.New("data item missing")

	// ErrNotNumerical is returned by Numerical for a malformed number.
	ErrNotNumerical = errors.New("invalid numerical value")
)

// matchNumerical matches a number with an optional standard uncertainty in
// parentheses, e.g. "4.9900(2)".
var matchNumerical = regexp.MustCompile(`^([+-]?[0-9]+\.?[0-9]*)(?:\([0-9]+\))?$`)

// numericalNames lists the data names whose values are numbers, possibly
// followed by a standard uncertainty. Lookup strips the uncertainty from
// them.
var numericalNames = map[string]bool{
	"atom_site_fract_x":               true,
	"atom_site_fract_y":               true,
	"atom_site_fract_z":               true,
	"atom_site_B_iso_or_equiv":        true,
	"atom_site_aniso_U_11":            true,
	"atom_site_aniso_U_12":            true,
	"atom_site_aniso_U_13":            true,
	"atom_site_aniso_U_22":            true,
	"atom_site_aniso_U_23":            true,
	"atom_site_aniso_U_33":            true,
	"atom_site_attached_hydrogens":    true,
	"atom_site_occupancy":             true,
	"atom_site_symmetry_multiplicity": true,
	"atom_type_oxidation_number":      true,
	"atom_type_radius_bond":           true,
	"cell_angle_alpha":                true,
	"cell_angle_beta":                 true,
	"cell_angle_gamma":                true,
	"cell_formula_units_Z":            true,
	"cell_length_a":                   true,
	"cell_length_b":                   true,
	"cell_length_c":                   true,
	"cell_volume":                     true,
	"citation_journal_volume":         true,
	"citation_page_first":             true,
	"citation_page_last":              true,
	"citation_year":                   true,
	"cod_database_code":               true,
	"database_code_ICSD":              true,
	"diffrn_ambient_temperature":      true,
	"exptl_crystal_density_diffrn":    true,
	"exptl_crystal_density_meas":      true,
	"refine_ls_R_factor_all":          true,
	"refine_ls_R_factor_gt":           true,
	"refine_ls_wR_factor_gt":          true,
	"symmetry_Int_Tables_number":      true,
	"symmetry_equiv_pos_site_id":      true,
}

// Block returns the data block with the header given. A file with a single
// data block returns it whatever the header.
func (cif *CIF) Block(header string) (*DataBlock, error) {
	switch {
	case len(cif.Blocks) == 1:
		for _, b := range cif.Blocks {
			return b, nil
		}
	case len(cif.Blocks) > 1 && header == "":
		return nil, ErrBlockRequired
	}
	b, ok := cif.Blocks[header]
	if !ok {
		return nil, errors.Wrap(ErrNoBlock, "data block %q", header)
	}
	return b, nil
}

// LoadDataBlock loads the file at path and returns one of its data blocks,
// as chosen by Block.
func LoadDataBlock(path, header string) (*DataBlock, error) {
	cif, err := Load(path)
	if err != nil {
		return nil, err
	}
	return cif.Block(header)
}

// Lookup returns the values of the data names given, in the same order.
// Values of well known numerical data names, such as "cell_length_a", have
// their standard uncertainty removed; see Numerical.
func (b *DataBlock) Lookup(names ...string) ([]Value, error) {
	vals := make([]Value, 0, len(names))
	for _, name := range names {
		v, ok := b.Items[name]
		if !ok {
			return nil, errors.Wrap(ErrMissingItem, "%q in data block %q", name, b.Header)
		}
		if numericalNames[name] {
			var err error
			if v, err = numericalValue(name, v); err != nil {
				return nil, err
			}
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func numericalValue(name string, v Value) (Value, error) {
	if !v.IsLoop() {
		num, err := Numerical(name, v.String())
		if err != nil {
			return nil, err
		}
		return AsValue(num), nil
	}
	strs := v.Strings()
	nums := make([]string, len(strs))
	for i, s := range strs {
		num, err := Numerical(name, s)
		if err != nil {
			return nil, err
		}
		nums[i] = num
	}
	return AsValue(nums), nil
}

// Numerical returns the number in value with any standard uncertainty
// removed, so "4.9900(2)" becomes "4.9900". The data name is only used in
// the error returned for a value that is not a number.
func Numerical(name, value string) (string, error) {
	m := matchNumerical.FindStringSubmatch(value)
	if m == nil {
		return "", errors.Wrap(ErrNotNumerical, "%v: %v", name, value)
	}
	return m[1], nil
}
