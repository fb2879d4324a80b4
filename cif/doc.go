/*
Package cif reads Crystallographic Information Files (CIF), the line-oriented
tag/value format used to exchange crystal structure data.

Reading happens in two passes. The whole file is first checked line by line,
and the first syntax error is reported as a *ParseError carrying the line
number and the offending line:

	Unmatched data values to data names in loop on line 5: "Ca1"

Only a file without errors has its data extracted. The data is organized by
data block, then by data name (without the leading underscore). Data
declared inside a "loop_" is stored as a column of values, one per row:

	f, err := cif.Load("calcite.cif")
	...
	block := f.Blocks["calcite"]
	block.Items["cell_length_a"].String()     // "4.9900(2)"
	block.Items["atom_type_symbol"].Strings() // ["Ca2+", "C4+", "O2-"]

Values are kept as the text found in the file, with surrounding quotes
removed. Only syntax is checked; the names and types of data items are not.
*/
package cif
