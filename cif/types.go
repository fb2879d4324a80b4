package cif

// CIF represents an entire CIF file.
type CIF struct {
	// Version, when present in the source file, contains the version of the
	// specification that the file was generated for. e.g., "CIF_1.1".
	Version string

	// Blocks maps data block headers to corresponding data blocks. A header
	// is the name following "data_", with its case preserved. If a header is
	// repeated, the last block with that header is kept.
	Blocks map[string]*DataBlock

	headers []string
}

// Headers returns the data block headers in the order they first appear in
// the file.
func (cif *CIF) Headers() []string {
	headers := make([]string, len(cif.headers))
	copy(headers, cif.headers)
	return headers
}

// Map flattens the file into data block headers mapped to data names mapped
// to values. Each value is a string, or a []string for data declared in a
// loop. Loop columns are copies, so changing them leaves the blocks alone.
func (cif *CIF) Map() map[string]map[string]interface{} {
	m := make(map[string]map[string]interface{}, len(cif.Blocks))
	for header, b := range cif.Blocks {
		m[header] = b.rawItems()
	}
	return m
}

func (cif *CIF) add(b *DataBlock) {
	if _, ok := cif.Blocks[b.Header]; !ok {
		cif.headers = append(cif.headers, b.Header)
	}
	cif.Blocks[b.Header] = b
}

// DataBlock represents a data block in a CIF file.
type DataBlock struct {
	// The name following "data_" in the block heading.
	Header string

	// Items maps data names (without their leading underscore) to values.
	// Names declared in a loop map to a column of values; every column of
	// one loop has the same length.
	//
	// For example, if a "loop_" introduces the data name "_atom_site_label"
	// with values "Ca1" and "O1", then:
	//
	//	labels := block.Items["atom_site_label"].Strings()
	Items map[string]Value

	names []string
}

func newDataBlock(header string) *DataBlock {
	return &DataBlock{
		Header: header,
		Items:  make(map[string]Value, 10),
	}
}

// Names returns the data names of the block in the order they were
// extracted: semicolon text fields first, then inline items, then loops.
func (b *DataBlock) Names() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Get returns the value of the data name given, or nil when the block has
// no such item.
func (b *DataBlock) Get(name string) Value {
	return b.Items[name]
}

// set stores a data item. A name seen before is overwritten but keeps its
// original position.
func (b *DataBlock) set(name string, v Value) {
	if _, ok := b.Items[name]; !ok {
		b.names = append(b.names, name)
	}
	b.Items[name] = v
}

func (b *DataBlock) rawItems() map[string]interface{} {
	m := make(map[string]interface{}, len(b.Items))
	for name, v := range b.Items {
		if v.IsLoop() {
			strs := make([]string, len(v.Strings()))
			copy(strs, v.Strings())
			m[name] = strs
			continue
		}
		m[name] = v.Raw()
	}
	return m
}
