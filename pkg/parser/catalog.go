package parser

// catalog tracks struct and enum names declared so far, so the parser can
// resolve Name{...} literals and Name.Variant references without a full
// symbol table.
type catalog struct {
	structs map[string][]string // struct name -> field names in declaration order
	enums   map[string]struct{}
}

func newCatalog() *catalog {
	return &catalog{
		structs: make(map[string][]string),
		enums:   make(map[string]struct{}),
	}
}

func (c *catalog) addStruct(name string, fields []string) {
	c.structs[name] = fields
}

func (c *catalog) addEnum(name string) {
	c.enums[name] = struct{}{}
}

func (c *catalog) isStruct(name string) bool {
	_, ok := c.structs[name]
	return ok
}

func (c *catalog) isEnum(name string) bool {
	_, ok := c.enums[name]
	return ok
}

// fieldOrder returns the declared field order for a struct, or nil.
func (c *catalog) fieldOrder(name string) []string {
	return c.structs[name]
}
