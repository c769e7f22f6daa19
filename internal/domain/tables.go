package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&AuditLog{},
	// Directory (read-only for the catalog service)
	&Business{},
	&Owner{},
	// Catalog
	&Product{},
	&Category{},
	&Tag{},
	&ProductTag{},
	&CategoryTag{},
}
