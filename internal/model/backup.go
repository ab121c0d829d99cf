package model

// Collection names of the backup set, in the order every multi-collection
// artifact is produced.
const (
	CollectionCustomers    = "clientes"
	CollectionSuppliers    = "fornecedores"
	CollectionParts        = "pecas"
	CollectionTransactions = "movimentacoes"
)

// BackupCollections returns a fresh copy of the ordered backup set.
func BackupCollections() []string {
	return []string{
		CollectionCustomers,
		CollectionSuppliers,
		CollectionParts,
		CollectionTransactions,
	}
}

func KnownCollection(name string) bool {
	for _, c := range BackupCollections() {
		if c == name {
			return true
		}
	}
	return false
}

// RawDocument is one stored record with the identifier split from the body.
// The backup pipeline moves records in this shape, without entity typing.
type RawDocument struct {
	ID   string
	Body map[string]any
}

// DocumentWrite is one pending upsert of an atomic restore batch.
type DocumentWrite struct {
	Collection string
	ID         string
	Body       map[string]any
}

// BackupFile is a produced artifact ready for download.
type BackupFile struct {
	Name string
	MIME string
	Data []byte
}

// ImportSummary is the aggregate outcome of a CSV import. Partial success is
// the normal case; Added+Skipped always equals the number of parsed rows.
type ImportSummary struct {
	Added   int
	Skipped int
}
