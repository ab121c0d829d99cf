package repository

import "time"

// Fixed identifiers inside the configuracoes collection.
const (
	companyDocID = "empresa"
	backupDocID  = "backup"
)

type CompanyEntity struct {
	ID      string `bson:"_id"`
	Name    string `bson:"nome,omitempty"`
	Address string `bson:"endereco,omitempty"`
	Phone   string `bson:"telefone,omitempty"`
	Email   string `bson:"email,omitempty"`
	Website string `bson:"site,omitempty"`
	TaxID   string `bson:"cnpj,omitempty"`
	LogoURL string `bson:"logoUrl,omitempty"`
}

type backupStateEntity struct {
	ID         string     `bson:"_id"`
	LastBackup *time.Time `bson:"lastBackup,omitempty"`
}
