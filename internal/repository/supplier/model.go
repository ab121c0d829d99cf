package repository

import "time"

type SupplierEntity struct {
	ID        string     `bson:"_id"`
	LegalName string     `bson:"razaoSocial"`
	TradeName string     `bson:"nomeFantasia,omitempty"`
	TaxID     string     `bson:"cnpj"`
	Status    string     `bson:"status"`
	Note      string     `bson:"observacao,omitempty"`
	CreatedAt *time.Time `bson:"dataCadastro,omitempty"`
}
