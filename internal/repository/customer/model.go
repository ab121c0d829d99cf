package repository

import "time"

type CustomerEntity struct {
	ID        string          `bson:"_id"`
	Name      string          `bson:"nomeRazaoSocial"`
	TradeName string          `bson:"apelidoFantasia,omitempty"`
	Type      CustomerTypeDoc `bson:"tipo"`
	Status    string          `bson:"status"`
	Note      string          `bson:"observacao,omitempty"`
	CreatedAt *time.Time      `bson:"dataCadastro,omitempty"`
}

type CustomerTypeDoc struct {
	Customer bool `bson:"cliente"`
	Mechanic bool `bson:"mecanico"`
}
