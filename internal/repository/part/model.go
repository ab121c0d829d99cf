package repository

import "time"

type PartEntity struct {
	ID          string     `bson:"_id"`
	Code        string     `bson:"codigoPeca"`
	Description string     `bson:"descricao"`
	Status      string     `bson:"status"`
	Note        string     `bson:"observacao,omitempty"`
	CreatedAt   *time.Time `bson:"dataCadastro,omitempty"`
}
