package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/chwpym/autoreturns/internal/config"
	"github.com/chwpym/autoreturns/internal/model"
	customerrepo "github.com/chwpym/autoreturns/internal/repository/customer"
	documentrepo "github.com/chwpym/autoreturns/internal/repository/document"
	partrepo "github.com/chwpym/autoreturns/internal/repository/part"
	settingsrepo "github.com/chwpym/autoreturns/internal/repository/settings"
	supplierrepo "github.com/chwpym/autoreturns/internal/repository/supplier"
	transactionrepo "github.com/chwpym/autoreturns/internal/repository/transaction"
	backupservice "github.com/chwpym/autoreturns/internal/service/backup"
	companyservice "github.com/chwpym/autoreturns/internal/service/company"
	customerservice "github.com/chwpym/autoreturns/internal/service/customer"
	partservice "github.com/chwpym/autoreturns/internal/service/part"
	supplierservice "github.com/chwpym/autoreturns/internal/service/supplier"
	transactionservice "github.com/chwpym/autoreturns/internal/service/transaction"
	backupv1 "github.com/chwpym/autoreturns/internal/transport/http/backup/v1"
	companyv1 "github.com/chwpym/autoreturns/internal/transport/http/company/v1"
	customerv1 "github.com/chwpym/autoreturns/internal/transport/http/customer/v1"
	partv1 "github.com/chwpym/autoreturns/internal/transport/http/part/v1"
	supplierv1 "github.com/chwpym/autoreturns/internal/transport/http/supplier/v1"
	transactionv1 "github.com/chwpym/autoreturns/internal/transport/http/transaction/v1"
	"github.com/chwpym/autoreturns/pkg/closer"
)

const settingsCollectionName = "configuracoes"

// SettingsRepository serves both the company profile and the backup marker;
// one mongo collection backs the two concerns.
type SettingsRepository interface {
	companyservice.SettingsRepository
	backupservice.BackupStateRepository
}

type di struct {
	mongo    *mongo.Client
	database *mongo.Database

	customerRepository    customerservice.CustomerRepository
	supplierRepository    supplierservice.SupplierRepository
	partRepository        partservice.PartRepository
	transactionRepository transactionservice.TransactionRepository
	settingsRepository    SettingsRepository
	documentRepository    backupservice.DocumentRepository

	customerService    customerv1.CustomerService
	supplierService    supplierv1.SupplierService
	partService        partv1.PartService
	transactionService transactionv1.TransactionService
	companyService     companyv1.CompanyService
	backupService      backupv1.BackupService

	router chi.Router
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Database(ctx context.Context) *mongo.Database {
	if d.database == nil {
		d.database = d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName())

		if err := ensureIndexes(ctx, d.database); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.database
}

func (d *di) CustomerRepository(ctx context.Context) customerservice.CustomerRepository {
	if d.customerRepository == nil {
		d.customerRepository = customerrepo.NewCustomerRepository(
			d.Database(ctx).Collection(model.CollectionCustomers),
		)
	}

	return d.customerRepository
}

func (d *di) SupplierRepository(ctx context.Context) supplierservice.SupplierRepository {
	if d.supplierRepository == nil {
		d.supplierRepository = supplierrepo.NewSupplierRepository(
			d.Database(ctx).Collection(model.CollectionSuppliers),
		)
	}

	return d.supplierRepository
}

func (d *di) PartRepository(ctx context.Context) partservice.PartRepository {
	if d.partRepository == nil {
		d.partRepository = partrepo.NewPartRepository(
			d.Database(ctx).Collection(model.CollectionParts),
		)
	}

	return d.partRepository
}

func (d *di) TransactionRepository(ctx context.Context) transactionservice.TransactionRepository {
	if d.transactionRepository == nil {
		d.transactionRepository = transactionrepo.NewTransactionRepository(
			d.Database(ctx).Collection(model.CollectionTransactions),
		)
	}

	return d.transactionRepository
}

func (d *di) SettingsRepository(ctx context.Context) SettingsRepository {
	if d.settingsRepository == nil {
		d.settingsRepository = settingsrepo.NewSettingsRepository(
			d.Database(ctx).Collection(settingsCollectionName),
		)
	}

	return d.settingsRepository
}

func (d *di) DocumentRepository(ctx context.Context) backupservice.DocumentRepository {
	if d.documentRepository == nil {
		d.documentRepository = documentrepo.NewDocumentRepository(d.Database(ctx))
	}

	return d.documentRepository
}

func (d *di) CustomerService(ctx context.Context) customerv1.CustomerService {
	if d.customerService == nil {
		d.customerService = customerservice.NewCustomerService(
			d.CustomerRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.customerService
}

func (d *di) SupplierService(ctx context.Context) supplierv1.SupplierService {
	if d.supplierService == nil {
		d.supplierService = supplierservice.NewSupplierService(
			d.SupplierRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.supplierService
}

func (d *di) PartService(ctx context.Context) partv1.PartService {
	if d.partService == nil {
		d.partService = partservice.NewPartService(
			d.PartRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.partService
}

func (d *di) TransactionService(ctx context.Context) transactionv1.TransactionService {
	if d.transactionService == nil {
		d.transactionService = transactionservice.NewTransactionService(
			d.TransactionRepository(ctx),
			d.CustomerRepository(ctx),
			d.PartRepository(ctx),
			d.SupplierRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.transactionService
}

func (d *di) CompanyService(ctx context.Context) companyv1.CompanyService {
	if d.companyService == nil {
		d.companyService = companyservice.NewCompanyService(
			d.SettingsRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.companyService
}

func (d *di) BackupService(ctx context.Context) backupv1.BackupService {
	if d.backupService == nil {
		d.backupService = backupservice.NewBackupService(
			d.DocumentRepository(ctx),
			d.SettingsRepository(ctx),
			config.C().Server.BackupTimeout(),
		)
	}

	return d.backupService
}

func (d *di) Router(_ context.Context) chi.Router {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		model.CollectionCustomers: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "tipo.cliente", Value: 1}}},
			{Keys: bson.D{{Key: "tipo.mecanico", Value: 1}}},
		},
		model.CollectionSuppliers: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		model.CollectionParts: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "codigoPeca", Value: 1}}},
		},
		model.CollectionTransactions: {
			{Keys: bson.D{{Key: "tipoMovimentacao", Value: 1}}},
			{Keys: bson.D{{Key: "dataMovimentacao", Value: -1}}},
			{Keys: bson.D{{Key: "pecaId", Value: 1}}},
			{Keys: bson.D{{Key: "clienteId", Value: 1}}},
		},
	}

	for collection, models := range specs {
		_, err := db.Collection(collection).
			Indexes().
			CreateMany(ctx, models, options.CreateIndexes())
		if err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
	}

	return nil
}
