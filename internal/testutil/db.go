// Package testutil abre bancos sqlite em memória com o schema da
// aplicação migrado, para uso nos testes de repositório e caso de uso.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/agendalivre/platform-api/internal/db"
	"github.com/agendalivre/platform-api/internal/models"
)

// NewDB abre um sqlite em memória já migrado. A conexão única é
// obrigatória: cada conexão de um sqlite :memory: enxerga um banco
// diferente.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func SeedTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:     "Estúdio Teste",
		Slug:     "estudio-" + uuid.NewString(),
		Timezone: "America/Sao_Paulo",
	}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to seed tenant: %v", err)
	}
	return tenant
}

func SeedClient(t *testing.T, db *gorm.DB, tenantID, name string) *models.Client {
	t.Helper()

	client := &models.Client{
		TenantID: tenantID,
		Name:     name,
		Phone:    "11999990000",
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return client
}

func SeedService(
	t *testing.T,
	db *gorm.DB,
	tenantID, name string,
	value float64,
	durationMin int,
) *models.Service {
	t.Helper()

	svc := &models.Service{
		TenantID:    tenantID,
		Name:        name,
		Value:       value,
		DurationMin: durationMin,
		Active:      true,
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return svc
}

func SeedProduct(
	t *testing.T,
	db *gorm.DB,
	tenantID, name string,
	price float64,
	stock int,
) *models.Product {
	t.Helper()

	product := &models.Product{
		TenantID:      tenantID,
		Name:          name,
		Price:         price,
		Active:        true,
		ManageStock:   true,
		StockQuantity: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
