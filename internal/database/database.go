package database

import (
	"fmt"
	"log"
	"time"

	"xman-api/internal/config"
	"xman-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Expense{},
		&models.Income{},
		&models.Preset{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON users(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_profiles_user_id ON profiles(user_id)",
		// Category lookups always scope by owner, sometimes by type
		"CREATE INDEX IF NOT EXISTS idx_categories_user_id ON categories(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_categories_user_id_expense ON categories(user_id, expense)",
		// Ledger rows are always fetched by (user_id, month, year)
		"CREATE INDEX IF NOT EXISTS idx_expenses_user_bucket ON expenses(user_id, month, year)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_income_user_bucket ON income(user_id, month, year)",
		"CREATE INDEX IF NOT EXISTS idx_income_created_at ON income(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_presets_user_id ON presets(user_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// SeedDefaultCategories inserts the shared default categories once. Rows are
// keyed by (name, expense, owner sentinel) so reruns are idempotent.
func (db *DB) SeedDefaultCategories() error {
	defaults := []models.Category{
		{Name: "food", Expense: true, UserID: models.DefaultCategoryOwner},
		{Name: "travel", Expense: true, UserID: models.DefaultCategoryOwner},
		{Name: "rent", Expense: true, UserID: models.DefaultCategoryOwner},
		{Name: "utilities", Expense: true, UserID: models.DefaultCategoryOwner},
		{Name: "shopping", Expense: true, UserID: models.DefaultCategoryOwner},
		{Name: "salary", Expense: false, UserID: models.DefaultCategoryOwner},
		{Name: "freelance", Expense: false, UserID: models.DefaultCategoryOwner},
		{Name: "interest", Expense: false, UserID: models.DefaultCategoryOwner},
	}

	for _, category := range defaults {
		var existing models.Category
		err := db.DB.Where("name = ? AND expense = ? AND user_id = ?",
			category.Name, category.Expense, models.DefaultCategoryOwner).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.DB.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed default category %q: %w", category.Name, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	if err := db.SeedDefaultCategories(); err != nil {
		log.Printf("Warning: failed to seed default categories: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
