package db

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "trainr-clean.db")
	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	for _, table := range []string{
		"users",
		"muscle_groups",
		"exercises",
		"weekly_routines",
		"weekly_routine_muscle_groups",
		"weekly_routine_exercises",
		"daily_entries",
	} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist after migrations", table)
		}
	}

	columns := loadTableColumns(t, database, "daily_entries")
	for _, column := range []string{"date", "weekly_routine_id", "breakfast", "lunch", "snack", "dinner", "completed"} {
		if _, exists := columns[column]; !exists {
			t.Fatalf("expected daily_entries.%s column to exist", column)
		}
	}

	indexSQL := loadSQLiteObjectSQL(t, database, "index", "uidx_weekly_routines_user_day")
	if !strings.Contains(strings.ToLower(indexSQL), "unique") {
		t.Fatalf("expected unique (user_id, day_of_week) index, got %q", indexSQL)
	}

	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteEnablesForeignKeys(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "trainr-fk.db"))

	var enabled int
	if err := database.Raw(`PRAGMA foreign_keys`).Scan(&enabled).Error; err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign keys to be enforced, got pragma value %d", enabled)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "trainr-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords := loadMigrationRecords(t, firstOpen)

	if err := Close(firstOpen); err != nil {
		t.Fatalf("close first database: %v", err)
	}

	secondOpen := openSQLiteForMigrationBootstrapTest(t, databasePath)
	secondRecords := loadMigrationRecords(t, secondOpen)

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}

	versions, err := AppliedMigrationVersions(secondOpen)
	if err != nil {
		t.Fatalf("applied migration versions: %v", err)
	}
	if len(versions) != len(firstRecords) {
		t.Fatalf("expected %d applied versions, got %v", len(firstRecords), versions)
	}
}

func TestEmbeddedMigrationsCoverBothDialects(t *testing.T) {
	sqliteMigrations, err := loadEmbeddedMigrations(DriverSQLite)
	if err != nil {
		t.Fatalf("load sqlite migrations: %v", err)
	}
	postgresMigrations, err := loadEmbeddedMigrations(DriverPostgres)
	if err != nil {
		t.Fatalf("load postgres migrations: %v", err)
	}

	if !reflect.DeepEqual(migrationVersions(sqliteMigrations), migrationVersions(postgresMigrations)) {
		t.Fatalf("dialects diverge: sqlite=%v postgres=%v", migrationVersions(sqliteMigrations), migrationVersions(postgresMigrations))
	}
}

func TestSplitSQLStatementsDropsBlankParts(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n  ;CREATE INDEX b ON a (id);\n")
	expected := []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX b ON a (id)"}
	if !reflect.DeepEqual(statements, expected) {
		t.Fatalf("unexpected statements %q", statements)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Options{Driver: "mysql"}); err == nil {
		t.Fatal("expected unsupported driver error")
	}
	if _, err := Open(Options{Driver: DriverPostgres}); err == nil {
		t.Fatal("expected empty postgres dsn error")
	}
}

func openSQLiteForMigrationBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	migrations, err := loadEmbeddedMigrations(DriverSQLite)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	expectedVersions := migrationVersions(migrations)

	actualVersions, err := AppliedMigrationVersions(database)
	if err != nil {
		t.Fatalf("load applied migration versions: %v", err)
	}

	if !reflect.DeepEqual(expectedVersions, actualVersions) {
		t.Fatalf("unexpected applied migration versions: expected=%v actual=%v", expectedVersions, actualVersions)
	}
}

type migrationRecord struct {
	Version   string `gorm:"column:version"`
	Name      string `gorm:"column:name"`
	AppliedAt string `gorm:"column:applied_at"`
}

func loadMigrationRecords(t *testing.T, database *gorm.DB) []migrationRecord {
	t.Helper()

	records := make([]migrationRecord, 0)
	if err := database.Raw(
		`SELECT version, name, applied_at FROM schema_migrations ORDER BY version ASC`,
	).Scan(&records).Error; err != nil {
		t.Fatalf("load migration records: %v", err)
	}
	return records
}

func loadTableColumns(t *testing.T, database *gorm.DB, tableName string) map[string]struct{} {
	t.Helper()

	var rows []struct {
		Name string `gorm:"column:name"`
	}
	if err := database.Raw(`SELECT name FROM pragma_table_info(?)`, tableName).Scan(&rows).Error; err != nil {
		t.Fatalf("load table columns for %s: %v", tableName, err)
	}

	columns := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		columns[strings.ToLower(strings.TrimSpace(row.Name))] = struct{}{}
	}
	return columns
}

func loadSQLiteObjectSQL(t *testing.T, database *gorm.DB, objectType string, objectName string) string {
	t.Helper()

	var row struct {
		SQL string `gorm:"column:sql"`
	}
	if err := database.Raw(
		`SELECT sql FROM sqlite_master WHERE type = ? AND name = ?`,
		objectType,
		objectName,
	).Scan(&row).Error; err != nil {
		t.Fatalf("load sqlite master sql for %s %s: %v", objectType, objectName, err)
	}
	return row.SQL
}

func migrationVersions(migrations []embeddedMigration) []string {
	versions := make([]string, 0, len(migrations))
	for _, migration := range migrations {
		versions = append(versions, migration.Version)
	}
	return versions
}
