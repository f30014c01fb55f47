package finbook

import (
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds every storage location and tunable of the system as an
// explicit struct injected into the stores at construction. Nothing
// reads these paths from ambient globals, so tests run against
// temporary directories.
type Config struct {
	UsersFile        string
	TransactionsFile string
	RecurringFile    string
	BackupDir        string
	LastBackupFile   string
	BcryptCost       int
}

// DefaultConfig returns the standard layout rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		UsersFile:        filepath.Join(dataDir, "users.json"),
		TransactionsFile: filepath.Join(dataDir, "transaction.csv"),
		RecurringFile:    filepath.Join(dataDir, "recurring_transactions.json"),
		BackupDir:        "backups",
		LastBackupFile:   "last_backup.txt",
		BcryptCost:       bcrypt.DefaultCost,
	}
}

// LoadConfig builds a Config from the environment, falling back to
// the default layout under FINBOOK_DATA_DIR (default "data").
func LoadConfig() Config {
	cfg := DefaultConfig(getEnv("FINBOOK_DATA_DIR", "data"))
	cfg.UsersFile = getEnv("FINBOOK_USERS_FILE", cfg.UsersFile)
	cfg.TransactionsFile = getEnv("FINBOOK_TRANSACTIONS_FILE", cfg.TransactionsFile)
	cfg.RecurringFile = getEnv("FINBOOK_RECURRING_FILE", cfg.RecurringFile)
	cfg.BackupDir = getEnv("FINBOOK_BACKUP_DIR", cfg.BackupDir)
	cfg.LastBackupFile = getEnv("FINBOOK_LAST_BACKUP_FILE", cfg.LastBackupFile)
	cfg.BcryptCost = getEnvInt("FINBOOK_BCRYPT_COST", cfg.BcryptCost)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Ledger opens the transaction table store.
func (c Config) Ledger() *LedgerStore { return NewLedgerStore(c.TransactionsFile) }

// Users opens the user store over the given ledger (for cascades).
func (c Config) Users(ledger *LedgerStore) *UserStore {
	return NewUserStore(c.UsersFile, c.BcryptCost, ledger)
}

// Schedule opens the recurring template store over the given ledger.
func (c Config) Schedule(ledger *LedgerStore) *ScheduleStore {
	return NewScheduleStore(c.RecurringFile, ledger)
}

// MonthlyBackup describes the snapshot job for this configuration.
func (c Config) MonthlyBackup() Backup {
	return Backup{
		Dir:     c.BackupDir,
		Marker:  c.LastBackupFile,
		Sources: []string{c.UsersFile, c.TransactionsFile, c.RecurringFile},
	}
}
