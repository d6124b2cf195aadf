package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/galleon/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migrateTransactionsTable()

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		amount REAL NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		merchant TEXT NOT NULL,
		description TEXT DEFAULT '',
		date TEXT NOT NULL,
		confidence REAL NOT NULL DEFAULT 1,
		needs_review BOOLEAN NOT NULL DEFAULT FALSE,
		is_seed BOOLEAN NOT NULL DEFAULT FALSE,
		hash_id TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
	CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
	CREATE INDEX IF NOT EXISTS idx_transactions_hash ON transactions(hash_id);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.")
	} else {
		stdlog.Println("Database tables ensured/created.")
	}
}

// migrateTransactionsTable adds columns introduced after the first release to
// existing databases. New databases get the full schema from InitDB directly.
func migrateTransactionsTable() {
	var tableName string
	err := DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='transactions'").Scan(&tableName)
	if err != nil {
		if err == sql.ErrNoRows {
			if logger.L != nil {
				logger.L.Info("'transactions' table does not exist, no migration needed as table will be created.")
			} else {
				stdlog.Println("'transactions' table does not exist, no migration needed as table will be created.")
			}
			return
		}
		if logger.L != nil {
			logger.L.Error("Error checking for 'transactions' table", "error", err)
		} else {
			stdlog.Printf("Error checking for 'transactions' table: %v", err)
		}
		return
	}

	rows, err := DB.Query("PRAGMA table_info(transactions)")
	if err != nil {
		if logger.L != nil {
			logger.L.Error("Error querying table schema for 'transactions'", "error", err)
		} else {
			stdlog.Printf("Error querying table schema for 'transactions': %v", err)
		}
		return
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk int
		var name, dataType string
		var notnullVal int
		var dfltValue interface{}

		if err := rows.Scan(&cid, &name, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			if logger.L != nil {
				logger.L.Error("Error scanning column info for 'transactions'", "error", err)
			} else {
				stdlog.Printf("Error scanning column info for 'transactions': %v", err)
			}
			return
		}
		columnExists[name] = true
	}
	if err = rows.Err(); err != nil {
		if logger.L != nil {
			logger.L.Error("Error iterating over column info for 'transactions'", "error", err)
		} else {
			stdlog.Printf("Error iterating over column info for 'transactions': %v", err)
		}
		return
	}

	if _, ok := columnExists["is_seed"]; !ok {
		_, err := DB.Exec("ALTER TABLE transactions ADD COLUMN is_seed BOOLEAN NOT NULL DEFAULT FALSE")
		if err != nil {
			logger.L.Error("Error adding 'is_seed' column to 'transactions' table", "error", err)
		} else {
			logger.L.Info("Added 'is_seed' column to 'transactions' table")
		}
	}

	if _, ok := columnExists["hash_id"]; !ok {
		_, err := DB.Exec("ALTER TABLE transactions ADD COLUMN hash_id TEXT NOT NULL DEFAULT ''")
		if err != nil {
			logger.L.Error("Error adding 'hash_id' column to 'transactions' table", "error", err)
		} else {
			logger.L.Info("Added 'hash_id' column to 'transactions' table")
		}
	}

	if _, ok := columnExists["updated_at"]; !ok {
		_, err := DB.Exec("ALTER TABLE transactions ADD COLUMN updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
		if err != nil {
			logger.L.Error("Error adding 'updated_at' column to 'transactions' table", "error", err)
		} else {
			logger.L.Info("Added 'updated_at' column to 'transactions' table")
		}
	}
}
