package pg

import (
	"database/sql"
	"fmt"

	"github.com/uraita-dev/uraita/shared/config"
	"github.com/uraita-dev/uraita/shared/logger"

	_ "github.com/lib/pq"
)

type Storage struct {
	db  *sql.DB
	cfg *config.Config
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db, cfg}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Ping() error {
	return s.db.Ping()
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
