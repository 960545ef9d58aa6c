package storage

import (
	"context"
	"fmt"

	"github.com/logscrub/logscrub/internal/hash"
)

// demoUser is one synthetic account inserted by Seed.
type demoUser struct {
	name      string
	email     string
	phone     string
	ssn       string
	password  string
	ip        string
	lastLogin string
	userAgent string
}

// demoUsers are the synthetic accounts inserted by Seed. The values are
// obviously fake but shaped like real PII so that streaming them through
// an unredacted sink would be immediately visible in review.
var demoUsers = []demoUser{
	{
		name:      "Marlene Wood",
		email:     "hwestiii@att.net",
		phone:     "(473) 401-4253",
		ssn:       "261-72-6780",
		password:  "K5?BMNv",
		ip:        "60ed:c396:2ff:244:bbd0:9208:26f2:93ea",
		lastLogin: "2019-11-14 06:14:24",
		userAgent: "Mozilla/5.0 (Linux; U; Android 4.1.2; de-de; GT-I9100 Build/JZO54K)",
	},
	{
		name:      "Belen Bailey",
		email:     "bcevc@yahoo.com",
		phone:     "(539) 233-4942",
		ssn:       "203-38-5395",
		password:  "^3EZ~TkX",
		ip:        "f724:c5d1:a14d:c4c5:bae2:9457:3769:1969",
		lastLogin: "2019-11-14 06:16:19",
		userAgent: "Mozilla/5.0 (Windows NT 5.1; rv:11.0) Gecko Firefox/11.0",
	},
	{
		name:      "Ronnie Bailey",
		email:     "rbailey@glasgow.net",
		phone:     "(339) 555-0113",
		ssn:       "460-73-5079",
		password:  "G=0VaUfq",
		ip:        "0e:95ab:54b8:9f67:af44:e3c6:41dd:b737",
		lastLogin: "2019-11-14 06:18:02",
		userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:68.0) Gecko/20100101 Firefox/68.0",
	},
	{
		name:      "Phillip Rios",
		email:     "prios@outlook.com",
		phone:     "(544) 555-0135",
		ssn:       "245-81-1079",
		password:  "tv7!r9Gm",
		ip:        "b912:9c4b:5e7c:12e8:4f1a:8a55:99de:0135",
		lastLogin: "2019-11-14 06:20:47",
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_14_6) AppleWebKit/605.1.15",
	},
	{
		name:      "Dianna Lowe",
		email:     "dlowe@verizon.net",
		phone:     "(312) 555-0164",
		ssn:       "839-29-0480",
		password:  "p4$sw0rd",
		ip:        "166.48.203.11",
		lastLogin: "2019-11-14 06:22:11",
		userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 13_1_3 like Mac OS X) AppleWebKit/605.1.15",
	},
}

// Seed creates the users table and fills it with the demo accounts.
// Passwords are stored as bcrypt hashes, never cleartext. Seeding an
// already-populated database returns ErrAlreadySeeded.
func (s *Store) Seed(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		ssn TEXT,
		password TEXT NOT NULL,
		ip TEXT,
		last_login DATETIME,
		user_agent TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing rows: %w", err)
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO users (name, email, phone, ssn, password, ip, last_login, user_agent)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, u := range demoUsers {
		hashed, err := hash.Password(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.email, err)
		}
		if _, err := stmt.ExecContext(ctx,
			u.name, u.email, u.phone, u.ssn, string(hashed),
			u.ip, u.lastLogin, u.userAgent); err != nil {
			return fmt.Errorf("failed to insert demo user %s: %w", u.email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
