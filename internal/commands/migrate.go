package commands

import (
	"fmt"
	"log"

	"hrm/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            username text not null,
            email text,
            full_name text,
            password text not null,
            role user_role,
            position text,
            profile_image text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create user with username: admin, password: 1",
		Query: `
        INSERT INTO users(username, role, password)
        SELECT 'admin', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT username FROM users WHERE username = 'admin');
        `,
	},
	{
		Index:       4,
		Description: "Create table: work_shifts.",
		Query: `
        CREATE TABLE IF NOT EXISTS work_shifts (
            id serial primary key,
            name text not null,
            start_time time not null,
            end_time time not null,
            break_minutes int not null default 0,
            color varchar(20),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: employee_schedules.",
		Query: `
        CREATE TABLE IF NOT EXISTS employee_schedules (
            id serial primary key,
            user_id int not null references users(id),
            shift_id int references work_shifts(id),
            work_day date not null,
            status text not null default 'scheduled',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (user_id, work_day)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: holidays.",
		Query: `
        CREATE TABLE IF NOT EXISTS holidays (
            id serial primary key,
            holiday_date date not null unique,
            description text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: leave_types.",
		Query: `
        CREATE TABLE IF NOT EXISTS leave_types (
            id serial primary key,
            name text not null,
            annual_quota numeric(5,1) not null default 12,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Seed leave types.",
		Query: `
        INSERT INTO leave_types(name, annual_quota)
        SELECT 'Annual Leave', 12
        WHERE NOT EXISTS (SELECT id FROM leave_types WHERE name = 'Annual Leave');
        INSERT INTO leave_types(name, annual_quota)
        SELECT 'Sick Leave', 14
        WHERE NOT EXISTS (SELECT id FROM leave_types WHERE name = 'Sick Leave');
        `,
	},
	{
		Index:       9,
		Description: "Create table: leaves.",
		Query: `
        CREATE TABLE IF NOT EXISTS leaves (
            id serial primary key,
            user_id int not null references users(id),
            leave_type_id int not null references leave_types(id),
            start_date date not null,
            end_date date not null,
            day_count numeric(5,1) not null,
            reason text,
            attachment text,
            status text not null default 'pending',
            decided_by int references users(id),
            decided_at timestamp,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: leave_balance.",
		Query: `
        CREATE TABLE IF NOT EXISTS leave_balance (
            id serial primary key,
            user_id int not null references users(id),
            leave_type_id int not null references leave_types(id),
            year int not null,
            quota numeric(5,1) not null,
            used_days numeric(5,1) not null default 0,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (user_id, leave_type_id, year)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id serial primary key,
            user_id int not null references users(id),
            work_day date not null,
            clock_in timestamp not null,
            clock_out timestamp,
            punctuality text,
            check_in_image text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (user_id, work_day)
        );`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
