package database

// Schema creates the workers and tasks tables. Every statement is
// idempotent and runs on each startup; there is no version table.
//
// The foreign key is declarative only. Foreign-key enforcement is not
// switched on for the connection, so a task may name a worker id that
// does not exist.
const Schema = `
CREATE TABLE IF NOT EXISTS workers (
    id integer PRIMARY KEY,
    first_name text NOT NULL,
    last_name text NOT NULL,
    date_of_birth int NOT NULL,
    phone_number text NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id integer PRIMARY KEY,
    name text NOT NULL,
    priority integer,
    done text NOT NULL,
    worker_id integer NOT NULL,
    FOREIGN KEY (worker_id) REFERENCES workers (id)
);
`
