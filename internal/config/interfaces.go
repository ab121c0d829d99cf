package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBTimeout() time.Duration
	// BackupTimeout bounds whole-dataset export and restore operations, which
	// run far longer than a single entity call.
	BackupTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	DSN() string
}
