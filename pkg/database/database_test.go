package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{
			name: "postgres",
			cfg: Config{Driver: "postgres", Host: "db", Port: 5432, User: "ids", Password: "secret",
				DBName: "snowflake", SSLMode: "disable"},
			want: "host=db port=5432 user=ids password=secret dbname=snowflake sslmode=disable TimeZone=UTC",
		},
		{
			name: "mysql",
			cfg:  Config{Driver: "mysql", Host: "db", Port: 3306, User: "ids", Password: "secret", DBName: "snowflake"},
			want: "ids:secret@tcp(db:3306)/snowflake?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "sqlite",
			cfg:  Config{Driver: "sqlite", FilePath: "/var/lib/ids.db"},
			want: "/var/lib/ids.db",
		},
		{
			name:    "unsupported driver",
			cfg:     Config{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DSN(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	db, err := New(&Config{Driver: "oracle"}, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, db)
}
