package database

import (
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const assignIDCallback = "snowflake:assign_id"

// IDSource hands out unique, time-ordered 64-bit keys.
type IDSource interface {
	NextID() (uint64, error)
}

// Model is the base for tables keyed by snowflake IDs. Embed it and call
// UseSnowflakeKeys once on the connection.
type Model struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UseSnowflakeKeys registers a create callback that fills every zero
// unsigned 64-bit primary key from src before the INSERT runs. Records that
// already carry a key keep it.
func UseSnowflakeKeys(db *gorm.DB, src IDSource) error {
	return db.Callback().Create().Before("gorm:create").Register(assignIDCallback, func(tx *gorm.DB) {
		if tx.Statement.Schema == nil {
			return
		}
		field := tx.Statement.Schema.PrioritizedPrimaryField
		if field == nil || field.FieldType.Kind() != reflect.Uint64 {
			return
		}

		rv := tx.Statement.ReflectValue
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if err := assignID(tx, field, reflect.Indirect(rv.Index(i)), src); err != nil {
					_ = tx.AddError(err)
					return
				}
			}
		case reflect.Struct:
			if err := assignID(tx, field, rv, src); err != nil {
				_ = tx.AddError(err)
			}
		}
	})
}

func assignID(tx *gorm.DB, field *schema.Field, rv reflect.Value, src IDSource) error {
	ctx := tx.Statement.Context
	if _, zero := field.ValueOf(ctx, rv); !zero {
		return nil
	}
	id, err := src.NextID()
	if err != nil {
		return fmt.Errorf("assign %s.%s: %w", tx.Statement.Schema.Name, field.Name, err)
	}
	return field.Set(ctx, rv, id)
}
