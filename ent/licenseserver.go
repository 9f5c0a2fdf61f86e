// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
)

// LicenseServer is the model entity for the LicenseServer schema.
type LicenseServer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID int `json:"config_id,omitempty"`
	// Host holds the value of the "host" field.
	Host string `json:"host,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LicenseServerQuery when eager-loading is set.
	Edges        LicenseServerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LicenseServerEdges holds the relations/edges for other nodes in the graph.
type LicenseServerEdges struct {
	// Configuration holds the value of the configuration edge.
	Configuration *Configuration `json:"configuration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConfigurationOrErr returns the Configuration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LicenseServerEdges) ConfigurationOrErr() (*Configuration, error) {
	if e.Configuration != nil {
		return e.Configuration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: configuration.Label}
	}
	return nil, &NotLoadedError{edge: "configuration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LicenseServer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case licenseserver.FieldID, licenseserver.FieldConfigID, licenseserver.FieldPort:
			values[i] = new(sql.NullInt64)
		case licenseserver.FieldHost:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LicenseServer fields.
func (_m *LicenseServer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case licenseserver.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case licenseserver.FieldConfigID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = int(value.Int64)
			}
		case licenseserver.FieldHost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host", values[i])
			} else if value.Valid {
				_m.Host = value.String
			}
		case licenseserver.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LicenseServer.
// This includes values selected through modifiers, order, etc.
func (_m *LicenseServer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConfiguration queries the "configuration" edge of the LicenseServer entity.
func (_m *LicenseServer) QueryConfiguration() *ConfigurationQuery {
	return NewLicenseServerClient(_m.config).QueryConfiguration(_m)
}

// Update returns a builder for updating this LicenseServer.
// Note that you need to call LicenseServer.Unwrap() before calling this method if this LicenseServer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LicenseServer) Update() *LicenseServerUpdateOne {
	return NewLicenseServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LicenseServer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LicenseServer) Unwrap() *LicenseServer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LicenseServer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LicenseServer) String() string {
	var builder strings.Builder
	builder.WriteString("LicenseServer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("config_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigID))
	builder.WriteString(", ")
	builder.WriteString("host=")
	builder.WriteString(_m.Host)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteByte(')')
	return builder.String()
}

// LicenseServers is a parsable slice of LicenseServer.
type LicenseServers []*LicenseServer
