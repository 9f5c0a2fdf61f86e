// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
)

// Configuration is the model entity for the Configuration schema.
type Configuration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ClusterID holds the value of the "cluster_id" field.
	ClusterID int `json:"cluster_id,omitempty"`
	// Seconds a booking is retained after job start
	GraceTime int `json:"grace_time,omitempty"`
	// Type holds the value of the "type" field.
	Type configuration.Type `json:"type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConfigurationQuery when eager-loading is set.
	Edges        ConfigurationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConfigurationEdges holds the relations/edges for other nodes in the graph.
type ConfigurationEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *Cluster `json:"cluster,omitempty"`
	// LicenseServers holds the value of the license_servers edge.
	LicenseServers []*LicenseServer `json:"license_servers,omitempty"`
	// Features holds the value of the features edge.
	Features []*Feature `json:"features,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigurationEdges) ClusterOrErr() (*Cluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// LicenseServersOrErr returns the LicenseServers value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigurationEdges) LicenseServersOrErr() ([]*LicenseServer, error) {
	if e.loadedTypes[1] {
		return e.LicenseServers, nil
	}
	return nil, &NotLoadedError{edge: "license_servers"}
}

// FeaturesOrErr returns the Features value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigurationEdges) FeaturesOrErr() ([]*Feature, error) {
	if e.loadedTypes[2] {
		return e.Features, nil
	}
	return nil, &NotLoadedError{edge: "features"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Configuration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case configuration.FieldID, configuration.FieldClusterID, configuration.FieldGraceTime:
			values[i] = new(sql.NullInt64)
		case configuration.FieldName, configuration.FieldType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Configuration fields.
func (_m *Configuration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case configuration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case configuration.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case configuration.FieldClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_id", values[i])
			} else if value.Valid {
				_m.ClusterID = int(value.Int64)
			}
		case configuration.FieldGraceTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grace_time", values[i])
			} else if value.Valid {
				_m.GraceTime = int(value.Int64)
			}
		case configuration.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = configuration.Type(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Configuration.
// This includes values selected through modifiers, order, etc.
func (_m *Configuration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the Configuration entity.
func (_m *Configuration) QueryCluster() *ClusterQuery {
	return NewConfigurationClient(_m.config).QueryCluster(_m)
}

// QueryLicenseServers queries the "license_servers" edge of the Configuration entity.
func (_m *Configuration) QueryLicenseServers() *LicenseServerQuery {
	return NewConfigurationClient(_m.config).QueryLicenseServers(_m)
}

// QueryFeatures queries the "features" edge of the Configuration entity.
func (_m *Configuration) QueryFeatures() *FeatureQuery {
	return NewConfigurationClient(_m.config).QueryFeatures(_m)
}

// Update returns a builder for updating this Configuration.
// Note that you need to call Configuration.Unwrap() before calling this method if this Configuration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Configuration) Update() *ConfigurationUpdateOne {
	return NewConfigurationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Configuration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Configuration) Unwrap() *Configuration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Configuration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Configuration) String() string {
	var builder strings.Builder
	builder.WriteString("Configuration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("cluster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClusterID))
	builder.WriteString(", ")
	builder.WriteString("grace_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraceTime))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteByte(')')
	return builder.String()
}

// Configurations is a parsable slice of Configuration.
type Configurations []*Configuration
