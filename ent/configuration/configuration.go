// Code generated by ent, DO NOT EDIT.

package configuration

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the configuration type in the database.
	Label = "configuration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldClusterID holds the string denoting the cluster_id field in the database.
	FieldClusterID = "cluster_id"
	// FieldGraceTime holds the string denoting the grace_time field in the database.
	FieldGraceTime = "grace_time"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// EdgeLicenseServers holds the string denoting the license_servers edge name in mutations.
	EdgeLicenseServers = "license_servers"
	// EdgeFeatures holds the string denoting the features edge name in mutations.
	EdgeFeatures = "features"
	// Table holds the table name of the configuration in the database.
	Table = "configurations"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "configurations"
	// ClusterInverseTable is the table name for the Cluster entity.
	// It exists in this package in order to avoid circular dependency with the "cluster" package.
	ClusterInverseTable = "clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "cluster_id"
	// LicenseServersTable is the table that holds the license_servers relation/edge.
	LicenseServersTable = "license_servers"
	// LicenseServersInverseTable is the table name for the LicenseServer entity.
	// It exists in this package in order to avoid circular dependency with the "licenseserver" package.
	LicenseServersInverseTable = "license_servers"
	// LicenseServersColumn is the table column denoting the license_servers relation/edge.
	LicenseServersColumn = "config_id"
	// FeaturesTable is the table that holds the features relation/edge.
	FeaturesTable = "features"
	// FeaturesInverseTable is the table name for the Feature entity.
	// It exists in this package in order to avoid circular dependency with the "feature" package.
	FeaturesInverseTable = "features"
	// FeaturesColumn is the table column denoting the features relation/edge.
	FeaturesColumn = "config_id"
)

// Columns holds all SQL columns for configuration fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldClusterID,
	FieldGraceTime,
	FieldType,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// GraceTimeValidator is a validator for the "grace_time" field. It is called by the builders before save.
	GraceTimeValidator func(int) error
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeFlexlm   Type = "flexlm"
	TypeRlm      Type = "rlm"
	TypeLsdyna   Type = "lsdyna"
	TypeLmx      Type = "lmx"
	TypeOlicense Type = "olicense"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeFlexlm, TypeRlm, TypeLsdyna, TypeLmx, TypeOlicense:
		return nil
	default:
		return fmt.Errorf("configuration: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Configuration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByClusterID orders the results by the cluster_id field.
func ByClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterID, opts...).ToFunc()
}

// ByGraceTime orders the results by the grace_time field.
func ByGraceTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraceTime, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByClusterField orders the results by cluster field.
func ByClusterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClusterStep(), sql.OrderByField(field, opts...))
	}
}

// ByLicenseServersCount orders the results by license_servers count.
func ByLicenseServersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLicenseServersStep(), opts...)
	}
}

// ByLicenseServers orders the results by license_servers terms.
func ByLicenseServers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLicenseServersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeaturesCount orders the results by features count.
func ByFeaturesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeaturesStep(), opts...)
	}
}

// ByFeatures orders the results by features terms.
func ByFeatures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeaturesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClusterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClusterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
	)
}
func newLicenseServersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LicenseServersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LicenseServersTable, LicenseServersColumn),
	)
}
func newFeaturesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeaturesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeaturesTable, FeaturesColumn),
	)
}
