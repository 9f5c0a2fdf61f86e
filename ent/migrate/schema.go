// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "feature_id", Type: field.TypeInt},
		{Name: "job_id", Type: field.TypeInt},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bookings_features_bookings",
				Columns:    []*schema.Column{BookingsColumns[2]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "bookings_jobs_bookings",
				Columns:    []*schema.Column{BookingsColumns[3]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "booking_job_id_feature_id",
				Unique:  true,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[2]},
			},
		},
	}
	// ClustersColumns holds the columns for the "clusters" table.
	ClustersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString, Unique: true},
	}
	// ClustersTable holds the schema information for the "clusters" table.
	ClustersTable = &schema.Table{
		Name:       "clusters",
		Columns:    ClustersColumns,
		PrimaryKey: []*schema.Column{ClustersColumns[0]},
	}
	// ConfigurationsColumns holds the columns for the "configurations" table.
	ConfigurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "grace_time", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"flexlm", "rlm", "lsdyna", "lmx", "olicense"}},
		{Name: "cluster_id", Type: field.TypeInt},
	}
	// ConfigurationsTable holds the schema information for the "configurations" table.
	ConfigurationsTable = &schema.Table{
		Name:       "configurations",
		Columns:    ConfigurationsColumns,
		PrimaryKey: []*schema.Column{ConfigurationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "configurations_clusters_configurations",
				Columns:    []*schema.Column{ConfigurationsColumns[4]},
				RefColumns: []*schema.Column{ClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// FeaturesColumns holds the columns for the "features" table.
	FeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "reserved", Type: field.TypeInt, Default: 0},
		{Name: "config_id", Type: field.TypeInt},
		{Name: "product_id", Type: field.TypeInt},
	}
	// FeaturesTable holds the schema information for the "features" table.
	FeaturesTable = &schema.Table{
		Name:       "features",
		Columns:    FeaturesColumns,
		PrimaryKey: []*schema.Column{FeaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "features_configurations_features",
				Columns:    []*schema.Column{FeaturesColumns[3]},
				RefColumns: []*schema.Column{ConfigurationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "features_products_features",
				Columns:    []*schema.Column{FeaturesColumns[4]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feature_product_id_config_id_name",
				Unique:  true,
				Columns: []*schema.Column{FeaturesColumns[4], FeaturesColumns[3], FeaturesColumns[1]},
			},
		},
	}
	// InventoriesColumns holds the columns for the "inventories" table.
	InventoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "used", Type: field.TypeInt, Default: 0},
		{Name: "feature_id", Type: field.TypeInt, Unique: true},
	}
	// InventoriesTable holds the schema information for the "inventories" table.
	InventoriesTable = &schema.Table{
		Name:       "inventories",
		Columns:    InventoriesColumns,
		PrimaryKey: []*schema.Column{InventoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventories_features_inventory",
				Columns:    []*schema.Column{InventoriesColumns[3]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slurm_job_id", Type: field.TypeInt},
		{Name: "username", Type: field.TypeString},
		{Name: "lead_host", Type: field.TypeString},
		{Name: "cluster_id", Type: field.TypeInt},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_clusters_jobs",
				Columns:    []*schema.Column{JobsColumns[4]},
				RefColumns: []*schema.Column{ClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_slurm_job_id_cluster_id",
				Unique:  true,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
		},
	}
	// LicenseServersColumns holds the columns for the "license_servers" table.
	LicenseServersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "host", Type: field.TypeString},
		{Name: "port", Type: field.TypeInt},
		{Name: "config_id", Type: field.TypeInt},
	}
	// LicenseServersTable holds the schema information for the "license_servers" table.
	LicenseServersTable = &schema.Table{
		Name:       "license_servers",
		Columns:    LicenseServersColumns,
		PrimaryKey: []*schema.Column{LicenseServersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "license_servers_configurations_license_servers",
				Columns:    []*schema.Column{LicenseServersColumns[3]},
				RefColumns: []*schema.Column{ConfigurationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookingsTable,
		ClustersTable,
		ConfigurationsTable,
		FeaturesTable,
		InventoriesTable,
		JobsTable,
		LicenseServersTable,
		ProductsTable,
	}
)

func init() {
	BookingsTable.ForeignKeys[0].RefTable = FeaturesTable
	BookingsTable.ForeignKeys[1].RefTable = JobsTable
	ConfigurationsTable.ForeignKeys[0].RefTable = ClustersTable
	FeaturesTable.ForeignKeys[0].RefTable = ConfigurationsTable
	FeaturesTable.ForeignKeys[1].RefTable = ProductsTable
	InventoriesTable.ForeignKeys[0].RefTable = FeaturesTable
	JobsTable.ForeignKeys[0].RefTable = ClustersTable
	LicenseServersTable.ForeignKeys[0].RefTable = ConfigurationsTable
}
