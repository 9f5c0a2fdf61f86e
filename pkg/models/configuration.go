package models

// The ledger serializes ent entities with their eager-loaded edges nested
// under "edges". These mirror that shape for the agent and CLI.

// Configuration is one license-server configuration as served by the ledger.
type Configuration struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	ClusterID int                `json:"cluster_id"`
	GraceTime int                `json:"grace_time"`
	Type      string             `json:"type"`
	Edges     ConfigurationEdges `json:"edges"`
}

// ConfigurationEdges holds a configuration's eager-loaded relations.
type ConfigurationEdges struct {
	LicenseServers []LicenseServer `json:"license_servers"`
	Features       []Feature       `json:"features"`
}

// LicenseServer is one vendor daemon endpoint.
type LicenseServer struct {
	ID       int    `json:"id"`
	ConfigID int    `json:"config_id"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
}

// Feature is one licensed feature tracked by the ledger.
type Feature struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	ProductID int          `json:"product_id"`
	ConfigID  int          `json:"config_id"`
	Reserved  int          `json:"reserved"`
	Edges     FeatureEdges `json:"edges"`
}

// FeatureEdges holds a feature's eager-loaded relations.
type FeatureEdges struct {
	Product   *Product   `json:"product,omitempty"`
	Inventory *Inventory `json:"inventory,omitempty"`
}

// ProductFeature returns the feature's textual "product.feature" key, or
// just the feature name when the product edge was not loaded.
func (f *Feature) ProductFeature() string {
	if f.Edges.Product == nil {
		return f.Name
	}
	return FormatProductFeature(f.Edges.Product.Name, f.Name)
}

// Product is a vendor product grouping features.
type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Inventory is the token count pair for one feature.
type Inventory struct {
	ID        int `json:"id"`
	FeatureID int `json:"feature_id"`
	Total     int `json:"total"`
	Used      int `json:"used"`
}

// Booking is one admitted feature booking.
type Booking struct {
	ID        int          `json:"id"`
	JobID     int          `json:"job_id"`
	FeatureID int          `json:"feature_id"`
	Quantity  int          `json:"quantity"`
	Edges     BookingEdges `json:"edges"`
}

// BookingEdges holds a booking's eager-loaded relations.
type BookingEdges struct {
	Feature *Feature `json:"feature,omitempty"`
}

// Cluster is one workload cluster row as served by the ledger.
type Cluster struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	ClientID string       `json:"client_id"`
	Edges    ClusterEdges `json:"edges"`
}

// ClusterEdges holds a cluster's eager-loaded relations.
type ClusterEdges struct {
	Configurations []Configuration `json:"configurations"`
	Jobs           []Job           `json:"jobs"`
}

// Job is one scheduler job row as served by the ledger.
type Job struct {
	ID         int      `json:"id"`
	SlurmJobID int      `json:"slurm_job_id"`
	ClusterID  int      `json:"cluster_id"`
	Username   string   `json:"username"`
	LeadHost   string   `json:"lead_host"`
	Edges      JobEdges `json:"edges"`
}

// JobEdges holds a job's eager-loaded relations.
type JobEdges struct {
	Bookings []Booking `json:"bookings"`
}

// DeletedByJob is returned by DELETE /bookings/by_job/{slurm_job_id}.
type DeletedByJob struct {
	Deleted int `json:"deleted"`
}
