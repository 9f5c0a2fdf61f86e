package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// CreateClusterRequest is the body for POST /api/v1/clusters.
type CreateClusterRequest struct {
	Name     string `json:"name"`
	ClientID string `json:"client_id"`
}

// UpdateClusterRequest is the body for PUT /api/v1/clusters/:id. Absent
// fields are left unchanged.
type UpdateClusterRequest struct {
	Name     *string `json:"name"`
	ClientID *string `json:"client_id"`
}

// CreateConfigurationRequest is the body for POST /api/v1/configurations.
type CreateConfigurationRequest struct {
	Name      string `json:"name"`
	ClusterID int    `json:"cluster_id"`
	GraceTime int    `json:"grace_time"`
	Type      string `json:"type"`
}

// UpdateConfigurationRequest is the body for PUT /api/v1/configurations/:id.
type UpdateConfigurationRequest struct {
	Name      *string `json:"name"`
	ClusterID *int    `json:"cluster_id"`
	GraceTime *int    `json:"grace_time"`
	Type      *string `json:"type"`
}

// CreateLicenseServerRequest is the body for POST /api/v1/license_servers.
type CreateLicenseServerRequest struct {
	ConfigID int    `json:"config_id"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
}

// UpdateLicenseServerRequest is the body for PUT /api/v1/license_servers/:id.
type UpdateLicenseServerRequest struct {
	ConfigID *int    `json:"config_id"`
	Host     *string `json:"host"`
	Port     *int    `json:"port"`
}

// CreateProductRequest is the body for POST /api/v1/products.
type CreateProductRequest struct {
	Name string `json:"name"`
}

// UpdateProductRequest is the body for PUT /api/v1/products/:id.
type UpdateProductRequest struct {
	Name *string `json:"name"`
}

// CreateFeatureRequest is the body for POST /api/v1/features.
type CreateFeatureRequest struct {
	Name      string `json:"name"`
	ProductID int    `json:"product_id"`
	ConfigID  int    `json:"config_id"`
	Reserved  int    `json:"reserved"`
}

// UpdateFeatureRequest is the body for PUT /api/v1/features/:id.
type UpdateFeatureRequest struct {
	Name      *string `json:"name"`
	ProductID *int    `json:"product_id"`
	ConfigID  *int    `json:"config_id"`
	Reserved  *int    `json:"reserved"`
}

// UpdateInventoryRequest is the body for PUT /api/v1/features/:id/update_inventory.
type UpdateInventoryRequest struct {
	Total *int `json:"total"`
	Used  *int `json:"used"`
}

// CreateJobRequest is the body for POST /api/v1/jobs.
type CreateJobRequest struct {
	SlurmJobID int    `json:"slurm_job_id"`
	ClusterID  int    `json:"cluster_id"`
	Username   string `json:"username"`
	LeadHost   string `json:"lead_host"`
}

// UpdateJobRequest is the body for PUT /api/v1/jobs/:id.
type UpdateJobRequest struct {
	Username *string `json:"username"`
	LeadHost *string `json:"lead_host"`
}

// parsePathID parses the numeric :id path parameter.
func parsePathID(c *echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// parseListParams reads the common list query parameters. sortable lists the
// column names accepted for sort_field.
func parseListParams(c *echo.Context, sortable ...string) (services.ListParams, error) {
	params := services.ListParams{
		Search:        c.QueryParam("search"),
		SortAscending: true,
	}

	if v := c.QueryParam("sort_field"); v != "" {
		ok := false
		for _, field := range sortable {
			if v == field {
				ok = true
				break
			}
		}
		if !ok {
			return params, echo.NewHTTPError(http.StatusBadRequest, "invalid sort_field: "+v)
		}
		params.SortField = v
	}

	switch c.QueryParam("sort_ascending") {
	case "", "true":
	case "false":
		params.SortAscending = false
	default:
		return params, echo.NewHTTPError(http.StatusBadRequest, "invalid sort_ascending: must be true or false")
	}

	return params, nil
}
