// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/hpc-toolchain/license-manager/ent/booking"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/inventory"
	"github.com/hpc-toolchain/license-manager/ent/job"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
	"github.com/hpc-toolchain/license-manager/ent/product"
	"github.com/hpc-toolchain/license-manager/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescQuantity is the schema descriptor for quantity field.
	bookingDescQuantity := bookingFields[2].Descriptor()
	// booking.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	booking.QuantityValidator = bookingDescQuantity.Validators[0].(func(int) error)
	clusterFields := schema.Cluster{}.Fields()
	_ = clusterFields
	// clusterDescName is the schema descriptor for name field.
	clusterDescName := clusterFields[0].Descriptor()
	// cluster.NameValidator is a validator for the "name" field. It is called by the builders before save.
	cluster.NameValidator = clusterDescName.Validators[0].(func(string) error)
	// clusterDescClientID is the schema descriptor for client_id field.
	clusterDescClientID := clusterFields[1].Descriptor()
	// cluster.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	cluster.ClientIDValidator = clusterDescClientID.Validators[0].(func(string) error)
	configurationFields := schema.Configuration{}.Fields()
	_ = configurationFields
	// configurationDescName is the schema descriptor for name field.
	configurationDescName := configurationFields[0].Descriptor()
	// configuration.NameValidator is a validator for the "name" field. It is called by the builders before save.
	configuration.NameValidator = configurationDescName.Validators[0].(func(string) error)
	// configurationDescGraceTime is the schema descriptor for grace_time field.
	configurationDescGraceTime := configurationFields[2].Descriptor()
	// configuration.GraceTimeValidator is a validator for the "grace_time" field. It is called by the builders before save.
	configuration.GraceTimeValidator = configurationDescGraceTime.Validators[0].(func(int) error)
	featureFields := schema.Feature{}.Fields()
	_ = featureFields
	// featureDescName is the schema descriptor for name field.
	featureDescName := featureFields[0].Descriptor()
	// feature.NameValidator is a validator for the "name" field. It is called by the builders before save.
	feature.NameValidator = featureDescName.Validators[0].(func(string) error)
	// featureDescReserved is the schema descriptor for reserved field.
	featureDescReserved := featureFields[3].Descriptor()
	// feature.DefaultReserved holds the default value on creation for the reserved field.
	feature.DefaultReserved = featureDescReserved.Default.(int)
	// feature.ReservedValidator is a validator for the "reserved" field. It is called by the builders before save.
	feature.ReservedValidator = featureDescReserved.Validators[0].(func(int) error)
	inventoryFields := schema.Inventory{}.Fields()
	_ = inventoryFields
	// inventoryDescTotal is the schema descriptor for total field.
	inventoryDescTotal := inventoryFields[1].Descriptor()
	// inventory.DefaultTotal holds the default value on creation for the total field.
	inventory.DefaultTotal = inventoryDescTotal.Default.(int)
	// inventory.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	inventory.TotalValidator = inventoryDescTotal.Validators[0].(func(int) error)
	// inventoryDescUsed is the schema descriptor for used field.
	inventoryDescUsed := inventoryFields[2].Descriptor()
	// inventory.DefaultUsed holds the default value on creation for the used field.
	inventory.DefaultUsed = inventoryDescUsed.Default.(int)
	// inventory.UsedValidator is a validator for the "used" field. It is called by the builders before save.
	inventory.UsedValidator = inventoryDescUsed.Validators[0].(func(int) error)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescSlurmJobID is the schema descriptor for slurm_job_id field.
	jobDescSlurmJobID := jobFields[0].Descriptor()
	// job.SlurmJobIDValidator is a validator for the "slurm_job_id" field. It is called by the builders before save.
	job.SlurmJobIDValidator = jobDescSlurmJobID.Validators[0].(func(int) error)
	// jobDescUsername is the schema descriptor for username field.
	jobDescUsername := jobFields[2].Descriptor()
	// job.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	job.UsernameValidator = jobDescUsername.Validators[0].(func(string) error)
	// jobDescLeadHost is the schema descriptor for lead_host field.
	jobDescLeadHost := jobFields[3].Descriptor()
	// job.LeadHostValidator is a validator for the "lead_host" field. It is called by the builders before save.
	job.LeadHostValidator = jobDescLeadHost.Validators[0].(func(string) error)
	licenseserverFields := schema.LicenseServer{}.Fields()
	_ = licenseserverFields
	// licenseserverDescHost is the schema descriptor for host field.
	licenseserverDescHost := licenseserverFields[1].Descriptor()
	// licenseserver.HostValidator is a validator for the "host" field. It is called by the builders before save.
	licenseserver.HostValidator = licenseserverDescHost.Validators[0].(func(string) error)
	// licenseserverDescPort is the schema descriptor for port field.
	licenseserverDescPort := licenseserverFields[2].Descriptor()
	// licenseserver.PortValidator is a validator for the "port" field. It is called by the builders before save.
	licenseserver.PortValidator = func() func(int) error {
		validators := licenseserverDescPort.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(port int) error {
			for _, fn := range fns {
				if err := fn(port); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[0].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
}
