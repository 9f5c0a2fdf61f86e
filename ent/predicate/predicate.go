// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Cluster is the predicate function for cluster builders.
type Cluster func(*sql.Selector)

// Configuration is the predicate function for configuration builders.
type Configuration func(*sql.Selector)

// Feature is the predicate function for feature builders.
type Feature func(*sql.Selector)

// Inventory is the predicate function for inventory builders.
type Inventory func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// LicenseServer is the predicate function for licenseserver builders.
type LicenseServer func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)
