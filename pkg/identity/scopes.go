package identity

// Permission scopes gating the ledger endpoints. Carried verbatim in the
// token's permissions claim.
const (
	ScopeClusterView       = "cluster:view"
	ScopeClusterEdit       = "cluster:edit"
	ScopeConfigView        = "config:view"
	ScopeConfigEdit        = "config:edit"
	ScopeLicenseServerView = "license-server:view"
	ScopeLicenseServerEdit = "license-server:edit"
	ScopeProductView       = "product:view"
	ScopeProductEdit       = "product:edit"
	ScopeFeatureView       = "feature:view"
	ScopeFeatureEdit       = "feature:edit"
	ScopeJobView           = "job:view"
	ScopeJobEdit           = "job:edit"
	ScopeBookingView       = "booking:view"
	ScopeBookingEdit       = "booking:edit"
	ScopeReconcile         = "reconcile:update"
)
