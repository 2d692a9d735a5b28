// Package domain holds what the tenant, catalog and wizard packages share:
// the error classes adapters translate into HTTP statuses, and
// ValidationError, which reports failures per dotted field path such as
// "owner.email".
package domain
