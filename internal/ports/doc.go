// Package ports declares the boundaries of the tenant console. Service ports
// (WizardService, TenantService) are implemented by the application layer
// and driven by the HTTP handlers and the terminal wizard. Client ports
// (TenantDirectory) are implemented by the directory ACL adapter. Health
// ports let the readiness endpoint aggregate dependency checks.
package ports
