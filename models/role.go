// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Role is the access role assigned to a back-office user.
type Role string

const (
	// RoleAdmin has full access, including user management.
	RoleAdmin Role = "admin"
	// RoleManager runs the station and reads every report.
	RoleManager Role = "manager"
	// RoleAccountant reads the financial statements.
	RoleAccountant Role = "accountant"
	// RoleCashier operates the pumps and has no dashboard access.
	RoleCashier Role = "cashier"
)

// DashboardRoles lists the roles allowed to read the financial statements.
var DashboardRoles = []Role{RoleAdmin, RoleManager, RoleAccountant}

// PriceAnalysisRoles lists the roles allowed to read the fuel price analysis.
var PriceAnalysisRoles = []Role{RoleAdmin, RoleManager}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAccountant, RoleCashier:
		return true
	}
	return false
}

// In reports whether r is contained in roles.
func (r Role) In(roles []Role) bool {
	return slices.Contains(roles, r)
}

func (r Role) String() string {
	return string(r)
}
