package authorization

import "strings"

// Action identifies a mutation governed by the access policy.
type Action string

const (
	ActionClientCreate       Action = "client.create"
	ActionClientUpdate       Action = "client.update"
	ActionContractCreate     Action = "contract.create"
	ActionEquipmentCreate    Action = "equipment.create"
	ActionTicketCreate       Action = "ticket.create"
	ActionTicketComment      Action = "ticket.comment"
	ActionTicketAssign       Action = "ticket.assign"
	ActionTicketChangeStatus Action = "ticket.change_status"
	ActionUserUpdateRole     Action = "user.update_role"
)

// AllActions lists every governed mutation, used to seed the enforcer.
var AllActions = []Action{
	ActionClientCreate,
	ActionClientUpdate,
	ActionContractCreate,
	ActionEquipmentCreate,
	ActionTicketCreate,
	ActionTicketComment,
	ActionTicketAssign,
	ActionTicketChangeStatus,
	ActionUserUpdateRole,
}

// mutationPolicy is the authoritative table of permitted mutations per role.
// The auditor has no entry anywhere: it is read-only by definition.
var mutationPolicy = map[Action]map[Role]bool{
	ActionClientCreate:       {RoleAdmin: true},
	ActionClientUpdate:       {RoleAdmin: true},
	ActionContractCreate:     {RoleAdmin: true},
	ActionEquipmentCreate:    {RoleAdmin: true, RoleTechnician: true},
	ActionTicketCreate:       {RoleAdmin: true, RoleTechnician: true, RoleClientUser: true},
	ActionTicketComment:      {RoleAdmin: true, RoleTechnician: true, RoleClientUser: true},
	ActionTicketAssign:       {RoleAdmin: true, RoleTechnician: true},
	ActionTicketChangeStatus: {RoleAdmin: true, RoleTechnician: true},
	ActionUserUpdateRole:     {RoleAdmin: true},
}

// Resource returns the object part of the action, e.g. "ticket" for
// "ticket.comment".
func (a Action) Resource() string {
	resource, _, _ := strings.Cut(string(a), ".")
	return resource
}

// Verb returns the operation part of the action, e.g. "comment" for
// "ticket.comment".
func (a Action) Verb() string {
	_, verb, ok := strings.Cut(string(a), ".")
	if !ok {
		return string(a)
	}
	return verb
}

// MutationAllowed reports whether the role may perform the action.
func MutationAllowed(role Role, action Action) bool {
	if role.IsReadOnly() {
		return false
	}
	return mutationPolicy[action][role]
}

// NavigationItem is a named destination exposed to the routing layer.
type NavigationItem string

const (
	NavDashboard NavigationItem = "dashboard"
	NavTickets   NavigationItem = "tickets"
	NavContracts NavigationItem = "contracts"
	NavEquipment NavigationItem = "equipment"
	NavClients   NavigationItem = "clients"
	NavUsers     NavigationItem = "users"
)

// NavigationItems returns the ordered destinations visible to the role.
// Client and user management are admin-only; every other destination is
// visible to all roles, with data scoping applied at query time.
func NavigationItems(role Role) []NavigationItem {
	items := []NavigationItem{NavDashboard, NavTickets, NavContracts, NavEquipment}
	if role.IsAdmin() {
		items = append(items, NavClients, NavUsers)
	}
	return items
}
