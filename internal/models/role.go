package models

import "strings"

// RoleClass is the closed set of role families the API distinguishes. Stored roles
// remain free text; classification maps them onto this set.
type RoleClass string

const (
	RoleIndividualContributor RoleClass = "individual_contributor"
	RoleManager               RoleClass = "manager"
	RoleTeamLeader            RoleClass = "team_leader"
	RoleGroupLeader           RoleClass = "group_leader"
)

// ClassifyRole maps a free-text role label onto a RoleClass. Matching is
// case-insensitive and by substring, so variants like "Sr. Manager" or even
// "submanager" classify into the manager family. That looseness is intentional:
// existing role data is uncontrolled text.
func ClassifyRole(label string) RoleClass {
	r := strings.ToLower(label)
	switch {
	case strings.Contains(r, "manager"):
		return RoleManager
	case strings.Contains(r, "team leader"):
		return RoleTeamLeader
	case strings.Contains(r, "group leader"):
		return RoleGroupLeader
	default:
		return RoleIndividualContributor
	}
}

// IsSupervisory reports whether the class has visibility over other users' activity.
func (rc RoleClass) IsSupervisory() bool {
	return rc != RoleIndividualContributor
}
