package usecase

import "portal-srv/internal/model"

// capability gates role-specific dispatcher actions. One component set
// parameterized by role replaces the per-role dashboard copies.
type capability struct {
	canArchive bool
	canDelete  bool
	canUpload  bool
}

func capabilityFor(sc model.Scope) capability {
	switch sc.Role {
	case model.RoleDoctor:
		return capability{canArchive: true, canUpload: true}
	case model.RoleTechnician:
		return capability{canDelete: true, canUpload: true}
	default:
		return capability{}
	}
}
