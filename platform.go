package powercfg

import "fmt"

// PlatformRole classifies the machine form factor the power engine assumes
// (POWER_PLATFORM_ROLE).
type PlatformRole int32

const (
	RoleUnspecified PlatformRole = iota
	RoleDesktop
	RoleMobile
	RoleWorkstation
	RoleEnterpriseServer
	RoleSOHOServer
	RoleAppliancePC
	RolePerformanceServer
	RoleSlate
	RoleMaximum
)

// String returns a human-readable role name.
func (r PlatformRole) String() string {
	switch r {
	case RoleUnspecified:
		return "Unspecified"
	case RoleDesktop:
		return "Desktop"
	case RoleMobile:
		return "Mobile"
	case RoleWorkstation:
		return "Workstation"
	case RoleEnterpriseServer:
		return "EnterpriseServer"
	case RoleSOHOServer:
		return "SOHOServer"
	case RoleAppliancePC:
		return "AppliancePC"
	case RolePerformanceServer:
		return "PerformanceServer"
	case RoleSlate:
		return "Slate"
	case RoleMaximum:
		return "Maximum"
	default:
		return fmt.Sprintf("PlatformRole(%d)", int32(r))
	}
}

// PlatformRole returns the machine form factor the power engine assumes.
func (s *Store) PlatformRole() (PlatformRole, error) {
	role, err := s.provider.PlatformRole()
	if err != nil {
		return RoleUnspecified, fmt.Errorf("determine platform role: %w", err)
	}
	s.logf("platform role is %s", role)
	return role, nil
}
