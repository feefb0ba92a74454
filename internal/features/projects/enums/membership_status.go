package projects_enums

type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "PENDING"
	MembershipStatusActive   MembershipStatus = "ACTIVE"
	MembershipStatusDeclined MembershipStatus = "DECLINED"
)

func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusPending, MembershipStatusActive, MembershipStatusDeclined:
		return true
	default:
		return false
	}
}

// Ordinal defines the display rank used when listing members:
// pending invitations first, then active members, then declined.
func (s MembershipStatus) Ordinal() int {
	switch s {
	case MembershipStatusPending:
		return 0
	case MembershipStatusActive:
		return 1
	case MembershipStatusDeclined:
		return 2
	default:
		return 3
	}
}
