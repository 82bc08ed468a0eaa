package domain

// UserKeyKind discriminates how a user was identified when partitioning a
// mixed event stream.
type UserKeyKind string

const (
	UserKeyID      UserKeyKind = "id"
	UserKeyLogin   UserKeyKind = "login"
	UserKeyUnknown UserKeyKind = "unknown"
)

// UserKey identifies the owner of an event stream. Keeping the kind explicit
// means a numeric id "7" and a login that happens to be "7" land in separate
// buckets.
type UserKey struct {
	Kind  UserKeyKind
	Value string
}

// KeyForEvent derives the partition key for an event: numeric user id first,
// then login, then the shared unknown bucket.
func KeyForEvent(e Event) UserKey {
	if e.UserID != "" {
		return UserKey{Kind: UserKeyID, Value: e.UserID}
	}
	if e.UserLogin != "" {
		return UserKey{Kind: UserKeyLogin, Value: e.UserLogin}
	}
	return UserKey{Kind: UserKeyUnknown, Value: "unknown"}
}

func (k UserKey) String() string {
	if k.Kind == UserKeyUnknown {
		return "unknown"
	}
	return string(k.Kind) + ":" + k.Value
}
