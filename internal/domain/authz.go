package domain

// AuthorizeMutation decides whether the authenticated caller may mutate a
// resource with the given recorded owner. A nil owner means the resource was
// created anonymously; anonymous content is immutable after creation, so the
// mutation is refused for everyone.
//
// Callers must surface ErrNotFound for a missing resource before invoking the
// guard; ownership is meaningless for a nonexistent resource.
func AuthorizeMutation(callerID uint, ownerID *uint) error {
	if ownerID == nil {
		return ErrForbidden
	}
	if *ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
