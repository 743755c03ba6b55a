package domain

// kindsByReferenceType is the static reference-type policy: the ordered set
// of task kinds every reference of a given type must carry. Built once,
// never mutated at runtime.
var kindsByReferenceType = map[ReferenceType][]TaskKind{
	ReferenceTypeOrder: {
		TaskKindCreateInvoice,
		TaskKindArrangePickup,
		TaskKindCollectPayment,
	},
	ReferenceTypeEntity: {
		TaskKindAssignCustomerToSalesPerson,
	},
}

// KindsForReferenceType returns the required task kinds for a reference
// type, in policy order. The returned slice is a copy.
func KindsForReferenceType(rt ReferenceType) ([]TaskKind, error) {
	kinds, ok := kindsByReferenceType[rt]
	if !ok {
		return nil, &UnknownReferenceTypeError{ReferenceType: rt}
	}
	out := make([]TaskKind, len(kinds))
	copy(out, kinds)
	return out, nil
}
