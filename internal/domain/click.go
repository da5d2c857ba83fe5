package domain

type ClickAction string

const (
	ClickNothing            ClickAction = "nothing"
	ClickPickupAll          ClickAction = "pickup_all"
	ClickPickupSome         ClickAction = "pickup_some"
	ClickPickupHalf         ClickAction = "pickup_half"
	ClickPickupOne          ClickAction = "pickup_one"
	ClickPlaceAll           ClickAction = "place_all"
	ClickPlaceSome          ClickAction = "place_some"
	ClickPlaceOne           ClickAction = "place_one"
	ClickSwapWithCursor     ClickAction = "swap_with_cursor"
	ClickDropAllCursor      ClickAction = "drop_all_cursor"
	ClickDropOneCursor      ClickAction = "drop_one_cursor"
	ClickDropAllSlot        ClickAction = "drop_all_slot"
	ClickDropOneSlot        ClickAction = "drop_one_slot"
	ClickMoveToOtherInv     ClickAction = "move_to_other_inventory"
	ClickHotbarMoveAndReadd ClickAction = "hotbar_move_and_readd"
	ClickHotbarSwap         ClickAction = "hotbar_swap"
	ClickCloneStack         ClickAction = "clone_stack"
	ClickCollectToCursor    ClickAction = "collect_to_cursor"
	ClickUnknown            ClickAction = "unknown"
)

// IsPlacement reports whether the action puts the cursor item into the
// clicked slot.
func (a ClickAction) IsPlacement() bool {
	switch a {
	case ClickPlaceAll, ClickPlaceSome, ClickPlaceOne, ClickSwapWithCursor:
		return true
	default:
		return false
	}
}

// IsBulkMove reports whether the host moves the item itself rather than
// lifting it onto the cursor.
func (a ClickAction) IsBulkMove() bool {
	switch a {
	case ClickMoveToOtherInv, ClickCollectToCursor, ClickHotbarMoveAndReadd, ClickHotbarSwap:
		return true
	default:
		return false
	}
}

func (a ClickAction) IsPickup() bool {
	switch a {
	case ClickPickupAll, ClickPickupSome, ClickPickupHalf, ClickPickupOne:
		return true
	default:
		return false
	}
}

type ClickTarget string

const (
	TargetClaim   ClickTarget = "claim"
	TargetPlayer  ClickTarget = "player"
	TargetOutside ClickTarget = "outside"
)

// ClickKind is the decision taken for one click inside an open claim view.
type ClickKind int

const (
	ClickIgnored ClickKind = iota
	ClickRejectDeposit
	ClickWithdraw
	ClickBulkWithdraw
	ClickRejectBulkDeposit
)

// ClassifyClick maps a click on an open claim view to the rule that governs
// it. occupied reports whether the clicked claim slot holds an item.
func ClassifyClick(target ClickTarget, action ClickAction, inClaimRange bool, occupied bool) ClickKind {
	if target == TargetClaim && inClaimRange {
		switch {
		case action.IsPlacement():
			return ClickRejectDeposit
		case !occupied:
			return ClickIgnored
		case action.IsBulkMove():
			return ClickBulkWithdraw
		case action == ClickNothing || action == ClickUnknown:
			return ClickIgnored
		default:
			// Pickups, drops and clones all lift the stack out of the slot.
			return ClickWithdraw
		}
	}

	if target == TargetPlayer && action == ClickMoveToOtherInv {
		return ClickRejectBulkDeposit
	}

	return ClickIgnored
}
