package application

const (
	MsgInventorySaved    = "Your inventory has been saved! Right-click the death chest to retrieve it."
	MsgCaptureFailed     = "Your inventory could not be saved, so your items were dropped where you died."
	MsgNoSavedInventory  = "No saved inventory found."
	MsgLoadedItemsFormat = "Loaded %d items from your saved inventory."
	MsgLoadFailed        = "Error loading your saved inventory. Please contact an administrator."
	MsgTakeOnly          = "You can only take items from the death chest!"
	MsgNoShiftDeposit    = "You cannot shift-click items into the death chest!"
	MsgSaveChangesFailed = "Error saving inventory changes. Please contact an administrator."
	MsgAllItemsClaimed   = "You have claimed all of your saved items."
)
